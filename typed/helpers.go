package typed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andreyvit/fdb"
)

// ParseIDList parses a comma separated list of integers, skipping pieces
// that are not numbers.
func ParseIDList(s string) []int32 {
	var result []int32
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			continue
		}
		result = append(result, int32(n))
	}
	return result
}

// ItemIDs returns the LOTs that make up the set.
func (r ItemSetsRow) ItemIDs() []int32 {
	return ParseIDList(r.RawItemIDs().Decode())
}

// IconPath resolves an icon to its cleaned-up resource path.
func (t *IconsTable) IconPath(id int32) (string, bool) {
	row, ok := t.Get(id)
	if !ok {
		return "", false
	}
	raw, ok := row.IconPath()
	if !ok {
		return "", false
	}
	return CleanupIconPath(raw)
}

// CleanupIconPath maps a client texture reference, relative to the UI
// texture directory and usually written with backslashes, to an absolute
// lowercase path of the exported PNG. Absolute inputs are rejected.
func CleanupIconPath(raw fdb.Latin1) (string, bool) {
	s := asciiLower(strings.ReplaceAll(raw.Decode(), `\`, "/"))
	if strings.HasPrefix(s, "/") {
		return "", false
	}
	segs := []string{"textures", "ui"}
	for _, seg := range strings.Split(s, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, seg)
		}
	}
	if len(segs) == 0 {
		return "/", true
	}
	last := segs[len(segs)-1]
	if i := strings.LastIndexByte(last, '.'); i > 0 {
		last = last[:i]
	}
	segs[len(segs)-1] = last + ".png"
	return "/" + strings.Join(segs, "/"), true
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

type MissionKind string

const (
	KindMission     MissionKind = "Mission"
	KindAchievement MissionKind = "Achievement"
)

func (r MissionsRow) Kind() MissionKind {
	if r.IsMission() {
		return KindMission
	}
	return KindAchievement
}

type TaskIcon struct {
	UID    int32  `json:"uid"`
	IconID *int32 `json:"icon_id,omitempty"`
}

// TaskIcons lists the tasks of a mission with their icons, in storage order.
func (t *MissionTasksTable) TaskIcons(missionID int32) []TaskIcon {
	var result []TaskIcon
	for c := t.ByKey(missionID); c.Next(); {
		row := c.Row()
		ti := TaskIcon{UID: row.UID()}
		if id, ok := row.IconID(); ok {
			ti.IconID = &id
		}
		result = append(result, ti)
	}
	return result
}

type ComponentRef struct {
	Type int32 `json:"type"`
	ID   int32 `json:"id"`
}

// ComponentsOf lists the components registered for an object.
func (t *ComponentsRegistryTable) ComponentsOf(lot int32) []ComponentRef {
	var result []ComponentRef
	for c := t.ByKey(lot); c.Next(); {
		row := c.Row()
		result = append(result, ComponentRef{row.ComponentType(), row.ComponentID()})
	}
	return result
}

func nonEmpty(s fdb.Latin1, ok bool) (fdb.Latin1, bool) {
	return s, ok && !s.IsEmpty()
}

// Title formats the object for listings: the display name with the internal
// name in parentheses when they differ.
func (r ObjectsRow) Title() string {
	id := r.ID()
	name, hasName := nonEmpty(r.Name())
	display, hasDisplay := nonEmpty(r.DisplayName())
	switch {
	case hasName && hasDisplay && !display.Equal(name):
		return fmt.Sprintf("%s (%s) | Object #%d", display, name, id)
	case hasName:
		return fmt.Sprintf("%s | Object #%d", name, id)
	case hasDisplay:
		return fmt.Sprintf("%s | Object #%d", display, id)
	default:
		return fmt.Sprintf("Object #%d", id)
	}
}

// Summary combines the description and the internal notes.
func (r ObjectsRow) Summary() string {
	desc, hasDesc := nonEmpty(r.Description())
	notes, hasNotes := nonEmpty(r.InternalNotes())
	switch {
	case hasDesc && hasNotes && !desc.Equal(notes):
		return fmt.Sprintf("%s (%s)", desc, notes)
	case hasDesc:
		return desc.Decode()
	case hasNotes:
		return notes.Decode()
	default:
		return ""
	}
}
