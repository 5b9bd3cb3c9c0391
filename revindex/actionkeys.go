package revindex

// actionKeys are the BehaviorParameter names whose value is the id of
// another behavior. The list mirrors the client data, including its typos.
var actionKeys = map[string]struct{}{
	"action":             {},
	"behavior 1":         {},
	"behavior 2":         {},
	"miss action":        {},
	"blocked action":     {},
	"on_fail_blocked":    {},
	"action_false":       {},
	"action_true":        {},
	"start_action":       {},
	"behavior 3":         {},
	"bahavior 2":         {},
	"behavior 4":         {},
	"on_success":         {},
	"behavior 5":         {},
	"chain_action":       {},
	"behavior 0":         {},
	"behavior 6":         {},
	"behavior 7":         {},
	"behavior 8":         {},
	"on_fail_armor":      {},
	"behavior":           {},
	"break_action":       {},
	"double_jump_action": {},
	"ground_action":      {},
	"jump_action":        {},
	"hit_action":         {},
	"hit_action_enemy":   {},
	"timeout_action":     {},
	"air_action":         {},
	"falling_action":     {},
	"jetpack_action":     {},
	"spawn_fail_action":  {},
	"action_failed":      {},
	"action_consumed":    {},
	"blocked_action":     {},
	"on_fail_immune":     {},
	"moving_action":      {},
	"behavior 10":        {},
	"behavior 9":         {},
}

// IsActionKey reports whether a behavior parameter links to another
// behavior. Matching is exact and case-sensitive.
func IsActionKey(parameterID string) bool {
	_, ok := actionKeys[parameterID]
	return ok
}
