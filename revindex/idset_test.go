package revindex

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestIDSet(t *testing.T) {
	var s IDSet
	if s.Has(1) || s.Len() != 0 {
		t.Fatal("zero IDSet is not empty")
	}
	s.Insert(5)
	s.Insert(-1)
	s.Insert(5)
	s.Insert(2)
	if a, e := s.Slice(), []int32{-1, 2, 5}; !reflect.DeepEqual(a, e) {
		t.Errorf("Slice = %v, wanted %v", a, e)
	}
	if !s.Has(2) || s.Has(3) {
		t.Errorf("Has is wrong")
	}
}

func TestIDSet_JSON(t *testing.T) {
	for _, tt := range []struct {
		set  IDSet
		json string
	}{
		{IDSet{}, `[]`},
		{NewIDSet(3, 1, 2), `[1,2,3]`},
	} {
		j, err := json.Marshal(tt.set)
		if err != nil {
			t.Fatal(err)
		}
		if string(j) != tt.json {
			t.Errorf("Marshal = %s, wanted %s", j, tt.json)
		}
		var back IDSet
		if err := json.Unmarshal(j, &back); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(back.Slice(), tt.set.Slice()) {
			t.Errorf("Unmarshal(%s) = %v", j, back.Slice())
		}
	}
}

func TestIDSet_msgpack(t *testing.T) {
	in := BehaviorKeyIndex{Uses: NewIDSet(7, 3), UsedBy: NewIDSet(-2)}
	data, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatal(err)
	}
	var out BehaviorKeyIndex
	if err := msgpack.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if a, e := out.Uses.Slice(), []int32{3, 7}; !reflect.DeepEqual(a, e) {
		t.Errorf("Uses = %v, wanted %v", a, e)
	}
	if a, e := out.UsedBy.Slice(), []int32{-2}; !reflect.DeepEqual(a, e) {
		t.Errorf("UsedBy = %v, wanted %v", a, e)
	}
	if out.Skill.Len() != 0 {
		t.Errorf("Skill = %v, wanted empty", out.Skill.Slice())
	}
}
