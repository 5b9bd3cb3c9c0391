package revindex

import (
	"encoding/json"

	"github.com/google/btree"
	"github.com/vmihailenco/msgpack/v5"
)

const idSetDegree = 8

// IDSet is an ordered set of ids. The zero value is an empty set.
type IDSet struct {
	t *btree.BTreeG[int32]
}

func NewIDSet(ids ...int32) IDSet {
	var s IDSet
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

func (s *IDSet) Insert(id int32) {
	if s.t == nil {
		s.t = btree.NewOrderedG[int32](idSetDegree)
	}
	s.t.ReplaceOrInsert(id)
}

func (s IDSet) Has(id int32) bool {
	return s.t != nil && s.t.Has(id)
}

func (s IDSet) Len() int {
	if s.t == nil {
		return 0
	}
	return s.t.Len()
}

// Ascend calls fn for each id in ascending order until fn returns false.
func (s IDSet) Ascend(fn func(id int32) bool) {
	if s.t != nil {
		s.t.Ascend(fn)
	}
}

// Slice returns the ids in ascending order.
func (s IDSet) Slice() []int32 {
	result := make([]int32, 0, s.Len())
	s.Ascend(func(id int32) bool {
		result = append(result, id)
		return true
	})
	return result
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []int32
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

var (
	_ msgpack.CustomEncoder = IDSet{}
	_ msgpack.CustomDecoder = (*IDSet)(nil)
)

func (s IDSet) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(s.Len()); err != nil {
		return err
	}
	var err error
	s.Ascend(func(id int32) bool {
		err = enc.EncodeInt(int64(id))
		return err == nil
	})
	return err
}

func (s *IDSet) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	*s = IDSet{}
	for range max(n, 0) {
		id, err := dec.DecodeInt32()
		if err != nil {
			return err
		}
		s.Insert(id)
	}
	return nil
}
