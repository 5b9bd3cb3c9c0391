package revindex

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// BehaviorSet returns root and every behavior reachable from it through
// action parameters. Ids that are zero or negative mean "no behavior" and
// are not followed.
func (rev *ReverseLookup) BehaviorSet(root int32) IDSet {
	var visited IDSet
	stack := []int32{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Has(id) {
			continue
		}
		visited.Insert(id)
		rev.Behavior(id).Uses.Ascend(func(next int32) bool {
			if next > 0 && !visited.Has(next) {
				stack = append(stack, next)
			}
			return true
		})
	}
	return visited
}

const DefaultBehaviorCacheSize = 1024

// BehaviorCache memoizes BehaviorSet. Safe for concurrent use.
type BehaviorCache struct {
	rev   *ReverseLookup
	cache *lru.Cache[int32, []int32]
}

func NewBehaviorCache(rev *ReverseLookup, size int) *BehaviorCache {
	if size <= 0 {
		size = DefaultBehaviorCacheSize
	}
	return &BehaviorCache{
		rev:   rev,
		cache: must(lru.New[int32, []int32](size)),
	}
}

// BehaviorSet returns the closure of root in ascending order. The returned
// slice is shared and must not be modified.
func (c *BehaviorCache) BehaviorSet(root int32) []int32 {
	if ids, ok := c.cache.Get(root); ok {
		return ids
	}
	ids := c.rev.BehaviorSet(root).Slice()
	c.cache.Add(root, ids)
	return ids
}

func (c *BehaviorCache) Len() int {
	return c.cache.Len()
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
