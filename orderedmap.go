// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"cmp"
	"sort"
)

// OrderedMap is a statically-sized associative container with O(log N)
// Find via binary search over keys kept sorted at construction, and
// O(N) RFind via linear scan.
type OrderedMap[K cmp.Ordered, V any] struct {
	order []entry[K, V]
}

var _ AssocMap[int, string] = (*OrderedMap[int, string])(nil)

// NewOrderedMap returns an [OrderedMap] populated from pairs, sorted by
// key. Panics if pairs is empty.
func NewOrderedMap[K cmp.Ordered, V any](pairs ...entry[K, V]) *OrderedMap[K, V] {
	if len(pairs) == 0 {
		panic("pipe: OrderedMap requires at least one entry")
	}
	sorted := append([]entry[K, V](nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return &OrderedMap[K, V]{order: sorted}
}

// Find returns the value for key via binary search, or the
// lowest-keyed entry's value on a miss.
func (m *OrderedMap[K, V]) Find(key K) V {
	i := sort.Search(len(m.order), func(i int) bool { return m.order[i].Key >= key })
	if i < len(m.order) && m.order[i].Key == key {
		return m.order[i].Value
	}
	return m.order[0].Value
}

// RFind returns the key for the first entry whose value equals value,
// or the lowest-keyed entry's key on a miss.
func (m *OrderedMap[K, V]) RFind(value V) K {
	return m.RFindFunc(value, func(a, b V) bool { return any(a) == any(b) })
}

// RFindFunc is [OrderedMap.RFind] with an explicit equality function.
func (m *OrderedMap[K, V]) RFindFunc(value V, equal func(a, b V) bool) K {
	for _, p := range m.order {
		if equal(p.Value, value) {
			return p.Key
		}
	}
	return m.order[0].Key
}
