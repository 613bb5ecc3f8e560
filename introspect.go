package lirs

import "iter"

// ValueEntry bundles a resident value with its classification, returned by
// [Cache.Values].
type ValueEntry[V any] struct {
	Value V
	Class Classification
}

// LIRCount returns the current number of LIR keys.
func (c *Cache[K, V]) LIRCount() int { return c.lirCount }

// LIRCapacity returns the configured LIR capacity.
func (c *Cache[K, V]) LIRCapacity() int { return c.lirCapacity }

// HIRCapacity returns the configured HIR capacity.
func (c *Cache[K, V]) HIRCapacity() int { return c.hirCapacity }

// Stack iterates S top-to-bottom, yielding each key's classification. Does
// not mutate state or count as an access.
func (c *Cache[K, V]) Stack() iter.Seq2[K, Classification] {
	return func(yield func(K, Classification) bool) {
		for elem := c.s.Front(); elem != nil; elem = elem.Next() {
			e := c.entries[elem.Key]
			var class Classification
			switch {
			case e.isLIR:
				class = LIR
			case e.isResident:
				class = HIRResident
			default:
				class = HIRGhost
			}
			if !yield(elem.Key, class) {
				return
			}
		}
	}
}

// Queue iterates Q top-to-bottom. Every key it yields is resident HIR.
func (c *Cache[K, V]) Queue() iter.Seq[K] {
	return func(yield func(K) bool) {
		for elem := c.q.Front(); elem != nil; elem = elem.Next() {
			if !yield(elem.Key) {
				return
			}
		}
	}
}

// Values iterates the resident value store in unspecified order.
func (c *Cache[K, V]) Values() iter.Seq2[K, ValueEntry[V]] {
	return func(yield func(K, ValueEntry[V]) bool) {
		for key, value := range c.values {
			class := HIR
			if c.entries[key].isLIR {
				class = LIR
			}
			if !yield(key, ValueEntry[V]{Value: value, Class: class}) {
				return
			}
		}
	}
}
