package lirs

import (
	"go.uber.org/zap"

	"github.com/kevburnsjr/lirs/internal/seqlist"
)

// Cache implements the Low Inter-reference Recency Set (LIRS) replacement
// policy. Concurrent access must be guarded by the caller. Constructed by
// [New]. Copying a Cache is not supported: use *Cache.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[K]
	values  map[K]V
	s, q    *seqlist.List[K]

	capacity, hirCapacity, lirCapacity, lirCount int

	logger *zap.Logger
}

// New creates a [Cache] with the given capacity. capacity must be positive.
// By default, hir_ratio is 0.01; override it with [WithHIRRatio].
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, invalidCapacityError(capacity)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	if o.hirRatio <= 0.0 || o.hirRatio >= 1.0 {
		o.logger.Debug("rejecting invalid HIR ratio", zap.Float64("hir_ratio", o.hirRatio))
		return nil, invalidHIRRatioError(o.hirRatio)
	}
	hirCapacity := max(1, int(float64(capacity)*o.hirRatio))
	return &Cache[K, V]{
		entries:     make(map[K]*entry[K], capacity),
		values:      make(map[K]V, capacity),
		s:           seqlist.New[K](),
		q:           seqlist.New[K](),
		capacity:    capacity,
		hirCapacity: hirCapacity,
		lirCapacity: capacity - hirCapacity,
		logger:      o.logger,
	}, nil
}

// Get returns the value for key if it is resident, marking the access by
// reordering S and/or Q. A ghost or unknown key is reported absent and
// never reorders S or Q.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok || !e.isResident {
		var zero V
		return zero, false
	}
	value := c.values[key]
	if e.isLIR {
		c.accessLIR(key, e)
	} else {
		c.accessHIRResident(key, e)
	}
	if debugging {
		c.checkInvariants()
	}
	return value, true
}

// Put inserts or updates key's value. Inserting a new key when the cache is
// full evicts exactly one resident HIR key from the bottom of Q.
func (c *Cache[K, V]) Put(key K, value V) {
	e, ok := c.entries[key]
	switch {
	case !ok:
		c.insertNew(key, value)
	case e.isLIR:
		c.values[key] = value
		c.accessLIR(key, e)
	case e.isResident:
		c.values[key] = value
		c.accessHIRResident(key, e)
	default:
		c.accessGhost(key, value, e)
	}
	if debugging {
		c.checkInvariants()
	}
}

// Load returns the resident value for key if present; otherwise it calls
// fetch, Puts the result, and returns it. If fetch errors, nothing is
// cached and the error is returned.
func (c *Cache[K, V]) Load(key K, fetch func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Put(key, value)
	return value, nil
}

// Size returns the number of resident entries.
func (c *Cache[K, V]) Size() int { return len(c.values) }

// Capacity returns the configured capacity.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Empty reports whether Size() == 0.
func (c *Cache[K, V]) Empty() bool { return c.Size() == 0 }
