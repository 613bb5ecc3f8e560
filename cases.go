package lirs

import "go.uber.org/zap"

// accessLIR handles a hit on a resident LIR key: move it to the top of S,
// and if it was sitting at the bottom, prune the stack behind it.
func (c *Cache[K, V]) accessLIR(key K, e *entry[K]) {
	wasBottom := false
	if back := c.s.Back(); back != nil && back.Key == key {
		wasBottom = true
	}
	c.s.MoveToFront(e.sElem)
	if wasBottom {
		c.prune()
	}
}

// accessHIRResident handles a hit on a resident HIR key. If the key is
// still in S, it has earned promotion to LIR. Otherwise it's a plain
// refresh: reinsert at the top of S, move to the top of Q.
func (c *Cache[K, V]) accessHIRResident(key K, e *entry[K]) {
	if e.inS() {
		c.promote(key, e)
		return
	}
	e.sElem = c.s.PushFront(key)
	c.q.MoveToFront(e.qElem)
}

// accessGhost handles a put on a non-resident (ghost) key: it still has a
// position in S, so it gets promoted straight to LIR rather than admitted
// as a fresh HIR. A ghost entry absent from S has no reason to exist and
// is deleted the moment that happens, so this path never sees one.
func (c *Cache[K, V]) accessGhost(key K, value V, e *entry[K]) {
	c.evictHIR()
	e.isResident = true
	c.values[key] = value
	c.promote(key, e)
}

// promote shares the steps common to both promotion paths: set LIR, move
// to the top of S, remove from Q if present, demote whichever LIR now
// sits at the bottom, then prune. The order matters: demoting before the
// move-to-top can target the wrong key, and pruning before demoting can
// strand an LIR that should have been pushed down to HIR.
func (c *Cache[K, V]) promote(key K, e *entry[K]) {
	e.isLIR = true
	c.lirCount++
	c.s.MoveToFront(e.sElem)
	if e.inQ() {
		c.q.Remove(e.qElem)
		e.qElem = nil
	}
	c.demoteBottomLIR()
	c.prune()
	c.logger.Debug("promoted to LIR", zap.Any("key", key))
}

// insertNew admits a completely unknown key.
func (c *Cache[K, V]) insertNew(key K, value V) {
	if c.lirCount < c.lirCapacity {
		e := &entry[K]{isLIR: true, isResident: true}
		e.sElem = c.s.PushFront(key)
		c.entries[key] = e
		c.values[key] = value
		c.lirCount++
		return
	}
	c.evictHIR()
	e := &entry[K]{isResident: true}
	e.sElem = c.s.PushFront(key)
	e.qElem = c.q.PushFront(key)
	c.entries[key] = e
	c.values[key] = value
}
