package lirs

import "go.uber.org/zap"

// prune peels HIR keys off the bottom of S until an LIR key sits at the
// bottom, or S is empty. A ghost encountered at the bottom is deleted
// entirely, since it is about to become untracked.
func (c *Cache[K, V]) prune() {
	for {
		back := c.s.Back()
		if back == nil {
			return
		}
		key := back.Key
		e := c.entries[key]
		if e.isLIR {
			return
		}
		c.s.Remove(back)
		e.sElem = nil
		if !e.isResident {
			delete(c.entries, key)
		}
	}
}

// demoteBottomLIR runs after a promotion: if S is non-empty and its bottom
// key is LIR, it is demoted to HIR and moved to the top of Q.
//
// Callers must run promote's S move-to-top and Q removal first, and run
// prune afterward, or the wrong key can end up demoted.
func (c *Cache[K, V]) demoteBottomLIR() {
	back := c.s.Back()
	if back == nil {
		return
	}
	key := back.Key
	e := c.entries[key]
	if !e.isLIR {
		return
	}
	e.isLIR = false
	c.lirCount--
	c.s.Remove(back)
	e.sElem = nil
	e.qElem = c.q.PushFront(key)
}

// evictHIR frees one resident slot by popping the bottom of Q. If the
// victim is still present in S, it survives as a ghost; otherwise its
// entry record is deleted. A no-op if Q is empty (only possible during
// warm-up, where callers never invoke this).
func (c *Cache[K, V]) evictHIR() {
	back := c.q.Back()
	if back == nil {
		return
	}
	key := back.Key
	e := c.entries[key]
	c.q.Remove(back)
	e.qElem = nil
	delete(c.values, key)
	e.isResident = false
	c.logger.Debug("evicted HIR victim", zap.Any("key", key), zap.Bool("ghost", e.inS()))
	if !e.inS() {
		delete(c.entries, key)
	}
}
