//go:build lirs_debug

package lirs

import "fmt"

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}

// checkInvariants walks the bookkeeping after a public operation boundary
// and panics on the first contradiction it finds. Only compiled into
// lirs_debug builds.
func (c *Cache[K, V]) checkInvariants() {
	assert(c.Size() <= c.capacity, "resident count exceeds capacity")
	assert(c.lirCount <= c.lirCapacity, "LIR count exceeds LIR capacity")
	if back := c.s.Back(); back != nil {
		assert(c.entries[back.Key].isLIR, "bottom of S is not LIR")
	}
	for key, e := range c.entries {
		if e.isLIR {
			assert(e.inS() && !e.inQ(), "LIR key not confined to S: "+fmt.Sprint(key))
		}
		if !e.isResident {
			assert(e.inS() && !e.inQ(), "ghost key not confined to S: "+fmt.Sprint(key))
		}
		assert(e.inS() || e.inQ(), "entry record absent from both S and Q: "+fmt.Sprint(key))
	}
}
