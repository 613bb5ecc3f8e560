//go:build !lirs_debug

package lirs

const debugging = false

func (c *Cache[K, V]) checkInvariants() {}
