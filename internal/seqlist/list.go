// Package seqlist is a specialized adaptation of container/list for use in
// LIRS: an ordered sequence of keys supporting O(1) push-to-front, O(1)
// removal by element handle, and O(1) inspection of the back element.
package seqlist

// Element is a node of a List. The zero value is not a valid Element; use
// List.PushFront to obtain one.
type Element[K comparable] struct {
	next, prev *Element[K]
	list       *List[K]
	Key        K
}

// Next returns the next list element toward the back, or nil if e is the
// back.
func (e *Element[K]) Next() *Element[K] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// Prev returns the previous list element toward the front, or nil if e is
// the front.
func (e *Element[K]) Prev() *Element[K] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List represents a doubly linked, ordered sequence of keys. The zero value
// is ready to use; call Init or use New to obtain a List explicitly.
//
// "Front" is the most-recently-pushed end (the top of a LIRS stack or
// queue); "Back" is the opposite end (the bottom).
type List[K comparable] struct {
	root Element[K]
	len  int
}

// New returns an initialized empty list.
func New[K comparable]() *List[K] {
	return new(List[K]).Init()
}

// Init initializes or clears list l.
func (l *List[K]) Init() *List[K] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// Len returns the number of elements in l.
func (l *List[K]) Len() int { return l.len }

// Empty reports whether l has no elements.
func (l *List[K]) Empty() bool { return l.len == 0 }

// Front returns the front (top) element of l, or nil if l is empty.
func (l *List[K]) Front() *Element[K] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the back (bottom) element of l, or nil if l is empty.
func (l *List[K]) Back() *Element[K] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List[K]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

func (l *List[K]) insert(e, at *Element[K]) *Element[K] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// PushFront inserts key at the front of l and returns its element handle.
func (l *List[K]) PushFront(key K) *Element[K] {
	l.lazyInit()
	return l.insert(&Element[K]{Key: key}, &l.root)
}

// MoveToFront moves e, which must belong to l, to the front of l.
func (l *List[K]) MoveToFront(e *Element[K]) {
	if l.root.next == e {
		return
	}
	l.unlink(e)
	l.insert(e, &l.root)
}

// Remove removes e from l. e must not be used afterward.
func (l *List[K]) Remove(e *Element[K]) {
	l.unlink(e)
}

func (l *List[K]) unlink(e *Element[K]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// Keys returns the keys of l from front to back. Intended for tests and
// debug dumps; not on any hot path.
func (l *List[K]) Keys() []K {
	keys := make([]K, 0, l.len)
	for e := l.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Key)
	}
	return keys
}
