package datastructures

import "iter"

type (
	// Link is a node of an intrusive circular doubly linked list.
	//
	// A Link is embedded in the value that owns it and records that owner, so
	// a traversal can go from a link back to its container without address
	// arithmetic. A Link with a nil owner is a sentinel (list head); the list
	// is empty when the sentinel points to itself in both directions.
	//
	// prev and next are only rewritten by the methods in this file.
	Link[T any] struct {
		prev  *Link[T]
		next  *Link[T]
		owner *T
	}
)

// Init makes l a single-node ring owned by owner. Pass nil for a sentinel.
func (l *Link[T]) Init(owner *T) *Link[T] {
	l.prev = l
	l.next = l
	l.owner = owner
	return l
}

// Owner returns the container holding l, nil for a sentinel.
func (l *Link[T]) Owner() *T {
	return l.owner
}

// Next returns the following link in the ring.
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

// Prev returns the preceding link in the ring.
func (l *Link[T]) Prev() *Link[T] {
	return l.prev
}

// Empty reports whether the ring anchored at head has no other nodes.
func (head *Link[T]) Empty() bool {
	return head.next == head
}

// Singular reports whether the ring anchored at head has exactly one node
// besides head.
func (head *Link[T]) Singular() bool {
	return !head.Empty() && head.next == head.prev
}

// Len counts the nodes of the ring, excluding head.
func (head *Link[T]) Len() int {
	n := 0
	for l := head.next; l != head; l = l.next {
		n++
	}
	return n
}

func link[T any](n, prev, next *Link[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// Add inserts n right after head.
func (head *Link[T]) Add(n *Link[T]) {
	link(n, head, head.next)
}

// AddTail inserts n right before head, which is the tail of the ring head
// anchors.
func (head *Link[T]) AddTail(n *Link[T]) {
	link(n, head.prev, head)
}

// Del unlinks l from its ring and leaves it self-referential.
func (l *Link[T]) Del() {
	l.prev.next = l.next
	l.next.prev = l.prev
	l.next = l
	l.prev = l
}

// Move unlinks l and inserts it right after head.
func (l *Link[T]) Move(head *Link[T]) {
	l.Del()
	head.Add(l)
}

// MoveTail unlinks l and inserts it right before head.
func (l *Link[T]) MoveTail(head *Link[T]) {
	l.Del()
	head.AddTail(l)
}

// CutPosition moves the range (head, at] out of head's ring into dst, which
// becomes a self-contained ring. head does not need to be a sentinel; any
// node works as the anchor the range starts after. dst's previous contents
// are discarded, so it should be empty. Cutting at head itself leaves dst
// empty.
func (dst *Link[T]) CutPosition(head, at *Link[T]) {
	if head.Empty() {
		return
	}
	if at == head {
		dst.Init(dst.owner)
		return
	}
	rest := at.next
	dst.next = head.next
	dst.next.prev = dst
	dst.prev = at
	at.next = dst
	head.next = rest
	rest.prev = head
}

func splice[T any](src, prev, next *Link[T]) {
	first := src.next
	last := src.prev

	first.prev = prev
	prev.next = first
	last.next = next
	next.prev = last
}

// Splice inserts every node of src right after at and empties src.
func (src *Link[T]) Splice(at *Link[T]) {
	if src.Empty() {
		return
	}
	splice(src, at, at.next)
	src.Init(src.owner)
}

// SpliceTail inserts every node of src right before at and empties src.
func (src *Link[T]) SpliceTail(at *Link[T]) {
	if src.Empty() {
		return
	}
	splice(src, at.prev, at)
	src.Init(src.owner)
}

// Safe iterates the ring head anchors from front to back. The successor is
// read before each yield, so the yielded link may be moved or unlinked.
func (head *Link[T]) Safe() iter.Seq[*Link[T]] {
	return func(yield func(*Link[T]) bool) {
		for l, next := head.next, head.next.next; l != head; l, next = next, next.next {
			if !yield(l) {
				return
			}
		}
	}
}
