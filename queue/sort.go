package queue

import "strings"

// before reports whether a must be ordered strictly before b. Equal payloads
// are never before each other, which keeps merges stable.
func before(a, b *ring, descend bool) bool {
	c := strings.Compare(a.Owner().value, b.Owner().value)
	if descend {
		return c > 0
	}
	return c < 0
}

// Sort sorts the queue in place by byte-wise payload order, ascending or
// descending. The sort is stable.
func (q *Queue) Sort(descend bool) {
	if q.empty() {
		return
	}
	sortRing(&q.head, descend)
}

func sortRing(head *ring, descend bool) {
	if head.Empty() || head.Singular() {
		return
	}

	// Walk in from both ends; the front half never gets the larger share.
	left, right := head.Next(), head.Prev()
	for left != right && left.Next() != right {
		left = left.Next()
		right = right.Prev()
	}
	if left == right {
		left = left.Prev()
	}

	var front ring
	front.Init(nil)
	front.CutPosition(head, left)

	sortRing(&front, descend)
	sortRing(head, descend)

	merged, _ := mergeTwo(&front, head, descend)
	merged.Splice(head)
}

// mergeTwo merges the sorted rings a and b. Both are consumed: the result is
// returned in a's sentinel and b is left empty. On ties a's element goes
// first. Only links move; no payload is copied.
func mergeTwo(a, b *ring, descend bool) (*ring, int) {
	var out ring
	out.Init(nil)

	n := 0
	for !a.Empty() && !b.Empty() {
		pick := a.Next()
		if before(b.Next(), pick, descend) {
			pick = b.Next()
		}
		pick.MoveTail(&out)
		n++
	}
	n += a.Len() + b.Len()

	out.Splice(a)
	b.SpliceTail(a)
	return a, n
}

// Ascend removes every element that has a strictly smaller element anywhere
// to its right and returns the number of elements left.
func (q *Queue) Ascend() int {
	if q.empty() {
		return 0
	}
	return prune(&q.head, false)
}

// Descend removes every element that has a strictly greater element anywhere
// to its right and returns the number of elements left.
func (q *Queue) Descend() int {
	if q.empty() {
		return 0
	}
	return prune(&q.head, true)
}

// prune treats the prefix before each element as a stack and pops every
// predecessor the element is ordered strictly before.
func prune(head *ring, descend bool) int {
	n := 0
	for l := range head.Safe() {
		for p := l.Prev(); p != head && before(l, p, descend); p = l.Prev() {
			drop(p)
			n--
		}
		n++
	}
	return n
}
