package queue

// DeleteMid removes and releases the middle element: the center one for an
// odd length, the one right after the center for an even length. It returns
// false on an empty queue.
func (q *Queue) DeleteMid() bool {
	if q.empty() {
		return false
	}
	head := &q.head
	slow, fast := head.Next(), head.Next()
	for fast != head {
		if fast = fast.Next(); fast == head {
			break
		}
		fast = fast.Next()
		slow = slow.Next()
	}
	drop(slow)
	return true
}

// DeleteDup removes every element of a sorted queue whose payload occurs
// more than once. No copy of a duplicated payload survives. It returns false
// only on an empty queue.
func (q *Queue) DeleteDup() bool {
	if q.empty() {
		return false
	}
	head := &q.head

	var garbage ring
	garbage.Init(nil)
	for cur := head.Next(); cur != head; {
		last := cur
		for last.Next() != head && last.Next().Owner().value == cur.Owner().value {
			last = last.Next()
		}
		next := last.Next()
		if last != cur {
			var run ring
			run.Init(nil)
			run.CutPosition(cur.Prev(), last)
			run.SpliceTail(&garbage)
		}
		cur = next
	}
	releaseAll(&garbage)
	return true
}

// Swap exchanges every two adjacent elements. With an odd length the last
// element stays where it is.
func (q *Queue) Swap() {
	if q.empty() {
		return
	}
	head := &q.head
	for first := head.Next(); first != head && first.Next() != head; first = first.Next() {
		first.Next().MoveTail(first)
	}
}

// Reverse reverses the order of the elements.
func (q *Queue) Reverse() {
	if q.empty() {
		return
	}
	reverse(&q.head)
}

func reverse(head *ring) {
	for l := range head.Safe() {
		l.Move(head)
	}
}

// ReverseK reverses every consecutive group of k elements. A trailing group
// shorter than k keeps its order.
func (q *Queue) ReverseK(k int) {
	if q.empty() || k <= 1 {
		return
	}
	head := &q.head
	cut := head
	count := k
	for l := range head.Safe() {
		if count--; count > 0 {
			continue
		}
		count = k

		var group ring
		group.Init(nil)
		first := cut.Next()
		group.CutPosition(cut, l)
		reverse(&group)
		group.Splice(cut)
		q.log.Debugf("reverse-k: reversed group ending at %q", first.Owner().value)
		cut = first
	}
}
