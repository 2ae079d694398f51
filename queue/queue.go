// Package queue implements a queue of owned strings on an intrusive circular
// doubly linked list, together with the in-place algorithms that rearrange
// it: pairwise swap, reversal, k-group reversal, duplicate removal, stable
// merge sort, monotonic pruning and a k-way merge of sorted queues.
//
// A Queue is not safe for concurrent use. Every method accepts a nil
// receiver and treats it as an empty queue.
package queue

import (
	"errors"
	"strings"

	"github.com/vskvj3/ringq/internal/datastructures"
	"github.com/vskvj3/ringq/internal/utils"
)

var (
	// ErrAllocation is returned when the allocator refuses a reservation.
	ErrAllocation = errors.New("queue: allocation failed")
	// ErrInvalidHandle is returned for a nil or freed queue.
	ErrInvalidHandle = errors.New("queue: invalid or freed queue")
)

type ring = datastructures.Link[Element]

// Element is the container of one payload. While queued it is linked into
// exactly one queue; once removed it belongs to the caller, who must call
// Release.
type Element struct {
	value string
	list  datastructures.Link[Element]
	alloc Allocator
}

// Value returns the payload.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Release gives the element's memory back to its allocator. The element must
// not be linked into a queue. Releasing twice is a no-op.
func (e *Element) Release() {
	if e == nil || e.alloc == nil {
		return
	}
	e.alloc.Release(payloadSize(e.value))
	e.alloc.Release(elementSize)
	e.alloc = nil
}

// Queue is a handle to a ring of elements anchored at a sentinel. The zero
// Queue is an empty queue on a HeapAllocator; a freed Queue stays dead.
type Queue struct {
	head  ring
	alloc Allocator
	log   *utils.Logger
	freed bool
}

// New creates an empty queue. It returns nil if the allocator cannot provide
// the sentinel.
func New(opts ...Option) *Queue {
	o := buildOptions(opts)
	log := o.logger()
	if !o.alloc.Reserve(headSize) {
		log.Warn("queue: cannot allocate queue head")
		return nil
	}
	q := &Queue{alloc: o.alloc, log: log}
	q.head.Init(nil)
	return q
}

// lazyInit prepares a zero Queue for use. It reports false for a nil or
// freed queue.
func (q *Queue) lazyInit() bool {
	if q == nil || q.freed {
		return false
	}
	if q.alloc == nil {
		q.alloc = HeapAllocator{}
		q.log = utils.Discard()
		q.head.Init(nil)
	}
	return true
}

// Free releases every element and then the queue itself. Afterwards the
// queue reads as empty and refuses insertions.
func (q *Queue) Free() {
	if q == nil || q.freed {
		return
	}
	if q.alloc != nil {
		releaseAll(&q.head)
		q.alloc.Release(headSize)
		q.alloc = nil
	}
	q.freed = true
}

// releaseAll unlinks and releases every element of the ring head anchors.
func releaseAll(head *ring) {
	for l := range head.Safe() {
		l.Del()
		l.Owner().Release()
	}
}

// drop unlinks and releases a single element.
func drop(l *ring) {
	l.Del()
	l.Owner().Release()
}

func (q *Queue) newElement(s string) *Element {
	if !q.alloc.Reserve(elementSize) {
		q.log.Warn("queue: cannot allocate element")
		return nil
	}
	if !q.alloc.Reserve(payloadSize(s)) {
		q.alloc.Release(elementSize)
		q.log.Warn("queue: cannot copy payload")
		return nil
	}
	e := &Element{value: strings.Clone(s), alloc: q.alloc}
	e.list.Init(e)
	return e
}

// insert links a new element right after at.
func (q *Queue) insert(at *ring, s string) bool {
	e := q.newElement(s)
	if e == nil {
		return false
	}
	at.Add(&e.list)
	return true
}

// InsertHead copies s into a new element at the head. On allocation failure
// it returns false and the queue is unchanged.
func (q *Queue) InsertHead(s string) bool {
	if !q.lazyInit() {
		return false
	}
	return q.insert(&q.head, s)
}

// InsertTail copies s into a new element at the tail, that is, right after
// the sentinel's predecessor.
func (q *Queue) InsertTail(s string) bool {
	if !q.lazyInit() {
		return false
	}
	return q.insert(q.head.Prev(), s)
}

// remove unlinks l and copies its payload into sp as a NUL-terminated string
// of at most len(sp)-1 bytes. The rest of sp is zeroed.
func remove(l *ring, sp []byte) *Element {
	e := l.Owner()
	if len(sp) > 0 {
		n := copy(sp[:len(sp)-1], e.value)
		clear(sp[n:])
	}
	l.Del()
	return e
}

// RemoveHead unlinks the head element and hands it to the caller. If sp is
// not nil the payload is copied into it. It returns nil on an empty queue
// without touching sp.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q.empty() {
		return nil
	}
	return remove(q.head.Next(), sp)
}

// RemoveTail is RemoveHead for the tail element.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q.empty() {
		return nil
	}
	return remove(q.head.Prev(), sp)
}

func (q *Queue) empty() bool {
	return q == nil || q.alloc == nil || q.head.Empty()
}

// Size counts the elements.
func (q *Queue) Size() int {
	if q.empty() {
		return 0
	}
	return q.head.Len()
}

// First returns the head element without removing it.
func (q *Queue) First() *Element {
	if q.empty() {
		return nil
	}
	return q.head.Next().Owner()
}

// Last returns the tail element without removing it.
func (q *Queue) Last() *Element {
	if q.empty() {
		return nil
	}
	return q.head.Prev().Owner()
}

// Values returns the payloads from head to tail.
func (q *Queue) Values() []string {
	if q.empty() {
		return nil
	}
	values := make([]string, 0, q.head.Len())
	for l := q.head.Next(); l != &q.head; l = l.Next() {
		values = append(values, l.Owner().value)
	}
	return values
}

func (q *Queue) String() string {
	return "[" + strings.Join(q.Values(), " ") + "]"
}
