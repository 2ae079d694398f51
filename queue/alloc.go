package queue

// Accounting sizes, in bytes, charged to an Allocator. They follow the shape
// of the structures: a sentinel is two links, an element is two links plus a
// payload reference, and a payload copy is its bytes plus a terminator.
const (
	headSize    = 16
	elementSize = 32
)

func payloadSize(s string) int {
	return len(s) + 1
}

// Allocator is the memory collaborator of a queue. Every sentinel, element
// container and payload copy is reserved before it is created and released
// when it is destroyed. Reserve reports false when the allocation cannot be
// satisfied, which the queue surfaces as an allocation failure.
type Allocator interface {
	Reserve(n int) bool
	Release(n int)
}

// HeapAllocator never fails and keeps no books.
type HeapAllocator struct{}

func (HeapAllocator) Reserve(int) bool { return true }

func (HeapAllocator) Release(int) {}

// BudgetAllocator enforces a byte and allocation-count budget and keeps track
// of what is outstanding, which makes leaks visible. It can also be armed to
// start failing after a number of successful reservations.
//
// It is not safe for concurrent use.
type BudgetAllocator struct {
	maxBytes  int64
	maxAllocs int

	inUse int64
	live  int

	failAfter int
	armed     bool
}

// NewBudgetAllocator returns an allocator limited to maxBytes outstanding
// bytes and maxAllocs outstanding allocations. Zero means unlimited.
func NewBudgetAllocator(maxBytes int64, maxAllocs int) *BudgetAllocator {
	if maxBytes < 0 {
		maxBytes = 0
	}
	if maxAllocs < 0 {
		maxAllocs = 0
	}
	return &BudgetAllocator{maxBytes: maxBytes, maxAllocs: maxAllocs}
}

// FailAfter lets the next n reservations succeed and fails every one after
// that until Heal is called.
func (a *BudgetAllocator) FailAfter(n int) {
	if n < 0 {
		n = 0
	}
	a.failAfter = n
	a.armed = true
}

// Heal disarms FailAfter.
func (a *BudgetAllocator) Heal() {
	a.armed = false
}

func (a *BudgetAllocator) Reserve(n int) bool {
	if a.armed {
		if a.failAfter == 0 {
			return false
		}
		a.failAfter--
	}
	if a.maxAllocs > 0 && a.live+1 > a.maxAllocs {
		return false
	}
	if a.maxBytes > 0 && a.inUse+int64(n) > a.maxBytes {
		return false
	}
	a.inUse += int64(n)
	a.live++
	return true
}

func (a *BudgetAllocator) Release(n int) {
	a.inUse -= int64(n)
	a.live--
}

// InUse returns the outstanding reserved bytes.
func (a *BudgetAllocator) InUse() int64 {
	return a.inUse
}

// Live returns the number of outstanding allocations.
func (a *BudgetAllocator) Live() int {
	return a.live
}
