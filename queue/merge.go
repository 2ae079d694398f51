package queue

import (
	"fmt"

	"github.com/vskvj3/ringq/internal/datastructures"
	"github.com/vskvj3/ringq/internal/utils"
)

// mergeWindow bounds the pending runs of a k-way merge.
const mergeWindow = 4

type chainLink = datastructures.Link[Context]

// Context wraps one queue of a Chain with its cached size.
type Context struct {
	q     *Queue
	size  int
	id    int
	chain chainLink
}

// Queue returns the wrapped queue.
func (c *Context) Queue() *Queue {
	return c.q
}

// Size returns the cached element count.
func (c *Context) Size() int {
	return c.size
}

// ID returns the position the context was added at, starting from 0.
func (c *Context) ID() int {
	return c.id
}

// Chain is a queue of queues, the input of Merge. The zero Chain is an empty
// chain that logs nothing.
type Chain struct {
	head   chainLink
	nextID int
	log    *utils.Logger
}

// NewChain creates an empty chain. Only the logging options apply.
func NewChain(opts ...Option) *Chain {
	o := buildOptions(opts)
	c := &Chain{log: o.logger()}
	c.head.Init(nil)
	return c
}

// lazyInit prepares a zero Chain for use. It reports false for nil.
func (c *Chain) lazyInit() bool {
	if c == nil {
		return false
	}
	if c.head.Next() == nil {
		c.head.Init(nil)
	}
	if c.log == nil {
		c.log = utils.Discard()
	}
	return true
}

// Add appends q to the chain and caches its size. q should already be sorted
// in the direction Merge will be called with. It returns nil for a nil or
// freed queue, and for a queue that is already in the chain.
func (c *Chain) Add(q *Queue) *Context {
	if !c.lazyInit() || !q.lazyInit() {
		return nil
	}
	for l := c.head.Next(); l != &c.head; l = l.Next() {
		if l.Owner().q == q {
			c.log.Warn("merge: queue is already in the chain")
			return nil
		}
	}
	ctx := &Context{q: q, size: q.Size(), id: c.nextID}
	ctx.chain.Init(ctx)
	c.head.AddTail(&ctx.chain)
	c.nextID++
	return ctx
}

// Len returns the number of contexts.
func (c *Chain) Len() int {
	if !c.lazyInit() {
		return 0
	}
	return c.head.Len()
}

// Contexts returns the contexts in chain order.
func (c *Chain) Contexts() []*Context {
	if !c.lazyInit() {
		return nil
	}
	var ctxs []*Context
	for l := c.head.Next(); l != &c.head; l = l.Next() {
		ctxs = append(ctxs, l.Owner())
	}
	return ctxs
}

// Free frees every queue in the chain and empties it.
func (c *Chain) Free() {
	if !c.lazyInit() {
		return
	}
	for l := range c.head.Safe() {
		l.Owner().q.Free()
		l.Del()
	}
}

// Merge merges every queue of the chain into the first one and returns the
// resulting element count. The other queues are left empty, with a cached
// size of 0, for the caller to free. Queues freed after being added are
// skipped; if the first one was freed, the first live queue collects the
// result.
//
// Runs are scheduled with the 2-merge discipline: runs are admitted one at a
// time onto a pending window, and after each admission the window is reduced
// while a run is less than twice the size of the run admitted after it, or
// while the window holds more than three runs. Finally the window is drained
// from the newest run backwards.
func (c *Chain) Merge(descend bool) int {
	if !c.lazyInit() || c.head.Empty() {
		return 0
	}
	if c.head.Singular() {
		ctx := c.head.Next().Owner()
		if ctx.q.freed {
			return 0
		}
		return ctx.size
	}

	window := datastructures.NewDeque[*Context](mergeWindow)
	for l := c.head.Next(); l != &c.head; l = l.Next() {
		ctx := l.Owner()
		if ctx.q.freed {
			c.log.Warn(fmt.Sprintf("merge: skipping freed queue of ctx %d", ctx.id))
			ctx.size = 0
			continue
		}
		if err := window.PushBack(ctx); err != nil {
			c.log.Error("merge: " + err.Error())
			return 0
		}
		c.log.Debugf("merge: admit ctx %d (size %d)", ctx.id, ctx.size)
		c.collapse(window, descend)
	}
	for window.Size() > 1 {
		c.mergeNewest(window, descend)
	}

	first, err := window.Back()
	if err != nil {
		return 0
	}
	return first.size
}

// collapse reduces the window until the 2-merge invariant holds. With x the
// newest pending run, y the one admitted before it and z the one before y
// (the oldest of the three), the window is reduced while any of these hold:
//
//	y.size < 2*x.size
//	z.size < 2*y.size
//	window.Size() > 3
//
// so at rest y.size >= 2*x.size and z.size >= 2*y.size, and the Deque never
// needs more than mergeWindow (4) slots. The merged pair is always adjacent:
// y into z when z.size < x.size, otherwise x into y.
func (c *Chain) collapse(window *datastructures.Deque[*Context], descend bool) {
	for window.Size() >= 2 {
		x, _ := window.FromBack(0)
		y, _ := window.FromBack(1)
		violated := y.size < 2*x.size || window.Size() > 3
		var z *Context
		if window.Size() >= 3 {
			z, _ = window.FromBack(2)
			violated = violated || z.size < 2*y.size
		}
		if !violated {
			return
		}
		if z != nil && z.size < x.size {
			c.mergeMiddle(window, descend)
		} else {
			c.mergeNewest(window, descend)
		}
	}
}

// mergeNewest merges the newest run into the one before it.
func (c *Chain) mergeNewest(window *datastructures.Deque[*Context], descend bool) {
	x, _ := window.PopBack()
	y, _ := window.Back()
	c.mergeInto(y, x, descend)
}

// mergeMiddle merges the second newest run into the one before it.
func (c *Chain) mergeMiddle(window *datastructures.Deque[*Context], descend bool) {
	x, _ := window.PopBack()
	y, _ := window.PopBack()
	z, _ := window.Back()
	c.mergeInto(z, y, descend)
	_ = window.PushBack(x)
}

// mergeInto merges src's queue into dst's queue. dst was added earlier, so
// its elements win ties.
func (c *Chain) mergeInto(dst, src *Context, descend bool) {
	c.log.Debugf("merge: ctx %d (size %d) <- ctx %d (size %d)", dst.id, dst.size, src.id, src.size)
	_, n := mergeTwo(&dst.q.head, &src.q.head, descend)
	dst.size = n
	src.size = 0
}
