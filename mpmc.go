// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llq

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// MPMC is an unbounded multi-producer multi-consumer linked queue.
//
// The queue is a singly-linked chain of nodes behind a sentinel.
// Producers append with a two-step protocol: an atomic swap of tail
// claims the append slot, then a release store of the predecessor's
// next link publishes the node. Consumers race to advance head with
// CAS; the winner of each CAS owns the claimed node's payload
// exclusively.
//
// Between a producer's tail swap and its next publish there is a
// window during which the chain's last link is still nil. A consumer
// or diagnostic reaching the old tail inside that window observes "no
// successor" and reports empty even though an enqueue is logically in
// flight. This is the documented weak-consistency property of the
// algorithm, not a bug.
//
// Memory: one node allocation per element, reclaimed by the garbage
// collector after consumption.
type MPMC[T any] struct {
	noCopy noCopy

	_    pad
	head atomic.Pointer[node[T]] // Sentinel; consumers CAS forward
	_    padPtr
	tail atomic.Pointer[node[T]] // Newest node; producers swap
	_    padPtr
}

// NewMPMC creates a new unbounded MPMC queue.
// The chain is seeded with a payload-less sentinel node, so an empty
// queue still holds exactly one node.
func NewMPMC[T any]() *MPMC[T] {
	q := &MPMC[T]{}
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue adds an element to the queue (multiple producers safe).
// Always returns nil; the queue grows without bound and enqueue never
// blocks. Allocation failure follows the Go runtime's out-of-memory
// convention and is not reported as an error.
func (q *MPMC[T]) Enqueue(elem *T) error {
	n := &node[T]{data: *elem}

	// Swap claims the append slot; the store publishes the node.
	// The item is invisible to consumers until the store lands.
	prev := q.tail.Swap(n)
	prev.next.Store(n)
	return nil
}

// Dequeue removes and returns the oldest visible element (multiple
// consumers safe). Returns (zero-value, ErrWouldBlock) if no successor
// to the sentinel is visible right now.
//
// Lock-free, not wait-free: losing the head CAS to another consumer
// triggers a retry, bounded only by real contention.
func (q *MPMC[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		oldHead := q.head.Load()
		next := oldHead.next.Load()

		if next == nil {
			var zero T
			return zero, ErrWouldBlock
		}

		if q.head.CompareAndSwap(oldHead, next) {
			// Exclusive claim: exactly one consumer can move head past
			// this node. The old sentinel is dropped for the collector.
			elem := next.data
			var zero T
			next.data = zero
			return elem, nil
		}

		// Another consumer advanced head first; retry.
		sw.Once()
	}
}

// IsEmpty reports whether no item was visible at the instant of the
// check. Momentary and advisory: an enqueue inside its publication
// window is not counted, and the result may be stale by the time the
// caller acts on it. Never use IsEmpty to decide that it is safe to
// stop polling.
func (q *MPMC[T]) IsEmpty() bool {
	return q.head.Load().next.Load() == nil
}

// LenApprox returns the number of items visible at the instant of the
// walk, by counting hops from head to tail. Momentary and advisory:
// the walk exits early on an unpublished link, so the result may
// undercount while enqueues are in flight, and concurrent dequeues can
// make it stale immediately. Walking retired nodes is memory-safe
// because the collector keeps any node a walker can still reach.
func (q *MPMC[T]) LenApprox() int {
	count := 0
	cur := q.head.Load()
	tail := q.tail.Load()
	for cur != tail {
		next := cur.next.Load()
		if next == nil {
			break // Publication in flight; stop rather than guess
		}
		cur = next
		count++
	}
	return count
}

// MoveFrom transfers src's entire chain into q, replacing q's current
// contents. It is the move-assignment of the queue: afterwards q holds
// exactly the items previously enqueued into src, in the same order,
// and src is re-seeded with a fresh sentinel so it remains a valid
// empty queue. Moving a queue into itself is a no-op.
//
// MoveFrom is not a concurrent operation. The caller must guarantee
// that no Enqueue, Dequeue, or diagnostic is in flight on either queue
// for the duration of the call.
func (q *MPMC[T]) MoveFrom(src *MPMC[T]) {
	if q == src {
		return
	}

	// q's old chain is abandoned to the collector.
	q.head.Store(src.head.Load())
	q.tail.Store(src.tail.Load())

	sentinel := &node[T]{}
	src.head.Store(sentinel)
	src.tail.Store(sentinel)
}
