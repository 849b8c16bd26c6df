// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llq

import "sync/atomic"

// MPSC is an unbounded multi-producer single-consumer linked queue.
//
// The producer side is identical to MPMC: swap tail to claim the
// append slot, release-store the predecessor's next link to publish.
// The consumer side is the specialization: head is owned by the one
// consumer goroutine, so advancing it needs no CAS and no retry loop.
// Dequeue races only against the producers' next publish, which the
// acquire load of head's successor already orders.
//
// The single-consumer precondition is a caller contract, not checked
// at runtime. Two goroutines calling Dequeue (or the diagnostics)
// concurrently on the same MPSC queue is undefined behavior; use MPMC
// when the consumer count is not exactly one.
type MPSC[T any] struct {
	noCopy noCopy

	_    pad
	tail atomic.Pointer[node[T]] // Newest node; producers swap
	_    padPtr

	// head is the sentinel, touched only by the consumer goroutine.
	// Producers never read it, so it needs no atomic protection.
	head *node[T]
}

// NewMPSC creates a new unbounded MPSC queue.
// The chain is seeded with a payload-less sentinel node, so an empty
// queue still holds exactly one node.
func NewMPSC[T any]() *MPSC[T] {
	q := &MPSC[T]{}
	sentinel := &node[T]{}
	q.head = sentinel
	q.tail.Store(sentinel)
	return q
}

// Enqueue adds an element to the queue (multiple producers safe).
// Always returns nil; the queue grows without bound and enqueue never
// blocks. The same publication window as MPMC applies: the item is
// invisible to the consumer until the predecessor link store lands.
func (q *MPSC[T]) Enqueue(elem *T) error {
	n := &node[T]{data: *elem}

	prev := q.tail.Swap(n)
	prev.next.Store(n)
	return nil
}

// Dequeue removes and returns the oldest visible element (single
// consumer only). Returns (zero-value, ErrWouldBlock) if no successor
// to the sentinel is visible right now.
//
// Wait-free on the consumer side: no CAS, no retry loop.
func (q *MPSC[T]) Dequeue() (T, error) {
	next := q.head.next.Load()

	if next == nil {
		var zero T
		return zero, ErrWouldBlock
	}

	// The old sentinel is dropped for the collector; its successor
	// becomes the new sentinel after its payload is claimed.
	elem := next.data
	var zero T
	next.data = zero
	q.head = next

	return elem, nil
}

// IsEmpty reports whether no item was visible at the instant of the
// check. Consumer goroutine only: it reads the unsynchronized head
// field. Momentary and advisory, as for MPMC.
func (q *MPSC[T]) IsEmpty() bool {
	return q.head.next.Load() == nil
}

// LenApprox returns the number of items visible at the instant of the
// walk, by counting hops from head to tail. Consumer goroutine only.
// Momentary and advisory: the walk exits early on an unpublished link
// and may undercount while enqueues are in flight.
func (q *MPSC[T]) LenApprox() int {
	count := 0
	cur := q.head
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
// contents. Afterwards q holds exactly the items previously enqueued
// into src, in the same order, and src is re-seeded with a fresh
// sentinel so it remains a valid empty queue. Moving a queue into
// itself is a no-op.
//
// MoveFrom is not a concurrent operation. The caller must guarantee
// that no Enqueue, Dequeue, or diagnostic is in flight on either queue
// for the duration of the call.
func (q *MPSC[T]) MoveFrom(src *MPSC[T]) {
	if q == src {
		return
	}

	q.head = src.head
	q.tail.Store(src.tail.Load())

	sentinel := &node[T]{}
	src.head = sentinel
	src.tail.Store(sentinel)
}
