// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llq

import (
	"sync/atomic"
	"unsafe"
)

// Queue is the combined producer-consumer interface for an unbounded
// FIFO queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Dequeue
// returns ErrWouldBlock when no item is visible; Enqueue always
// succeeds because the queues grow without bound.
//
// IsEmpty and LenApprox are momentary, advisory views. They are safe
// to call but never safe to base correctness decisions on; see the
// package documentation for the weak-consistency contract.
//
// Example:
//
//	q := llq.NewMPMC[int]()
//
//	// Enqueue (always succeeds)
//	val := 42
//	q.Enqueue(&val)
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// IsEmpty reports whether no item was visible at the instant of
	// the check. Momentary and advisory.
	IsEmpty() bool

	// LenApprox returns the number of items visible at the instant of
	// the walk. Momentary and advisory; may undercount while
	// enqueues or dequeues are in flight.
	LenApprox() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs.
// The queue stores a copy of the pointed-to value, so the original
// can be modified after Enqueue returns.
//
// The error return exists for interface compatibility with bounded
// queues (which report ErrWouldBlock when full); the unbounded queues
// in this package always return nil.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// The element is copied into a freshly allocated node.
	// Always returns nil for the queues in this package.
	//
	// Safe for any number of concurrent goroutines on both variants.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value, with sole ownership transferred to
// the caller. The queue clears its internal slot so it retains no
// usable reference to a handed-off value.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest visible element
	// (non-blocking). Returns (zero-value, ErrWouldBlock) if no item
	// is visible right now.
	//
	// Thread safety depends on queue type:
	//   - MPSC: single consumer only
	//   - MPMC: multiple consumers safe
	Dequeue() (T, error)
}

// node is one link of the internal singly-linked chain.
//
// next is written exactly once, by the producer that links the
// successor, with release semantics; it is read with acquire semantics
// by any number of threads. The data field of a node is written before
// the node is published and read exactly once, by the dequeuer that
// claims the node, so it needs no atomic protection of its own.
//
// The node referenced by a queue's head is the sentinel: its data has
// already been consumed (or was never set). Retired sentinels are
// simply dropped; the garbage collector reclaims them once no walker
// holds a reference, which is what makes the advisory diagnostics
// memory-safe here.
type node[T any] struct {
	next atomic.Pointer[node[T]]
	data T
}

// noCopy triggers `go vet -copylocks` on value copies of a queue.
// A queue's chain is not duplicable without deep, coordinated cloning,
// so queues must only be handled through the pointers the constructors
// return.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padPtr is padding to fill cache line after pointer-sized field.
type padPtr [64 - ptrSize]byte
