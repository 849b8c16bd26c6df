// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package llq provides unbounded, lock-free, linked FIFO queues.
//
// The package offers two queue variants built on the same singly-linked
// chain with a sentinel node:
//
//   - MPSC: Multi-Producer Single-Consumer
//   - MPMC: Multi-Producer Multi-Consumer
//
// Unlike the bounded ring queues of code.hybscloud.com/lfq, these
// queues grow without bound: Enqueue always succeeds and never
// exercises backpressure. Use them when producers must never be
// rejected and the consumer side is trusted to keep up; use the
// bounded library when backpressure is part of the design.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := llq.NewMPSC[Event]()
//	q := llq.NewMPMC[*Request]()
//
// Builder API selects the variant from declared constraints:
//
//	q := llq.Build[Event](llq.New().SingleConsumer()) // → MPSC
//	q := llq.Build[Event](llq.New())                  // → MPMC
//
// # Basic Usage
//
// Both queues share the same interface:
//
//	q := llq.NewMPMC[int]()
//
//	// Enqueue (non-blocking, always succeeds)
//	value := 42
//	q.Enqueue(&value)
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if llq.IsWouldBlock(err) {
//	    // Nothing visible right now - try again later
//	}
//
// # Common Patterns
//
// Event Aggregation (MPSC):
//
//	// Multiple event sources → Single processor
//	q := llq.NewMPSC[Event]()
//
//	// Multiple producers (event sources)
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Enqueue(&ev)
//	        }
//	    }(sensor)
//	}
//
//	// Single consumer (aggregator)
//	go func() {
//	    backoff := iox.Backoff{}
//	    for {
//	        ev, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        aggregate(ev)
//	    }
//	}()
//
// Worker Pool (MPMC):
//
//	// Multiple submitters → Multiple workers
//	q := llq.NewMPMC[Job]()
//
//	// Workers
//	for range numWorkers {
//	    go func() {
//	        backoff := iox.Backoff{}
//	        for {
//	            job, err := q.Dequeue()
//	            if err != nil {
//	                backoff.Wait()
//	                continue
//	            }
//	            backoff.Reset()
//	            job.Run()
//	        }
//	    }()
//	}
//
//	// Submit jobs from anywhere, never rejected
//	func Submit(j Job) {
//	    q.Enqueue(&j)
//	}
//
// # Algorithm
//
// Each queue is a singly-linked chain behind a sentinel node whose
// payload has already been consumed. Enqueue allocates a node, claims
// the append slot with an atomic swap of tail, then publishes the node
// with a release store of the predecessor's next link. A consumer that
// observes the published link also observes the fully written payload.
//
// MPMC consumers advance head with CAS; exactly one consumer wins each
// node and takes sole ownership of its payload, losers retry. MPSC
// drops the CAS: head belongs to the one consumer goroutine, so
// Dequeue is a plain read-advance with no retry loop.
//
// Progress guarantee is lock-freedom, not wait-freedom: no operation
// blocks on a lock or waits for another thread in the OS-primitive
// sense, but an MPMC Dequeue can lose the head CAS arbitrarily many
// times under heavy contention.
//
// # Weak Consistency
//
// Between a producer's tail swap and its next-link publish, the
// enqueue is logically in flight but structurally invisible. Any
// observer reaching the old tail inside that window sees "no
// successor":
//
//   - Dequeue reports ErrWouldBlock
//   - IsEmpty reports true
//   - LenApprox stops counting at the unpublished link
//
// No element is ever lost to this window; it is only momentarily
// invisible. Consequently IsEmpty and LenApprox are advisory
// diagnostics. Never use them for correctness decisions such as
// deciding that it is safe to stop polling; drain with Dequeue until
// the producers are known (by external means) to have finished.
//
// # Memory Reclamation
//
// Dequeue retires the old sentinel by dropping the queue's reference
// to it; the garbage collector frees it once nothing else can reach
// it. A diagnostic walk that holds a reference into the chain
// therefore keeps the nodes it can see alive, so LenApprox and
// IsEmpty racing with concurrent dequeues are memory-safe without
// hazard pointers or epochs. The same property rules out ABA on the
// head CAS: a node's address cannot be recycled while any consumer
// still holds a reference to it. The dequeued slot is zeroed on claim
// so the queue never retains a usable reference to a handed-off value.
//
// # Ownership Transfer
//
// MoveFrom transfers a whole chain between two queues of the same
// type. The receiver abandons its old chain, the donor is re-seeded
// with a fresh sentinel and remains a valid empty queue. MoveFrom is
// a quiescent operation: the caller must ensure no concurrent
// operation is in flight on either queue. Value copies of a queue are
// rejected by go vet; always handle queues through the pointers the
// constructors return.
//
// # Error Handling
//
// Dequeue returns [ErrWouldBlock] when no item is visible. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency
// and is a control flow signal, not a failure:
//
//	backoff := iox.Backoff{}
//	for {
//	    v, err := q.Dequeue()
//	    if err == nil {
//	        backoff.Reset()
//	        process(v)
//	        continue
//	    }
//	    if !llq.IsWouldBlock(err) {
//	        return err // Unexpected error
//	    }
//	    backoff.Wait()
//	}
//
// Enqueue has no failure mode short of the Go runtime's own
// out-of-memory handling, which aborts the program per the usual
// allocation convention.
//
// # Thread Safety
//
// All queue operations are thread-safe within their access pattern
// constraints:
//
//   - MPSC: any number of producer goroutines, exactly one consumer
//     goroutine (Dequeue, IsEmpty, and LenApprox all count as
//     consumer-side calls)
//   - MPMC: any number of producer and consumer goroutines; IsEmpty
//     and LenApprox may be called from any goroutine
//
// Violating the MPSC single-consumer contract is undefined behavior
// including data corruption; it is not detected at runtime.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/spin] for CPU pause in the MPMC retry loop. The
// node links themselves are sync/atomic typed pointers: the chain is
// garbage-collected memory, and keeping the links visible to the
// collector is what removes the reclamation hazard described above.
package llq
