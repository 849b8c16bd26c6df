// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llq

// Options configures queue creation and algorithm selection.
type Options struct {
	// Consumer constraint (determines queue type)
	singleConsumer bool
}

// Builder creates queues with fluent configuration.
//
// Builder provides a fluent API for selecting the queue variant from
// the declared access pattern. Unbounded queues take no capacity, so
// the builder carries constraints only.
//
// Example:
//
//	// MPSC queue (optimal when exactly one goroutine dequeues)
//	q := llq.BuildMPSC[Event](llq.New().SingleConsumer())
//
//	// MPMC queue (default, general purpose)
//	q := llq.BuildMPMC[Request](llq.New())
type Builder struct {
	opts Options
}

// New creates a queue builder.
//
// Example:
//
//	// Create builder, then configure and build
//	b := llq.New()
//	q := llq.BuildMPSC[int](b.SingleConsumer())
//
//	// Or chain directly
//	q := llq.BuildMPMC[int](llq.New())
func New() *Builder {
	return &Builder{}
}

// SingleConsumer declares that only one goroutine will dequeue.
// Selects the MPSC variant, which drops the consumer-side CAS retry
// loop entirely.
//
// There is no SingleProducer counterpart: the producer path is the
// same swap-and-publish protocol in both variants, so a single
// producer hint could not select a different algorithm.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[T] with automatic algorithm selection.
//
// Algorithm selection:
//
//	SingleConsumer → MPSC (plain head, wait-free consumer)
//	Default        → MPMC (atomic head, CAS-advancing consumers)
//
// For type-safe returns with concrete types, use:
//   - BuildMPSC[T](b) → *MPSC[T]
//   - BuildMPMC[T](b) → *MPMC[T]
func Build[T any](b *Builder) Queue[T] {
	if b.opts.singleConsumer {
		return NewMPSC[T]()
	}
	return NewMPMC[T]()
}

// BuildMPSC creates an MPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleConsumer().
func BuildMPSC[T any](b *Builder) *MPSC[T] {
	if !b.opts.singleConsumer {
		panic("llq: BuildMPSC requires SingleConsumer()")
	}
	return NewMPSC[T]()
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if builder has the SingleConsumer constraint set.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.singleConsumer {
		panic("llq: BuildMPMC requires no constraints")
	}
	return NewMPMC[T]()
}
