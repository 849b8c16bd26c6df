// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package llq_test

import (
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/llq"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Single-Op Baselines
// =============================================================================

func BenchmarkMPMC_SingleOp(b *testing.B) {
	q := llq.NewMPMC[int]()

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkMPSC_SingleOp(b *testing.B) {
	q := llq.NewMPSC[int]()

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

// =============================================================================
// Contended Benchmarks
// =============================================================================

func BenchmarkMPMC_Parallel(b *testing.B) {
	q := llq.NewMPMC[int]()
	numProducers := runtime.GOMAXPROCS(0) / 2
	numConsumers := runtime.GOMAXPROCS(0) / 2
	if numProducers < 1 {
		numProducers = 1
	}
	if numConsumers < 1 {
		numConsumers = 1
	}

	opsPerProducer := b.N / numProducers
	if opsPerProducer < 1 {
		opsPerProducer = 1
	}

	b.ResetTimer()

	var producerWg sync.WaitGroup
	var consumerWg sync.WaitGroup

	// Consumers (start first to be ready for producers)
	done := make(chan struct{})
	for range numConsumers {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			sw := spin.Wait{}
			for {
				select {
				case <-done:
					for {
						if _, err := q.Dequeue(); err != nil {
							return
						}
					}
				default:
					if _, err := q.Dequeue(); err == nil {
						sw.Reset()
					} else {
						sw.Once()
					}
				}
			}
		}()
	}

	// Producers
	for p := range numProducers {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()
			base := id * opsPerProducer
			for i := range opsPerProducer {
				v := base + i
				q.Enqueue(&v)
			}
		}(p)
	}

	// Wait for all producers to finish
	producerWg.Wait()
	// Signal consumers to drain and exit
	close(done)
	consumerWg.Wait()
}

func BenchmarkMPSC_FanIn(b *testing.B) {
	q := llq.NewMPSC[int]()
	numProducers := runtime.GOMAXPROCS(0) - 1
	if numProducers < 1 {
		numProducers = 1
	}

	opsPerProducer := b.N / numProducers
	if opsPerProducer < 1 {
		opsPerProducer = 1
	}
	total := numProducers * opsPerProducer

	b.ResetTimer()

	var producerWg sync.WaitGroup
	for p := range numProducers {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()
			base := id * opsPerProducer
			for i := range opsPerProducer {
				v := base + i
				q.Enqueue(&v)
			}
		}(p)
	}

	// Single consumer drains on this goroutine
	sw := spin.Wait{}
	for drained := 0; drained < total; {
		if _, err := q.Dequeue(); err == nil {
			drained++
			sw.Reset()
		} else {
			sw.Once()
		}
	}

	producerWg.Wait()
}
