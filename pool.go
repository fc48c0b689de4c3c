package cornellfmt

import (
	"context"
	"runtime"
	"sync"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps fan-out; the transform is CPU-bound and short,
	// so more workers than this only add scheduling overhead.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the caller's own goroutines.
	cpuDivisor = 2
)

// NormalizeAll normalizes inputs concurrently, preserving order.
// workers <= 0 selects an automatic count via ResolveWorkerCount.
//
// The transform itself never blocks; the context only bounds how much of
// the batch is started. Inputs not yet dispatched when ctx is cancelled
// are returned unmodified.
func (s *Service) NormalizeAll(ctx context.Context, inputs []string, workers int) []string {
	out := make([]string, len(inputs))
	if len(inputs) == 0 {
		return out
	}

	n := ResolveWorkerCount(workers)
	if n > len(inputs) {
		n = len(inputs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = s.Normalize(inputs[i])
			}
		}()
	}

	dispatched := make([]bool, len(inputs))
dispatch:
	for i := range inputs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			dispatched[i] = true
		}
	}
	close(jobs)
	wg.Wait()

	for i := range inputs {
		if !dispatched[i] {
			out[i] = inputs[i]
		}
	}
	return out
}

// ResolveWorkerCount determines the fan-out for batch normalization.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkerCount(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		if workers > MaxWorkers {
			return MaxWorkers
		}
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in
	// container deployments)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
