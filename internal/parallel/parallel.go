// Package parallel splits vector kernels across worker goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
//
// Elementwise float64 kernels are memory bound, so the chunk floor is much
// larger than for compute heavy loops.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16 * 1024,
	}
}

// chunkSize returns the per-worker span for n elements, or n when the work
// should run on the calling goroutine.
func (c Config) chunkSize(n int) int {
	if !c.Enabled || c.NumWorkers < 2 || n < 2*c.MinChunkSize {
		return n
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// ForRange calls f on disjoint half-open ranges covering [0, n).
// Ranges are processed concurrently when n is large enough; ForRange returns
// once every range is done.
func ForRange(n int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	chunk := cfg.chunkSize(n)
	if chunk >= n {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
