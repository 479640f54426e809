// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelBandsPartials(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	n := 1081 // odd row count, last band is short
	bands, chunk := pool.Bands(n)
	if bands != 3 || chunk != 361 {
		t.Fatalf("Bands(%d) = (%d, %d), want (3, 361)", n, bands, chunk)
	}

	partials := make([]int64, bands)
	pool.ParallelBands(n, func(band, start, end int) {
		for i := start; i < end; i++ {
			partials[band] += int64(i)
		}
	})

	var total int64
	for _, s := range partials {
		total += s
	}
	if want := int64(n) * int64(n-1) / 2; total != want {
		t.Errorf("sum = %d, want %d", total, want)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestNilPool(t *testing.T) {
	var pool *Pool

	if pool.NumWorkers() != 1 {
		t.Errorf("nil NumWorkers() = %d, want 1", pool.NumWorkers())
	}

	var calls int
	pool.ParallelBands(10, func(band, start, end int) {
		calls++
		if band != 0 || start != 0 || end != 10 {
			t.Errorf("nil pool band = (%d, %d, %d), want (0, 0, 10)", band, start, end)
		}
	})
	if calls != 1 {
		t.Errorf("nil pool calls = %d, want 1", calls)
	}
	pool.Close() // Should not panic
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1080

	for b.Loop() {
		pool.ParallelFor(n, func(start, end int) {
			// Simulate work
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
