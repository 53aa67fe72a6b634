// Copyright 2025 go-half Authors
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

// Package verify compares float32 -> float16 encoders against each other over
// ranges of float32 bit patterns, up to the whole 2^32 domain.
//
// It is the testbed used to establish that the fast encoders of package half
// match their references, packaged so that callers can rerun it on their own
// hardware, e.g. to validate the native conversion instruction:
//
//	c := verify.New(0)
//	defer c.Close()
//	report, err := c.Compare(ctx, half.Float32ToFloat16RTNE, half.Active().Encode,
//	    verify.Finite, verify.Full()...)
package verify

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/internal/workerpool"
)

// EncodeFunc is a float32 -> Float16 encoder, e.g. half.Float32ToFloat16RTNE.
type EncodeFunc func(float32) half.Float16

// DecodeFunc is a Float16 -> float32 decoder, e.g. half.Float16ToFloat32.
type DecodeFunc func(half.Float16) float32

// Filter selects which float32 bit patterns take part in a comparison.
// A nil Filter selects all of them.
type Filter func(bits uint32) bool

// DefaultMaxMismatches is the number of mismatches a Report keeps by default.
const DefaultMaxMismatches = 16

// batchSize is the number of bit patterns a worker grabs at once.
const batchSize = 1 << 16

// Mismatch is one input on which two encoders disagree.
type Mismatch struct {
	Input uint32
	Want  half.Float16
	Got   half.Float16
}

// String implements fmt.Stringer.
func (m Mismatch) String() string {
	return fmt.Sprintf("0x%08X (%g): want 0x%04X, got 0x%04X",
		m.Input, math.Float32frombits(m.Input), uint16(m.Want), uint16(m.Got))
}

// Report is the outcome of one comparison.
type Report struct {
	// Name of the check, if it was run as part of a suite.
	Name string

	// Checked is the number of inputs that passed the filter and were compared.
	Checked uint64

	// Total is the number of mismatching inputs.
	Total uint64

	// Mismatches holds the first mismatches found, at most the checker's
	// limit. With several workers "first" is not necessarily the lowest input.
	Mismatches []Mismatch
}

// OK returns true if no mismatch was found.
func (r Report) OK() bool {
	return r.Total == 0
}

// Err returns nil if the report has no mismatches, and an error describing
// the first one otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	name := r.Name
	if name == "" {
		name = "comparison"
	}
	return errors.Errorf("%s: %d of %d inputs mismatch, first: %s", name, r.Total, r.Checked, r.Mismatches[0])
}

// Checker runs comparisons on a persistent worker pool.
// It is safe for concurrent use.
type Checker struct {
	pool          *workerpool.Pool
	maxMismatches int
}

// New creates a Checker with the given number of workers.
// If workers <= 0, uses GOMAXPROCS.
func New(workers int) *Checker {
	return &Checker{
		pool:          workerpool.New(workers),
		maxMismatches: DefaultMaxMismatches,
	}
}

// WithMaxMismatches sets how many mismatches a Report keeps and returns the
// Checker. Counting is unaffected.
func (c *Checker) WithMaxMismatches(n int) *Checker {
	c.maxMismatches = max(n, 1)
	return c
}

// Close stops the workers. The Checker must not be used afterwards.
func (c *Checker) Close() {
	c.pool.Close()
}

// collector accumulates mismatches from several workers.
type collector struct {
	checked, total atomic.Uint64
	mu             sync.Mutex
	limit          int
	mismatches     []Mismatch
}

func (col *collector) add(m Mismatch) {
	col.total.Add(1)
	col.mu.Lock()
	if len(col.mismatches) < col.limit {
		col.mismatches = append(col.mismatches, m)
	}
	col.mu.Unlock()
}

func (col *collector) report() Report {
	return Report{
		Checked:    col.checked.Load(),
		Total:      col.total.Load(),
		Mismatches: col.mismatches,
	}
}

// compareOne checks one input, and returns whether it passed the filter.
func (col *collector) compareOne(bits uint32, want, got EncodeFunc, filter Filter) bool {
	if filter != nil && !filter(bits) {
		return false
	}
	f := math.Float32frombits(bits)
	if w, g := want(f), got(f); w != g {
		col.add(Mismatch{Input: bits, Want: w, Got: g})
	}
	return true
}

// Compare runs want and got on every input of the given ranges that passes
// filter, and reports where they differ.
//
// The context is checked between batches; on cancellation the partial
// report is returned along with the context error.
func (c *Checker) Compare(ctx context.Context, want, got EncodeFunc, filter Filter, ranges ...Range) (Report, error) {
	col := &collector{limit: c.maxMismatches}
	for _, r := range ranges {
		if r.Hi > 1<<32 || r.Lo > r.Hi {
			return col.report(), errors.Errorf("verify: invalid range %s", r)
		}
		c.pool.ParallelForBatched(r.Len(), batchSize, func(start, end uint64) {
			if ctx.Err() != nil {
				return
			}
			var n uint64
			for i := start; i < end; i++ {
				if col.compareOne(uint32(r.Lo+i), want, got, filter) {
					n++
				}
			}
			col.checked.Add(n)
		})
		if err := ctx.Err(); err != nil {
			return col.report(), errors.Wrapf(err, "verify: interrupted in range %s", r)
		}
	}
	report := col.report()
	klog.V(2).Infof("verify: compared %d inputs over %d ranges, %d mismatches", report.Checked, len(ranges), report.Total)
	return report, nil
}

// Sample compares want and got on n pseudo-random bit patterns drawn
// uniformly from the whole float32 domain. The same seed yields the same
// inputs.
func (c *Checker) Sample(ctx context.Context, want, got EncodeFunc, filter Filter, n uint64, seed uint64) (Report, error) {
	col := &collector{limit: c.maxMismatches}
	c.pool.ParallelForBatched(n, batchSize, func(start, end uint64) {
		if ctx.Err() != nil {
			return
		}
		// One generator per batch keeps the inputs independent of scheduling.
		rng := rand.New(rand.NewPCG(seed, start))
		var checked uint64
		for range end - start {
			if col.compareOne(rng.Uint32(), want, got, filter) {
				checked++
			}
		}
		col.checked.Add(checked)
	})
	if err := ctx.Err(); err != nil {
		return col.report(), errors.Wrap(err, "verify: sampling interrupted")
	}
	report := col.report()
	klog.V(2).Infof("verify: sampled %d inputs (seed %d), %d mismatches", report.Checked, seed, report.Total)
	return report, nil
}

// RoundTrip decodes every non-NaN Float16 pattern and encodes the result
// back. Widening never rounds, so every correct encoder must return the
// original pattern. Mismatch.Input holds the float32 bits of the decoded
// value and Mismatch.Want the original pattern.
func (c *Checker) RoundTrip(ctx context.Context, decode DecodeFunc, encode EncodeFunc) (Report, error) {
	col := &collector{limit: c.maxMismatches}
	c.pool.ParallelForBatched(1<<16, 1<<12, func(start, end uint64) {
		if ctx.Err() != nil {
			return
		}
		var checked uint64
		for i := start; i < end; i++ {
			h := half.Float16(i)
			if h.IsNaN() {
				continue
			}
			checked++
			f := decode(h)
			if got := encode(f); got != h {
				col.add(Mismatch{Input: math.Float32bits(f), Want: h, Got: got})
			}
		}
		col.checked.Add(checked)
	})
	if err := ctx.Err(); err != nil {
		return col.report(), errors.Wrap(err, "verify: round trip interrupted")
	}
	return col.report(), nil
}
