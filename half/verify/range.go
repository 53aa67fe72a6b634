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

package verify

import (
	"fmt"

	"github.com/ajroetker/go-half/half"
)

// Range is the half-open interval [Lo, Hi) of float32 bit patterns.
// Hi may be 1<<32 to include 0xFFFFFFFF.
type Range struct {
	Lo, Hi uint64
}

// Len returns the number of bit patterns in r.
func (r Range) Len() uint64 {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[0x%08X, 0x%09X)", r.Lo, r.Hi)
}

// Full returns the whole float32 domain.
func Full() []Range {
	return []Range{{Lo: 0, Hi: 1 << 32}}
}

// ExponentRange returns every pattern with the given biased exponent field,
// for both signs: 2^24 patterns in total.
func ExponentRange(exp uint8) []Range {
	lo := uint64(exp) << 23
	return []Range{
		{Lo: lo, Hi: lo + 1<<23},
		{Lo: 1<<31 | lo, Hi: 1<<31 | lo + 1<<23},
	}
}

// boundaryExponents are the float32 exponent fields where the encoders
// change behavior:
//   - 0 and 255: float32 zero/denormal and Inf/NaN.
//   - 101..103: the half subnormal range ends (results round to zero below).
//   - 111..114: the transition between half subnormals and normals.
//   - 126..128: around 1.0, where both biases meet.
//   - 141..143: the largest half normals and overflow to infinity.
var boundaryExponents = []uint8{
	0, 1,
	101, 102, 103,
	111, 112, 113, 114,
	126, 127, 128,
	141, 142, 143,
	254, 255,
}

// Boundary returns the exponent ranges around the half bias points, where
// rounding bugs concentrate. It covers 17 exponents, about 285M patterns.
func Boundary() []Range {
	ranges := make([]Range, 0, 2*len(boundaryExponents))
	for _, exp := range boundaryExponents {
		ranges = append(ranges, ExponentRange(exp)...)
	}
	return ranges
}

// Finite selects inputs that are neither infinite nor NaN.
func Finite(bits uint32) bool {
	return bits&0x7F800000 != 0x7F800000
}

// NormalTarget selects inputs whose half result is not subnormal: the exponent
// field is at least 113 (2^-14), or the input is zero, Inf or NaN.
// Encoders that route subnormals through float32 arithmetic agree with the
// bit-shifting references on exactly these inputs.
func NormalTarget(bits uint32) bool {
	if bits&0x7FFFFFFF == 0 {
		return true
	}
	return (bits>>23)&0xFF >= 113
}

// NotNaN selects inputs that are not NaN.
func NotNaN(bits uint32) bool {
	return !half.ClassifyFloat32Bits(bits).IsNaN()
}

// And combines filters; nil filters are ignored.
func And(filters ...Filter) Filter {
	return func(bits uint32) bool {
		for _, f := range filters {
			if f != nil && !f(bits) {
				return false
			}
		}
		return true
	}
}
