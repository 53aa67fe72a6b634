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

package half

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage; conversions go through the codec functions of
// this package.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: 2^-14 (~6.10e-5)
//   - Min positive subnormal: 2^-24 (~5.96e-8)
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000 // Positive zero
	Float16NegZero   Float16 = 0x8000 // Negative zero
	Float16One       Float16 = 0x3C00 // 1.0
	Float16NegOne    Float16 = 0xBC00 // -1.0
	Float16MaxValue  Float16 = 0x7BFF // 65504 (max finite value)
	Float16MinNormal Float16 = 0x0400 // 2^-14 (smallest normal)
	Float16MinValue  Float16 = 0x0001 // 2^-24 (smallest subnormal)
	Float16Inf       Float16 = 0x7C00 // Positive infinity
	Float16NegInf    Float16 = 0xFC00 // Negative infinity
	Float16NaN       Float16 = 0x7E00 // Quiet NaN, the canonical NaN of the encoders
)

// Bit layout of both widths.
const (
	float16SignMask     = 0x8000
	float16ExpMask      = 0x7C00
	float16MantissaMask = 0x03FF
	float16QuietBit     = 0x0200
	float16ExpBias      = 15

	float32SignMask     = 0x80000000
	float32ExpMask      = 0x7F800000
	float32MantissaMask = 0x007FFFFF
	float32QuietBit     = 0x00400000
	float32ExpBias      = 127
)

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&float16ExpMask == float16ExpMask && h&float16MantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == float16ExpMask
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative returns true if the sign bit is set.
func (h Float16) IsNegative() bool {
	return h&float16SignMask != 0
}

// IsDenormal returns true if h is a subnormal number.
func (h Float16) IsDenormal() bool {
	return h&float16ExpMask == 0 && h&float16MantissaMask != 0
}

// Class returns the IEEE 754 category of h.
func (h Float16) Class() Class {
	return ClassifyFloat16(h)
}

// Float32 converts this Float16 to float32 using the active converter.
func (h Float16) Float32() float32 {
	return active.Decode(h)
}

// Float64 converts this Float16 to float64. Widening is exact.
func (h Float16) Float64() float64 {
	return float64(active.Decode(h))
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float16FromBits creates a Float16 from raw bits.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// NewFloat16 creates a Float16 from a float32 value using the active converter.
func NewFloat16(f float32) Float16 {
	return active.Encode(f)
}
