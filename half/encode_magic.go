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

import "math"

// The encoders in this file let the FPU do the shifting. Multiplying by
// 2^-112 moves a float32 exponent into half range, and once the exponent is
// rebiased the half bits are simply bits 13..28 of the float32 pattern.
const (
	// rebiasMagic is 2^-112 (bits 15<<23).
	rebiasMagic float32 = 0x1p-112

	f32InfBits  = 255 << 23
	f16InfBits  = 31 << 23         // half infinity after rebiasing
	f16MaxBits  = (127 + 16) << 23 // 2^16, first value that cannot round below infinity
	f16MinNorm  = 113 << 23        // 2^-14, smallest normal half
	roundMask   = ^uint32(0xFFF)   // clears sticky bits
	expInfFlip  = (255 ^ 31) << 23 // turns a float32 Inf/NaN exponent into a half one
	rebiasDelta = (127 - 15) << 23

	// denormMagic is 0.5 (bits 126<<23). Adding it to a value below 2^-14
	// leaves the ten half mantissa bits at the bottom of the float32 mantissa,
	// rounded by the FPU to nearest even.
	denormMagic     float32 = 0.5
	denormMagicBits         = ((127 - 15) + (23 - 10) + 1) << 23
)

// Float32ToFloat16Fast2 converts a float32 to Float16 by multiplying with a
// power of two and reading the rounded bits off the product. Normal results
// are rounded half up, matching Float32ToFloat16Reference.
//
// Half subnormal results are produced through float32 subnormal arithmetic,
// so they depend on the FPU's flush-to-zero setting and may differ from the
// reference by double rounding. Go never enables flush-to-zero, so on Go
// targets the output is deterministic. NaNs become the quiet NaN 0x7E00.
func Float32ToFloat16Fast2(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := bits & float32SignMask
	bits ^= sign

	var o uint16
	if bits&float32ExpMask == float32ExpMask {
		o = float16ExpMask
		if bits&float32MantissaMask != 0 {
			o |= float16QuietBit
		}
	} else {
		bits &^= 0xFFF
		bits = math.Float32bits(math.Float32frombits(bits) * rebiasMagic)
		bits += 0x1000 // rounding bias
		if bits > f16InfBits {
			bits = f16InfBits
		}
		o = uint16(bits >> 13)
	}
	return Float16(uint16(sign>>16) | o)
}

// Float32ToFloat16Fast3 is Float32ToFloat16Fast2 written with integer masks
// and compares only. It returns the same bits for every input.
func Float32ToFloat16Fast3(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := bits & float32SignMask
	bits ^= sign

	// All operands are below 0x80000000, so these compares could be signed.
	var o uint16
	if bits >= f32InfBits {
		o = 0x7C00
		if bits > f32InfBits {
			o = 0x7E00
		}
	} else {
		bits &= roundMask
		bits = math.Float32bits(math.Float32frombits(bits) * rebiasMagic)
		bits -= roundMask // adds 0x1000
		if bits > f16InfBits {
			bits = f16InfBits
		}
		o = uint16(bits >> 13)
	}
	return Float16(uint16(sign>>16) | o)
}

// Float32ToFloat16Fast3RTNE converts a float32 to Float16 with IEEE 754
// round-to-nearest, ties-to-even, and returns the same bits as
// Float32ToFloat16RTNE for every input.
//
// It never produces float32 subnormals, so it neither depends on the
// flush-to-zero mode nor hits denormal slow paths. This is the portable
// default encoder.
func Float32ToFloat16Fast3RTNE(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := bits & float32SignMask
	bits ^= sign

	var o uint16
	switch {
	case bits >= f16MaxBits:
		// Overflow, Inf or NaN.
		o = 0x7C00
		if bits > f32InfBits {
			o = 0x7E00
		}
	case bits < f16MinNorm:
		// Subnormal or zero half: the FPU rounds the addition, and an
		// integer subtract of the magic bits leaves the half pattern.
		bits = math.Float32bits(math.Float32frombits(bits) + denormMagic)
		o = uint16(bits - denormMagicBits)
	default:
		mantOdd := (bits >> 13) & 1
		bits -= rebiasDelta
		bits += 0xFFF + mantOdd
		o = uint16(bits >> 13)
	}
	return Float16(uint16(sign>>16) | o)
}
