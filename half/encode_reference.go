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

// Float32ToFloat16Reference converts a float32 to Float16, rounding half up in
// magnitude: only the first discarded bit is examined, never the parity of
// the kept mantissa. This is the historical ISPC baseline, not IEEE
// round-to-nearest-even; use Float32ToFloat16RTNE for that.
//
// Every NaN, quiet or signaling, becomes the single quiet NaN 0x7E00 (with the
// input sign). Payloads are discarded.
func Float32ToFloat16Reference(f float32) Float16 {
	bits := math.Float32bits(f)
	exp := int32(bits>>23) & 0xFF
	mant := bits & float32MantissaMask

	var o uint16
	if exp != 0 {
		// Signed zero and float32 denormals fall through as zero.
		o = encodeHalfUp(exp, mant)
	}
	return Float16(uint16(bits>>16)&float16SignMask | o)
}

// Float32ToFloat16Fast is Float32ToFloat16Reference without the early exit for
// a zero exponent field. The results are bit-identical for every input.
func Float32ToFloat16Fast(f float32) Float16 {
	bits := math.Float32bits(f)
	exp := int32(bits>>23) & 0xFF
	return Float16(uint16(bits>>16)&float16SignMask | encodeHalfUp(exp, bits&float32MantissaMask))
}

// encodeHalfUp returns the unsigned half bits for a float32 exponent field and
// mantissa, rounding ties away from zero.
func encodeHalfUp(exp int32, mant uint32) uint16 {
	if exp == 0xFF {
		if mant != 0 {
			return float16ExpMask | float16QuietBit
		}
		return float16ExpMask
	}

	newexp := exp - float32ExpBias + float16ExpBias
	switch {
	case newexp >= 31:
		// Overflow: infinity.
		return float16ExpMask
	case newexp <= 0:
		shift := uint32(14 - newexp)
		if shift > 24 {
			return 0
		}
		m := mant | 0x800000 // hidden bit
		o := uint16(m >> shift)
		if (m>>(shift-1))&1 != 0 {
			// May carry into the exponent, promoting to the smallest normal.
			o++
		}
		return o
	default:
		o := uint16(newexp)<<10 | uint16(mant>>13)
		if mant&0x1000 != 0 {
			// May carry all the way to infinity.
			o++
		}
		return o
	}
}
