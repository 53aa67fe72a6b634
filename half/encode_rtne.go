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

// Float32ToFloat16RTNE converts a float32 to Float16 with IEEE 754
// round-to-nearest, ties-to-even. It is written for clarity rather than
// speed and serves as the oracle for the faster variants.
//
// NaNs collapse to the quiet NaN 0x7E00 with the input sign, exactly as in
// Float32ToFloat16Reference.
func Float32ToFloat16RTNE(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & float16SignMask
	exp := int32(bits>>23) & 0xFF
	mant := bits & float32MantissaMask

	var o uint16
	switch {
	case exp == 0:
		// Signed zero/denormal, underflows.
	case exp == 0xFF:
		o = float16ExpMask
		if mant != 0 {
			o |= float16QuietBit
		}
	default:
		newexp := exp - float32ExpBias + float16ExpBias
		switch {
		case newexp >= 31:
			o = float16ExpMask
		case newexp <= 0:
			shift := uint32(14 - newexp)
			if shift > 24 {
				break
			}
			m := mant | 0x800000
			o = uint16(m >> shift)
			low := m & (1<<shift - 1)
			halfway := uint32(1) << (shift - 1)
			if low > halfway || (low == halfway && o&1 != 0) {
				o++
			}
		default:
			o = uint16(newexp)<<10 | uint16(mant>>13)
			low := mant & 0x1FFF
			if low > 0x1000 || (low == 0x1000 && o&1 != 0) {
				o++
			}
		}
	}
	return Float16(sign | o)
}
