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

// Float32ToFloat16Approx is the cheapest encoder, matching the FOX toolkit
// conversion. Handle with care:
//
//   - Normal results are truncated, not rounded.
//   - Finite values of 2^16 and above become infinity.
//   - Inf/NaN keep the top ten mantissa bits, so a signaling NaN whose
//     payload lives only in the low 13 bits (e.g. 0x7F800001) becomes an
//     infinity.
func Float32ToFloat16Approx(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := bits & float32SignMask
	bits ^= sign

	if bits >= f32InfBits {
		bits ^= expInfFlip
	} else {
		if bits > f16MaxBits {
			bits = f16MaxBits
		}
		bits = math.Float32bits(math.Float32frombits(bits) * rebiasMagic)
	}
	return Float16(uint16(sign>>16) | uint16(bits>>13))
}
