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

const (
	// decodeShiftedExp is the half exponent mask after aligning it with the
	// float32 exponent field.
	decodeShiftedExp = float16ExpMask << 13

	// decodeMagic is 2^-14 (bits 113<<23), the value a zero-exponent half
	// acquires after rebiasing. Subtracting it leaves the exact subnormal.
	decodeMagic float32 = 0x1p-14
)

// Float16ToFloat32 converts a Float16 to float32 without using any hardware
// conversion instruction.
//
// Widening never rounds, so the result is exact for every input. NaN payloads
// and the quiet bit are carried over unchanged, so a signaling half NaN stays
// signaling in the returned bit pattern.
func Float16ToFloat32(h Float16) float32 {
	o := uint32(h&0x7FFF) << 13
	exp := o & decodeShiftedExp
	o += (float32ExpBias - float16ExpBias) << 23

	switch exp {
	case decodeShiftedExp:
		// Inf/NaN: stretch the exponent to all ones.
		o += (128 - 16) << 23
	case 0:
		// Zero/subnormal: renormalize with the FPU.
		o += 1 << 23
		o = math.Float32bits(math.Float32frombits(o) - decodeMagic)
	}

	o |= uint32(h&float16SignMask) << 16
	return math.Float32frombits(o)
}
