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

// Class is the IEEE 754 category of a bit pattern. It is derived from the
// exponent and mantissa fields only, so every pattern of either width has
// exactly one class.
type Class int

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinity
	ClassQuietNaN
	ClassSignalingNaN
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInfinity:
		return "infinity"
	case ClassQuietNaN:
		return "qnan"
	case ClassSignalingNaN:
		return "snan"
	default:
		return "unknown"
	}
}

// IsNaN reports whether c is one of the two NaN classes.
func (c Class) IsNaN() bool {
	return c == ClassQuietNaN || c == ClassSignalingNaN
}

// IsFinite reports whether c denotes a finite number.
func (c Class) IsFinite() bool {
	return c <= ClassNormal
}

// ClassifyFloat16 returns the category of a half-precision bit pattern.
func ClassifyFloat16(h Float16) Class {
	return classify(uint32(h&float16ExpMask), float16ExpMask, uint32(h&float16MantissaMask), float16QuietBit)
}

// ClassifyFloat32 returns the category of a single-precision value.
func ClassifyFloat32(f float32) Class {
	return ClassifyFloat32Bits(math.Float32bits(f))
}

// ClassifyFloat32Bits returns the category of a single-precision bit pattern.
// It is useful for signaling NaNs, which may be quieted when they travel
// through a float32 register.
func ClassifyFloat32Bits(bits uint32) Class {
	return classify(bits&float32ExpMask, float32ExpMask, bits&float32MantissaMask, float32QuietBit)
}

func classify(exp, expMask, mant, quietBit uint32) Class {
	switch exp {
	case 0:
		if mant == 0 {
			return ClassZero
		}
		return ClassSubnormal
	case expMask:
		switch {
		case mant == 0:
			return ClassInfinity
		case mant&quietBit != 0:
			return ClassQuietNaN
		default:
			return ClassSignalingNaN
		}
	default:
		return ClassNormal
	}
}
