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

import (
	"math"
	"testing"
)

var portableEncoders = []struct {
	name string
	fn   func(float32) Float16
}{
	{"Reference", Float32ToFloat16Reference},
	{"RTNE", Float32ToFloat16RTNE},
	{"Fast", Float32ToFloat16Fast},
	{"Fast2", Float32ToFloat16Fast2},
	{"Fast3", Float32ToFloat16Fast3},
	{"Fast3RTNE", Float32ToFloat16Fast3RTNE},
	{"Approx", Float32ToFloat16Approx},
}

// TestEncodeExact covers inputs that every encoder, including the
// approximate one, must convert identically.
func TestEncodeExact(t *testing.T) {
	tests := []struct {
		name  string
		input uint32
		want  Float16
	}{
		{"Zero", 0x00000000, 0x0000},
		{"NegZero", 0x80000000, 0x8000},
		{"One", 0x3F800000, 0x3C00},
		{"NegOne", 0xBF800000, 0xBC00},
		{"Two", 0x40000000, 0x4000},
		{"Max", math.Float32bits(65504), 0x7BFF},
		{"NegMax", math.Float32bits(-65504), 0xFBFF},
		{"MinNormal", 0x38800000, 0x0400},
		{"MinSubnormal", 0x33800000, 0x0001},
		{"NegMinSubnormal", 0xB3800000, 0x8001},
		{"MaxSubnormal", math.Float32bits(1023 * 0x1p-24), 0x03FF},
		{"Float32Denormal", 0x00000001, 0x0000},
		{"NegFloat32Denormal", 0x807FFFFF, 0x8000},
		{"TooSmall", math.Float32bits(0x1p-26), 0x0000},
		{"Inf", 0x7F800000, 0x7C00},
		{"NegInf", 0xFF800000, 0xFC00},
		{"Huge", math.Float32bits(1e10), 0x7C00},
		{"NegMaxFloat32", 0xFF7FFFFF, 0xFC00},
		{"QuietNaN", 0x7FC00000, 0x7E00},
		{"NegQuietNaN", 0xFFC00000, 0xFE00},
	}

	for _, enc := range portableEncoders {
		for _, tt := range tests {
			got := enc.fn(math.Float32frombits(tt.input))
			if got != tt.want {
				t.Errorf("%s(0x%08X) [%s]: got 0x%04X, want 0x%04X", enc.name, tt.input, tt.name, uint16(got), uint16(tt.want))
			}
		}
	}
}

// TestEncodeRounding covers inputs where the rounding rule matters.
func TestEncodeRounding(t *testing.T) {
	tests := []struct {
		name                 string
		input                uint32
		halfUp, rtne, approx Float16
	}{
		// 1 + 2^-11: exactly halfway between 0x3C00 and 0x3C01.
		{"TieToEven", 0x3F801000, 0x3C01, 0x3C00, 0x3C00},
		// 1 + 3*2^-11: halfway between 0x3C01 and 0x3C02.
		{"TieFromOdd", 0x3F803000, 0x3C02, 0x3C02, 0x3C01},
		{"AboveHalf", 0x3F801001, 0x3C01, 0x3C01, 0x3C00},
		{"BelowHalf", 0x3F800FFF, 0x3C00, 0x3C00, 0x3C00},
		{"NegTieToEven", 0xBF801000, 0xBC01, 0xBC00, 0xBC00},
		// 65520 is halfway between 65504 and 65536, which overflows.
		{"OverflowTie", math.Float32bits(65520), 0x7C00, 0x7C00, 0x7BFF},
		{"JustBelowOverflow", math.Float32bits(65519.996), 0x7BFF, 0x7BFF, 0x7BFF},
		// 2^-25: halfway between zero and the smallest subnormal.
		{"SubnormalTieToZero", 0x33000000, 0x0001, 0x0000, 0x0000},
		// 3*2^-25: halfway between subnormals 1 and 2.
		{"SubnormalTieFromOdd", 0x33C00000, 0x0002, 0x0002, 0x0001},
		// 5*2^-25: halfway between subnormals 2 and 3.
		{"SubnormalTieToEven", 0x34200000, 0x0003, 0x0002, 0x0002},
		{"SubnormalAboveTie", 0x33000001, 0x0001, 0x0001, 0x0000},
		// Largest subnormal plus half an ulp carries into the exponent.
		{"SubnormalCarry", math.Float32bits(1023.5 * 0x1p-24), 0x0400, 0x0400, 0x03FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := math.Float32frombits(tt.input)
			check := func(name string, got, want Float16) {
				t.Helper()
				if got != want {
					t.Errorf("%s(%g): got 0x%04X, want 0x%04X", name, f, uint16(got), uint16(want))
				}
			}
			check("Reference", Float32ToFloat16Reference(f), tt.halfUp)
			check("Fast", Float32ToFloat16Fast(f), tt.halfUp)
			check("Fast2", Float32ToFloat16Fast2(f), tt.halfUp)
			check("Fast3", Float32ToFloat16Fast3(f), tt.halfUp)
			check("RTNE", Float32ToFloat16RTNE(f), tt.rtne)
			check("Fast3RTNE", Float32ToFloat16Fast3RTNE(f), tt.rtne)
			check("Approx", Float32ToFloat16Approx(f), tt.approx)
		})
	}
}

// TestEncodeNaNCollapse checks that every NaN, quiet or signaling, collapses
// to the single quiet NaN with the input sign.
func TestEncodeNaNCollapse(t *testing.T) {
	nans := []uint32{0x7FC00000, 0x7F800001, 0x7FBFFFFF, 0x7FFFFFFF, 0x7FA00000, 0x7F802000}
	encoders := []struct {
		name string
		fn   func(float32) Float16
	}{
		{"Reference", Float32ToFloat16Reference},
		{"RTNE", Float32ToFloat16RTNE},
		{"Fast", Float32ToFloat16Fast},
		{"Fast2", Float32ToFloat16Fast2},
		{"Fast3", Float32ToFloat16Fast3},
		{"Fast3RTNE", Float32ToFloat16Fast3RTNE},
	}
	for _, enc := range encoders {
		for _, bits := range nans {
			for _, sign := range []uint32{0, 0x80000000} {
				got := enc.fn(math.Float32frombits(sign | bits))
				want := Float16(sign>>16) | Float16NaN
				if got != want {
					t.Errorf("%s(0x%08X): got 0x%04X, want 0x%04X", enc.name, sign|bits, uint16(got), uint16(want))
				}
			}
		}
	}
}

// TestApproxKnownDeviations pins the documented misbehavior of the
// approximate encoder so that it is not "fixed" by accident.
func TestApproxKnownDeviations(t *testing.T) {
	tests := []struct {
		name  string
		input uint32
		want  Float16
	}{
		// Signaling NaN with its payload below the kept bits becomes +Inf.
		{"SignalingNaNToInf", 0x7F800001, 0x7C00},
		{"NegSignalingNaNToInf", 0xFF801FFF, 0xFC00},
		// Payload bits that survive keep the result a NaN, unquieted.
		{"SignalingNaNKept", 0x7FA00000, 0x7D00},
		{"NaNPayloadKept", 0x7FFFFFFF, 0x7FFF},
		// Truncation instead of rounding.
		{"Truncates", 0x3F801FFF, 0x3C00},
		// Finite values of 2^16 and above clamp to infinity.
		{"ClampToInf", math.Float32bits(65536), 0x7C00},
		{"ClampLarge", math.Float32bits(3e9), 0x7C00},
	}
	for _, tt := range tests {
		got := Float32ToFloat16Approx(math.Float32frombits(tt.input))
		if got != tt.want {
			t.Errorf("%s: Float32ToFloat16Approx(0x%08X) = 0x%04X, want 0x%04X", tt.name, tt.input, uint16(got), uint16(tt.want))
		}
	}
	if got := Float32ToFloat16Approx(math.Float32frombits(0x7F800001)); !got.IsInf() {
		t.Errorf("signaling NaN 0x7F800001 should become an infinity, got 0x%04X (%s)", uint16(got), got.Class())
	}
}

// TestEncodeRoundTrip checks that widening and narrowing again is the
// identity for every non-NaN half, for every portable encoder.
func TestEncodeRoundTrip(t *testing.T) {
	for _, enc := range portableEncoders {
		t.Run(enc.name, func(t *testing.T) {
			for i := range 1 << 16 {
				h := Float16(i)
				if h.IsNaN() {
					continue
				}
				f := Float16ToFloat32(h)
				if got := enc.fn(f); got != h {
					t.Fatalf("%s(Float16ToFloat32(0x%04X) = %g) = 0x%04X", enc.name, i, f, uint16(got))
				}
			}
		})
	}
}

// TestEncodeMonotonic checks that the RTNE encoders never decrease as the
// float32 magnitude grows.
func TestEncodeMonotonic(t *testing.T) {
	prev := Float16(0)
	for bits := uint32(0); bits < 0x47800000; bits += 0x3F {
		got := Float32ToFloat16Fast3RTNE(math.Float32frombits(bits))
		if got < prev {
			t.Fatalf("Float32ToFloat16Fast3RTNE(0x%08X) = 0x%04X < 0x%04X", bits, uint16(got), uint16(prev))
		}
		prev = got
	}
}
