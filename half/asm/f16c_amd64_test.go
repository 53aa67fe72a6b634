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

//go:build amd64 && !noasm

package asm_test

import (
	"math"
	"testing"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/half/asm"
)

func TestF16C(t *testing.T) {
	if !half.HasF16C() {
		t.Skip("F16C not available")
	}
	for _, bits := range nativeInputs {
		f := math.Float32frombits(bits)
		if got, want := asm.EncodeF16C(f), uint16(half.Float32ToFloat16RTNE(f)); got != want {
			t.Errorf("EncodeF16C(0x%08X) = 0x%04X, want 0x%04X", bits, got, want)
		}
	}
	for i := range 1 << 16 {
		h := half.Float16(i)
		if h.IsNaN() {
			continue
		}
		got, want := math.Float32bits(asm.DecodeF16C(uint16(i))), math.Float32bits(half.Float16ToFloat32(h))
		if got != want {
			t.Fatalf("DecodeF16C(0x%04X) = 0x%08X, want 0x%08X", i, got, want)
		}
	}
}
