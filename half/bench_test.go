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
	"math/rand/v2"
	"testing"
)

const benchLen = 4096

// benchInputs mixes normals, half subnormals and a few out-of-range values,
// so that branchy encoders cannot be predicted perfectly.
func benchInputs() []float32 {
	rng := rand.New(rand.NewPCG(1, 2))
	src := make([]float32, benchLen)
	for i := range src {
		switch i % 16 {
		case 0:
			src[i] = float32(rng.NormFloat64() * 1e-6)
		case 1:
			src[i] = float32(rng.NormFloat64() * 1e6)
		default:
			src[i] = float32(rng.NormFloat64() * 100)
		}
	}
	return src
}

func BenchmarkEncode(b *testing.B) {
	src := benchInputs()
	dst := make([]Float16, benchLen)
	for _, v := range VariantValues() {
		fn := EncodeFunc(v)
		b.Run(v.String(), func(b *testing.B) {
			b.SetBytes(benchLen * 4)
			for b.Loop() {
				for i, f := range src {
					dst[i] = fn(f)
				}
			}
		})
	}
}

func BenchmarkEncodeDirect(b *testing.B) {
	src := benchInputs()
	dst := make([]Float16, benchLen)
	b.Run("Reference", func(b *testing.B) {
		for b.Loop() {
			for i, f := range src {
				dst[i] = Float32ToFloat16Reference(f)
			}
		}
	})
	b.Run("Fast3RTNE", func(b *testing.B) {
		for b.Loop() {
			for i, f := range src {
				dst[i] = Float32ToFloat16Fast3RTNE(f)
			}
		}
	})
	b.Run("Dispatched", func(b *testing.B) {
		for b.Loop() {
			for i, f := range src {
				dst[i] = Float32ToFloat16(f)
			}
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	src := make([]Float16, benchLen)
	for i := range src {
		src[i] = Float16(i * 16)
	}
	dst := make([]float32, benchLen)
	b.Run("Portable", func(b *testing.B) {
		b.SetBytes(benchLen * 2)
		for b.Loop() {
			for i, h := range src {
				dst[i] = Float16ToFloat32(h)
			}
		}
	})
	b.Run("Active", func(b *testing.B) {
		b.SetBytes(benchLen * 2)
		for b.Loop() {
			for i, h := range src {
				dst[i] = Decode(h)
			}
		}
	})
}
