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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Variant selects one of the float32 -> Float16 encoders.
//
// It is converted to snake-format strings (e.g.: VariantReferenceRTNE -> "reference_rtne"),
// and can be parsed back with VariantString or, more leniently, ParseVariant.
// The snake transform does not split a digit from the capitals that follow it,
// so names like "fast3_rtne" are given as line comments.
type Variant int

const (
	// VariantReference rounds half up in magnitude. See Float32ToFloat16Reference.
	VariantReference Variant = iota

	// VariantReferenceRTNE rounds to nearest even. See Float32ToFloat16RTNE.
	VariantReferenceRTNE

	// VariantFast is bit-identical to VariantReference. See Float32ToFloat16Fast.
	VariantFast

	// VariantFast2 uses the FPU for rounding. See Float32ToFloat16Fast2.
	VariantFast2

	// VariantFast3 is VariantFast2 with integer masks only. See Float32ToFloat16Fast3.
	VariantFast3

	// VariantFast3RTNE is bit-identical to VariantReferenceRTNE. See Float32ToFloat16Fast3RTNE.
	VariantFast3RTNE // fast3_rtne

	// VariantApproximate truncates. See Float32ToFloat16Approx.
	VariantApproximate

	// VariantNative uses the hardware conversion instruction if the CPU has one,
	// and VariantFast3RTNE otherwise.
	VariantNative
)

//go:generate go tool enumer -type=Variant -trimprefix=Variant -transform=snake -linecomment -values -text -json variant.go

// VariantDefault is the recommended portable encoder.
const VariantDefault = VariantFast3RTNE

var encoders = [...]func(float32) Float16{
	VariantReference:     Float32ToFloat16Reference,
	VariantReferenceRTNE: Float32ToFloat16RTNE,
	VariantFast:          Float32ToFloat16Fast,
	VariantFast2:         Float32ToFloat16Fast2,
	VariantFast3:         Float32ToFloat16Fast3,
	VariantFast3RTNE:     Float32ToFloat16Fast3RTNE,
	VariantApproximate:   Float32ToFloat16Approx,
	VariantNative:        nil, // Resolved by the dispatch layer.
}

// EncodeFunc returns the encoder for the given variant. It panics if v is
// not a valid Variant.
func EncodeFunc(v Variant) func(float32) Float16 {
	if !v.IsAVariant() {
		panic(fmt.Sprintf("half.EncodeFunc: invalid variant %d: options are %v", int(v), VariantStrings()))
	}
	if v == VariantNative {
		return active.Encode
	}
	return encoders[v]
}

// Encode converts f to Float16 with the given variant. It panics if v is not
// a valid Variant.
func Encode(f float32, v Variant) Float16 {
	switch v {
	case VariantReference:
		return Float32ToFloat16Reference(f)
	case VariantReferenceRTNE:
		return Float32ToFloat16RTNE(f)
	case VariantFast:
		return Float32ToFloat16Fast(f)
	case VariantFast2:
		return Float32ToFloat16Fast2(f)
	case VariantFast3:
		return Float32ToFloat16Fast3(f)
	case VariantFast3RTNE:
		return Float32ToFloat16Fast3RTNE(f)
	case VariantApproximate:
		return Float32ToFloat16Approx(f)
	case VariantNative:
		return active.Encode(f)
	default:
		panic(fmt.Sprintf("half.Encode: invalid variant %d: options are %v", int(v), VariantStrings()))
	}
}

// Decode converts h to float32 using the active converter. There is only one
// decoding contract since widening never rounds.
func Decode(h Float16) float32 {
	return active.Decode(h)
}

var variantAliases = map[string]Variant{
	"rtne":    VariantReferenceRTNE,
	"approx":  VariantApproximate,
	"default": VariantDefault,
}

// ParseVariant converts a variant name to its Variant. Besides the canonical
// names returned by VariantStrings, it accepts any case, "-" in place of "_"
// and the aliases "rtne", "approx" and "default".
//
// An empty name selects VariantDefault.
func ParseVariant(name string) (Variant, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "" {
		return VariantDefault, nil
	}
	if v, ok := variantAliases[key]; ok {
		return v, nil
	}
	v, err := VariantString(key)
	if err != nil {
		return v, errors.Wrapf(err, "invalid variant name %q: options are %v", name, VariantStrings())
	}
	return v, nil
}
