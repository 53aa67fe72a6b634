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

package asm

// EncodeF16C converts f to binary16 bits with VCVTPS2PH, rounding to nearest
// even. NaN payloads are truncated to ten bits and quieted.
// Requires F16C.
func EncodeF16C(f float32) uint16

// DecodeF16C converts binary16 bits to float32 with VCVTPH2PS.
// Signaling NaNs are quieted. Requires F16C.
func DecodeF16C(h uint16) float32
