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

//go:build arm64 && !noasm

package asm

// EncodeFCVT converts f to binary16 bits with the scalar FCVT Hd, Sn
// instruction. The rounding mode is FPCR.RMode, which Go leaves at round to
// nearest even.
func EncodeFCVT(f float32) uint16

// DecodeFCVT converts binary16 bits to float32 with FCVT Sd, Hn.
func DecodeFCVT(h uint16) float32
