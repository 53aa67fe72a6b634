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

package asm_test

// nativeInputs are finite float32 patterns around the rounding and range
// boundaries of binary16.
var nativeInputs = []uint32{
	0x00000000, 0x80000000, 0x00000001, 0x807FFFFF,
	0x33000000, 0x33000001, 0x33800000, 0x33C00000, 0x34200000,
	0x387FC000, 0x387FE000, 0x38800000,
	0x3F800000, 0x3F801000, 0x3F801001, 0x3F803000, 0xBF801000,
	0x477FE000, 0x477FEFFF, 0x477FF000, 0x47800000, 0x7F7FFFFF, 0xFF7FFFFF,
	0x7F800000, 0xFF800000,
}
