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

// Package asm holds the hardware float32 <-> float16 conversion routines used
// by package half. Each routine converts a single scalar and rounds to
// nearest even.
//
// On platforms without the instruction the exported functions panic; callers
// must check for support first (see half.HasNative).
package asm
