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

// Command halfcheck compares the float32 -> float16 encoders of package half
// against their references on this machine, including the native conversion
// instruction when the CPU has one.
//
// Usage:
//
//	halfcheck                                   # all variants, boundary exponents
//	halfcheck -range full                       # all 2^32 inputs
//	halfcheck -variants fast3_rtne,native -range 112,113,142
//	halfcheck -sample 100000000 -seed 7 -v 2    # random inputs, verbose logs
//
// Each variant is compared with the reference of its rounding family:
// reference for the round-half-up encoders, reference_rtne for the
// round-to-nearest-even ones. The approximate encoder is reported but never
// fails the run. The exit status is 1 if any other check finds a mismatch.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/half/verify"
)

var (
	variantsFlag = flag.String("variants", "all", "Comma-separated variants ("+strings.Join(half.VariantStrings(), ",")+") or 'all'")
	rangeFlag    = flag.String("range", "boundary", "Inputs to sweep: 'boundary', 'full', 'none' or comma-separated float32 exponent fields")
	sampleFlag   = flag.Uint64("sample", 1<<24, "Number of random inputs compared per variant, on top of -range")
	seedFlag     = flag.Uint64("seed", 1, "Seed of the random inputs")
	workersFlag  = flag.Int("workers", 0, "Number of workers (default: GOMAXPROCS)")
	roundTrip    = flag.Bool("roundtrip", true, "Also check that every non-NaN half survives decode+encode")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	variants, err := parseVariants(*variantsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}
	ranges, err := parseRanges(*rangeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := verify.New(*workersFlag)
	defer c.Close()

	fmt.Printf("active converter: %s (native: %v)\n", half.Active().Name(), half.HasNative())
	failed, err := run(ctx, os.Stdout, c, options{
		Variants:  variants,
		Ranges:    ranges,
		Sample:    *sampleFlag,
		Seed:      *seedFlag,
		RoundTrip: *roundTrip,
	})
	if err != nil {
		klog.Errorf("halfcheck: %v", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

func parseVariants(s string) ([]half.Variant, error) {
	var result []half.Variant
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return half.VariantValues(), nil
		}
		v, err := half.ParseVariant(p)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if len(result) == 0 {
		return nil, errors.New("no variants given")
	}
	return result, nil
}
