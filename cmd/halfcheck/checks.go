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

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/half/verify"
)

func parseRanges(s string) ([]verify.Range, error) {
	switch strings.TrimSpace(s) {
	case "boundary":
		return verify.Boundary(), nil
	case "full":
		return verify.Full(), nil
	case "none", "":
		return nil, nil
	}
	var result []verify.Range
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		exp, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exponent %q in -range", p)
		}
		result = append(result, verify.ExponentRange(uint8(exp))...)
	}
	return result, nil
}

// referenceOf returns the variant v is checked against, the inputs the check
// is restricted to, and whether mismatches count as failures.
func referenceOf(v half.Variant) (ref half.Variant, filter verify.Filter, strict bool) {
	switch v {
	case half.VariantReference, half.VariantFast, half.VariantFast2, half.VariantFast3:
		return half.VariantReference, nil, true
	case half.VariantApproximate:
		return half.VariantReference, verify.Finite, false
	case half.VariantNative:
		// The instructions keep NaN payloads.
		return half.VariantReferenceRTNE, verify.Finite, true
	default:
		return half.VariantReferenceRTNE, nil, true
	}
}

type plannedCheck struct {
	verify.Check
	Variant half.Variant
}

// buildChecks pairs each variant with its reference. References are not
// compared with themselves.
func buildChecks(variants []half.Variant, ranges []verify.Range) []plannedCheck {
	var checks []plannedCheck
	for _, v := range variants {
		ref, filter, strict := referenceOf(v)
		if ref == v {
			continue
		}
		checks = append(checks, plannedCheck{
			Check: verify.Check{
				Name:   ref.String() + "/" + v.String(),
				Want:   half.EncodeFunc(ref),
				Got:    half.EncodeFunc(v),
				Filter: filter,
				Ranges: ranges,
				Strict: strict,
			},
			Variant: v,
		})
	}
	return checks
}

func printReport(w io.Writer, kind string, report verify.Report, strict bool) {
	status := "ok"
	if !report.OK() {
		status = "FAIL"
		if !strict {
			status = "differs"
		}
	}
	fmt.Fprintf(w, "%-9s %-28s %-7s checked=%d mismatches=%d\n", kind, report.Name, status, report.Checked, report.Total)
	for _, m := range report.Mismatches {
		fmt.Fprintf(w, "    %s\n", m)
	}
}

// options select what run checks.
type options struct {
	Variants []half.Variant
	Ranges   []verify.Range

	// Sample is the number of random inputs per variant, 0 to skip sampling.
	Sample uint64
	Seed   uint64

	RoundTrip bool
}

// run executes the range sweep, the random sample and the round trip for
// every variant, printing one line per check. It returns whether a strict
// check failed; err is only set when the run was interrupted.
func run(ctx context.Context, w io.Writer, c *verify.Checker, opts options) (failed bool, err error) {
	planned := buildChecks(opts.Variants, opts.Ranges)

	if len(opts.Ranges) > 0 {
		// Non-strict for the suite so that every check runs to completion;
		// failures are decided below.
		checks := make([]verify.Check, len(planned))
		for i, p := range planned {
			checks[i] = p.Check
			checks[i].Strict = false
		}
		reports, err := verify.RunSuite(ctx, c, checks...)
		if err != nil {
			return failed, err
		}
		for i, report := range reports {
			printReport(w, "range", report, planned[i].Strict)
			failed = failed || (planned[i].Strict && !report.OK())
		}
	}

	if opts.Sample > 0 {
		for _, p := range planned {
			report, err := c.Sample(ctx, p.Want, p.Got, p.Filter, opts.Sample, opts.Seed)
			if err != nil {
				return failed, err
			}
			report.Name = p.Name
			printReport(w, "sample", report, p.Strict)
			failed = failed || (p.Strict && !report.OK())
		}
	}

	if opts.RoundTrip {
		for _, v := range opts.Variants {
			report, err := c.RoundTrip(ctx, half.Float16ToFloat32, half.EncodeFunc(v))
			if err != nil {
				return failed, err
			}
			report.Name = v.String()
			printReport(w, "roundtrip", report, true)
			failed = failed || !report.OK()
		}
	}
	return failed, nil
}
