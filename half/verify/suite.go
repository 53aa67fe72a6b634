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

package verify

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-half/half"
)

// Check is one named comparison of a suite.
type Check struct {
	Name   string
	Want   EncodeFunc
	Got    EncodeFunc
	Filter Filter
	Ranges []Range

	// Strict turns mismatches into an error that cancels the remaining checks.
	Strict bool
}

// VariantCheck builds a Check comparing two half variants over ranges.
func VariantCheck(want, got half.Variant, filter Filter, ranges ...Range) Check {
	return Check{
		Name:   want.String() + "/" + got.String(),
		Want:   half.EncodeFunc(want),
		Got:    half.EncodeFunc(got),
		Filter: filter,
		Ranges: ranges,
		Strict: true,
	}
}

// RunSuite runs checks concurrently on c and returns one report per check,
// in the order given.
//
// The first strict check with mismatches, or the first context error, cancels
// the remaining checks and is returned. Reports of checks that did not finish
// are partial.
func RunSuite(ctx context.Context, c *Checker, checks ...Check) ([]Report, error) {
	reports := make([]Report, len(checks))
	g, gCtx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			report, err := c.Compare(gCtx, check.Want, check.Got, check.Filter, check.Ranges...)
			report.Name = check.Name
			reports[i] = report
			if err != nil {
				return errors.WithMessagef(err, "check %s", check.Name)
			}
			if check.Strict {
				return report.Err()
			}
			return nil
		})
	}
	return reports, g.Wait()
}
