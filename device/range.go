// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdrreplay/replaytx/errs"
)

// RangeI64 is a closed interval {min, step, max} over int64 values.
// When Step is zero the range is a single pinned value and Min must
// equal Max.
type RangeI64 struct {
	Min  int64
	Step int64
	Max  int64
}

// Contains reports whether v lies within the closed interval. A
// pinned range (Step == 0) only contains its single value.
func (r RangeI64) Contains(v int64) bool {
	if r.Step == 0 {
		return v == r.Min
	}
	return v >= r.Min && v <= r.Max
}

func (r RangeI64) String() string {
	return fmt.Sprintf("[%d %d %d]", r.Min, r.Step, r.Max)
}

// RangeF64 is a closed interval {min, step, max} over float64 values.
// When Step is zero the range is a single pinned value and Min must
// equal Max.
type RangeF64 struct {
	Min  float64
	Step float64
	Max  float64
}

// Contains reports whether v lies within the closed interval. A
// pinned range (Step == 0) only contains its single value.
func (r RangeF64) Contains(v float64) bool {
	if r.Step == 0 {
		return v == r.Min
	}
	return v >= r.Min && v <= r.Max
}

func (r RangeF64) String() string {
	return fmt.Sprintf("[%g %g %g]", r.Min, r.Step, r.Max)
}

// ParseRangeF64 parses the attribute bus's human-readable
// "[min step max]" form, as variant A's iio attribute bus returns for
// its tunable ranges (e.g. "sampling_frequency_available").
func ParseRangeF64(text string) (RangeF64, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return RangeF64{}, fmt.Errorf(
			"%w: range string %q does not have 3 fields", errs.ErrInputFormat, text,
		)
	}
	vals := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RangeF64{}, fmt.Errorf(
				"%w: range string %q field %d: %v", errs.ErrInputFormat, text, i, err,
			)
		}
		vals[i] = v
	}
	r := RangeF64{Min: vals[0], Step: vals[1], Max: vals[2]}
	if r.Min > r.Max {
		return RangeF64{}, fmt.Errorf(
			"%w: range string %q has min > max", errs.ErrInputFormat, text,
		)
	}
	return r, nil
}
