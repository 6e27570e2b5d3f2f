// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tabular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdrreplay/replaytx/errs"
)

// parseComplexToken parses one "I+Qi" or "I-Qi" token, e.g. "1.5+2.25i"
// or "-0.5-0.75i", into its real and imaginary parts.
//
// The token's leading sign, if any, belongs to the real part and must
// be skipped before searching for the inner sign that separates the
// real and imaginary parts: a naive scan for the first '+' or '-'
// would instead split "-0.5-0.75i" after just the leading minus.
func parseComplexToken(tok string) (i, q float64, err error) {
	if !strings.HasSuffix(tok, "i") {
		return 0, 0, fmt.Errorf("%w: complex token %q missing trailing i", errs.ErrInputFormat, tok)
	}
	body := tok[:len(tok)-1]

	scanFrom := 0
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		scanFrom = 1
	}

	splitAt := -1
	for idx := scanFrom; idx < len(body); idx++ {
		if body[idx] == '+' || body[idx] == '-' {
			splitAt = idx
			break
		}
	}
	if splitAt < 0 {
		return 0, 0, fmt.Errorf("%w: complex token %q has no imaginary sign", errs.ErrInputFormat, tok)
	}

	realPart := body[:splitAt]
	imagPart := body[splitAt:]

	i, err = strconv.ParseFloat(realPart, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: complex token %q real part: %v", errs.ErrInputFormat, tok, err)
	}
	q, err = strconv.ParseFloat(imagPart, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: complex token %q imaginary part: %v", errs.ErrInputFormat, tok, err)
	}
	return i, q, nil
}
