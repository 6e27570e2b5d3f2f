// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tuple

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sdrreplay/replaytx/errs"
)

// key is one decoded ('<modName>', snr_dB) dict key.
type key struct {
	modText string
	snrDb   int
}

// findNextKeyStart returns the index of the next '(' in s at or after
// from that is immediately (modulo whitespace) followed by a quote
// character, which is how a key region is distinguished from the
// parenthesized nesting inside a value region.
func findNextKeyStart(s string, from int) (int, bool) {
	for i := from; i < len(s); i++ {
		if s[i] != '(' {
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		if j < len(s) && (s[j] == '\'' || s[j] == '"') {
			return i, true
		}
	}
	return -1, false
}

// parseKey reads a key tuple starting at s[start] == '(' and returns
// the decoded key plus the index just past the key's closing ')'.
func parseKey(s string, start int) (key, int, error) {
	i := start + 1
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i >= len(s) || (s[i] != '\'' && s[i] != '"') {
		return key{}, 0, fmt.Errorf("%w: key missing opening quote", errs.ErrInputFormat)
	}
	quote := s[i]
	qStart := i + 1
	qEnd := strings.IndexByte(s[qStart:], quote)
	if qEnd < 0 {
		return key{}, 0, fmt.Errorf("%w: unclosed quote in key", errs.ErrInputFormat)
	}
	modText := s[qStart : qStart+qEnd]
	i = qStart + qEnd + 1

	sepIdx := strings.Index(s[i:], ", ")
	if sepIdx < 0 {
		return key{}, 0, fmt.Errorf("%w: missing ', ' separator in key", errs.ErrInputFormat)
	}
	i += sepIdx + len(", ")

	numEnd := i
	for numEnd < len(s) && (s[numEnd] == '-' || (s[numEnd] >= '0' && s[numEnd] <= '9')) {
		numEnd++
	}
	if numEnd == i {
		return key{}, 0, fmt.Errorf("%w: missing snr integer in key", errs.ErrInputFormat)
	}
	snr, err := strconv.Atoi(s[i:numEnd])
	if err != nil {
		return key{}, 0, fmt.Errorf("%w: invalid snr integer: %v", errs.ErrInputFormat, err)
	}

	closeIdx := strings.IndexByte(s[numEnd:], ')')
	if closeIdx < 0 {
		return key{}, 0, fmt.Errorf("%w: unclosed key tuple", errs.ErrInputFormat)
	}
	return key{modText: modText, snrDb: snr}, numEnd + closeIdx + 1, nil
}

// parseValueFloats locates the next '[' ... ']' bracketed list at or
// after from, tokenizes its contents by commas into floats, and
// returns them plus the index just past the closing ']'.
func parseValueFloats(s string, from int) ([]float64, int, error) {
	open := strings.IndexByte(s[from:], '[')
	if open < 0 {
		return nil, 0, fmt.Errorf("%w: missing value list", errs.ErrInputFormat)
	}
	open += from
	closeIdx := strings.IndexByte(s[open:], ']')
	if closeIdx < 0 {
		return nil, 0, fmt.Errorf("%w: unclosed value list", errs.ErrInputFormat)
	}
	closeIdx += open

	body := s[open+1 : closeIdx]
	if strings.TrimSpace(body) == "" {
		return nil, closeIdx + 1, nil
	}
	tokens := strings.Split(body, ",")
	floats := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid float %q: %v", errs.ErrInputFormat, tok, err)
		}
		floats = append(floats, v)
	}
	return floats, closeIdx + 1, nil
}
