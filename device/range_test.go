// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeF64ContainsBoundaries(t *testing.T) {
	t.Parallel()
	r := RangeF64{Min: 70_000_000, Step: 1, Max: 6_000_000_000}
	require.False(t, r.Contains(69_999_999))
	require.True(t, r.Contains(70_000_000))
	require.True(t, r.Contains(6_000_000_000))
}

func TestRangeF64PinnedOnlyContainsItself(t *testing.T) {
	t.Parallel()
	r := RangeF64{Min: 100, Step: 0, Max: 100}
	require.True(t, r.Contains(100))
	require.False(t, r.Contains(101))
}

func TestParseRangeF64MatchesAttrBusFixture(t *testing.T) {
	t.Parallel()
	r, err := ParseRangeF64("[2083333 1 61440000]")
	require.NoError(t, err)
	require.Equal(t, RangeF64{Min: 2083333, Step: 1, Max: 61440000}, r)
}

func TestParseRangeF64RejectsWrongFieldCount(t *testing.T) {
	t.Parallel()
	_, err := ParseRangeF64("[1 2]")
	require.Error(t, err)
}

func TestParseRangeF64RejectsMinGreaterThanMax(t *testing.T) {
	t.Parallel()
	_, err := ParseRangeF64("[10 1 5]")
	require.Error(t, err)
}
