// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
profiles:
  - name: bench-a
    uri: usb:1.2
    lo_hz: 915000000
    hw_gain_db: 10
  - name: lab-b
    uri: ip:10.0.0.2
`

func TestParseDecodesEveryProfile(t *testing.T) {
	t.Parallel()
	f, err := Parse(strings.NewReader(fixtureYAML))
	require.NoError(t, err)
	require.Len(t, f.Profiles, 2)
	require.Equal(t, "bench-a", f.Profiles[0].Name)
	require.Equal(t, float64(915000000), f.Profiles[0].LOHz)
	require.Equal(t, float64(10), f.Profiles[0].HWGainDb)
}

func TestParseRejectsProfileWithoutURI(t *testing.T) {
	t.Parallel()
	_, err := Parse(strings.NewReader("profiles:\n  - name: bad\n"))
	require.Error(t, err)
}

func TestFindMatchesByURI(t *testing.T) {
	t.Parallel()
	f, err := Parse(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	p, ok := f.Find("ip:10.0.0.2")
	require.True(t, ok)
	require.Equal(t, "lab-b", p.Name)

	_, ok = f.Find("usb:9.9")
	require.False(t, ok)
}
