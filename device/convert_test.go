// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdrreplay/replaytx/dataset"
)

func TestConvertToFixed12BitMatchesFixture(t *testing.T) {
	t.Parallel()
	convert := NewConvertToFixedFn(12)
	frames := []dataset.FrameData{
		{{I: 0.5, Q: -1.0}},
	}
	out := convert(frames, 1)
	require.Len(t, out, 2)
	require.Equal(t, int16(16368), out[0])
	require.Equal(t, int16(-32752), out[1])
}

func TestConvertToFixed16BitHasNoShift(t *testing.T) {
	t.Parallel()
	convert := NewConvertToFixedFn(16)
	frames := []dataset.FrameData{
		{{I: 1.0, Q: -1.0}},
	}
	out := convert(frames, 1)
	require.Equal(t, int16(32767), out[0])
	require.Equal(t, int16(-32767), out[1])
}

func TestConvertToFixedReusesBufferAcrossCalls(t *testing.T) {
	t.Parallel()
	convert := NewConvertToFixedFn(14)
	small := []dataset.FrameData{{{I: 0.1, Q: 0.1}}}
	large := []dataset.FrameData{
		{{I: 0.1, Q: 0.1}, {I: 0.2, Q: 0.2}},
	}
	out1 := convert(small, 1)
	require.Len(t, out1, 2)
	out2 := convert(large, 1)
	require.Len(t, out2, 4)
}
