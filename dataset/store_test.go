// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdrreplay/replaytx/modulation"
)

func makeFrames(n, length int, i, q float32) []FrameData {
	frames := make([]FrameData, n)
	for f := range frames {
		frame := make(FrameData, length)
		for p := range frame {
			frame[p] = IQPoint{I: i, Q: q}
		}
		frames[f] = frame
	}
	return frames
}

func TestSignalDataMaxAbs(t *testing.T) {
	t.Parallel()
	frames := makeFrames(2, 4, 1, -2)
	sd, err := NewSignalData(frames, Constants{FrameLength: 4, FramesPerCombo: 2})
	require.NoError(t, err)
	require.Equal(t, float32(2), sd.MaxAbs)
	require.Equal(t, sd.MaxAbs, ComputeMaxAbs(sd.Frames))
}

func TestSignalDataRejectsAllZero(t *testing.T) {
	t.Parallel()
	frames := makeFrames(2, 4, 0, 0)
	_, err := NewSignalData(frames, Constants{FrameLength: 4, FramesPerCombo: 2})
	require.Error(t, err)
}

func TestSignalDataRejectsWrongShape(t *testing.T) {
	t.Parallel()
	frames := makeFrames(3, 4, 1, 1)
	_, err := NewSignalData(frames, Constants{FrameLength: 4, FramesPerCombo: 2})
	require.Error(t, err)

	frames = makeFrames(2, 5, 1, 1)
	_, err = NewSignalData(frames, Constants{FrameLength: 4, FramesPerCombo: 2})
	require.Error(t, err)
}

func TestBuilderRejectsDuplicateKey(t *testing.T) {
	t.Parallel()
	b := NewBuilder(TupleSerialized)
	sd, err := NewSignalData(makeFrames(1000, 128, 1, 1), ConstantsFor(TupleSerialized))
	require.NoError(t, err)

	key := Key{Modulation: modulation.QPSK, SnrDb: -4}
	require.NoError(t, b.Insert(key, sd))
	require.Error(t, b.Insert(key, sd))
}

func TestBuilderValidatesCardinality(t *testing.T) {
	t.Parallel()
	b := NewBuilder(TupleSerialized)
	sd, err := NewSignalData(makeFrames(1000, 128, 1, 2), ConstantsFor(TupleSerialized))
	require.NoError(t, err)
	require.NoError(t, b.Insert(Key{Modulation: modulation.QPSK, SnrDb: -4}, sd))

	// Only one distinct modulation/SNR inserted; spec requires 11 and
	// 20 respectively for TupleSerialized.
	_, err = b.Build()
	require.Error(t, err)
}

func TestStoreOrderedDedup(t *testing.T) {
	t.Parallel()
	b := NewBuilder(TupleSerialized)
	sd, err := NewSignalData(makeFrames(1000, 128, 1, 2), ConstantsFor(TupleSerialized))
	require.NoError(t, err)

	mods := []modulation.Name{
		modulation.BPSK, modulation.QPSK, modulation.PSK8, modulation.QAM16,
		modulation.QAM64, modulation.CPFSK, modulation.GFSK, modulation.PAM4,
		modulation.FM, modulation.AMDSB, modulation.AMSSB,
	}
	require.Len(t, mods, 11)

	for _, m := range mods {
		for snr := -20; snr < -20+20; snr++ {
			require.NoError(t, b.Insert(Key{Modulation: m, SnrDb: snr}, sd))
		}
	}

	store, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 11, len(store.Modulations()))
	require.Equal(t, 20, len(store.Snrs()))

	got, ok := store.Lookup(Key{Modulation: modulation.QPSK, SnrDb: -4})
	require.True(t, ok)
	require.Equal(t, sd, got)
}
