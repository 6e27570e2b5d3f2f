// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/errs"
	"github.com/sdrreplay/replaytx/modulation"
)

// fakeDecoder is a small, fully in-memory stand-in for the real
// hierarchical container decoder. Tests drive it with a scaled-down
// dataset.Constants so the full Parse algorithm runs against a tiny
// slab instead of the real dataset's ~800MB-per-modulation one.
type fakeDecoder struct {
	totalRows   int
	frameLength int
	modsNr      int
	badDescribe bool
	badRead     bool
}

func (f *fakeDecoder) Describe(path string) (x, y, z DatasetInfo, err error) {
	if f.badDescribe {
		return DatasetInfo{}, DatasetInfo{}, DatasetInfo{}, fmt.Errorf("boom")
	}
	x = DatasetInfo{Dims: []int{f.totalRows, f.frameLength, 2}, Float: true}
	y = DatasetInfo{Dims: []int{f.totalRows, f.modsNr}, Float: false}
	z = DatasetInfo{Dims: []int{f.totalRows, 1}, Float: false}
	return x, y, z, nil
}

func (f *fakeDecoder) ReadXRows(path string, rowStart, rowCount, frameLength int) ([]float32, error) {
	if f.badRead {
		return nil, fmt.Errorf("alloc failed")
	}
	out := make([]float32, rowCount*frameLength*2)
	for row := 0; row < rowCount; row++ {
		globalRow := rowStart + row
		for p := 0; p < frameLength; p++ {
			base := row*frameLength*2 + p*2
			out[base] = float32(globalRow)
			out[base+1] = float32(globalRow) + 0.5
		}
	}
	return out, nil
}

// smallConstants mirrors the real HierarchicalScientific cardinality
// (24 modulations, 26 SNRs, since ModOffset and layout math are
// keyed to the fixed modulationOrder table) but shrinks FrameLength
// and FramesPerCombo so tests allocate kilobytes, not hundreds of
// megabytes.
func smallConstants() dataset.Constants {
	return dataset.Constants{FrameLength: 4, FramesPerCombo: 3, ModulationsNr: 24, SnrsNr: 26}
}

func TestSlabMathMatchesRealDimensions(t *testing.T) {
	t.Parallel()
	constants := dataset.ConstantsFor(dataset.HierarchicalScientific)
	layout, err := NewLayout(2555904, constants.ModulationsNr, constants.SnrsNr)
	require.NoError(t, err)
	require.Equal(t, 106496, layout.ModSlab)
	require.Equal(t, constants.FramesPerCombo, layout.SnrSlab)
}

func TestHierParseRejectsBadShape(t *testing.T) {
	t.Parallel()
	dec := &fakeDecoder{totalRows: 100, frameLength: 4, modsNr: 24}
	_, err := Parse(dec, "fake.h5", modulation.FM, smallConstants())
	require.Error(t, err)
}

func TestHierParseDescribeFailure(t *testing.T) {
	t.Parallel()
	dec := &fakeDecoder{badDescribe: true}
	_, err := Parse(dec, "fake.h5", modulation.FM, smallConstants())
	require.Error(t, err)
}

func TestHierParseUnknownModulation(t *testing.T) {
	t.Parallel()
	c := smallConstants()
	dec := &fakeDecoder{
		totalRows:   c.ModulationsNr * c.SnrsNr * c.FramesPerCombo,
		frameLength: c.FrameLength,
		modsNr:      c.ModulationsNr,
	}
	_, err := Parse(dec, "fake.h5", modulation.CPFSK, c)
	require.Error(t, err)
}

func TestHierParseAllocFailureIsResourceExhausted(t *testing.T) {
	t.Parallel()
	c := smallConstants()
	dec := &fakeDecoder{
		totalRows:   c.ModulationsNr * c.SnrsNr * c.FramesPerCombo,
		frameLength: c.FrameLength,
		modsNr:      c.ModulationsNr,
		badRead:     true,
	}
	_, err := Parse(dec, "fake.h5", modulation.FM, c)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrResourceExhausted))
}

func TestHierParseEndToEnd(t *testing.T) {
	t.Parallel()
	c := smallConstants()
	totalRows := c.ModulationsNr * c.SnrsNr * c.FramesPerCombo
	dec := &fakeDecoder{totalRows: totalRows, frameLength: c.FrameLength, modsNr: c.ModulationsNr}

	store, err := Parse(dec, "fake.h5", modulation.FM, c)
	require.NoError(t, err)
	require.Equal(t, []modulation.Name{modulation.FM}, store.Modulations())
	require.Len(t, store.Snrs(), c.SnrsNr)

	sd, ok := store.Lookup(dataset.Key{Modulation: modulation.FM, SnrDb: -20})
	require.True(t, ok)
	require.Len(t, sd.Frames, c.FramesPerCombo)
	require.Len(t, sd.Frames[0], c.FrameLength)

	modOffset, err := ModOffset(modulation.FM)
	require.NoError(t, err)
	layout, err := NewLayout(totalRows, c.ModulationsNr, c.SnrsNr)
	require.NoError(t, err)
	wantFirstI := float32(layout.ModSlabStart(modOffset))
	require.Equal(t, wantFirstI, sd.Frames[0][0].I)
	require.Equal(t, wantFirstI+0.5, sd.Frames[0][0].Q)
}
