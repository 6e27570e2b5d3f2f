// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hier

import (
	"fmt"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/errs"
	"github.com/sdrreplay/replaytx/modulation"
)

// Parse reads only the slab belonging to wanted from the hierarchical
// container at path, using dec to access its root datasets, and
// returns a Store holding one SignalData per SNR observed in that
// slab (26 of them, per the dataset's SNR cardinality).
//
// Unlike the other two parsers, Parse never loads the full X cube: it
// computes the byte range for wanted's modulation slab from the
// implicit row layout and asks the decoder for exactly that range.
//
// constants is normally dataset.ConstantsFor(dataset.HierarchicalScientific);
// it is a parameter rather than hard-coded so tests can exercise the
// full algorithm against a scaled-down frame length and frame count
// without allocating the real dataset's ~800MB-per-modulation slab.
func Parse(dec Decoder, path string, wanted modulation.Name, constants dataset.Constants) (*dataset.Store, error) {
	xInfo, yInfo, zInfo, err := dec.Describe(path)
	if err != nil {
		return nil, fmt.Errorf("%w: describe %s: %v", errs.ErrInputFormat, path, err)
	}
	if err := validateShapes(xInfo, yInfo, zInfo, constants); err != nil {
		return nil, err
	}

	totalRows := xInfo.Dims[0]
	layout, err := NewLayout(totalRows, constants.ModulationsNr, constants.SnrsNr)
	if err != nil {
		return nil, err
	}

	modOffset, err := ModOffset(wanted)
	if err != nil {
		return nil, err
	}
	rowStart := layout.ModSlabStart(modOffset)
	rowCount := layout.ModSlab

	slab, err := dec.ReadXRows(path, rowStart, rowCount, constants.FrameLength)
	if err != nil {
		byteCount := int64(rowCount) * int64(constants.FrameLength) * 2 * 4
		return nil, fmt.Errorf(
			"%w: failed to allocate %d-byte slab for modulation %s: %v",
			errs.ErrResourceExhausted, byteCount, wanted, err,
		)
	}
	wantFloats := rowCount * constants.FrameLength * 2
	if len(slab) != wantFloats {
		return nil, fmt.Errorf(
			"%w: slab has %d floats, want %d", errs.ErrInputFormat, len(slab), wantFloats,
		)
	}

	builder := dataset.NewBuilder(dataset.HierarchicalScientific)
	groups := make([][]dataset.FrameData, constants.SnrsNr)
	for i := range groups {
		groups[i] = make([]dataset.FrameData, 0, layout.SnrSlab)
	}

	for row := 0; row < rowCount; row++ {
		frame := make(dataset.FrameData, constants.FrameLength)
		base := row * constants.FrameLength * 2
		for p := 0; p < constants.FrameLength; p++ {
			frame[p] = dataset.IQPoint{
				I: slab[base+p*2],
				Q: slab[base+p*2+1],
			}
		}
		snrIndex, _ := layout.SnrIndexAndDb(row)
		groups[snrIndex] = append(groups[snrIndex], frame)
	}

	for snrIndex, frames := range groups {
		_, snrDb := layout.SnrIndexAndDb(snrIndex * layout.SnrSlab)
		sd, err := dataset.NewSignalData(frames, constants)
		if err != nil {
			return nil, err
		}
		key := dataset.Key{Modulation: wanted, SnrDb: snrDb}
		if err := builder.Insert(key, sd); err != nil {
			return nil, err
		}
	}

	return builder.BuildSingleModulation()
}

func validateShapes(x, y, z DatasetInfo, constants dataset.Constants) error {
	if !x.Float {
		return fmt.Errorf("%w: X dataset is not floating point", errs.ErrInputFormat)
	}
	if len(x.Dims) != 3 || x.Dims[1] != constants.FrameLength || x.Dims[2] != 2 {
		return fmt.Errorf("%w: unexpected X dataset shape %v", errs.ErrInputFormat, x.Dims)
	}
	if len(y.Dims) != 2 || y.Dims[0] != x.Dims[0] || y.Dims[1] != constants.ModulationsNr {
		return fmt.Errorf("%w: unexpected Y dataset shape %v", errs.ErrInputFormat, y.Dims)
	}
	if len(z.Dims) != 2 || z.Dims[0] != x.Dims[0] || z.Dims[1] != 1 {
		return fmt.Errorf("%w: unexpected Z dataset shape %v", errs.ErrInputFormat, z.Dims)
	}
	return nil
}
