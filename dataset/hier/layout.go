// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hier

import (
	"fmt"

	"github.com/sdrreplay/replaytx/errs"
	"github.com/sdrreplay/replaytx/modulation"
)

// modulationOrder is the fixed, documented row ordering of the
// hierarchical dataset: rows are grouped first by modulation in this
// exact sequence, then by SNR ascending within each modulation's
// slab, then by frame index within each SNR's sub-slab.
var modulationOrder = []modulation.Name{
	modulation.OOK, modulation.ASK4, modulation.ASK8,
	modulation.BPSK, modulation.QPSK, modulation.PSK8, modulation.PSK16, modulation.PSK32,
	modulation.APSK16, modulation.APSK32, modulation.APSK64, modulation.APSK128,
	modulation.QAM16, modulation.QAM32, modulation.QAM64, modulation.QAM128, modulation.QAM256,
	modulation.AMSSBWC, modulation.AMSSBSC, modulation.AMDSBWC, modulation.AMDSBSC,
	modulation.FM,
	modulation.GMSK,
	modulation.OQPSK,
}

// ModulationOrder returns the fixed modulation row ordering.
func ModulationOrder() []modulation.Name {
	out := make([]modulation.Name, len(modulationOrder))
	copy(out, modulationOrder)
	return out
}

// ModOffset returns the index of name within the modulation row
// ordering via a linear lookup, or an error if name does not appear
// in the hierarchical dataset's modulation set.
func ModOffset(name modulation.Name) (int, error) {
	for i, m := range modulationOrder {
		if m == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not a hierarchical-dataset modulation", errs.ErrInputFormat, name)
}

// Layout describes the row geometry derived from the total row count
// of the X dataset: MOD_SLAB = totalRows / len(modulationOrder), and
// SNR_SLAB = MOD_SLAB / snrCount.
type Layout struct {
	TotalRows int
	ModSlab   int
	SnrSlab   int
}

// NewLayout computes the row layout for totalRows, given the expected
// number of distinct modulations and SNRs. It returns
// errs.KindInputFormat if totalRows does not divide evenly, since an
// uneven division means the observed shape does not match the
// documented layout at all.
func NewLayout(totalRows, modulationsNr, snrsNr int) (Layout, error) {
	if modulationsNr <= 0 || snrsNr <= 0 {
		return Layout{}, fmt.Errorf("%w: invalid modulation/snr cardinality", errs.ErrInputFormat)
	}
	if totalRows%modulationsNr != 0 {
		return Layout{}, fmt.Errorf(
			"%w: %d rows does not divide evenly by %d modulations",
			errs.ErrInputFormat, totalRows, modulationsNr,
		)
	}
	modSlab := totalRows / modulationsNr
	if modSlab%snrsNr != 0 {
		return Layout{}, fmt.Errorf(
			"%w: modulation slab of %d rows does not divide evenly by %d SNRs",
			errs.ErrInputFormat, modSlab, snrsNr,
		)
	}
	snrSlab := modSlab / snrsNr
	return Layout{TotalRows: totalRows, ModSlab: modSlab, SnrSlab: snrSlab}, nil
}

// SnrIndexAndDb returns the SNR index and SNR in dB for rowWithinModSlab,
// the row number relative to the start of a modulation's slab (i.e.
// row mod ModSlab). SNR is an equidistant grid starting at -20dB in
// +2dB steps.
func (l Layout) SnrIndexAndDb(rowWithinModSlab int) (index, snrDb int) {
	index = rowWithinModSlab / l.SnrSlab
	snrDb = -20 + 2*index
	return index, snrDb
}

// ModSlabStart returns the first row index of the slab belonging to
// modOffset.
func (l Layout) ModSlabStart(modOffset int) int {
	return modOffset * l.ModSlab
}
