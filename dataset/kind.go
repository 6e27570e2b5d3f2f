// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dataset

// Kind identifies which of the three on-disk formats a dataset came
// from.
type Kind int

const (
	// TupleSerialized is the RadioML-2016-style container: a decoded
	// dict-literal string keyed by ('<modName>', snr_dB) tuples.
	TupleSerialized Kind = iota
	// HierarchicalScientific is the RadioML-2018-style container: three
	// root datasets X, Y, Z read one modulation slab at a time.
	HierarchicalScientific
	// TextTabular is the HisarMod-2019-style CSV of complex tokens.
	TextTabular
)

func (k Kind) String() string {
	switch k {
	case TupleSerialized:
		return "TupleSerialized"
	case HierarchicalScientific:
		return "HierarchicalScientific"
	case TextTabular:
		return "TextTabular"
	default:
		return "Unknown"
	}
}

// Constants is the per-Kind shape table: the frame length in (I,Q)
// points, the number of frames stored per (modulation, SNR)
// combination, and the expected cardinality of distinct modulations
// and distinct SNR values after a successful parse.
type Constants struct {
	FrameLength    int
	FramesPerCombo int
	ModulationsNr  int
	SnrsNr         int
}

// constantsTable is keyed by Kind and holds the fixed shape values
// from the dataset specification. These never change at runtime; a
// parser that observes a shape other than this table describes is
// reporting a malformed file, not updating the table.
var constantsTable = map[Kind]Constants{
	TupleSerialized:         {FrameLength: 128, FramesPerCombo: 1000, ModulationsNr: 11, SnrsNr: 20},
	HierarchicalScientific:  {FrameLength: 1024, FramesPerCombo: 4096, ModulationsNr: 24, SnrsNr: 26},
	TextTabular:             {FrameLength: 1024, FramesPerCombo: 500, ModulationsNr: 26, SnrsNr: 20},
}

// ConstantsFor returns the shape constants for kind.
func ConstantsFor(kind Kind) Constants {
	return constantsTable[kind]
}

// MinFrameLength returns the smallest FrameLength across all dataset
// kinds. The transmit HAL's sampling-rate policy uses this as the
// reference denominator of its ratio.
func MinFrameLength() int {
	min := -1
	for _, c := range constantsTable {
		if min == -1 || c.FrameLength < min {
			min = c.FrameLength
		}
	}
	return min
}
