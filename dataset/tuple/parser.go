// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tuple

import (
	"fmt"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/errs"
	"github.com/sdrreplay/replaytx/modulation"
)

// Decoder is the black-box object-serialization decoder this package
// depends on. It hands back the dataset's single flat dict-literal
// representation; how it gets there (unpickling, deserializing a
// MAT-file variant, or anything else) is out of scope for this
// module.
type Decoder interface {
	DecodeText(path string) (string, error)
}

// Parse interprets a decoded dict-literal string into a dataset.Store.
// It never panics: every malformed-input path returns an
// errs.KindInputFormat error and leaves the caller's existing store
// untouched, since a Store is only ever produced here after every key
// has been validated by Builder.Build.
func Parse(text string) (*dataset.Store, error) {
	constants := dataset.ConstantsFor(dataset.TupleSerialized)
	builder := dataset.NewBuilder(dataset.TupleSerialized)

	pos := 0
	for {
		keyStart, ok := findNextKeyStart(text, pos)
		if !ok {
			break
		}
		k, afterKey, err := parseKey(text, keyStart)
		if err != nil {
			return nil, err
		}

		floats, afterVal, err := parseValueFloats(text, afterKey)
		if err != nil {
			return nil, err
		}
		pos = afterVal

		wantCount := constants.FrameLength * constants.FramesPerCombo * 2
		if len(floats) != wantCount {
			return nil, fmt.Errorf(
				"%w: modulation %s snr %d: expected %d floats, got %d",
				errs.ErrInputFormat, k.modText, k.snrDb, wantCount, len(floats),
			)
		}

		modName := modulation.Lookup(k.modText)
		if modName == modulation.Unknown {
			return nil, fmt.Errorf(
				"%w: unrecognized modulation alias %q", errs.ErrInputFormat, k.modText,
			)
		}

		frames, err := reshape(floats, constants.FrameLength, constants.FramesPerCombo)
		if err != nil {
			return nil, err
		}
		sd, err := dataset.NewSignalData(frames, constants)
		if err != nil {
			return nil, err
		}

		key := dataset.Key{Modulation: modName, SnrDb: k.snrDb}
		if err := builder.Insert(key, sd); err != nil {
			return nil, err
		}
	}

	return builder.Build()
}

// ParseFile decodes path with dec and parses the result.
func ParseFile(dec Decoder, path string) (*dataset.Store, error) {
	text, err := dec.DecodeText(path)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", errs.ErrInputFormat, path, err)
	}
	return Parse(text)
}

// reshape splits a flat float slice of length frameLength*frames*2
// into frames frames of frameLength (I,Q) points. The first half of
// the flat slice is the I-stream, the second half the Q-stream, each
// laid out frame-major.
func reshape(floats []float64, frameLength, frames int) ([]dataset.FrameData, error) {
	half := frameLength * frames
	if len(floats) != half*2 {
		return nil, fmt.Errorf("%w: float count %d does not match frame*2 layout", errs.ErrInputFormat, len(floats))
	}
	iStream := floats[:half]
	qStream := floats[half:]

	out := make([]dataset.FrameData, frames)
	for f := 0; f < frames; f++ {
		frame := make(dataset.FrameData, frameLength)
		base := f * frameLength
		for p := 0; p < frameLength; p++ {
			frame[p] = dataset.IQPoint{
				I: float32(iStream[base+p]),
				Q: float32(qStream[base+p]),
			}
		}
		out[f] = frame
	}
	return out, nil
}
