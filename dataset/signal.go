// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"

	"github.com/sdrreplay/replaytx/errs"
)

// IQPoint is one complex baseband sample in host-normalized units.
type IQPoint struct {
	I float32
	Q float32
}

// FrameData is a fixed-length ordered sequence of IQPoint. Its length
// must match the owning dataset kind's FrameLength exactly; a parser
// that cannot fill a frame of the expected length must fail rather
// than return a short or long one.
type FrameData []IQPoint

// SignalData is an ordered sequence of equal-length frames captured at
// one (modulation, SNR) combination, plus the precomputed maximum
// absolute component value across every (I, Q) in every frame. MaxAbs
// is later used as the scaling denominator when converting to a
// device's fixed-point representation, so a SignalData whose samples
// are all zero cannot be loaded: it would make that denominator zero.
type SignalData struct {
	Frames []FrameData
	MaxAbs float32
}

// ComputeMaxAbs returns the maximum absolute value of any I or Q
// component across every frame in frames. It is also how SignalData's
// invariant is independently checked in tests: MaxAbs must always
// equal ComputeMaxAbs(Frames).
func ComputeMaxAbs(frames []FrameData) float32 {
	var max float32
	for _, frame := range frames {
		for _, pt := range frame {
			if a := abs32(pt.I); a > max {
				max = a
			}
			if a := abs32(pt.Q); a > max {
				max = a
			}
		}
	}
	return max
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// NewSignalData builds a SignalData from frames, validating the frame
// count and per-frame length against constants and computing MaxAbs.
// It returns errs.KindInputFormat if the shape is wrong or if all
// samples are zero (MaxAbs would be zero, which later divides).
func NewSignalData(frames []FrameData, constants Constants) (SignalData, error) {
	if len(frames) != constants.FramesPerCombo {
		return SignalData{}, fmt.Errorf(
			"%w: expected %d frames, got %d",
			errs.ErrInputFormat, constants.FramesPerCombo, len(frames),
		)
	}
	for i, frame := range frames {
		if len(frame) != constants.FrameLength {
			return SignalData{}, fmt.Errorf(
				"%w: frame %d has %d points, want %d",
				errs.ErrInputFormat, i, len(frame), constants.FrameLength,
			)
		}
	}
	maxAbs := ComputeMaxAbs(frames)
	if maxAbs == 0 {
		return SignalData{}, fmt.Errorf(
			"%w: all-zero signal data has maxAbs == 0", errs.ErrInputFormat,
		)
	}
	return SignalData{Frames: frames, MaxAbs: maxAbs}, nil
}
