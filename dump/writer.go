// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sdrreplay/replaytx/dataset"
)

// maxDumpFrames is the number of leading frames written to a dump
// file; the rest of a SignalData is never dumped.
const maxDumpFrames = 2

// WriteFn writes sd's first two frames to out as "sampleIndex i q"
// lines and returns the number of samples written. It uses a
// persistent internal buffer across calls to avoid per-call
// allocation, the same trade-off callback.NewWrite makes for binary
// sample writes.
type WriteFn func(out io.Writer, sd dataset.SignalData) (int, error)

// NewWrite creates a WriteFn backed by a reusable line buffer.
func NewWrite() WriteFn {
	buf := make([]byte, 0, 64)
	return func(out io.Writer, sd dataset.SignalData) (int, error) {
		frames := sd.Frames
		if len(frames) > maxDumpFrames {
			frames = frames[:maxDumpFrames]
		}
		idx := 0
		for _, frame := range frames {
			for _, pt := range frame {
				buf = buf[:0]
				buf = strconv.AppendInt(buf, int64(idx), 10)
				buf = append(buf, ' ')
				buf = strconv.AppendFloat(buf, float64(pt.I), 'g', -1, 32)
				buf = append(buf, ' ')
				buf = strconv.AppendFloat(buf, float64(pt.Q), 'g', -1, 32)
				buf = append(buf, '\n')
				if _, err := out.Write(buf); err != nil {
					return idx, fmt.Errorf("dump: write sample %d: %w", idx, err)
				}
				idx++
			}
		}
		return idx, nil
	}
}
