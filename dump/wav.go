// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dump

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/device"
	"github.com/sdrreplay/replaytx/helpers/callback"
	"github.com/sdrreplay/replaytx/helpers/wav"
)

// WriteWavFn writes sd's first two frames to out as a 2-channel,
// 16-bit PCM WAV file: the I component on the left channel and the Q
// component on the right, the same layout the receive-side wav
// tooling used for captured samples, so a dumped frame can be played
// or inspected in any audio editor.
type WriteWavFn func(out io.Writer, sampleRateHz uint32, sd dataset.SignalData) error

// NewWriteWav creates a WriteWavFn. bitWidth selects the fixed-point
// scale the I/Q components are converted to before writing, matching
// the scale a device.DeviceCore of that DAC width would push.
func NewWriteWav(bitWidth uint) WriteWavFn {
	convert := device.NewConvertToFixedFn(bitWidth)
	write := callback.NewWrite(wav.NativeOrder)
	return func(out io.Writer, sampleRateHz uint32, sd dataset.SignalData) error {
		frames := sd.Frames
		if len(frames) > maxDumpFrames {
			frames = frames[:maxDumpFrames]
		}
		samples := convert(frames, sd.MaxAbs)
		numFrames := uint32(len(samples) / 2)

		head, err := wav.NewHeader(sampleRateHz, 2, 2, wav.LPCM, wav.NativeOrder, numFrames)
		if err != nil {
			return fmt.Errorf("dump: build wav header: %w", err)
		}
		if err := binary.Write(out, wav.NativeOrder, head); err != nil {
			return fmt.Errorf("dump: write wav header: %w", err)
		}
		if _, err := write(out, samples); err != nil {
			return fmt.Errorf("dump: write wav samples: %w", err)
		}
		return nil
	}
}
