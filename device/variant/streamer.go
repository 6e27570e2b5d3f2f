// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/device"
	"github.com/sdrreplay/replaytx/errs"
)

// txChannelI and txChannelQ are the fixed I/Q transmit channel names
// on every variant's streaming device. Unlike the LO or NCO channel,
// which differs per family, every family's DDS/DMA core exposes its
// transmit pair under these two names.
const (
	txChannelI = "voltage0"
	txChannelQ = "voltage1"
)

// streamer holds the buffer-management state and logic shared by all
// three variants: loading a SignalData, converting it to fixed point,
// and pushing it into a cyclic DMA buffer. Each concrete variant
// embeds a streamer and supplies its own bus, streaming device name,
// and DAC bit width.
type streamer struct {
	bus          device.AttributeBus
	streamDevice string
	bitWidth     uint
	convert      device.ConvertToFixedFn

	loaded      bool
	frames      []dataset.FrameData
	maxAbs      float32
	frameLength int
	frameCount  int
}

func newStreamer(bus device.AttributeBus, streamDevice string, bitWidth uint) streamer {
	return streamer{
		bus:          bus,
		streamDevice: streamDevice,
		bitWidth:     bitWidth,
		convert:      device.NewConvertToFixedFn(bitWidth),
	}
}

func (s *streamer) loadSignal(sd dataset.SignalData) error {
	if len(sd.Frames) == 0 {
		return fmt.Errorf("%w: signal data has no frames", errs.ErrInputFormat)
	}
	s.frames = sd.Frames
	s.maxAbs = sd.MaxAbs
	s.frameCount = len(sd.Frames)
	s.frameLength = len(sd.Frames[0])
	s.loaded = true
	return nil
}

func (s *streamer) startStreaming() error {
	if !s.loaded {
		return fmt.Errorf("%w: no signal loaded", errs.ErrInputFormat)
	}
	size := s.frameLength * s.frameCount
	if err := s.bus.CreateBuffer(s.streamDevice, txChannelI, size); err != nil {
		return fmt.Errorf("%w: allocate %d-slot cyclic buffer: %v", errs.ErrAttributeIO, size, err)
	}
	samples := s.convert(s.frames, s.maxAbs)
	if err := s.bus.PushBuffer(s.streamDevice, samples); err != nil {
		return fmt.Errorf("%w: push tx buffer: %v", errs.ErrAttributeIO, err)
	}
	return nil
}

func (s *streamer) stopStreaming() error {
	const silenceSlots = 1024
	if err := s.bus.CreateBuffer(s.streamDevice, txChannelI, silenceSlots); err != nil {
		return fmt.Errorf("%w: allocate silence buffer: %v", errs.ErrAttributeIO, err)
	}
	zeros := make([]int16, silenceSlots*2)
	if err := s.bus.PushBuffer(s.streamDevice, zeros); err != nil {
		return fmt.Errorf("%w: push silence buffer: %v", errs.ErrAttributeIO, err)
	}
	return nil
}
