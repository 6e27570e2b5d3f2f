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

// Attribute names for variant C (axi-ad9081-tx-hpc /
// axi-ad9081-rx-hpc). This family has a different topology than A and
// B: there is no PHY device, and the Tx NCO, which stands in for an
// LO, is reached through the RX control device rather than the TX
// streaming device.
const (
	cStreamDevice = "axi-ad9081-tx-hpc"
	cCtrlDevice   = "axi-ad9081-rx-hpc"

	cNCOFreqAttr      = "main_nco_frequency"
	cNCOFreqRangeAttr = "main_nco_frequency_available"
	cSampleRateAttr   = "out_voltage0_sampling_frequency"
	cNCOGainAttr      = "voltage0_nco_gain_scale"
)

var cNCOGainRg = device.RangeF64{Min: 0, Step: 0.01, Max: 1}

// C is the mixed-signal front-end variant: ad9081, 16-bit DAC, with
// an NCO standing in for the analog LO and no bandwidth or hardware
// gain control at all.
type C struct {
	streamer
	init   bool
	params device.TxParameters
}

// NewC creates an uninitialized variant C bound to bus.
func NewC(bus device.AttributeBus) *C {
	return &C{
		streamer: newStreamer(bus, cStreamDevice, 16),
	}
}

func (c *C) Initialize(uri string) error {
	if _, err := c.streamer.bus.OpenContext(uri); err != nil {
		return fmt.Errorf("%w: open context %s: %v", errs.ErrDeviceMissing, uri, err)
	}
	if !c.streamer.bus.FindDevice(cStreamDevice) {
		return fmt.Errorf("%w: streaming device %s", errs.ErrDeviceMissing, cStreamDevice)
	}
	if !c.streamer.bus.FindDevice(cCtrlDevice) {
		return fmt.Errorf("%w: control device %s", errs.ErrDeviceMissing, cCtrlDevice)
	}
	if !c.streamer.bus.FindChannel(cStreamDevice, txChannelI) || !c.streamer.bus.FindChannel(cStreamDevice, txChannelQ) {
		return fmt.Errorf("%w: tx channels on %s", errs.ErrDeviceMissing, cStreamDevice)
	}
	if err := c.streamer.bus.EnableChannel(cStreamDevice, txChannelI); err != nil {
		return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, txChannelI, err)
	}
	if err := c.streamer.bus.EnableChannel(cStreamDevice, txChannelQ); err != nil {
		return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, txChannelQ, err)
	}
	if err := c.streamer.bus.CreateBuffer(cStreamDevice, txChannelI, 0); err != nil {
		return fmt.Errorf("%w: create zero-length buffer: %v", errs.ErrAttributeIO, err)
	}

	rangeText, err := c.streamer.bus.ReadAttr(cCtrlDevice, cNCOFreqRangeAttr)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", errs.ErrAttributeIO, cNCOFreqRangeAttr, err)
	}
	c.params.LORange, err = device.ParseRangeF64(rangeText)
	if err != nil {
		return err
	}

	rateText, err := c.streamer.bus.ReadAttr(cStreamDevice, cSampleRateAttr)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", errs.ErrAttributeIO, cSampleRateAttr, err)
	}
	var pinnedRate float64
	if _, err := fmt.Sscanf(rateText, "%g", &pinnedRate); err != nil {
		return fmt.Errorf("%w: parse %s value %q: %v", errs.ErrInputFormat, cSampleRateAttr, rateText, err)
	}
	c.params.SampleRateRg = device.RangeF64{Min: pinnedRate, Step: 0, Max: pinnedRate}
	c.params.NCOGainRg = cNCOGainRg

	c.init = true
	if err := c.SetSampleRateHz(pinnedRate); err != nil {
		c.init = false
		return err
	}
	if err := c.SetNCOGain(1); err != nil {
		c.init = false
		return err
	}
	return nil
}

func (c *C) Initialized() bool { return c.init }

func (c *C) Close() error {
	c.init = false
	return nil
}

func (c *C) Params() device.TxParameters { return c.params }

func (c *C) SetLOHz(hz float64) error {
	if !c.params.LORange.Contains(hz) {
		return fmt.Errorf("%w: NCO frequency %g outside %s", errs.ErrOutOfRange, hz, c.params.LORange)
	}
	if err := c.streamer.bus.WriteAttr(cCtrlDevice, cNCOFreqAttr, fmt.Sprintf("%d", int64(hz))); err != nil {
		return fmt.Errorf("%w: write NCO frequency: %v", errs.ErrAttributeIO, err)
	}
	c.params.LOHz = hz
	return nil
}

// SetSampleRateHz is pinned on variant C; see B.SetSampleRateHz.
func (c *C) SetSampleRateHz(hz float64) error {
	if !c.params.SampleRateRg.Contains(hz) {
		return fmt.Errorf("%w: sample rate %g outside %s", errs.ErrOutOfRange, hz, c.params.SampleRateRg)
	}
	c.params.SampleRateHz = hz
	return nil
}

// SetBandwidthHz is unsupported on variant C.
func (c *C) SetBandwidthHz(hz float64) error {
	return fmt.Errorf("%w: variant C has no bandwidth control", errs.ErrOutOfRange)
}

// SetHWGainDb is unsupported on variant C.
func (c *C) SetHWGainDb(db float64) error {
	return fmt.Errorf("%w: variant C has no hardware gain control", errs.ErrOutOfRange)
}

func (c *C) SetNCOGain(g float64) error {
	if !c.params.NCOGainRg.Contains(g) {
		return fmt.Errorf("%w: NCO gain %g outside %s", errs.ErrOutOfRange, g, c.params.NCOGainRg)
	}
	if err := c.streamer.bus.WriteAttr(cCtrlDevice, cNCOGainAttr, fmt.Sprintf("%g", g)); err != nil {
		return fmt.Errorf("%w: write NCO gain: %v", errs.ErrAttributeIO, err)
	}
	c.params.NCOGain = g
	return nil
}

func (c *C) LoadSignal(sd dataset.SignalData) error { return c.streamer.loadSignal(sd) }
func (c *C) StartStreaming() error                  { return c.streamer.startStreaming() }
func (c *C) StopStreaming() error                   { return c.streamer.stopStreaming() }
