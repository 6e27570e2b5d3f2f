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

// Attribute names for variant A (ad9361-phy / cf-ad9361-dds-core-lpc).
// Every range comes back from the bus as a human-readable
// "[min step max]" string that device.ParseRangeF64 interprets.
const (
	aPhyDevice    = "ad9361-phy"
	aStreamDevice = "cf-ad9361-dds-core-lpc"
	aLOChannel    = "altvoltage1"

	aLOFreqAttr       = "out_altvoltage1_frequency"
	aLOFreqRangeAttr  = "out_altvoltage1_frequency_available"
	aSampleRateAttr   = "out_voltage_sampling_frequency"
	aSampleRateRgAttr = "out_voltage_sampling_frequency_available"
	aBandwidthAttr    = "out_voltage_rf_bandwidth"
	aBandwidthRgAttr  = "out_voltage_rf_bandwidth_available"
	aHWGainAttr       = "out_voltage0_hardwaregain"
	aHWGainRgAttr     = "out_voltage0_hardwaregain_available"

	aInitSampleRateHz = 2_500_000
)

// A is the baseband TRX variant: ad9361-phy, 12-bit DAC.
type A struct {
	streamer
	init   bool
	params device.TxParameters
}

// NewA creates an uninitialized variant A bound to bus.
func NewA(bus device.AttributeBus) *A {
	return &A{
		streamer: newStreamer(bus, aStreamDevice, 12),
	}
}

func (a *A) Initialize(uri string) error {
	if _, err := a.streamer.bus.OpenContext(uri); err != nil {
		return fmt.Errorf("%w: open context %s: %v", errs.ErrDeviceMissing, uri, err)
	}
	if !a.streamer.bus.FindDevice(aPhyDevice) {
		return fmt.Errorf("%w: phy device %s", errs.ErrDeviceMissing, aPhyDevice)
	}
	if !a.streamer.bus.FindDevice(aStreamDevice) {
		return fmt.Errorf("%w: streaming device %s", errs.ErrDeviceMissing, aStreamDevice)
	}
	if !a.streamer.bus.FindChannel(aStreamDevice, txChannelI) || !a.streamer.bus.FindChannel(aStreamDevice, txChannelQ) {
		return fmt.Errorf("%w: tx channels on %s", errs.ErrDeviceMissing, aStreamDevice)
	}
	if err := a.streamer.bus.EnableChannel(aStreamDevice, txChannelI); err != nil {
		return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, txChannelI, err)
	}
	if err := a.streamer.bus.EnableChannel(aStreamDevice, txChannelQ); err != nil {
		return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, txChannelQ, err)
	}
	if err := a.streamer.bus.CreateBuffer(aStreamDevice, txChannelI, 0); err != nil {
		return fmt.Errorf("%w: create zero-length buffer: %v", errs.ErrAttributeIO, err)
	}

	var err error
	a.params.LORange, err = a.readRange(aLOFreqRangeAttr)
	if err != nil {
		return err
	}
	a.params.SampleRateRg, err = a.readRange(aSampleRateRgAttr)
	if err != nil {
		return err
	}
	a.params.BandwidthRg, err = a.readRange(aBandwidthRgAttr)
	if err != nil {
		return err
	}
	a.params.HWGainRg, err = a.readRange(aHWGainRgAttr)
	if err != nil {
		return err
	}

	a.init = true

	if err := a.SetHWGainDb(a.params.HWGainRg.Max); err != nil {
		a.init = false
		return err
	}
	if err := a.SetBandwidthHz(a.params.BandwidthRg.Max); err != nil {
		a.init = false
		return err
	}
	if err := a.SetSampleRateHz(aInitSampleRateHz); err != nil {
		a.init = false
		return err
	}
	return nil
}

func (a *A) readRange(attr string) (device.RangeF64, error) {
	text, err := a.streamer.bus.ReadAttr(aPhyDevice, attr)
	if err != nil {
		return device.RangeF64{}, fmt.Errorf("%w: read %s: %v", errs.ErrAttributeIO, attr, err)
	}
	r, err := device.ParseRangeF64(text)
	if err != nil {
		return device.RangeF64{}, err
	}
	return r, nil
}

func (a *A) Initialized() bool { return a.init }

func (a *A) Close() error {
	a.init = false
	return nil
}

func (a *A) Params() device.TxParameters { return a.params }

func (a *A) SetLOHz(hz float64) error {
	if !a.params.LORange.Contains(hz) {
		return fmt.Errorf("%w: LO %g outside %s", errs.ErrOutOfRange, hz, a.params.LORange)
	}
	if err := a.streamer.bus.WriteAttr(aPhyDevice, aLOFreqAttr, fmt.Sprintf("%d", int64(hz))); err != nil {
		return fmt.Errorf("%w: write LO: %v", errs.ErrAttributeIO, err)
	}
	a.params.LOHz = hz
	return nil
}

func (a *A) SetSampleRateHz(hz float64) error {
	if !a.params.SampleRateRg.Contains(hz) {
		return fmt.Errorf("%w: sample rate %g outside %s", errs.ErrOutOfRange, hz, a.params.SampleRateRg)
	}
	if err := a.streamer.bus.WriteAttr(aPhyDevice, aSampleRateAttr, fmt.Sprintf("%d", int64(hz))); err != nil {
		return fmt.Errorf("%w: write sample rate: %v", errs.ErrAttributeIO, err)
	}
	a.params.SampleRateHz = hz
	return nil
}

func (a *A) SetBandwidthHz(hz float64) error {
	if !a.params.BandwidthRg.Contains(hz) {
		return fmt.Errorf("%w: bandwidth %g outside %s", errs.ErrOutOfRange, hz, a.params.BandwidthRg)
	}
	if err := a.streamer.bus.WriteAttr(aPhyDevice, aBandwidthAttr, fmt.Sprintf("%d", int64(hz))); err != nil {
		return fmt.Errorf("%w: write bandwidth: %v", errs.ErrAttributeIO, err)
	}
	a.params.BandwidthHz = hz
	return nil
}

func (a *A) SetHWGainDb(db float64) error {
	if !a.params.HWGainRg.Contains(db) {
		return fmt.Errorf("%w: gain %g outside %s", errs.ErrOutOfRange, db, a.params.HWGainRg)
	}
	if err := a.streamer.bus.WriteAttr(aPhyDevice, aHWGainAttr, fmt.Sprintf("%g", db)); err != nil {
		return fmt.Errorf("%w: write gain: %v", errs.ErrAttributeIO, err)
	}
	a.params.HWGainDb = db
	return nil
}

// SetNCOGain is unsupported on variant A: it has no NCO, only the
// analog LO. It always fails with OutOfRange, matching the contract
// that a variant with no range for a parameter rejects every setter
// call for it.
func (a *A) SetNCOGain(g float64) error {
	return fmt.Errorf("%w: variant A has no NCO gain", errs.ErrOutOfRange)
}

func (a *A) LoadSignal(sd dataset.SignalData) error { return a.streamer.loadSignal(sd) }
func (a *A) StartStreaming() error                  { return a.streamer.startStreaming() }
func (a *A) StopStreaming() error                   { return a.streamer.stopStreaming() }
