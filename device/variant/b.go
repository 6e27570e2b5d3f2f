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

// Attribute names and fixed ranges for variant B (adrv9009-phy /
// axi-adrv9009-tx-hpc). Unlike variant A, this family's ranges are
// not queried from the bus; they are hard-coded per the device
// family's published specification.
const (
	bPhyDevice    = "adrv9009-phy"
	bStreamDevice = "axi-adrv9009-tx-hpc"
	bLOChannel    = "altvoltage0"

	bLOFreqAttr  = "out_altvoltage0_frequency"
	bHWGainAttr  = "out_voltage0_hardwaregain"
	bSampleRateHz = 122_880_000
	bBandwidthHz  = 100_000_000
)

var (
	bLORange      = device.RangeF64{Min: 70_000_000, Step: 1, Max: 6_000_000_000}
	bSampleRateRg = device.RangeF64{Min: bSampleRateHz, Step: 0, Max: bSampleRateHz}
	bBandwidthRg  = device.RangeF64{Min: bBandwidthHz, Step: 0, Max: bBandwidthHz}
	bHWGainRg     = device.RangeF64{Min: -30, Step: 0.05, Max: 0}
)

// B is the wideband TRX variant: adrv9009-phy, 14-bit DAC, with
// sampling frequency and bandwidth pinned by the hardware rather than
// tunable.
type B struct {
	streamer
	init   bool
	params device.TxParameters
}

// NewB creates an uninitialized variant B bound to bus.
func NewB(bus device.AttributeBus) *B {
	return &B{
		streamer: newStreamer(bus, bStreamDevice, 14),
	}
}

func (b *B) Initialize(uri string) error {
	if _, err := b.streamer.bus.OpenContext(uri); err != nil {
		return fmt.Errorf("%w: open context %s: %v", errs.ErrDeviceMissing, uri, err)
	}
	if !b.streamer.bus.FindDevice(bPhyDevice) {
		return fmt.Errorf("%w: phy device %s", errs.ErrDeviceMissing, bPhyDevice)
	}
	if !b.streamer.bus.FindDevice(bStreamDevice) {
		return fmt.Errorf("%w: streaming device %s", errs.ErrDeviceMissing, bStreamDevice)
	}
	if !b.streamer.bus.FindChannel(bStreamDevice, txChannelI) || !b.streamer.bus.FindChannel(bStreamDevice, txChannelQ) {
		return fmt.Errorf("%w: tx channels on %s", errs.ErrDeviceMissing, bStreamDevice)
	}
	if err := b.streamer.bus.EnableChannel(bStreamDevice, txChannelI); err != nil {
		return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, txChannelI, err)
	}
	if err := b.streamer.bus.EnableChannel(bStreamDevice, txChannelQ); err != nil {
		return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, txChannelQ, err)
	}
	if err := b.streamer.bus.CreateBuffer(bStreamDevice, txChannelI, 0); err != nil {
		return fmt.Errorf("%w: create zero-length buffer: %v", errs.ErrAttributeIO, err)
	}

	b.params.LORange = bLORange
	b.params.SampleRateRg = bSampleRateRg
	b.params.BandwidthRg = bBandwidthRg
	b.params.HWGainRg = bHWGainRg

	b.init = true
	if err := b.SetSampleRateHz(bSampleRateHz); err != nil {
		b.init = false
		return err
	}
	if err := b.SetBandwidthHz(bBandwidthHz); err != nil {
		b.init = false
		return err
	}
	if err := b.SetHWGainDb(b.params.HWGainRg.Max); err != nil {
		b.init = false
		return err
	}
	return nil
}

func (b *B) Initialized() bool { return b.init }

func (b *B) Close() error {
	b.init = false
	return nil
}

func (b *B) Params() device.TxParameters { return b.params }

func (b *B) SetLOHz(hz float64) error {
	if !b.params.LORange.Contains(hz) {
		return fmt.Errorf("%w: LO %g outside %s", errs.ErrOutOfRange, hz, b.params.LORange)
	}
	if err := b.streamer.bus.WriteAttr(bPhyDevice, bLOFreqAttr, fmt.Sprintf("%d", int64(hz))); err != nil {
		return fmt.Errorf("%w: write LO: %v", errs.ErrAttributeIO, err)
	}
	b.params.LOHz = hz
	return nil
}

// SetSampleRateHz is pinned on variant B: the only value Contains
// accepts is the hardware's fixed rate, so any other argument is
// rejected as OutOfRange without an attribute write, per the not-
// writable contract for this family.
func (b *B) SetSampleRateHz(hz float64) error {
	if !b.params.SampleRateRg.Contains(hz) {
		return fmt.Errorf("%w: sample rate %g outside %s", errs.ErrOutOfRange, hz, b.params.SampleRateRg)
	}
	b.params.SampleRateHz = hz
	return nil
}

// SetBandwidthHz is pinned on variant B; see SetSampleRateHz.
func (b *B) SetBandwidthHz(hz float64) error {
	if !b.params.BandwidthRg.Contains(hz) {
		return fmt.Errorf("%w: bandwidth %g outside %s", errs.ErrOutOfRange, hz, b.params.BandwidthRg)
	}
	b.params.BandwidthHz = hz
	return nil
}

func (b *B) SetHWGainDb(db float64) error {
	if !b.params.HWGainRg.Contains(db) {
		return fmt.Errorf("%w: gain %g outside %s", errs.ErrOutOfRange, db, b.params.HWGainRg)
	}
	if err := b.streamer.bus.WriteAttr(bPhyDevice, bHWGainAttr, fmt.Sprintf("%g", db)); err != nil {
		return fmt.Errorf("%w: write gain: %v", errs.ErrAttributeIO, err)
	}
	b.params.HWGainDb = db
	return nil
}

// SetNCOGain is unsupported on variant B: it has an analog LO, not
// an NCO.
func (b *B) SetNCOGain(g float64) error {
	return fmt.Errorf("%w: variant B has no NCO gain", errs.ErrOutOfRange)
}

func (b *B) LoadSignal(sd dataset.SignalData) error { return b.streamer.loadSignal(sd) }
func (b *B) StartStreaming() error                  { return b.streamer.startStreaming() }
func (b *B) StopStreaming() error                   { return b.streamer.stopStreaming() }
