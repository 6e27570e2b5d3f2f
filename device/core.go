// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import "github.com/sdrreplay/replaytx/dataset"

// DeviceCore is the contract every radio front-end variant
// implements. The Transmit HAL holds exactly one DeviceCore at a
// time, dispatching every operation to it without knowing which
// concrete variant is behind the interface.
type DeviceCore interface {
	// Initialize opens a transport context at uri, locates the
	// family's PHY and streaming sub-devices and I/Q channels,
	// enables the channels, creates a zero-length cyclic DMA buffer,
	// and queries parameter ranges. It returns a non-nil error and
	// leaves Initialized false unless every step succeeds.
	Initialize(uri string) error

	// Initialized reports whether the last Initialize call succeeded
	// and Close has not since been called.
	Initialized() bool

	// Close marks the variant uninitialized, so Initialized reports
	// false afterwards. It does not close the attribute bus's context
	// and does not release a DMA buffer. It is safe to call on a
	// variant that was never initialized.
	Close() error

	// Params returns a copy of the variant's cached TxParameters.
	Params() TxParameters

	// SetLOHz sets the LO frequency. It returns OutOfRange and leaves
	// the cached value unchanged if hz lies outside Params().LORange.
	SetLOHz(hz float64) error

	// SetSampleRateHz sets the sampling frequency. It returns
	// OutOfRange and leaves the cached value unchanged if hz lies
	// outside Params().SampleRateRg.
	SetSampleRateHz(hz float64) error

	// SetBandwidthHz sets the RF bandwidth. It returns OutOfRange and
	// leaves the cached value unchanged if hz lies outside
	// Params().BandwidthRg.
	SetBandwidthHz(hz float64) error

	// SetHWGainDb sets the hardware gain. It returns OutOfRange and
	// leaves the cached value unchanged if db lies outside
	// Params().HWGainRg.
	SetHWGainDb(db float64) error

	// SetNCOGain sets the NCO gain scale, where supported. It returns
	// OutOfRange and leaves the cached value unchanged if g lies
	// outside Params().NCOGainRg.
	SetNCOGain(g float64) error

	// LoadSignal borrows sd's frames for the duration of a transmit
	// session, caching its frame length and frame count.
	LoadSignal(sd dataset.SignalData) error

	// StartStreaming allocates a cyclic DMA buffer exactly
	// frame_length * frame_count (I, Q) slots wide, converts every
	// sample of the loaded signal, and pushes the buffer once.
	StartStreaming() error

	// StopStreaming allocates a 1024-slot zero-filled cyclic buffer
	// and pushes it, silencing the output. It is idempotent and may
	// be called at any time after StartStreaming.
	StopStreaming() error
}
