// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hal

import (
	"errors"
	"fmt"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/device"
	"github.com/sdrreplay/replaytx/device/variant"
	"github.com/sdrreplay/replaytx/errs"
	"github.com/sdrreplay/replaytx/transport"
)

// defaultIPContext is appended to USB discovery results when probing
// it reveals a variant B or C context, per the Transmit HAL's context
// discovery rule.
const defaultIPContext = "ip:10.0.0.2"

// referenceSampleRateHz is the baseline sampling frequency for
// variant A's sampling-rate policy: it exceeds variant A's 2.083 MHz
// minimum and is scaled by the ratio of a newly parsed dataset's
// frame length to the smallest frame length across all dataset kinds.
const referenceSampleRateHz = 2_500_000

// ScanFn enumerates USB transport contexts. Production code uses
// transport.ScanUSB; tests inject a fake.
type ScanFn func() ([]transport.Context, error)

// NewBusFn creates a fresh device.AttributeBus for a newly selected
// context. Production code binds this to a real industrial-I/O
// transport; tests inject a fake.
type NewBusFn func() device.AttributeBus

// ConfigFn configures a HAL the way session.ConfigFn configures a
// Session: applied in order by New, any error aborts construction.
type ConfigFn func(h *HAL) error

// HAL is the Transmit HAL: it owns at most one initialized
// device.DeviceCore at a time and forwards every Tx operation to it.
type HAL struct {
	scan   ScanFn
	newBus NewBusFn

	current    device.DeviceCore
	currentURI string
}

// New creates a HAL and applies every ConfigFn in order.
func New(fns ...ConfigFn) (*HAL, error) {
	h := &HAL{}
	for _, fn := range fns {
		if err := fn(h); err != nil {
			return nil, err
		}
	}
	if h.scan == nil {
		h.scan = transport.ScanUSB
	}
	if h.newBus == nil {
		return nil, errors.New("hal: no AttributeBus factory configured")
	}
	return h, nil
}

// WithScanner configures the HAL to discover USB contexts with fn
// instead of transport.ScanUSB.
func WithScanner(fn ScanFn) ConfigFn {
	return func(h *HAL) error {
		h.scan = fn
		return nil
	}
}

// WithBusFactory configures the HAL to create attribute buses with
// fn. This is required; New returns an error if it is never set.
func WithBusFactory(fn NewBusFn) ConfigFn {
	return func(h *HAL) error {
		h.newBus = fn
		return nil
	}
}

// Discover enumerates every usb: context on the bus and appends the
// default networked context if probing it reveals a variant B or C
// description.
func (h *HAL) Discover() ([]transport.Context, error) {
	usbCtxs, err := h.scan()
	if err != nil {
		return nil, fmt.Errorf("%w: scan usb bus: %v", errs.ErrDeviceMissing, err)
	}

	out := make([]transport.Context, 0, len(usbCtxs)+1)
	for _, c := range usbCtxs {
		out = append(out, c)
	}

	bus := h.newBus()
	defer bus.Close()
	desc, err := bus.OpenContext(defaultIPContext)
	if err == nil {
		switch variant.Detect(desc, bus).(type) {
		case *variant.B, *variant.C:
			out = append(out, transport.Context{URI: defaultIPContext, Description: desc})
		}
	}
	return out, nil
}

// Select tears down any previously initialized variant, opens uri on a
// fresh bus to learn its description, and initializes whichever
// variant that description matches.
func (h *HAL) Select(uri string) error {
	if h.current != nil {
		h.current.Close()
		h.current = nil
		h.currentURI = ""
	}

	bus := h.newBus()
	description, err := bus.OpenContext(uri)
	if err != nil {
		return fmt.Errorf("%w: open context %s: %v", errs.ErrDeviceMissing, uri, err)
	}
	v := variant.Detect(description, bus)
	if v == nil {
		return fmt.Errorf("%w: no known variant matches description %q", errs.ErrDeviceMissing, description)
	}
	if err := v.Initialize(uri); err != nil {
		return err
	}
	h.current = v
	h.currentURI = uri
	return nil
}

// Active reports whether a variant is currently initialized.
func (h *HAL) Active() bool { return h.current != nil }

// ActiveURI returns the URI of the currently initialized variant, or
// the empty string if none is active.
func (h *HAL) ActiveURI() string { return h.currentURI }

// SamplingRateForFrameLength is the pure function behind the
// sampling-rate policy: referenceSampleRateHz scaled by the ratio of
// frameLength to the smallest frame length across all dataset kinds.
// It is exported separately from ApplySamplingRatePolicy so a caller
// that only needs the number, such as a dump tool labeling an offline
// WAV file, does not need an active variant to compute it.
func SamplingRateForFrameLength(frameLength int) float64 {
	ratio := float64(frameLength) / float64(dataset.MinFrameLength())
	return referenceSampleRateHz * ratio
}

// ApplySamplingRatePolicy implements the sampling-rate policy: for
// variant A, sets the sampling frequency to SamplingRateForFrameLength.
// For variants B and C the rate is fixed and this is a no-op.
func (h *HAL) ApplySamplingRatePolicy(frameLength int) error {
	if h.current == nil {
		return fmt.Errorf("%w: no active variant", errs.ErrDeviceMissing)
	}
	a, ok := h.current.(*variant.A)
	if !ok {
		return nil
	}
	return a.SetSampleRateHz(SamplingRateForFrameLength(frameLength))
}

func (h *HAL) requireActive() error {
	if h.current == nil {
		return fmt.Errorf("%w: no active variant", errs.ErrDeviceMissing)
	}
	return nil
}

func (h *HAL) Params() (device.TxParameters, error) {
	if err := h.requireActive(); err != nil {
		return device.TxParameters{}, err
	}
	return h.current.Params(), nil
}

func (h *HAL) SetLOHz(hz float64) error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.SetLOHz(hz)
}

func (h *HAL) SetSampleRateHz(hz float64) error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.SetSampleRateHz(hz)
}

func (h *HAL) SetBandwidthHz(hz float64) error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.SetBandwidthHz(hz)
}

func (h *HAL) SetHWGainDb(db float64) error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.SetHWGainDb(db)
}

func (h *HAL) SetNCOGain(g float64) error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.SetNCOGain(g)
}

func (h *HAL) LoadSignal(sd dataset.SignalData) error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.LoadSignal(sd)
}

func (h *HAL) StartStreaming() error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.StartStreaming()
}

func (h *HAL) StopStreaming() error {
	if err := h.requireActive(); err != nil {
		return err
	}
	return h.current.StopStreaming()
}
