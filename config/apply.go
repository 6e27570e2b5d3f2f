// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

// Setter is the subset of device.DeviceCore that Apply needs. Both a
// bare variant and the Transmit HAL satisfy it, so a profile can be
// applied through whichever one the caller has in hand.
type Setter interface {
	SetLOHz(hz float64) error
	SetSampleRateHz(hz float64) error
	SetBandwidthHz(hz float64) error
	SetHWGainDb(db float64) error
	SetNCOGain(g float64) error
}

// Apply writes every non-zero field of p to core in a fixed order,
// stopping at the first rejected setter. A zero-valued field is
// skipped rather than treated as "set to zero", since a profile is
// only meant to override the range-clamped defaults Initialize
// already established.
func Apply(core Setter, p Profile) error {
	if p.LOHz != 0 {
		if err := core.SetLOHz(p.LOHz); err != nil {
			return err
		}
	}
	if p.SampleRateHz != 0 {
		if err := core.SetSampleRateHz(p.SampleRateHz); err != nil {
			return err
		}
	}
	if p.BandwidthHz != 0 {
		if err := core.SetBandwidthHz(p.BandwidthHz); err != nil {
			return err
		}
	}
	if p.HWGainDb != 0 {
		if err := core.SetHWGainDb(p.HWGainDb); err != nil {
			return err
		}
	}
	if p.NCOGain != 0 {
		if err := core.SetNCOGain(p.NCOGain); err != nil {
			return err
		}
	}
	return nil
}
