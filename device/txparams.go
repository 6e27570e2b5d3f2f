// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

// TxParameters is the set of transmit parameters a variant caches
// after a successful Initialize, along with the Range each permits
// when the underlying family supports tuning that parameter. A Range
// with Min == Max == 0 and Step == 0 means the variant does not
// support the corresponding parameter at all (e.g. variant C's
// hardware gain).
type TxParameters struct {
	LOHz         float64
	LORange      RangeF64
	SampleRateHz float64
	SampleRateRg RangeF64
	BandwidthHz  float64
	BandwidthRg  RangeF64
	HWGainDb     float64
	HWGainRg     RangeF64
	NCOGain      float64
	NCOGainRg    RangeF64
}
