// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newInitializedC(t *testing.T) (*C, *fakeBus) {
	t.Helper()
	bus := newFakeBus("AD9081", []string{cStreamDevice, cCtrlDevice}, map[string]string{
		cCtrlDevice + "/" + cNCOFreqRangeAttr: "[0 1 6000000000]",
		cStreamDevice + "/" + cSampleRateAttr: "3932160000",
	})
	c := NewC(bus)
	require.NoError(t, c.Initialize("usb:1.2.3"))
	return c, bus
}

func TestCInitializePinsSampleRateFromBus(t *testing.T) {
	t.Parallel()
	c, _ := newInitializedC(t)
	require.True(t, c.Initialized())
	require.Equal(t, float64(3_932_160_000), c.Params().SampleRateHz)
	require.Equal(t, float64(1), c.Params().NCOGain)
}

func TestCSetSampleRateRejectsAnyOtherValue(t *testing.T) {
	t.Parallel()
	c, _ := newInitializedC(t)
	require.Error(t, c.SetSampleRateHz(1))
}

func TestCBandwidthAndGainUnsupported(t *testing.T) {
	t.Parallel()
	c, _ := newInitializedC(t)
	require.Error(t, c.SetBandwidthHz(1e6))
	require.Error(t, c.SetHWGainDb(0))
}

func TestCSetNCOGainRangeMatchesFixture(t *testing.T) {
	t.Parallel()
	c, _ := newInitializedC(t)
	require.Error(t, c.SetNCOGain(1.5))
	require.NoError(t, c.SetNCOGain(0))
}
