// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFakeIIOTree(t *testing.T, devices map[string]map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for dev, attrs := range devices {
		devDir := filepath.Join(root, dev)
		require.NoError(t, os.MkdirAll(filepath.Join(devDir, "scan_elements"), 0755))
		require.NoError(t, os.MkdirAll(filepath.Join(devDir, "buffer0"), 0755))
		for attr, val := range attrs {
			require.NoError(t, os.WriteFile(filepath.Join(devDir, attr), []byte(val), 0644))
		}
	}
	return root
}

func TestOpenContextBuildsFamilyTagsFromDeviceNames(t *testing.T) {
	t.Parallel()
	root := newFakeIIOTree(t, map[string]map[string]string{
		"iio:device0": {"name": "ad9361-phy"},
		"iio:device1": {"name": "cf-ad9361-dds-core-lpc"},
	})
	bus := newSysfsBusAt(root)
	desc, err := bus.OpenContext("local:")
	require.NoError(t, err)
	require.Equal(t, "AD9361", desc)
}

func TestOpenContextRejectsNonLocalScheme(t *testing.T) {
	t.Parallel()
	bus := newSysfsBusAt(t.TempDir())
	_, err := bus.OpenContext("usb:1.2")
	require.Error(t, err)
}

func TestFindDeviceAndChannel(t *testing.T) {
	t.Parallel()
	root := newFakeIIOTree(t, map[string]map[string]string{
		"iio:device0": {"name": "cf-ad9361-dds-core-lpc"},
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "iio:device0", "scan_elements", "out_voltage0_en"), []byte("0"), 0644))

	bus := newSysfsBusAt(root)
	require.True(t, bus.FindDevice("cf-ad9361-dds-core-lpc"))
	require.False(t, bus.FindDevice("nope"))
	require.True(t, bus.FindChannel("cf-ad9361-dds-core-lpc", "voltage0"))
	require.False(t, bus.FindChannel("cf-ad9361-dds-core-lpc", "voltage9"))
}

func TestReadWriteAttr(t *testing.T) {
	t.Parallel()
	root := newFakeIIOTree(t, map[string]map[string]string{
		"iio:device0": {"name": "ad9361-phy", "out_altvoltage1_frequency_available": "[47000000 1 6000000000]"},
	})
	bus := newSysfsBusAt(root)

	v, err := bus.ReadAttr("ad9361-phy", "out_altvoltage1_frequency_available")
	require.NoError(t, err)
	require.Equal(t, "[47000000 1 6000000000]", v)

	require.NoError(t, bus.WriteAttr("ad9361-phy", "out_altvoltage1_frequency", "70000000"))
	v, err = bus.ReadAttr("ad9361-phy", "out_altvoltage1_frequency")
	require.NoError(t, err)
	require.Equal(t, "70000000", v)
}

func TestCreateBufferWritesLengthAndEnable(t *testing.T) {
	t.Parallel()
	root := newFakeIIOTree(t, map[string]map[string]string{
		"iio:device0": {"name": "cf-ad9361-dds-core-lpc"},
	})
	bus := newSysfsBusAt(root)
	require.NoError(t, bus.CreateBuffer("cf-ad9361-dds-core-lpc", "voltage0", 1024))

	length, err := os.ReadFile(filepath.Join(root, "iio:device0", "buffer0", "length"))
	require.NoError(t, err)
	require.Equal(t, "1024", string(length))

	enable, err := os.ReadFile(filepath.Join(root, "iio:device0", "buffer0", "enable"))
	require.NoError(t, err)
	require.Equal(t, "1", string(enable))
}
