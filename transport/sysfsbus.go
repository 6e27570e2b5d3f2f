// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sdrreplay/replaytx/errs"
)

// familyTags maps a kernel IIO device name to the family substring
// variant.Detect looks for, since the kernel names
// ("ad9361-phy", "adrv9009-phy", "axi-ad9081-rx-hpc") are lowercase
// while the description strings used throughout this core are the
// uppercase family names from the datasheets.
var familyTags = map[string]string{
	"ad9361-phy":        "AD9361",
	"adrv9009-phy":      "ADRV9009",
	"axi-ad9081-rx-hpc": "AD9081",
}

// SysfsBus is a device.AttributeBus backed directly by the Linux
// industrial-I/O sysfs tree, for a context running on the same host as
// this process (uri "local:"). It does not implement the network or
// USB iiod wire protocol a remote "usb:" or "ip:" context would need;
// OpenContext rejects those schemes rather than silently behaving like
// a no-op.
type SysfsBus struct {
	root string // e.g. /sys/bus/iio/devices
}

// NewSysfsBus creates a SysfsBus rooted at the standard IIO sysfs
// location.
func NewSysfsBus() *SysfsBus {
	return newSysfsBusAt("/sys/bus/iio/devices")
}

func newSysfsBusAt(root string) *SysfsBus {
	return &SysfsBus{root: root}
}

func (b *SysfsBus) devicePath(name string) (string, error) {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", errs.ErrDeviceMissing, b.root, err)
	}
	for _, e := range entries {
		nameFile := filepath.Join(b.root, e.Name(), "name")
		data, err := os.ReadFile(nameFile)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) == name {
			return filepath.Join(b.root, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: no iio device named %s under %s", errs.ErrDeviceMissing, name, b.root)
}

// OpenContext accepts only the "local:" scheme, scans every IIO device
// present, and builds a description containing one family tag per
// recognized PHY or control device found.
func (b *SysfsBus) OpenContext(uri string) (string, error) {
	if uri != "local:" && uri != "local" {
		return "", fmt.Errorf("%w: sysfs bus only supports local: contexts, got %s", errs.ErrDeviceMissing, uri)
	}
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", errs.ErrDeviceMissing, b.root, err)
	}
	var tags []string
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(b.root, e.Name(), "name"))
		if err != nil {
			continue
		}
		if tag, ok := familyTags[strings.TrimSpace(string(data))]; ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: no recognized PHY device found under %s", errs.ErrDeviceMissing, b.root)
	}
	return strings.Join(tags, " "), nil
}

func (b *SysfsBus) Close() error { return nil }

func (b *SysfsBus) FindDevice(name string) bool {
	_, err := b.devicePath(name)
	return err == nil
}

func (b *SysfsBus) FindChannel(device, channel string) bool {
	devPath, err := b.devicePath(device)
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(devPath, "scan_elements", "in_"+channel+"_en"))
	if err == nil {
		return true
	}
	_, err = os.Stat(filepath.Join(devPath, "scan_elements", "out_"+channel+"_en"))
	return err == nil
}

func (b *SysfsBus) EnableChannel(device, channel string) error {
	devPath, err := b.devicePath(device)
	if err != nil {
		return err
	}
	for _, dir := range []string{"in_", "out_"} {
		path := filepath.Join(devPath, "scan_elements", dir+channel+"_en")
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		if writeErr := os.WriteFile(path, []byte("1"), 0644); writeErr != nil {
			return fmt.Errorf("%w: enable %s: %v", errs.ErrAttributeIO, path, writeErr)
		}
		return nil
	}
	return fmt.Errorf("%w: channel %s not found on %s", errs.ErrDeviceMissing, channel, device)
}

func (b *SysfsBus) ReadAttr(device, attr string) (string, error) {
	devPath, err := b.devicePath(device)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(devPath, attr))
	if err != nil {
		return "", fmt.Errorf("%w: read %s/%s: %v", errs.ErrAttributeIO, device, attr, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (b *SysfsBus) WriteAttr(device, attr, value string) error {
	devPath, err := b.devicePath(device)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(devPath, attr), []byte(value), 0644); err != nil {
		return fmt.Errorf("%w: write %s/%s: %v", errs.ErrAttributeIO, device, attr, err)
	}
	return nil
}

// CreateBuffer sets the device's cyclic DMA buffer length and enables
// it. A size of 0 is used by variant Initialize to size the buffer
// down to nothing without starting a transfer.
func (b *SysfsBus) CreateBuffer(device, channel string, size int) error {
	devPath, err := b.devicePath(device)
	if err != nil {
		return err
	}
	bufPath := filepath.Join(devPath, "buffer0")
	if err := os.WriteFile(filepath.Join(bufPath, "enable"), []byte("0"), 0644); err != nil {
		return fmt.Errorf("%w: disable buffer on %s: %v", errs.ErrAttributeIO, device, err)
	}
	if err := os.WriteFile(filepath.Join(bufPath, "length"), []byte(strconv.Itoa(size)), 0644); err != nil {
		return fmt.Errorf("%w: set buffer length on %s: %v", errs.ErrAttributeIO, device, err)
	}
	if size == 0 {
		return nil
	}
	if err := os.WriteFile(filepath.Join(bufPath, "enable"), []byte("1"), 0644); err != nil {
		return fmt.Errorf("%w: enable buffer on %s: %v", errs.ErrAttributeIO, device, err)
	}
	return nil
}

// PushBuffer writes interleaved fixed-point samples directly to the
// buffer's character device node.
func (b *SysfsBus) PushBuffer(device string, samples []int16) error {
	devPath, err := b.devicePath(device)
	if err != nil {
		return err
	}
	devName := filepath.Base(devPath)
	node := filepath.Join("/dev", devName+".0")
	f, err := os.OpenFile(node, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", errs.ErrAttributeIO, node, err)
	}
	defer f.Close()

	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[2*i] = byte(uint16(s))
		buf[2*i+1] = byte(uint16(s) >> 8)
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("%w: write samples to %s: %v", errs.ErrAttributeIO, node, err)
	}
	return nil
}
