// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hal

import "fmt"

// fakeBus is a minimal in-memory device.AttributeBus used to exercise
// HAL discovery and selection without a real transport.
type fakeBus struct {
	description string
	devices     map[string]bool
	attrs       map[string]string
	failOpen    bool

	lastBufferDevice string
	lastPushed       []int16
}

func newFakeBus(description string, devices []string, attrs map[string]string) *fakeBus {
	devMap := make(map[string]bool, len(devices))
	for _, d := range devices {
		devMap[d] = true
	}
	return &fakeBus{description: description, devices: devMap, attrs: attrs}
}

func (f *fakeBus) OpenContext(uri string) (string, error) {
	if f.failOpen {
		return "", fmt.Errorf("open failed")
	}
	return f.description, nil
}

func (f *fakeBus) Close() error { return nil }

func (f *fakeBus) FindDevice(name string) bool { return f.devices[name] }

func (f *fakeBus) FindChannel(device, channel string) bool { return true }

func (f *fakeBus) EnableChannel(device, channel string) error { return nil }

func (f *fakeBus) ReadAttr(device, attr string) (string, error) {
	v, ok := f.attrs[device+"/"+attr]
	if !ok {
		return "", fmt.Errorf("no such attribute %s/%s", device, attr)
	}
	return v, nil
}

func (f *fakeBus) WriteAttr(device, attr, value string) error {
	f.attrs[device+"/"+attr] = value
	return nil
}

func (f *fakeBus) CreateBuffer(device, channel string, size int) error {
	f.lastBufferDevice = device
	return nil
}

func (f *fakeBus) PushBuffer(device string, samples []int16) error {
	f.lastPushed = samples
	return nil
}
