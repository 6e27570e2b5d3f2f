// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "fmt"

// fakeBus is a small in-memory stand-in for device.AttributeBus, used
// to exercise variant Initialize/setter logic without a real
// transport.
type fakeBus struct {
	description string
	devices     map[string]bool
	channels    map[string]bool
	attrs       map[string]string

	failOpen      bool
	failFindChan  bool
	failReadAttrs map[string]bool
	failWriteAttr bool
	failBuffer    bool

	lastBufferDevice string
	lastBufferSize   int
	lastPushed       []int16
}

func newFakeBus(description string, devices []string, attrs map[string]string) *fakeBus {
	devMap := make(map[string]bool, len(devices))
	for _, d := range devices {
		devMap[d] = true
	}
	return &fakeBus{
		description:   description,
		devices:       devMap,
		channels:      make(map[string]bool),
		attrs:         attrs,
		failReadAttrs: make(map[string]bool),
	}
}

func (f *fakeBus) OpenContext(uri string) (string, error) {
	if f.failOpen {
		return "", fmt.Errorf("open failed")
	}
	return f.description, nil
}

func (f *fakeBus) Close() error { return nil }

func (f *fakeBus) FindDevice(name string) bool { return f.devices[name] }

func (f *fakeBus) FindChannel(device, channel string) bool {
	if f.failFindChan {
		return false
	}
	return true
}

func (f *fakeBus) EnableChannel(device, channel string) error {
	f.channels[device+"/"+channel] = true
	return nil
}

func (f *fakeBus) ReadAttr(device, attr string) (string, error) {
	if f.failReadAttrs[attr] {
		return "", fmt.Errorf("read %s failed", attr)
	}
	v, ok := f.attrs[device+"/"+attr]
	if !ok {
		return "", fmt.Errorf("no such attribute %s/%s", device, attr)
	}
	return v, nil
}

func (f *fakeBus) WriteAttr(device, attr, value string) error {
	if f.failWriteAttr {
		return fmt.Errorf("write %s failed", attr)
	}
	f.attrs[device+"/"+attr] = value
	return nil
}

func (f *fakeBus) CreateBuffer(device, channel string, size int) error {
	if f.failBuffer {
		return fmt.Errorf("create buffer failed")
	}
	f.lastBufferDevice = device
	f.lastBufferSize = size
	return nil
}

func (f *fakeBus) PushBuffer(device string, samples []int16) error {
	f.lastPushed = samples
	return nil
}
