// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"fmt"

	"github.com/google/gousb"
)

// Context is one discovered transport context: the URI the attribute
// bus would open and a human-readable description used both for
// display and for variant.Detect's substring match.
type Context struct {
	URI         string
	Description string
}

// ScanUSB opens a USB context, enumerates every attached device, and
// returns one Context per device, URI-formed as "usb:<bus>.<addr>".
// It accepts every device rather than filtering by vendor/product ID,
// since unlike yardstick.FindAllDevices this core does not know the
// ID of the radio ahead of time — that is variant.Detect's job, given
// the description string.
func ScanUSB() ([]Context, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate USB devices: %w", err)
	}
	defer func() {
		for _, d := range devs {
			d.Close()
		}
	}()

	out := make([]Context, 0, len(devs))
	for _, d := range devs {
		manufacturer, _ := d.Manufacturer()
		product, _ := d.Product()
		desc := d.Desc
		out = append(out, Context{
			URI:         fmt.Sprintf("usb:%d.%d", desc.Bus, desc.Address),
			Description: fmt.Sprintf("%s %s", manufacturer, product),
		})
	}
	return out, nil
}
