// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"strings"

	"github.com/sdrreplay/replaytx/device"
)

// Detect picks the variant whose family substrings appear in a
// context's description and returns an uninitialized DeviceCore bound
// to bus, or nil if description matches none of the three known
// families.
func Detect(description string, bus device.AttributeBus) device.DeviceCore {
	switch {
	case containsAny(description, "AD936", "PLUTO", "Pluto"):
		return NewA(bus)
	case containsAny(description, "ADRV9009"):
		return NewB(bus)
	case containsAny(description, "AD9081", "AD9082"):
		return NewC(bus)
	default:
		return nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
