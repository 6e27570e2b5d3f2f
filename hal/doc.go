// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package hal implements the Transmit HAL: context discovery over the
USB bus plus a well-known networked default, dispatch of every
parameter read/write and start/stop call to the currently selected
device.DeviceCore, and the sampling-rate policy applied whenever a new
dataset is parsed.

Like session.Session in the upstream SDR core, HAL is configured with
a small set of ConfigFn functional options rather than a large
constructor argument list, so tests can inject a fake bus factory and
a fake USB scanner without touching real hardware.
*/
package hal
