// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package transport discovers candidate industrial-I/O transport
contexts on the local USB bus and provides SysfsBus, a
device.AttributeBus backed by the Linux IIO sysfs tree for "local:"
contexts. ScanUSB only enumerates devices well enough to build the
"usb:…" URIs and human-readable descriptions the Transmit HAL's
context discovery needs; it does not speak the network or USB iiod
protocol, and SysfsBus rejects "usb:" and "ip:" URIs.
*/
package transport
