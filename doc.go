// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package replaytx is the top-level package of the replaytx module: a
transmit-side tool for replaying RF modulation dataset signals through
an industrial-I/O transceiver. It has no exported API of its own; see
package hal for the Transmit HAL, package dataset and its tabular,
tuple, and hier subpackages for the three dataset parsers, package
device and device/variant for the per-family transmit implementations,
and cmd/replaytx for the command-line driver.
*/
package replaytx
