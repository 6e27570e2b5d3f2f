// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package config loads an optional, static YAML profile file describing
known transport contexts and their preferred startup parameters. It is
read once at process start and is never required for correctness: the
Transmit HAL always discovers contexts and ranges from the attribute
bus at runtime; a profile only supplies defaults to apply once a
context has been selected and initialized.
*/
package config
