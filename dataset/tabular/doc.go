// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package tabular parses the text-tabular (HisarMod-2019 style) dataset
format: one frame of 1024 comma-separated complex tokens per line,
260,000 lines ordered first by SNR, then by a fixed modulation-code
series, then by frame. Unlike the other two formats this one needs no
external decoder — it is already UTF-8 text — so this package reads
directly from an io.Reader.
*/
package tabular
