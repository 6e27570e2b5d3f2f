// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package hier parses the hierarchical-scientific (RadioML-2018 style)
dataset format one modulation at a time. The container's concrete
decoder is an external black box exposing three root datasets, X
(IQ cube), Y (one-hot modulation), and Z (SNR), as typed primitive
buffers; this package only validates their shape and interprets the
implicit row layout to read a single contiguous slab instead of the
full ~19.5 GB cube.
*/
package hier
