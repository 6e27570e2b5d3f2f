// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package dataset defines the in-memory representation that every parser
(tuple, hier, tabular) populates and that the transmit HAL consumes: a
frame of complex baseband samples, a signal (an ordered run of frames
sharing a modulation and SNR), and a store indexing signals by
(modulation, SNR in dB).

The package also holds the per-dataset-kind shape constants (frame
length, frames per combination, modulation and SNR cardinality) that
every parser validates against and that the transmit HAL uses to pick
a sampling rate.
*/
package dataset
