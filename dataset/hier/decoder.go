// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hier

// DatasetInfo describes one root dataset of the hierarchical
// container as reported by the external decoder: its dimensions (in
// declaration order) and whether its element type is a floating-point
// class. This is the flattened record the design notes call for in
// place of a generic metadata tree — the only thing ever read from
// such a tree is exactly this.
type DatasetInfo struct {
	Dims  []int
	Float bool
}

// Decoder is the black-box hierarchical-scientific container reader
// this package depends on. It is expected to expose the three root
// datasets X, Y, Z as typed primitive buffers; this package never
// touches the container format itself.
type Decoder interface {
	// Describe visits the container root at path and returns the shape
	// metadata for X, Y, and Z without reading their bulk data.
	Describe(path string) (x, y, z DatasetInfo, err error)

	// ReadXRows reads rows [rowStart, rowStart+rowCount) of the X
	// dataset at path, flattened row-major into
	// rowCount*frameLength*2 float32 values (each row contributing
	// frameLength (I,Q) pairs). This is the single large allocation
	// the hierarchical parser performs; a decoder that cannot satisfy
	// it (out of memory) returns a non-nil error.
	ReadXRows(path string, rowStart, rowCount, frameLength int) ([]float32, error)
}
