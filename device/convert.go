// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package device

import "github.com/sdrreplay/replaytx/dataset"

// ConvertToFixedFn is a function type that scales a sequence of
// frames against a shared maxAbs and converts them into a flat
// slice of interleaved int16 (I, Q) samples ready to push into a
// cyclic DMA buffer.
type ConvertToFixedFn func(frames []dataset.FrameData, maxAbs float32) []int16

// NewConvertToFixedFn creates a ConvertToFixedFn for a DAC of the
// given bit width. The scale ratio is (2^(bitWidth-1) - 1) / maxAbs,
// and every converted sample is left-shifted by 16 - bitWidth so the
// digits occupy the high bits of the int16 the way each variant's DMA
// buffer expects.
//
// Like helpers/callback's conversion functions, the returned function
// reuses an internal buffer across calls to avoid an allocation per
// transmitted buffer; the returned slice must not be retained past
// the next call.
func NewConvertToFixedFn(bitWidth uint) ConvertToFixedFn {
	if bitWidth == 0 || bitWidth > 16 {
		bitWidth = 16
	}
	shift := 16 - bitWidth
	fullScale := float32((int64(1) << (bitWidth - 1)) - 1)

	var buf []int16
	return func(frames []dataset.FrameData, maxAbs float32) []int16 {
		total := 0
		for _, f := range frames {
			total += len(f) * 2
		}
		if cap(buf) < total {
			buf = make([]int16, total)
		}
		buf = buf[:total]

		scale := fullScale / maxAbs

		idx := 0
		for _, f := range frames {
			for _, pt := range f {
				buf[idx] = castI16(pt.I*scale) << shift
				buf[idx+1] = castI16(pt.Q*scale) << shift
				idx += 2
			}
		}
		return buf
	}
}

// castI16 truncates v toward zero into the int16 domain. Callers are
// responsible for ensuring v was derived from a sample bounded by
// maxAbs, as the spec's scaling guarantees no value here can overflow
// int16.
func castI16(v float32) int16 {
	return int16(v)
}
