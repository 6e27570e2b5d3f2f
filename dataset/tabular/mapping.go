// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tabular

import "github.com/sdrreplay/replaytx/modulation"

// modulationSeries is the physical ordering of modulation codes in
// the text-tabular file: the 26 entries repeat every 13,000 lines (500
// frames per modulation within one SNR block).
var modulationSeries = [26]int{
	4, 14, 44, 32, 2, 12, 22, 34, 23, 3, 13, 54, 30,
	0, 40, 10, 50, 20, 51, 21, 61, 31, 1, 41, 11, 24,
}

// modulationMapping maps a modulation code to its canonical Name.
var modulationMapping = map[int]modulation.Name{
	// PSK row
	0:  modulation.BPSK,
	10: modulation.QPSK,
	20: modulation.PSK8,
	30: modulation.PSK16,
	40: modulation.PSK32,
	50: modulation.PSK64,

	// QAM row
	1:  modulation.QAM4,
	11: modulation.QAM8,
	21: modulation.QAM16,
	31: modulation.QAM32,
	41: modulation.QAM64,
	51: modulation.QAM128,
	61: modulation.QAM256,

	// FSK row
	2:  modulation.FSK2,
	12: modulation.FSK4,
	22: modulation.FSK8,
	32: modulation.FSK16,

	// PAM row
	3:  modulation.PAM4,
	13: modulation.PAM8,
	23: modulation.PAM16,

	// Analog row
	4:  modulation.AMDSB,
	14: modulation.AMDSBSC,
	24: modulation.AMUSB,
	34: modulation.AMLSB,
	44: modulation.FM,
	54: modulation.PM,
}

const linesPerSnrBlock = 13000 // 500 frames * 26 modulations
const framesPerCombo = 500
