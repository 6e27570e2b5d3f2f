// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package modulation

// aliasTable maps each Name to a non-empty ordered list of display
// strings as they appear across the tuple-serialized (RadioML-2016
// style), hierarchical-scientific (RadioML-2018 style), and
// text-tabular (HisarMod-2019 style) datasets. The first entry of
// every list is the canonical short label.
//
// Several names carry more than one alias because the three source
// datasets spell the same modulation differently (e.g. the ASK family
// dataset uses "2ASK" where the hierarchical dataset uses "OOK"; the
// tuple dataset's "PAM4" is the tabular "4PAM"; "WBFM" in
// the tuple dataset and "FM" elsewhere name the same analog scheme).
var aliasTable = map[Name][]string{
	BPSK:  {"BPSK"},
	QPSK:  {"QPSK"},
	PSK8:  {"8PSK"},
	PSK16: {"16PSK"},
	PSK32: {"32PSK"},
	PSK64: {"64PSK"},

	APSK16:  {"16APSK", "APSK16"},
	APSK32:  {"32APSK", "APSK32"},
	APSK64:  {"64APSK", "APSK64"},
	APSK128: {"128APSK", "APSK128"},

	OOK:  {"OOK", "2ASK"},
	ASK4: {"4ASK"},
	ASK8: {"8ASK"},

	FSK2:  {"2FSK"},
	FSK4:  {"4FSK"},
	FSK8:  {"8FSK"},
	FSK16: {"16FSK"},
	CPFSK: {"CPFSK"},
	GFSK:  {"GFSK"},
	GMSK:  {"GMSK"},

	PAM4:  {"4PAM", "PAM4"},
	PAM8:  {"8PAM"},
	PAM16: {"16PAM"},

	QAM4:   {"4QAM"},
	QAM8:   {"8QAM"},
	QAM16:  {"16QAM"},
	QAM32:  {"32QAM"},
	QAM64:  {"64QAM"},
	QAM128: {"128QAM"},
	QAM256: {"256QAM"},

	OQPSK: {"OQPSK"},

	AMDSB:   {"AM-DSB"},
	AMDSBSC: {"AM-DSB-SC"},
	AMDSBWC: {"AM-DSB-WC"},
	AMSSB:   {"AM-SSB"},
	AMSSBSC: {"AM-SSB-SC"},
	AMSSBWC: {"AM-SSB-WC"},
	AMUSB:   {"AM-USB"},
	AMLSB:   {"AM-LSB"},

	FM: {"FM", "WBFM"},
	PM: {"PM"},
}

// orderedNames lists every non-Unknown Name in declaration order. It
// exists so iteration (e.g. for verifyUnique or UI population) is
// deterministic rather than following Go's randomized map order.
var orderedNames = []Name{
	BPSK, QPSK, PSK8, PSK16, PSK32, PSK64,
	APSK16, APSK32, APSK64, APSK128,
	OOK, ASK4, ASK8,
	FSK2, FSK4, FSK8, FSK16, CPFSK, GFSK, GMSK,
	PAM4, PAM8, PAM16,
	QAM4, QAM8, QAM16, QAM32, QAM64, QAM128, QAM256,
	OQPSK,
	AMDSB, AMDSBSC, AMDSBWC, AMSSB, AMSSBSC, AMSSBWC, AMUSB, AMLSB,
	FM, PM,
}
