// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package modulation

// Name is a closed enumeration covering the union of modulation
// schemes found across the tuple-serialized, hierarchical-scientific,
// and text-tabular dataset formats. Unknown is the zero value and is
// returned by Lookup when no alias matches.
type Name int

const (
	Unknown Name = iota

	// PSK family
	BPSK
	QPSK
	PSK8
	PSK16
	PSK32
	PSK64

	// APSK family
	APSK16
	APSK32
	APSK64
	APSK128

	// ASK family
	OOK
	ASK4
	ASK8

	// FSK family
	FSK2
	FSK4
	FSK8
	FSK16
	CPFSK
	GFSK
	GMSK

	// PAM family
	PAM4
	PAM8
	PAM16

	// QAM family
	QAM4
	QAM8
	QAM16
	QAM32
	QAM64
	QAM128
	QAM256

	// Offset QPSK (reported as FamilyPSK by Family)
	OQPSK

	// AM family (analog)
	AMDSB
	AMDSBSC
	AMDSBWC
	AMSSB
	AMSSBSC
	AMSSBWC
	AMUSB
	AMLSB

	// FM / PM family (analog)
	FM
	PM

	numNames
)

// Kind partitions every Name into Analog, Digital, or Unknown.
type Kind int

const (
	KindUnknown Kind = iota
	Analog
	Digital
)

// Family further partitions Digital and Analog names into their
// modulation family.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyAM
	FamilyFM
	FamilyPM
	FamilyAPSK
	FamilyASK
	FamilyFSK
	FamilyPSK
	FamilyPAM
	FamilyQAM
)
