// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package modulation

// Kind returns the Analog/Digital/Unknown partition for name. It is a
// closed switch derivable directly from the Name enumeration, so it
// never needs updating in step with the alias table.
func (n Name) Kind() Kind {
	switch n {
	case AMDSB, AMDSBSC, AMDSBWC, AMSSB, AMSSBSC, AMSSBWC, AMUSB, AMLSB, FM, PM:
		return Analog
	case BPSK, QPSK, PSK8, PSK16, PSK32, PSK64,
		APSK16, APSK32, APSK64, APSK128,
		OOK, ASK4, ASK8,
		FSK2, FSK4, FSK8, FSK16, CPFSK, GFSK, GMSK,
		PAM4, PAM8, PAM16,
		QAM4, QAM8, QAM16, QAM32, QAM64, QAM128, QAM256,
		OQPSK:
		return Digital
	default:
		return KindUnknown
	}
}

// Family returns the modulation family for name. Like Kind, this is a
// closed switch over the enumeration rather than a table lookup.
func (n Name) Family() Family {
	switch n {
	case AMDSB, AMDSBSC, AMDSBWC, AMSSB, AMSSBSC, AMSSBWC, AMUSB, AMLSB:
		return FamilyAM
	case FM:
		return FamilyFM
	case PM:
		return FamilyPM
	case APSK16, APSK32, APSK64, APSK128:
		return FamilyAPSK
	case OOK, ASK4, ASK8:
		return FamilyASK
	case FSK2, FSK4, FSK8, FSK16, CPFSK, GFSK, GMSK:
		return FamilyFSK
	case BPSK, QPSK, PSK8, PSK16, PSK32, PSK64, OQPSK:
		return FamilyPSK
	case PAM4, PAM8, PAM16:
		return FamilyPAM
	case QAM4, QAM8, QAM16, QAM32, QAM64, QAM128, QAM256:
		return FamilyQAM
	default:
		return FamilyUnknown
	}
}
