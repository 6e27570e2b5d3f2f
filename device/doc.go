// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package device defines the common transceiver contract shared by every
radio front-end family this core can drive: range types, the
attribute-bus transport a variant is built on, cached transmit
parameters, and the fixed-point sample conversion used to fill a
cyclic DMA buffer from a dataset.SignalData.

The contract itself (DeviceCore) says nothing about any one family's
attribute names or DAC width; package variant supplies three concrete
implementations built on top of it.
*/
package device
