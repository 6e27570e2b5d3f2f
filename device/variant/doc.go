// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package variant implements the three device.DeviceCore front ends
this core drives: A (baseband TRX, 12-bit DAC, ad9361-phy), B
(wideband TRX, 14-bit DAC, adrv9009-phy), and C (mixed-signal front
end, 16-bit DAC, ad9081). Each keeps its own state and attribute
vocabulary; Detect picks the right one from a context description
without any shared base class, following the tagged-sum-over-a-closed-set
approach favored over inheritance for exactly three known variants.
*/
package variant
