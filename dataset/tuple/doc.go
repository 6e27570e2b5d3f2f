// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package tuple parses the tuple-serialized (RadioML-2016 style)
dataset format. The concrete object-serialization decoder is treated
as an external black box: it is expected to have already turned the
file's bytes into a single flat textual representation of a dict whose
keys are ('<modName>', snr_dB) tuples and whose values contain a
bracketed list of decimal floats. This package only interprets that
decoded string.
*/
package tuple
