// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package dump implements the optional dump file, covering only the
first two frames of a SignalData: either plain text, one line per
sample with columns "sampleIndex i q" (NewWrite), or a 2-channel
16-bit PCM WAV file (NewWriteWav). It is a diagnostic aid, not
part of the required transmit path, and is never consulted when
deciding whether a dataset loaded successfully.
*/
package dump
