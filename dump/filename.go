// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dump

import (
	"fmt"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/modulation"
)

// DefaultFilename returns the default dump filename for one
// (modulation, SNR) combination of kind: "<DatasetLabel>_<ModulationAlias>_<SNR>dB.txt".
func DefaultFilename(kind dataset.Kind, name modulation.Name, snrDb int) string {
	return fmt.Sprintf("%s_%s_%ddB.txt", kind, modulation.Canonical(name), snrDb)
}
