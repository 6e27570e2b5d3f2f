// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sdrreplay/replaytx/dataset"
	"github.com/sdrreplay/replaytx/errs"
)

// Parse reads the text-tabular dataset from r, one frame per line, and
// returns the resulting Store. Lines are ordered first by a block of
// 13,000 lines per SNR, then within that block by a fixed 26-entry
// modulation-code series that advances one entry every 500 lines, then by frame:
// snr_dB and the modulation code are derived from the 0-based line
// number alone, never read from the line itself.
func Parse(r io.Reader) (*dataset.Store, error) {
	constants := dataset.ConstantsFor(dataset.TextTabular)
	builder := dataset.NewBuilder(dataset.TextTabular)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lineNr     int
		curKey     dataset.Key
		curFrames  []dataset.FrameData
		haveCurKey bool
	)

	flush := func() error {
		if !haveCurKey {
			return nil
		}
		sd, err := dataset.NewSignalData(curFrames, constants)
		if err != nil {
			return err
		}
		if err := builder.Insert(curKey, sd); err != nil {
			return err
		}
		curFrames = nil
		haveCurKey = false
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			lineNr++
			continue
		}

		snrDb := -20 + 2*(lineNr/linesPerSnrBlock)
		seriesIdx := (lineNr % linesPerSnrBlock) / framesPerCombo
		modCode := modulationSeries[seriesIdx]
		modName, ok := modulationMapping[modCode]
		if !ok {
			return nil, fmt.Errorf(
				"%w: line %d: unmapped modulation code %d", errs.ErrInputFormat, lineNr, modCode,
			)
		}

		frame, err := parseLine(line, constants.FrameLength)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errs.ErrInputFormat, lineNr, err)
		}

		key := dataset.Key{Modulation: modName, SnrDb: snrDb}
		if haveCurKey && key != curKey {
			return nil, fmt.Errorf(
				"%w: line %d: key changed mid-group from %v to %v",
				errs.ErrInputFormat, lineNr, curKey, key,
			)
		}
		curKey = key
		haveCurKey = true
		curFrames = append(curFrames, frame)

		if len(curFrames) == framesPerCombo {
			if err := flush(); err != nil {
				return nil, err
			}
		}

		lineNr++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading tabular dataset: %v", errs.ErrInputFormat, err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return builder.Build()
}

// parseLine splits one comma-separated line of complex tokens into a
// frame of exactly frameLength points.
func parseLine(line string, frameLength int) (dataset.FrameData, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) != frameLength {
		return nil, fmt.Errorf(
			"%w: expected %d tokens, got %d", errs.ErrInputFormat, frameLength, len(tokens),
		)
	}

	frame := make(dataset.FrameData, frameLength)
	for i, tok := range tokens {
		iVal, qVal, err := parseComplexToken(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		frame[i] = dataset.IQPoint{I: float32(iVal), Q: float32(qVal)}
	}
	return frame, nil
}
