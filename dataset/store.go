// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"sort"

	"github.com/sdrreplay/replaytx/errs"
	"github.com/sdrreplay/replaytx/modulation"
)

// Key identifies one (modulation, SNR in dB) combination in a Store.
type Key struct {
	Modulation modulation.Name
	SnrDb      int
}

// Store is the immutable result of a successful parse: a mapping from
// (modulation, SNR) to SignalData, plus the distinct modulations and
// SNRs observed, each as an ordered, deduplicated sequence.
//
// A Store is built exclusively through a Builder so that a failed or
// in-progress parse can never be observed: the Transmit HAL only ever
// holds a fully validated, previously-published Store.
type Store struct {
	kind      Kind
	entries   map[Key]SignalData
	modulations []modulation.Name
	snrs        []int
}

// Kind returns the dataset kind this Store was parsed from.
func (s *Store) Kind() Kind { return s.kind }

// Lookup returns the SignalData for key and whether it was present.
func (s *Store) Lookup(key Key) (SignalData, bool) {
	sd, ok := s.entries[key]
	return sd, ok
}

// Modulations returns the distinct modulations present, in ascending
// enumeration order.
func (s *Store) Modulations() []modulation.Name {
	out := make([]modulation.Name, len(s.modulations))
	copy(out, s.modulations)
	return out
}

// Snrs returns the distinct SNR values present, ascending.
func (s *Store) Snrs() []int {
	out := make([]int, len(s.snrs))
	copy(out, s.snrs)
	return out
}

// Len returns the number of (modulation, SNR) entries in the store.
func (s *Store) Len() int { return len(s.entries) }

// Builder accumulates (Key, SignalData) pairs during a single parse
// and validates them all at once in Build, implementing the
// publish-on-success transfer described by the data model: a failed
// parse never mutates any previously published Store.
type Builder struct {
	kind    Kind
	entries map[Key]SignalData
}

// NewBuilder creates a Builder for the given dataset kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{kind: kind, entries: make(map[Key]SignalData)}
}

// Insert adds the SignalData for key. It returns errs.KindInputFormat
// if key was already inserted: duplicate (modulation, SNR) keys within
// one parse are rejected rather than silently overwritten or
// deduplicated after the fact.
func (b *Builder) Insert(key Key, sd SignalData) error {
	if _, exists := b.entries[key]; exists {
		return fmt.Errorf(
			"%w: duplicate entry for modulation %s, snr %ddB",
			errs.ErrInputFormat, key.Modulation, key.SnrDb,
		)
	}
	b.entries[key] = sd
	return nil
}

// BuildSingleModulation validates that the accumulated entries all
// share one modulation and that the distinct SNR count matches
// constants.SnrsNr. It exists for the hierarchical-scientific parser,
// which loads exactly one modulation's slab per call by design (see
// package hier) rather than the whole dataset, so the usual
// full-dataset modulation-cardinality check in Build does not apply.
func (b *Builder) BuildSingleModulation() (*Store, error) {
	modSet := make(map[modulation.Name]struct{})
	snrSet := make(map[int]struct{})
	for key := range b.entries {
		modSet[key.Modulation] = struct{}{}
		snrSet[key.SnrDb] = struct{}{}
	}

	if len(modSet) != 1 {
		return nil, fmt.Errorf(
			"%w: expected exactly 1 modulation in a single-modulation slab, got %d",
			errs.ErrInputFormat, len(modSet),
		)
	}
	constants := ConstantsFor(b.kind)
	if len(snrSet) != constants.SnrsNr {
		return nil, fmt.Errorf(
			"%w: expected %d distinct SNRs, got %d",
			errs.ErrInputFormat, constants.SnrsNr, len(snrSet),
		)
	}

	mods := make([]modulation.Name, 0, 1)
	for m := range modSet {
		mods = append(mods, m)
	}

	snrs := make([]int, 0, len(snrSet))
	for s := range snrSet {
		snrs = append(snrs, s)
	}
	sort.Ints(snrs)

	entries := make(map[Key]SignalData, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}

	return &Store{
		kind:        b.kind,
		entries:     entries,
		modulations: mods,
		snrs:        snrs,
	}, nil
}

// Build validates that the accumulated entries match the expected
// modulation and SNR cardinalities for the dataset kind and returns
// the finished, immutable Store. On any validation failure a
// errs.KindInputFormat error is returned; no partial Store is ever
// produced.
func (b *Builder) Build() (*Store, error) {
	modSet := make(map[modulation.Name]struct{})
	snrSet := make(map[int]struct{})
	for key := range b.entries {
		modSet[key.Modulation] = struct{}{}
		snrSet[key.SnrDb] = struct{}{}
	}

	constants := ConstantsFor(b.kind)
	if len(modSet) != constants.ModulationsNr {
		return nil, fmt.Errorf(
			"%w: expected %d distinct modulations, got %d",
			errs.ErrInputFormat, constants.ModulationsNr, len(modSet),
		)
	}
	if len(snrSet) != constants.SnrsNr {
		return nil, fmt.Errorf(
			"%w: expected %d distinct SNRs, got %d",
			errs.ErrInputFormat, constants.SnrsNr, len(snrSet),
		)
	}

	mods := make([]modulation.Name, 0, len(modSet))
	for m := range modSet {
		mods = append(mods, m)
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i] < mods[j] })

	snrs := make([]int, 0, len(snrSet))
	for s := range snrSet {
		snrs = append(snrs, s)
	}
	sort.Ints(snrs)

	entries := make(map[Key]SignalData, len(b.entries))
	for k, v := range b.entries {
		entries[k] = v
	}

	return &Store{
		kind:        b.kind,
		entries:     entries,
		modulations: mods,
		snrs:        snrs,
	}, nil
}
