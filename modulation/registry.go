// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package modulation

import "fmt"

// DuplicateAlias is returned by Verify when two distinct Names share
// an alias string. It is the one fatal error kind in this module: a
// duplicate means the registry itself is inconsistent and the process
// should abort initialization rather than run with an ambiguous
// lookup table.
type DuplicateAlias struct {
	Alias string
	First Name
	Other Name
}

func (e *DuplicateAlias) Error() string {
	return fmt.Sprintf(
		"modulation: duplicate alias %q shared by %s and %s",
		e.Alias, e.First, e.Other,
	)
}

// Canonical returns the first alias of name, its canonical short
// label. It returns the empty string for Unknown.
func Canonical(name Name) string {
	aliases := aliasTable[name]
	if len(aliases) == 0 {
		return ""
	}
	return aliases[0]
}

// Aliases returns the full ordered alias list for name. The returned
// slice must not be modified by the caller.
func Aliases(name Name) []string {
	return aliasTable[name]
}

// Lookup performs a case-sensitive, exact-match linear scan over the
// alias table and returns the Name owning text as one of its aliases.
// It returns Unknown when no alias matches.
func Lookup(text string) Name {
	for _, name := range orderedNames {
		for _, alias := range aliasTable[name] {
			if alias == text {
				return name
			}
		}
	}
	return Unknown
}

// All returns every non-Unknown Name in a fixed, deterministic order.
func All() []Name {
	out := make([]Name, len(orderedNames))
	copy(out, orderedNames)
	return out
}

// Verify performs the exhaustive pairwise check required at process
// init time: the set of alias strings must be injective across all
// Names. It returns the first duplicate found, scanning in the fixed
// order returned by All.
func Verify() error {
	seen := make(map[string]Name, len(orderedNames)*2)
	for _, name := range orderedNames {
		aliases := aliasTable[name]
		if len(aliases) == 0 {
			return fmt.Errorf("modulation: %s has no aliases", name)
		}
		for _, alias := range aliases {
			if owner, ok := seen[alias]; ok {
				return &DuplicateAlias{Alias: alias, First: owner, Other: name}
			}
			seen[alias] = name
		}
	}
	return nil
}

// String implements fmt.Stringer by returning the canonical label,
// or "Unknown" for the zero value.
func (n Name) String() string {
	if n == Unknown {
		return "Unknown"
	}
	if c := Canonical(n); c != "" {
		return c
	}
	return fmt.Sprintf("Name(%d)", int(n))
}

func (k Kind) String() string {
	switch k {
	case Analog:
		return "Analog"
	case Digital:
		return "Digital"
	default:
		return "Unknown"
	}
}

func (f Family) String() string {
	switch f {
	case FamilyAM:
		return "AM"
	case FamilyFM:
		return "FM"
	case FamilyPM:
		return "PM"
	case FamilyAPSK:
		return "APSK"
	case FamilyASK:
		return "ASK"
	case FamilyFSK:
		return "FSK"
	case FamilyPSK:
		return "PSK"
	case FamilyPAM:
		return "PAM"
	case FamilyQAM:
		return "QAM"
	default:
		return "Unknown"
	}
}
