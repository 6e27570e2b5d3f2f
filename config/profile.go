// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named entry in a profile file: a known transport URI
// plus the startup parameters to apply once that context's variant has
// been initialized. Zero-valued numeric fields are left unset and are
// skipped by Apply rather than written to hardware.
type Profile struct {
	Name         string  `yaml:"name"`
	URI          string  `yaml:"uri"`
	LOHz         float64 `yaml:"lo_hz,omitempty"`
	SampleRateHz float64 `yaml:"sample_rate_hz,omitempty"`
	BandwidthHz  float64 `yaml:"bandwidth_hz,omitempty"`
	HWGainDb     float64 `yaml:"hw_gain_db,omitempty"`
	NCOGain      float64 `yaml:"nco_gain,omitempty"`
}

// File is the top-level shape of a profile file: a flat list of named
// profiles, each keyed to one transport URI.
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// Parse decodes a profile file from r.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read profile file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse profile file: %w", err)
	}
	for i, p := range f.Profiles {
		if p.URI == "" {
			return nil, fmt.Errorf("config: profile %d (%q) has no uri", i, p.Name)
		}
	}
	return &f, nil
}

// ParseFile opens path and decodes it with Parse.
func ParseFile(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open profile file: %w", err)
	}
	defer fp.Close()
	return Parse(fp)
}

// Find returns the profile whose URI matches uri, and whether one was
// found.
func (f *File) Find(uri string) (Profile, bool) {
	for _, p := range f.Profiles {
		if p.URI == uri {
			return p, true
		}
	}
	return Profile{}, false
}
