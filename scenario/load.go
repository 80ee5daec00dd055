// SPDX-License-Identifier: MIT
// Package: lvlopt/scenario
//
// load.go — strict YAML decoding from files and readers.

package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes one scenario document from path. Decoding is
// strict (unknown fields rejected); validation is the caller's next step.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes one scenario document from r with strict field checking.
// It reports YAML shape defects only; call Validate for value screening.
func Parse(r io.Reader) (*Scenario, error) {
	var (
		dec = yaml.NewDecoder(r)
		s   Scenario
	)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return &s, nil
}
