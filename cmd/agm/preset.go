// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-agm/agm"
)

// loadPreset reads a YAML preset over cfg. Keys missing from the file keep
// their current value; unknown keys are an error.
//
//	luma_scaling: 8
//	fade: false
//	opt: avx2
//	workers: 4
func loadPreset(path string, cfg *agm.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open preset: %w", err)
	}
	defer f.Close()
	return decodePreset(f, cfg)
}

func decodePreset(r io.Reader, cfg *agm.Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode preset: %w", err)
	}
	return nil
}
