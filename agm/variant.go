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

package agm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-agm/hwy"
)

// Variant selects the kernel implementation. The numeric values of
// VariantAuto through VariantAVX512 are the historical "opt" values.
type Variant int

const (
	VariantAuto   Variant = -1
	VariantScalar Variant = 0
	VariantSSE2   Variant = 1
	VariantAVX2   Variant = 2
	VariantAVX512 Variant = 3
	VariantNEON   Variant = 4
)

var variantLevels = map[Variant]hwy.DispatchLevel{
	VariantScalar: hwy.DispatchScalar,
	VariantSSE2:   hwy.DispatchSSE2,
	VariantAVX2:   hwy.DispatchAVX2,
	VariantAVX512: hwy.DispatchAVX512,
	VariantNEON:   hwy.DispatchNEON,
}

func (v Variant) String() string {
	if v == VariantAuto {
		return "auto"
	}
	if level, ok := variantLevels[v]; ok {
		return level.String()
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts a numeric opt value (-1 to 4) or a name such as
// "auto", "scalar", "sse2", "avx2", "avx512" or "neon".
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		v := Variant(n)
		if _, ok := variantLevels[v]; ok || v == VariantAuto {
			return v, nil
		}
		return VariantAuto, fmt.Errorf("opt %d out of range [-1, 4]", n)
	}
	if strings.EqualFold(s, "auto") {
		return VariantAuto, nil
	}
	level, err := hwy.ParseDispatchLevel(s)
	if err != nil {
		return VariantAuto, fmt.Errorf("parse variant: %w", err)
	}
	return VariantForLevel(level), nil
}

// VariantForLevel returns the variant running at level.
func VariantForLevel(level hwy.DispatchLevel) Variant {
	for v, l := range variantLevels {
		if l == level {
			return v
		}
	}
	return VariantScalar
}

// UnmarshalText lets a Variant be read from YAML and flag values.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalText writes the variant name.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Level resolves v to the dispatch level its kernel runs at. VariantAuto
// resolves to hwy.DispatchScalar: the batched kernel allocates per op and
// runs slower than the scalar loop. An explicit level the CPU does not support
// is an error wrapping ErrUnsupportedVariant.
func (v Variant) Level() (hwy.DispatchLevel, error) {
	if v == VariantAuto {
		return hwy.DispatchScalar, nil
	}
	level, ok := variantLevels[v]
	if !ok {
		return hwy.DispatchScalar, fmt.Errorf("variant %d: %w", int(v), ErrUnsupportedVariant)
	}
	if !hwy.Supports(level) {
		return hwy.DispatchScalar, fmt.Errorf("%s: %w", level, ErrUnsupportedVariant)
	}
	return level, nil
}

// SupportedVariants lists the variants the running CPU can execute, scalar
// first.
func SupportedVariants() []Variant {
	levels := hwy.SupportedLevels()
	out := make([]Variant, 0, len(levels))
	for _, l := range levels {
		out = append(out, VariantForLevel(l))
	}
	return out
}

// lanesFor returns the batch width of the kernel at level, counted in
// float32 lanes. Scalar returns 0.
func lanesFor(level hwy.DispatchLevel) int {
	if level == hwy.DispatchScalar {
		return 0
	}
	return hwy.LanesAt[float32](level)
}
