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
	"errors"
	"testing"

	"github.com/ajroetker/go-agm/hwy"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"-1", VariantAuto, false},
		{"0", VariantScalar, false},
		{"1", VariantSSE2, false},
		{"2", VariantAVX2, false},
		{"3", VariantAVX512, false},
		{"4", VariantNEON, false},
		{"auto", VariantAuto, false},
		{"AVX2", VariantAVX2, false},
		{" neon ", VariantNEON, false},
		{"scalar", VariantScalar, false},
		{"5", VariantAuto, true},
		{"-2", VariantAuto, true},
		{"sse4", VariantAuto, true},
	}
	for _, tc := range tests {
		got, err := ParseVariant(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseVariant(%q) error = %v, wantErr %t", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVariant(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestVariantString(t *testing.T) {
	for v, want := range map[Variant]string{
		VariantAuto:   "auto",
		VariantScalar: "scalar",
		VariantAVX512: "avx512",
		Variant(9):    "Variant(9)",
	} {
		if got := v.String(); got != want {
			t.Errorf("Variant(%d).String() = %q, want %q", int(v), got, want)
		}
	}
}

func TestVariantTextRoundTrip(t *testing.T) {
	for _, v := range []Variant{VariantAuto, VariantScalar, VariantSSE2, VariantAVX2, VariantAVX512, VariantNEON} {
		text, err := v.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Variant
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != v {
			t.Errorf("round trip of %v gave %v", v, back)
		}
	}
}

func TestVariantLevel(t *testing.T) {
	level, err := VariantAuto.Level()
	if err != nil {
		t.Fatal(err)
	}
	if level != hwy.DispatchScalar {
		t.Errorf("VariantAuto.Level() = %v, want %v", level, hwy.DispatchScalar)
	}

	for v, want := range variantLevels {
		level, err := v.Level()
		if hwy.Supports(want) {
			if err != nil || level != want {
				t.Errorf("%v.Level() = (%v, %v), want (%v, nil)", v, level, err, want)
			}
			continue
		}
		if !errors.Is(err, ErrUnsupportedVariant) {
			t.Errorf("%v.Level() error = %v, want ErrUnsupportedVariant", v, err)
		}
	}

	if _, err := Variant(7).Level(); !errors.Is(err, ErrUnsupportedVariant) {
		t.Errorf("Variant(7).Level() error = %v, want ErrUnsupportedVariant", err)
	}
}

func TestSupportedVariants(t *testing.T) {
	vs := SupportedVariants()
	if len(vs) == 0 || vs[0] != VariantScalar {
		t.Fatalf("SupportedVariants() = %v, want scalar first", vs)
	}
	for _, v := range vs {
		if _, err := v.Level(); err != nil {
			t.Errorf("%v listed as supported but Level() failed: %v", v, err)
		}
	}
}
