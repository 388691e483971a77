// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package harmony

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScheme is returned by ParseScheme for names it does not recognize.
var ErrUnknownScheme = errors.New("unknown harmony scheme")

// Scheme identifies a harmony scheme.
type Scheme int

const (
	SchemeComplementary Scheme = iota
	SchemeSplitComplementary
	SchemeTriadic
	SchemeSquare
	SchemeRectangle
	SchemeAnalogous
)

var schemeNames = [...]string{
	SchemeComplementary:      "complementary",
	SchemeSplitComplementary: "split-complementary",
	SchemeTriadic:            "triadic",
	SchemeSquare:             "square",
	SchemeRectangle:          "rectangle",
	SchemeAnalogous:          "analogous",
}

// Rotation offsets in degrees, in the order the scheme functions return them.
var schemeOffsets = [...][]float64{
	SchemeComplementary:      {180},
	SchemeSplitComplementary: {-150, 150},
	SchemeTriadic:            {-120, 120},
	SchemeSquare:             {90, 180, 270},
	SchemeRectangle:          {120, 180, 300},
	SchemeAnalogous:          {-30, 30},
}

// Schemes returns every scheme in declaration order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemeNames))
	for i := range out {
		out[i] = Scheme(i)
	}
	return out
}

// String returns the kebab-case scheme name.
func (s Scheme) String() string {
	if !s.valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// Offsets returns the rotations in degrees the scheme applies to a base hue.
func (s Scheme) Offsets() []float64 {
	if !s.valid() {
		return nil
	}
	return append([]float64(nil), schemeOffsets[s]...)
}

// Hues returns the scheme's hues for base, in the same order as the
// corresponding function (Triadic, Square, ...).
func (s Scheme) Hues(base float64) []float64 {
	offsets := s.Offsets()
	for i, d := range offsets {
		offsets[i] = Rotated(base, d)
	}
	return offsets
}

func (s Scheme) valid() bool {
	return s >= 0 && int(s) < len(schemeNames)
}

// ParseScheme resolves a scheme name. Matching ignores case, and '_' or ' '
// may stand in for '-'. "analogus" is accepted as an alias of "analogous" and
// "complement" as an alias of "complementary".
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)

	switch key {
	case "analogus":
		return SchemeAnalogous, nil
	case "complement":
		return SchemeComplementary, nil
	}
	for i, n := range schemeNames {
		if n == key {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}
