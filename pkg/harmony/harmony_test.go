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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/hue/pkg/colormodel"
)

func TestRotated(t *testing.T) {
	assert.Equal(t, 200.0, Rotated(180, 20))
	assert.Equal(t, 340.0, Rotated(180, -200))
	assert.Equal(t, 120.0, Rotated(180, 300))
	assert.Equal(t, 0.0, Rotated(180, 180))
	assert.Equal(t, 10.0, Rotated(-350, 0))
}

func TestRotatedAdditive(t *testing.T) {
	for _, h := range []float64{0, 33, 180, 359, -45, 721} {
		for _, d1 := range []float64{-400, -30, 0, 90, 500} {
			for _, d2 := range []float64{-90, 15, 360, 1000} {
				assert.InDelta(t, Rotated(h, d1+d2), Rotated(Rotated(h, d1), d2), 1e-9,
					"h=%v d1=%v d2=%v", h, d1, d2)
			}
		}
	}
}

func TestComplementary(t *testing.T) {
	assert.Equal(t, 60.0, Complementary(240))
	for _, h := range []float64{0, 12.5, 90, 270, -30, 1000} {
		assert.InDelta(t, colormodel.WrapHue(h), Complementary(Complementary(h)), 1e-9)
	}
}

func TestSchemes(t *testing.T) {
	h1, h2 := SplitComplementary(50)
	assert.Equal(t, []float64{260, 200}, []float64{h1, h2})

	h1, h2 = Triadic(50)
	assert.Equal(t, []float64{290, 170}, []float64{h1, h2})

	h1, h2, h3 := Square(110)
	assert.Equal(t, []float64{200, 290, 20}, []float64{h1, h2, h3})

	h1, h2, h3 = Rectangle(90)
	assert.Equal(t, []float64{210, 270, 30}, []float64{h1, h2, h3})

	h1, h2 = Analogous(10)
	assert.Equal(t, []float64{340, 40}, []float64{h1, h2})
}

func TestSchemeHuesMatchFunctions(t *testing.T) {
	base := 77.0

	c := Complementary(base)
	a1, a2 := Analogous(base)
	s1, s2 := SplitComplementary(base)
	t1, t2 := Triadic(base)
	q1, q2, q3 := Square(base)
	r1, r2, r3 := Rectangle(base)

	expected := map[Scheme][]float64{
		SchemeComplementary:      {c},
		SchemeSplitComplementary: {s1, s2},
		SchemeTriadic:            {t1, t2},
		SchemeSquare:             {q1, q2, q3},
		SchemeRectangle:          {r1, r2, r3},
		SchemeAnalogous:          {a1, a2},
	}
	require.Len(t, Schemes(), len(expected))
	for _, s := range Schemes() {
		assert.Equal(t, expected[s], s.Hues(base), s.String())
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Scheme
	}{
		{"complementary", SchemeComplementary},
		{"Split-Complementary", SchemeSplitComplementary},
		{"split_complementary", SchemeSplitComplementary},
		{" triadic ", SchemeTriadic},
		{"SQUARE", SchemeSquare},
		{"rectangle", SchemeRectangle},
		{"analogous", SchemeAnalogous},
		{"analogus", SchemeAnalogous},
		{"Complement", SchemeComplementary},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseScheme(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	_, err := ParseScheme("pentagon")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestSchemeStringAndOffsets(t *testing.T) {
	assert.Equal(t, "split-complementary", SchemeSplitComplementary.String())
	assert.Equal(t, "Scheme(42)", Scheme(42).String())
	assert.Nil(t, Scheme(-1).Offsets())
	assert.Nil(t, Scheme(42).Hues(10))

	// Offsets must be a copy.
	offsets := SchemeSquare.Offsets()
	offsets[0] = 0
	assert.Equal(t, []float64{90, 180, 270}, SchemeSquare.Offsets())
}
