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

package colorarg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/hue/pkg/colors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected colors.Color
	}{
		{"hex with hash", "#ff8000", colors.NewRGB(255, 128, 0)},
		{"hex without hash", "FF8000", colors.NewRGB(255, 128, 0)},
		{"named", " Coral ", colors.NewRGB(0xff, 0x7f, 0x50)},
		{"rgb", "rgb(1, 2, 3)", colors.NewRGB(1, 2, 3)},
		{"rgba", "RGBA(1,2,3,4)", colors.NewRGBA(1, 2, 3, 4)},
		{"hsb", "hsb(180, 50%, 50%)", colors.NewHSB(180, 50, 50)},
		{"hsv alias", "hsv(180deg,50,50)", colors.NewHSB(180, 50, 50)},
		{"hsl", "hsl(120, 100, 25)", colors.NewHSL(120, 100, 25)},
		{"hsl out of range normalizes", "hsl(-240, 150, 25)", colors.NewHSL(120, 100, 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"#1234",
		"#fff",
		"notacolor",
		"rgb(1,2)",
		"rgb(1,2,256)",
		"rgb(-1,2,3)",
		"rgba(1,2,3)",
		"hsl(1,2)",
		"hsb(a,b,c)",
		"cmyk(0,0,0,0)",
		"(1,2,3)",
	} {
		t.Run(input, func(t *testing.T) {
			c, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidColor)
			assert.Nil(t, c)
		})
	}
}
