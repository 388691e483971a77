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

package render

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/hue/pkg/colors"
)

func TestParseMode(t *testing.T) {
	for in, expected := range map[string]Mode{
		"auto":    ModeAuto,
		"":        ModeAuto,
		"ALWAYS":  ModeAlways,
		" never ": ModeNever,
	} {
		m, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, m)
	}

	_, err := ParseMode("sometimes")
	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, Enabled(&buf, ModeAlways))
	assert.False(t, Enabled(&buf, ModeNever))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, Enabled(&buf, ModeAuto))
}

func TestLabelColor(t *testing.T) {
	assert.Equal(t, labelDark, LabelColor(colors.NewRGB(255, 255, 255)))
	assert.Equal(t, labelDark, LabelColor(colors.NewRGB(255, 255, 0)))
	assert.Equal(t, labelLight, LabelColor(colors.NewRGB(0, 0, 0)))
	assert.Equal(t, labelLight, LabelColor(colors.NewHSB(240, 100, 60)))
}

func TestSwatch(t *testing.T) {
	out := Swatch(colors.NewRGB(255, 0, 0), "#ff0000", 10)
	plain := ansi.Strip(out)

	assert.Contains(t, plain, "#ff0000")
	assert.Equal(t, 10, ansi.StringWidth(plain))
	assert.NotEqual(t, plain, out, "swatch should carry color sequences")
}

func TestSwatchTruncatesLabel(t *testing.T) {
	out := ansi.Strip(Swatch(colors.NewRGB(0, 0, 0), "a very long label indeed", 8))
	assert.Equal(t, 8, ansi.StringWidth(out))
	assert.Contains(t, out, "…")
}

func TestStrip(t *testing.T) {
	cs := []colors.Color{colors.NewRGB(255, 0, 0), colors.NewHSB(120, 100, 100)}
	plain := ansi.Strip(Strip(cs, 9))

	assert.Contains(t, plain, "#ff0000")
	assert.Contains(t, plain, "#00ff00")
	assert.Equal(t, 18, ansi.StringWidth(plain))
}
