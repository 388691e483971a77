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

// Package render draws color swatches for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/teradata-labs/hue/pkg/colors"
)

// Mode controls whether swatches are drawn.
type Mode string

const (
	ModeAuto   Mode = "auto"   // draw when the writer supports color
	ModeAlways Mode = "always" // always draw
	ModeNever  Mode = "never"  // never draw
)

// DefaultWidth is the swatch width in cells.
const DefaultWidth = 12

// lightnessThreshold is the CIE L* above which labels switch to black text.
const lightnessThreshold = 0.6

var (
	labelDark  = colors.NewRGB(0, 0, 0)
	labelLight = colors.NewRGB(255, 255, 255)
)

// ParseMode validates a swatch mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("invalid swatch mode %q (want auto, always or never)", s)
}

// Enabled reports whether swatches should be drawn to w. In auto mode the
// environment decides: NO_COLOR, a non-terminal writer or an ASCII-only
// profile all disable swatches.
func Enabled(w io.Writer, mode Mode) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// LabelColor returns black or white, whichever reads better on c.
func LabelColor(c colors.Color) colors.RGB {
	l, _, _ := colors.ToRGB(c).Colorful().Lab()
	if l > lightnessThreshold {
		return labelDark
	}
	return labelLight
}

// Swatch renders label on a block filled with c. The label is truncated to
// fit width cells.
func Swatch(c colors.Color, label string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	label = ansi.Truncate(label, width, "…")

	return lipgloss.NewStyle().
		Background(c).
		Foreground(LabelColor(c)).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// Strip renders swatches side by side, each labelled with its hex triplet.
func Strip(cs []colors.Color, width int) string {
	blocks := make([]string, len(cs))
	for i, c := range cs {
		blocks[i] = Swatch(c, colors.Hex(c), width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
