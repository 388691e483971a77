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

// Package report formats colors for huectl output as text, YAML or JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/teradata-labs/hue/internal/render"
	"github.com/teradata-labs/hue/pkg/colors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("invalid output format %q (want text, yaml or json)", s)
}

// RGBA holds the byte channels of an entry.
type RGBA struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// HSB holds the HSB components of an entry, rounded to two decimals.
type HSB struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Brightness float64 `json:"brightness" yaml:"brightness"`
}

// HSL holds the HSL components of an entry, rounded to two decimals.
type HSL struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
}

// Entry describes one color in every model.
type Entry struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Hex   string `json:"hex" yaml:"hex"`
	RGBA  RGBA   `json:"rgba" yaml:"rgba"`
	HSB   HSB    `json:"hsb" yaml:"hsb"`
	HSL   HSL    `json:"hsl" yaml:"hsl"`

	color colors.Color
}

// Section is a titled group of entries, such as one harmony scheme.
type Section struct {
	Title   string  `json:"title" yaml:"title"`
	Entries []Entry `json:"colors" yaml:"colors"`
}

// NewEntry describes c. HSB and HSL components are taken from c itself when
// it is already in that model, so user-supplied values are not re-derived
// from rounded bytes.
func NewEntry(label string, c colors.Color) Entry {
	rgb := colors.ToRGB(c)

	hsb := rgb.HSB()
	if v, ok := c.(colors.HSB); ok {
		hsb = v
	}
	hsl := rgb.HSL()
	if v, ok := c.(colors.HSL); ok {
		hsl = v
	}

	return Entry{
		Label: label,
		Hex:   colors.Hex(c),
		RGBA:  RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: rgb.A},
		HSB:   HSB{Hue: round2(hsb.Hue()), Saturation: round2(hsb.Saturation()), Brightness: round2(hsb.Brightness())},
		HSL:   HSL{Hue: round2(hsl.Hue()), Saturation: round2(hsl.Saturation()), Lightness: round2(hsl.Lightness())},
		color: c,
	}
}

// Options controls text output.
type Options struct {
	Swatches    bool
	SwatchWidth int
}

// Write renders sections to w in the given format. Swatches only apply to
// text output, where each titled section also gets a one-line palette strip.
func Write(w io.Writer, format Format, sections []Section, opts Options) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sections); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sections); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatText, "":
		return writeText(w, sections, opts)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func writeText(w io.Writer, sections []Section, opts Options) error {
	caser := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if s.Title != "" {
			fmt.Fprintf(tw, "%s\n", caser.String(strings.ReplaceAll(s.Title, "-", " ")))
		}
		for _, e := range s.Entries {
			fmt.Fprintf(tw, "%s\t%s\trgba(%d, %d, %d, %d)\thsb(%g, %g%%, %g%%)\thsl(%g, %g%%, %g%%)",
				e.Label, e.Hex,
				e.RGBA.R, e.RGBA.G, e.RGBA.B, e.RGBA.A,
				e.HSB.Hue, e.HSB.Saturation, e.HSB.Brightness,
				e.HSL.Hue, e.HSL.Saturation, e.HSL.Lightness)
			// The swatch goes last; its escape sequences would skew column widths.
			if opts.Swatches && e.color != nil {
				fmt.Fprintf(tw, "\t%s", render.Swatch(e.color, e.Hex, opts.SwatchWidth))
			}
			fmt.Fprintln(tw)
		}
		// Titled sections, such as harmony schemes, end with a palette strip.
		if opts.Swatches && s.Title != "" {
			if strip := paletteStrip(s, opts.SwatchWidth); strip != "" {
				fmt.Fprintln(tw, strip)
			}
		}
	}
	return tw.Flush()
}

func paletteStrip(s Section, width int) string {
	cs := make([]colors.Color, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.color != nil {
			cs = append(cs, e.color)
		}
	}
	if len(cs) == 0 {
		return ""
	}
	return render.Strip(cs, width)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
