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

// Package colors provides immutable RGB, HSB and HSL color values.
//
// Each value holds its own model's components together with the matching RGB
// bytes, computed once at construction. The With* methods return modified
// copies and never mutate the receiver. All types implement Color and the
// standard library's image/color.Color, so they can be handed directly to
// lipgloss and image code.
package colors

import (
	"image/color"

	"github.com/teradata-labs/hue/pkg/colormodel"
)

// OpaqueAlpha is the alpha given to colors constructed without one.
const OpaqueAlpha uint8 = 255

// Color is implemented by every color representation. RGBA reports
// alpha-premultiplied channels as image/color requires.
type Color interface {
	color.Color

	Red() uint8
	Green() uint8
	Blue() uint8
	Alpha() uint8
}

// Hex returns the '#rrggbb' representation of c. Alpha is not encoded.
func Hex(c Color) string {
	return colormodel.FormatHex(c.Red(), c.Green(), c.Blue())
}

// Equal reports whether a and b have the same red, green, blue and alpha
// values, regardless of the model they are expressed in.
func Equal(a, b Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Red() == b.Red() &&
		a.Green() == b.Green() &&
		a.Blue() == b.Blue() &&
		a.Alpha() == b.Alpha()
}

// ToRGB returns c as an RGB value.
func ToRGB(c Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	return NewRGBA(c.Red(), c.Green(), c.Blue(), c.Alpha())
}

// FromStd converts any image/color.Color to RGB, undoing alpha premultiplication.
func FromStd(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRGBA(n.R, n.G, n.B, n.A)
}

// stdRGBA implements image/color.Color for any Color.
func stdRGBA(c Color) (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}
