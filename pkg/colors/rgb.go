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

package colors

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/teradata-labs/hue/pkg/colormodel"
)

// RGB is an 8-bit-per-channel color with alpha.
type RGB struct {
	R, G, B, A uint8
}

// NewRGB returns an opaque RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b, A: OpaqueAlpha}
}

// NewRGBA returns an RGB color with the given alpha.
func NewRGBA(r, g, b, a uint8) RGB {
	return RGB{R: r, G: g, B: b, A: a}
}

// ParseRGB parses a hex triplet into an opaque color. It reports false for
// malformed input rather than falling back to a default color.
func ParseRGB(hex string) (RGB, bool) {
	r, g, b, ok := colormodel.ParseHex(hex)
	if !ok {
		return RGB{}, false
	}
	return NewRGB(r, g, b), true
}

func (c RGB) Red() uint8   { return c.R }
func (c RGB) Green() uint8 { return c.G }
func (c RGB) Blue() uint8  { return c.B }
func (c RGB) Alpha() uint8 { return c.A }

// RGBA implements image/color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return stdRGBA(c)
}

// WithRed returns a copy with the red channel replaced.
func (c RGB) WithRed(r uint8) RGB {
	c.R = r
	return c
}

// WithGreen returns a copy with the green channel replaced.
func (c RGB) WithGreen(g uint8) RGB {
	c.G = g
	return c
}

// WithBlue returns a copy with the blue channel replaced.
func (c RGB) WithBlue(b uint8) RGB {
	c.B = b
	return c
}

// WithAlpha returns a copy with the alpha channel replaced.
func (c RGB) WithAlpha(a uint8) RGB {
	c.A = a
	return c
}

// HSB converts c to the HSB model, keeping alpha.
func (c RGB) HSB() HSB {
	h, s, b := colormodel.HSBFromRGB(c.R, c.G, c.B)
	return NewHSBA(h, s, b, c.A)
}

// HSL converts c to the HSL model, keeping alpha.
func (c RGB) HSL() HSL {
	h, s, l := colormodel.HSLFromRGB(c.R, c.G, c.B)
	return NewHSLA(h, s, l, c.A)
}

// Colorful returns c as a go-colorful color. Alpha is dropped.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// String returns the hex triplet, with the alpha appended when not opaque.
func (c RGB) String() string {
	if c.A == OpaqueAlpha {
		return Hex(c)
	}
	return fmt.Sprintf("%s%02x", Hex(c), c.A)
}
