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

	"github.com/teradata-labs/hue/pkg/colormodel"
	"github.com/teradata-labs/hue/pkg/harmony"
)

// HSL is a color in the hue/saturation/lightness model with alpha.
//
// Hue is in degrees [0, 360); saturation and lightness are percents [0, 100].
type HSL struct {
	hue, saturation, lightness float64
	r, g, b, a                 uint8
}

// NewHSL returns an opaque HSL color. Out-of-range components are normalized.
func NewHSL(hue, saturation, lightness float64) HSL {
	return NewHSLA(hue, saturation, lightness, OpaqueAlpha)
}

// NewHSLA returns an HSL color with the given alpha.
func NewHSLA(hue, saturation, lightness float64, alpha uint8) HSL {
	h, s, l := colormodel.NormalizeHSL(hue, saturation, lightness)
	r, g, b := colormodel.RGBFromHSL(h, s, l)
	return HSL{hue: h, saturation: s, lightness: l, r: r, g: g, b: b, a: alpha}
}

func (c HSL) Hue() float64        { return c.hue }
func (c HSL) Saturation() float64 { return c.saturation }
func (c HSL) Lightness() float64  { return c.lightness }

func (c HSL) Red() uint8   { return c.r }
func (c HSL) Green() uint8 { return c.g }
func (c HSL) Blue() uint8  { return c.b }
func (c HSL) Alpha() uint8 { return c.a }

// RGBA implements image/color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return stdRGBA(c)
}

func (c HSL) WithHue(hue float64) HSL {
	return NewHSLA(hue, c.saturation, c.lightness, c.a)
}

func (c HSL) WithSaturation(saturation float64) HSL {
	return NewHSLA(c.hue, saturation, c.lightness, c.a)
}

func (c HSL) WithLightness(lightness float64) HSL {
	return NewHSLA(c.hue, c.saturation, lightness, c.a)
}

// WithAlpha returns a copy with alpha replaced; no other component is recomputed.
func (c HSL) WithAlpha(alpha uint8) HSL {
	c.a = alpha
	return c
}

// RGB returns the color's RGB bytes and alpha.
func (c HSL) RGB() RGB {
	return NewRGBA(c.r, c.g, c.b, c.a)
}

// HSB converts the color to the HSB model via its RGB bytes.
func (c HSL) HSB() HSB {
	return c.RGB().HSB()
}

// Rotated returns a copy with the hue rotated by degrees.
func (c HSL) Rotated(degrees float64) HSL {
	return c.WithHue(harmony.Rotated(c.hue, degrees))
}

func (c HSL) Complementary() HSL {
	return c.WithHue(harmony.Complementary(c.hue))
}

func (c HSL) SplitComplementary() (HSL, HSL) {
	h1, h2 := harmony.SplitComplementary(c.hue)
	return c.WithHue(h1), c.WithHue(h2)
}

func (c HSL) Triadic() (HSL, HSL) {
	h1, h2 := harmony.Triadic(c.hue)
	return c.WithHue(h1), c.WithHue(h2)
}

func (c HSL) Square() (HSL, HSL, HSL) {
	h1, h2, h3 := harmony.Square(c.hue)
	return c.WithHue(h1), c.WithHue(h2), c.WithHue(h3)
}

func (c HSL) Rectangle() (HSL, HSL, HSL) {
	h1, h2, h3 := harmony.Rectangle(c.hue)
	return c.WithHue(h1), c.WithHue(h2), c.WithHue(h3)
}

func (c HSL) Analogous() (HSL, HSL) {
	h1, h2 := harmony.Analogous(c.hue)
	return c.WithHue(h1), c.WithHue(h2)
}

// Scheme returns the colors of scheme s, excluding c itself.
func (c HSL) Scheme(s harmony.Scheme) []HSL {
	hues := s.Hues(c.hue)
	out := make([]HSL, len(hues))
	for i, h := range hues {
		out[i] = c.WithHue(h)
	}
	return out
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.hue, c.saturation, c.lightness)
}
