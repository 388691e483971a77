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

// HSB is a color in the hue/saturation/brightness (HSV) model with alpha.
//
// Hue is in degrees [0, 360); saturation and brightness are percents [0, 100].
type HSB struct {
	hue, saturation, brightness float64
	r, g, b, a                  uint8
}

// NewHSB returns an opaque HSB color. Out-of-range components are normalized.
func NewHSB(hue, saturation, brightness float64) HSB {
	return NewHSBA(hue, saturation, brightness, OpaqueAlpha)
}

// NewHSBA returns an HSB color with the given alpha.
func NewHSBA(hue, saturation, brightness float64, alpha uint8) HSB {
	h, s, v := colormodel.NormalizeHSB(hue, saturation, brightness)
	r, g, b := colormodel.RGBFromHSB(h, s, v)
	return HSB{hue: h, saturation: s, brightness: v, r: r, g: g, b: b, a: alpha}
}

func (c HSB) Hue() float64        { return c.hue }
func (c HSB) Saturation() float64 { return c.saturation }
func (c HSB) Brightness() float64 { return c.brightness }

func (c HSB) Red() uint8   { return c.r }
func (c HSB) Green() uint8 { return c.g }
func (c HSB) Blue() uint8  { return c.b }
func (c HSB) Alpha() uint8 { return c.a }

// RGBA implements image/color.Color.
func (c HSB) RGBA() (r, g, b, a uint32) {
	return stdRGBA(c)
}

func (c HSB) WithHue(hue float64) HSB {
	return NewHSBA(hue, c.saturation, c.brightness, c.a)
}

func (c HSB) WithSaturation(saturation float64) HSB {
	return NewHSBA(c.hue, saturation, c.brightness, c.a)
}

func (c HSB) WithBrightness(brightness float64) HSB {
	return NewHSBA(c.hue, c.saturation, brightness, c.a)
}

// WithAlpha returns a copy with alpha replaced; no other component is recomputed.
func (c HSB) WithAlpha(alpha uint8) HSB {
	c.a = alpha
	return c
}

// RGB returns the color's RGB bytes and alpha.
func (c HSB) RGB() RGB {
	return NewRGBA(c.r, c.g, c.b, c.a)
}

// HSL converts the color to the HSL model via its RGB bytes.
func (c HSB) HSL() HSL {
	return c.RGB().HSL()
}

// Rotated returns a copy with the hue rotated by degrees.
func (c HSB) Rotated(degrees float64) HSB {
	return c.WithHue(harmony.Rotated(c.hue, degrees))
}

func (c HSB) Complementary() HSB {
	return c.WithHue(harmony.Complementary(c.hue))
}

func (c HSB) SplitComplementary() (HSB, HSB) {
	h1, h2 := harmony.SplitComplementary(c.hue)
	return c.WithHue(h1), c.WithHue(h2)
}

func (c HSB) Triadic() (HSB, HSB) {
	h1, h2 := harmony.Triadic(c.hue)
	return c.WithHue(h1), c.WithHue(h2)
}

func (c HSB) Square() (HSB, HSB, HSB) {
	h1, h2, h3 := harmony.Square(c.hue)
	return c.WithHue(h1), c.WithHue(h2), c.WithHue(h3)
}

func (c HSB) Rectangle() (HSB, HSB, HSB) {
	h1, h2, h3 := harmony.Rectangle(c.hue)
	return c.WithHue(h1), c.WithHue(h2), c.WithHue(h3)
}

func (c HSB) Analogous() (HSB, HSB) {
	h1, h2 := harmony.Analogous(c.hue)
	return c.WithHue(h1), c.WithHue(h2)
}

// Scheme returns the colors of scheme s, excluding c itself.
func (c HSB) Scheme(s harmony.Scheme) []HSB {
	hues := s.Hues(c.hue)
	out := make([]HSB, len(hues))
	for i, h := range hues {
		out[i] = c.WithHue(h)
	}
	return out
}

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%g, %g%%, %g%%)", c.hue, c.saturation, c.brightness)
}
