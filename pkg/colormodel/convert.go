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

package colormodel

import "math"

// RGBFromHSB converts hue (degrees), saturation and brightness (percent) to
// RGB bytes. Inputs are normalized first.
func RGBFromHSB(hue, saturation, brightness float64) (r, g, b uint8) {
	hue, saturation, brightness = NormalizeHSB(hue, saturation, brightness)
	s := saturation / PercentMax
	v := brightness / PercentMax

	c := v * s
	return fromChroma(hue, c, v-c)
}

// RGBFromHSL converts hue (degrees), saturation and lightness (percent) to
// RGB bytes. Inputs are normalized first.
func RGBFromHSL(hue, saturation, lightness float64) (r, g, b uint8) {
	hue, saturation, lightness = NormalizeHSL(hue, saturation, lightness)
	s := saturation / PercentMax
	l := lightness / PercentMax

	c := (1 - math.Abs(2*l-1)) * s
	return fromChroma(hue, c, l-c/2)
}

// fromChroma picks the channel order for the 60° sector hue falls into, then
// offsets every channel by m. hue must already be in [0, 360).
func fromChroma(hue, c, m float64) (r, g, b uint8) {
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))

	var rf, gf, bf float64
	switch {
	case hue < 60:
		rf, gf, bf = c, x, 0
	case hue < 120:
		rf, gf, bf = x, c, 0
	case hue < 180:
		rf, gf, bf = 0, c, x
	case hue < 240:
		rf, gf, bf = 0, x, c
	case hue < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return toByte(rf + m), toByte(gf + m), toByte(bf + m)
}

// HSBFromRGB converts RGB bytes to hue (degrees), saturation and brightness (percent).
func HSBFromRGB(red, green, blue uint8) (hue, saturation, brightness float64) {
	r, g, b := fromByte(red), fromByte(green), fromByte(blue)
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))

	if maxC > 0 {
		saturation = (maxC - minC) / maxC
	}

	return hueFromRGB(maxC, minC, r, g, b), saturation * PercentMax, maxC * PercentMax
}

// HSLFromRGB converts RGB bytes to hue (degrees), saturation and lightness (percent).
func HSLFromRGB(red, green, blue uint8) (hue, saturation, lightness float64) {
	r, g, b := fromByte(red), fromByte(green), fromByte(blue)
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	lightness = (maxC + minC) / 2
	if d := 1 - math.Abs(2*lightness-1); delta != 0 && d > 0 {
		saturation = math.Min(1, delta/d)
	}

	return hueFromRGB(maxC, minC, r, g, b), saturation * PercentMax, lightness * PercentMax
}

// hueFromRGB computes the hue shared by HSB and HSL from channels in [0, 1].
func hueFromRGB(maxC, minC, r, g, b float64) float64 {
	delta := maxC - minC
	if delta == 0 {
		// Achromatic.
		return 0
	}

	var h float64
	switch maxC {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	return WrapHue(h)
}

func fromByte(v uint8) float64 {
	return float64(v) / 255
}

// toByte scales [0, 1] to [0, 255], rounding half away from zero.
func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
