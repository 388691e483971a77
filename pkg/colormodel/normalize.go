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

// Package colormodel converts between the RGB, HSB and HSL color models.
//
// Every function is a pure mapping from its arguments to its results and is
// safe for concurrent use. Out-of-range inputs are normalized, never rejected:
// hue wraps into [0, 360) and percentages clamp into [0, 100].
package colormodel

import "math"

const (
	// HueMax is the exclusive upper bound of a canonical hue, in degrees.
	HueMax = 360.0

	// PercentMax is the inclusive upper bound of saturation, brightness and lightness.
	PercentMax = 100.0
)

// WrapHue wraps a hue in degrees into [0, 360).
//
// Negative hues wrap from 360 rather than truncating toward zero, so
// WrapHue(-20) == 340. Hues already in range are returned unchanged. NaN and
// infinite hues map to 0.
func WrapHue(hue float64) float64 {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		return 0
	}
	if hue > 0 && hue < HueMax {
		return hue
	}

	// The second Mod folds 360-ε back to 0 when the addition rounds up.
	h := math.Mod(math.Mod(hue, HueMax)+HueMax, HueMax)
	if h == 0 {
		// Drop negative zero.
		return 0
	}
	return h
}

// ClampPercent clamps a saturation, brightness or lightness into [0, 100].
// NaN clamps to 0.
func ClampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p), p <= 0:
		return 0
	case p >= PercentMax:
		return PercentMax
	default:
		return p
	}
}

// NormalizeHSB returns the canonical form of an HSB triple.
func NormalizeHSB(hue, saturation, brightness float64) (float64, float64, float64) {
	return WrapHue(hue), ClampPercent(saturation), ClampPercent(brightness)
}

// NormalizeHSL returns the canonical form of an HSL triple.
func NormalizeHSL(hue, saturation, lightness float64) (float64, float64, float64) {
	return WrapHue(hue), ClampPercent(saturation), ClampPercent(lightness)
}
