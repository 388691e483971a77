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

// Package harmony computes color-harmony hues by rotating a base hue around
// the color wheel.
//
// Inputs may be any real number of degrees. Outputs are always wrapped into
// [0, 360) with the same rule colormodel uses for normalization, so
// Rotated(180, -200) is 340, not -20.
package harmony

import "github.com/teradata-labs/hue/pkg/colormodel"

// Rotated returns hue rotated by degrees.
//
//	Rotated(180, 20)   // 200
//	Rotated(180, -200) // 340
//	Rotated(180, 300)  // 120
func Rotated(hue, degrees float64) float64 {
	return colormodel.WrapHue(hue + degrees)
}

// Complementary returns the hue opposite hue on the wheel (180°).
//
//	Complementary(240) // 60
func Complementary(hue float64) float64 {
	return Rotated(hue, 180)
}

// SplitComplementary returns the hues at -150° and +150°.
//
//	SplitComplementary(50) // 260, 200
func SplitComplementary(hue float64) (float64, float64) {
	return Rotated(hue, -150), Rotated(hue, 150)
}

// Triadic returns the hues at -120° and +120°.
//
//	Triadic(50) // 290, 170
func Triadic(hue float64) (float64, float64) {
	return Rotated(hue, -120), Rotated(hue, 120)
}

// Square returns the hues at 90°, 180° and 270°.
//
//	Square(110) // 200, 290, 20
func Square(hue float64) (float64, float64, float64) {
	return Rotated(hue, 90), Rotated(hue, 180), Rotated(hue, 270)
}

// Rectangle returns the hues at 120°, 180° and 300°.
//
//	Rectangle(90) // 210, 270, 30
func Rectangle(hue float64) (float64, float64, float64) {
	return Rotated(hue, 120), Rotated(hue, 180), Rotated(hue, 300)
}

// Analogous returns the hues at -30° and +30°.
//
//	Analogous(10) // 340, 40
func Analogous(hue float64) (float64, float64) {
	return Rotated(hue, -30), Rotated(hue, 30)
}
