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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapHue(t *testing.T) {
	tests := []struct {
		name     string
		hue      float64
		expected float64
	}{
		{"zero", 0, 0},
		{"in range", 123.5, 123.5},
		{"tiny positive", 1e-10, 1e-10},
		{"just below 360", math.Nextafter(HueMax, 0), math.Nextafter(HueMax, 0)},
		{"exactly 360", 360, 0},
		{"above 360", 400, 40},
		{"negative", -20, 340},
		{"large negative", -740, 340},
		{"negative multiple of 360", -720, 0},
		{"tiny negative", -1e-20, 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapHue(tt.hue)
			assert.Equal(t, tt.expected, got)
			assert.False(t, math.Signbit(got), "hue must not be negative zero")
		})
	}
}

func TestWrapHuePeriodic(t *testing.T) {
	for _, h := range []float64{0, 1, 45.25, 179.9, 359.5, -0.5, -181} {
		for k := -3; k <= 3; k++ {
			assert.InDelta(t, WrapHue(h), WrapHue(h+HueMax*float64(k)), 1e-9, "h=%v k=%d", h, k)
		}
	}
}

func TestWrapHueRange(t *testing.T) {
	for h := -1000.0; h <= 1000; h += 0.7 {
		got := WrapHue(h)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, HueMax)
	}
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-5))
	assert.Equal(t, 0.0, ClampPercent(math.NaN()))
	assert.Equal(t, 0.0, ClampPercent(math.Inf(-1)))
	assert.Equal(t, 42.5, ClampPercent(42.5))
	assert.Equal(t, 100.0, ClampPercent(100))
	assert.Equal(t, 100.0, ClampPercent(250))
	assert.Equal(t, 100.0, ClampPercent(math.Inf(1)))
}

func TestNormalizeHSB(t *testing.T) {
	h, s, b := NormalizeHSB(-90, 120, -1)
	assert.Equal(t, 270.0, h)
	assert.Equal(t, 100.0, s)
	assert.Equal(t, 0.0, b)

	h, s, b = NormalizeHSB(180, 50, 50)
	assert.Equal(t, [3]float64{180, 50, 50}, [3]float64{h, s, b})
}

func TestNormalizeHSL(t *testing.T) {
	h, s, l := NormalizeHSL(725, -3, 101)
	assert.Equal(t, 5.0, h)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 100.0, l)
}
