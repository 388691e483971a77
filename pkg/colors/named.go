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
	"maps"
	"slices"
	"strings"
)

// Named color definitions, as hex triplets.
var namedHex = map[string]string{
	// Achromatic
	"black":  "#000000",
	"gray":   "#808080",
	"silver": "#c0c0c0",
	"white":  "#ffffff",

	// Primary and secondary
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",

	// Web extended
	"orange":      "#ffa500",
	"gold":        "#ffd700",
	"green":       "#008000",
	"teal":        "#008080",
	"navy":        "#000080",
	"purple":      "#800080",
	"maroon":      "#800000",
	"olive":       "#808000",
	"coral":       "#ff7f50",
	"salmon":      "#fa8072",
	"pink":        "#ffc0cb",
	"hotpink":     "#ff69b4",
	"orchid":      "#da70d6",
	"indigo":      "#4b0082",
	"steelblue":   "#4682b4",
	"royalblue":   "#4169e1",
	"skyblue":     "#87ceeb",
	"forestgreen": "#228b22",
	"seagreen":    "#2e8b57",
	"chocolate":   "#d2691e",
	"sienna":      "#a0522d",
	"crimson":     "#dc143c",
}

var named = func() map[string]RGB {
	out := make(map[string]RGB, len(namedHex))
	for name, hex := range namedHex {
		c, ok := ParseRGB(hex)
		if !ok {
			panic("colors: invalid named color " + name)
		}
		out[name] = c
	}
	return out
}()

// Named looks up a named color. Matching ignores case, spaces and dashes.
func Named(name string) (RGB, bool) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
	c, ok := named[key]
	return c, ok
}

// Names returns the known color names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(named))
}
