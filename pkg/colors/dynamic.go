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

// Dynamic pairs a light-theme color with an optional dark-theme variant.
type Dynamic struct {
	Light Color
	// Dark may be nil, in which case Light is used for both themes.
	Dark Color
}

// NewDynamic returns a theme-dependent color. dark may be nil.
func NewDynamic(light, dark Color) Dynamic {
	return Dynamic{Light: light, Dark: dark}
}

// HasDark reports whether a dark-theme variant is set.
func (d Dynamic) HasDark() bool {
	return d.Dark != nil
}

// Resolve returns the color for the dark or light theme.
func (d Dynamic) Resolve(dark bool) Color {
	if dark && d.Dark != nil {
		return d.Dark
	}
	return d.Light
}
