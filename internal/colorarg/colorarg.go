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

// Package colorarg parses color arguments given on the command line.
//
// Accepted forms, case-insensitive and whitespace-tolerant:
//
//	#ff8000  ff8000            hex triplet
//	coral                      named color
//	rgb(255, 128, 0)           bytes
//	rgba(255, 128, 0, 128)     bytes with alpha
//	hsb(30, 100, 100)          also hsv(...)
//	hsl(30, 100, 50)
//
// Percent signs and a trailing "deg" on hues are allowed.
package colorarg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/teradata-labs/hue/pkg/colors"
)

// ErrInvalidColor is wrapped by every error Parse returns.
var ErrInvalidColor = errors.New("invalid color")

// Parse parses s into a color. The concrete type matches the input model:
// RGB for hex, named and rgb() forms, HSB for hsb()/hsv(), HSL for hsl().
func Parse(s string) (colors.Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidColor)
	}

	if fn, args, ok := splitFunc(in); ok {
		return parseFunc(s, fn, args)
	}
	if c, ok := colors.ParseRGB(in); ok {
		return c, nil
	}
	if c, ok := colors.Named(in); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q is not a hex triplet or known color name", ErrInvalidColor, s)
}

// splitFunc splits "name(a, b, c)" into name and its trimmed arguments.
func splitFunc(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return strings.TrimSpace(s[:open]), args, true
}

func parseFunc(raw, fn string, args []string) (colors.Color, error) {
	switch fn {
	case "rgb", "rgba":
		want := 3
		if fn == "rgba" {
			want = 4
		}
		if len(args) != want {
			return nil, fmt.Errorf("%w: %s() takes %d arguments, got %d", ErrInvalidColor, fn, want, len(args))
		}
		ch := make([]uint8, 4)
		ch[3] = colors.OpaqueAlpha
		for i, a := range args {
			v, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %s() argument %d %q: must be 0-255", ErrInvalidColor, fn, i+1, a)
			}
			ch[i] = uint8(v)
		}
		return colors.NewRGBA(ch[0], ch[1], ch[2], ch[3]), nil

	case "hsb", "hsv", "hsl":
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: %s() takes 3 arguments, got %d", ErrInvalidColor, fn, len(args))
		}
		var v [3]float64
		for i, a := range args {
			a = strings.TrimSuffix(strings.TrimSuffix(a, "%"), "deg")
			f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s() argument %d %q: %w", ErrInvalidColor, fn, i+1, args[i], err)
			}
			v[i] = f
		}
		if fn == "hsl" {
			return colors.NewHSL(v[0], v[1], v[2]), nil
		}
		return colors.NewHSB(v[0], v[1], v[2]), nil
	}
	return nil, fmt.Errorf("%w: unknown color function %q in %q", ErrInvalidColor, fn, raw)
}
