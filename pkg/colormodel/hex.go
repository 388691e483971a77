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

import "strings"

const hexDigits = "0123456789abcdef"

// ParseHex parses a hex triplet such as "#1a2b3c" or "1A2B3C".
//
// The leading '#' is optional and digits are case-insensitive. Any other
// length, including the 3-digit shorthand, or a non-hex character yields
// ok == false.
func ParseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}

	var rgb [3]uint8
	for i := range rgb {
		hi, okHi := hexValue(s[2*i])
		lo, okLo := hexValue(s[2*i+1])
		if !okHi || !okLo {
			return 0, 0, 0, false
		}
		rgb[i] = hi<<4 | lo
	}
	return rgb[0], rgb[1], rgb[2], true
}

// FormatHex formats RGB bytes as '#' followed by six lowercase hex digits.
func FormatHex(r, g, b uint8) string {
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{r, g, b} {
		buf[1+2*i] = hexDigits[v>>4]
		buf[2+2*i] = hexDigits[v&0x0f]
	}
	return string(buf[:])
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
