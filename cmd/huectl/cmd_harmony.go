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
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/hue/internal/log"
	"github.com/teradata-labs/hue/internal/report"
	"github.com/teradata-labs/hue/pkg/colors"
	"github.com/teradata-labs/hue/pkg/harmony"
	"go.uber.org/zap"
)

func newHarmonyCmd(a *app) *cobra.Command {
	names := make([]string, 0, len(harmony.Schemes()))
	for _, s := range harmony.Schemes() {
		names = append(names, s.String())
	}

	return &cobra.Command{
		Use:   "harmony <scheme|all> <color>",
		Short: "Generate a color harmony scheme",
		Long: fmt.Sprintf(`Rotate a color's hue to build a harmony scheme. Saturation, brightness or
lightness and alpha are kept; only the hue changes.

Schemes: %s, or "all".

Hues are rotated in the HSB model unless --model hsl is given.

Examples:
  huectl harmony triadic '#3366cc'
  huectl harmony all coral --model hsl`, strings.Join(names, ", ")),
		Args:      cobra.ExactArgs(2),
		ValidArgs: append(names, "all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes := harmony.Schemes()
			if !strings.EqualFold(args[0], "all") {
				s, err := harmony.ParseScheme(args[0])
				if err != nil {
					return err
				}
				schemes = []harmony.Scheme{s}
			}

			cs, err := parseColors(args[1:])
			if err != nil {
				return err
			}

			model := strings.ToLower(a.config.Harmony.Model)
			sections := make([]report.Section, 0, len(schemes))
			for _, s := range schemes {
				sections = append(sections, schemeSection(s, cs[0], model))
			}
			log.Debug("generated harmony",
				zap.String("color", colors.Hex(cs[0])),
				zap.String("model", model),
				zap.Int("schemes", len(sections)))

			return a.write(cmd.OutOrStdout(), sections)
		},
	}
}

// schemeSection builds the base color followed by the scheme's colors,
// rotated in the given model.
func schemeSection(s harmony.Scheme, base colors.Color, model string) report.Section {
	var members []colors.Color
	if model == ModelHSL {
		hsl := toHSL(base)
		base = hsl
		for _, c := range hsl.Scheme(s) {
			members = append(members, c)
		}
	} else {
		hsb := toHSB(base)
		base = hsb
		for _, c := range hsb.Scheme(s) {
			members = append(members, c)
		}
	}

	section := report.Section{Title: s.String()}
	section.Entries = append(section.Entries, report.NewEntry("base", base))
	for i, c := range members {
		section.Entries = append(section.Entries, report.NewEntry(strconv.Itoa(i+1), c))
	}
	return section
}

func toHSB(c colors.Color) colors.HSB {
	if v, ok := c.(colors.HSB); ok {
		return v
	}
	return colors.ToRGB(c).HSB()
}

func toHSL(c colors.Color) colors.HSL {
	if v, ok := c.(colors.HSL); ok {
		return v
	}
	return colors.ToRGB(c).HSL()
}
