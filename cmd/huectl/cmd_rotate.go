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
	"github.com/teradata-labs/hue/internal/report"
	"github.com/teradata-labs/hue/pkg/colors"
)

func newRotateCmd(a *app) *cobra.Command {
	var degrees float64

	cmd := &cobra.Command{
		Use:   "rotate <color>... --degrees <n>",
		Short: "Rotate the hue of colors",
		Long: `Rotate each color's hue by a number of degrees. The result is always
wrapped into [0, 360), so rotating 180° by -200 gives 340°.

Examples:
  huectl rotate '#ff0000' --degrees 120
  huectl rotate 'hsl(180, 50, 50)' -d -200`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}

			model := strings.ToLower(a.config.Harmony.Model)
			section := report.Section{Title: fmt.Sprintf("rotated %s degrees", strconv.FormatFloat(degrees, 'g', -1, 64))}
			for i, c := range cs {
				var rotated colors.Color
				if model == ModelHSL {
					rotated = toHSL(c).Rotated(degrees)
				} else {
					rotated = toHSB(c).Rotated(degrees)
				}
				section.Entries = append(section.Entries, report.NewEntry(args[i], rotated))
			}
			return a.write(cmd.OutOrStdout(), []report.Section{section})
		},
	}

	cmd.Flags().Float64VarP(&degrees, "degrees", "d", 180, "Degrees to rotate the hue by (may be negative)")
	return cmd
}
