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

	"github.com/spf13/cobra"
	"github.com/teradata-labs/hue/internal/colorarg"
	"github.com/teradata-labs/hue/internal/log"
	"github.com/teradata-labs/hue/internal/report"
	"github.com/teradata-labs/hue/pkg/colors"
	"go.uber.org/zap"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>...",
		Short: "Show colors in every model",
		Long: `Print each color as a hex triplet, RGBA bytes, HSB and HSL.

Examples:
  huectl convert '#ff0000'
  huectl convert 'hsl(210, 80, 40)' coral --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}

			section := report.Section{}
			for i, c := range cs {
				section.Entries = append(section.Entries, report.NewEntry(args[i], c))
			}
			return a.write(cmd.OutOrStdout(), []report.Section{section})
		},
	}
}

// parseColors parses every argument, failing on the first invalid one.
func parseColors(args []string) ([]colors.Color, error) {
	out := make([]colors.Color, 0, len(args))
	for _, arg := range args {
		c, err := colorarg.Parse(arg)
		if err != nil {
			log.Warn("rejected color argument", zap.String("input", arg), zap.Error(err))
			return nil, fmt.Errorf("argument %q: %w", arg, err)
		}
		log.Debug("parsed color", zap.String("input", arg), zap.String("hex", colors.Hex(c)))
		out = append(out, c)
	}
	return out, nil
}
