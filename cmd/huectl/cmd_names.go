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
	"github.com/spf13/cobra"
	"github.com/teradata-labs/hue/internal/report"
	"github.com/teradata-labs/hue/pkg/colors"
)

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the named colors huectl accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			section := report.Section{Title: "named colors"}
			for _, name := range colors.Names() {
				c, _ := colors.Named(name)
				section.Entries = append(section.Entries, report.NewEntry(name, c))
			}
			return a.write(cmd.OutOrStdout(), []report.Section{section})
		},
	}
}
