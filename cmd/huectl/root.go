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
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teradata-labs/hue/internal/log"
	"github.com/teradata-labs/hue/internal/render"
	"github.com/teradata-labs/hue/internal/report"
	"github.com/teradata-labs/hue/internal/version"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	config  *Config
}

// newRootCmd builds the command tree with its own viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "huectl",
		Short: "Convert colors between RGB, HSB and HSL and build harmony schemes",
		Long: `huectl converts colors between the RGB, HSB (HSV) and HSL models, formats
hex triplets and generates hue-rotation harmony schemes: complementary,
split-complementary, triadic, square, rectangle and analogous.

Colors may be given as #rrggbb, a color name, rgb(r,g,b), rgba(r,g,b,a),
hsb(h,s,b), hsv(h,s,v) or hsl(h,s,l).`,
		Version:           version.Long(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HUE_DATA_DIR/huectl.yaml)")
	flags.String("format", string(report.FormatText), "Output format (text, yaml, json)")
	flags.String("swatches", "auto", "Draw color swatches (auto, always, never)")
	flags.String("model", ModelHSB, "Color model for harmony schemes (hsb, hsl)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")

	_ = a.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("output.swatches", flags.Lookup("swatches"))
	_ = a.v.BindPFlag("harmony.model", flags.Lookup("model"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newConvertCmd(a),
		newHarmonyCmd(a),
		newRotateCmd(a),
		newNamesCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// initConfig loads configuration and installs the configured logger.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.config = config

	logger, err := log.New(config.Logging.Level, config.Logging.Format)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	log.SetLogger(logger)

	log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("data_dir", config.DataDir),
		zap.String("format", config.Output.Format),
		zap.String("swatches", config.Output.Swatches),
		zap.String("model", config.Harmony.Model))
	return nil
}

// write renders sections using the configured format and swatch mode.
func (a *app) write(w io.Writer, sections []report.Section) error {
	return report.Write(w, a.config.OutputFormat(), sections, report.Options{
		Swatches:    render.Enabled(w, a.config.SwatchMode()),
		SwatchWidth: a.config.Output.SwatchWidth,
	})
}

// Execute runs the root command
func Execute() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
