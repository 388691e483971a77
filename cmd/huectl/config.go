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
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/teradata-labs/hue/internal/render"
	"github.com/teradata-labs/hue/internal/report"
	hueconfig "github.com/teradata-labs/hue/pkg/config"
)

// DefaultConfigFileName is the config file name searched for, without extension.
const DefaultConfigFileName = "huectl"

// Color models harmony schemes can be computed in.
const (
	ModelHSB = "hsb"
	ModelHSL = "hsl"
)

// Config is huectl's configuration, merged from defaults, the config file,
// HUE_* environment variables and flags.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Harmony HarmonyConfig `mapstructure:"harmony"`
	Logging LoggingConfig `mapstructure:"logging"`

	// DataDir is not loaded from the config file.
	DataDir string `mapstructure:"-"`
}

// OutputConfig controls how colors are printed.
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	Swatches    string `mapstructure:"swatches"`
	SwatchWidth int    `mapstructure:"swatch_width"`
}

// HarmonyConfig controls harmony generation.
type HarmonyConfig struct {
	// Model is the color model hues are rotated in: hsb or hsl.
	Model string `mapstructure:"model"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration into v. An explicit cfgFile must exist;
// otherwise a missing huectl.yaml is not an error.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(hueconfig.GetHueDataDir()) // respects HUE_DATA_DIR
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/hue/")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix("HUE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.DataDir = hueconfig.GetHueDataDir()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", string(report.FormatText))
	v.SetDefault("output.swatches", string(render.ModeAuto))
	v.SetDefault("output.swatch_width", render.DefaultWidth)

	v.SetDefault("harmony.model", ModelHSB)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := render.ParseMode(c.Output.Swatches); err != nil {
		return fmt.Errorf("output.swatches: %w", err)
	}
	if c.Output.SwatchWidth < 0 {
		return fmt.Errorf("output.swatch_width: must not be negative, got %d", c.Output.SwatchWidth)
	}
	switch strings.ToLower(c.Harmony.Model) {
	case ModelHSB, ModelHSL:
	default:
		return fmt.Errorf("harmony.model: invalid model %q (want hsb or hsl)", c.Harmony.Model)
	}
	return nil
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() report.Format {
	f, _ := report.ParseFormat(c.Output.Format)
	return f
}

// SwatchMode returns the validated swatch mode.
func (c *Config) SwatchMode() render.Mode {
	m, _ := render.ParseMode(c.Output.Swatches)
	return m
}

// GenerateExampleConfig returns a commented huectl.yaml with every setting.
func GenerateExampleConfig() string {
	return `# huectl configuration
# Search path: $HUE_DATA_DIR (default ~/.hue), ., /etc/hue/
# Every key can be overridden with HUE_<SECTION>_<KEY>, e.g. HUE_OUTPUT_FORMAT=json

output:
  format: text        # text, yaml or json
  swatches: auto      # auto, always or never
  swatch_width: 12

harmony:
  model: hsb          # hsb or hsl

logging:
  level: warn         # debug, info, warn, error
  format: text        # text or json
`
}
