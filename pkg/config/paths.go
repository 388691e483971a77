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

// Package config locates hue's data directory on disk.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "HUE_DATA_DIR"

// GetHueDataDir returns the hue data directory, where huectl looks for its
// config file.
//
// Priority:
// 1. HUE_DATA_DIR environment variable (if set and non-empty)
// 2. ~/.hue (default)
//
// The returned path is absolute. A leading ~ in HUE_DATA_DIR is expanded to
// the user's home directory and relative paths are made absolute.
//
// Examples:
//
//	HUE_DATA_DIR=/custom/hue   -> /custom/hue
//	HUE_DATA_DIR=~/my-hue      -> /home/user/my-hue
//	HUE_DATA_DIR=relative/path -> /current/dir/relative/path
//	HUE_DATA_DIR not set       -> /home/user/.hue
//
// This reads os.Getenv directly, not viper, because it runs before the
// config file is found.
func GetHueDataDir() string {
	if dataDir := os.Getenv(DataDirEnv); dataDir != "" {
		return expandPath(dataDir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hue"
	}
	return filepath.Join(homeDir, ".hue")
}

// expandPath expands ~ and resolves to an absolute path
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
