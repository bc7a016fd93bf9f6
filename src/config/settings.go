// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

package config

import (
	"fmt"
	"os"
	"path/filepath"

	goyaml "github.com/goccy/go-yaml"

	"github.com/centulus/repogen/src/config/lang"
)

// Settings are optional per-project overrides read from repogen.yaml in the
// project root. The zero value leaves every default in place.
type Settings struct {
	RepositoryID      string   `yaml:"repository_id"`
	ExcludeFiles      []string `yaml:"exclude_files"`
	ExcludeExtensions []string `yaml:"exclude_extensions"`
	ExcludeDirs       []string `yaml:"exclude_dirs"`
}

// LoadSettings reads repogen.yaml from rootDir. A missing file is not an
// error; a malformed one is fatal for the run.
func LoadSettings(rootDir string) (Settings, error) {
	var settings Settings
	path := filepath.Join(rootDir, SettingsFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf(lang.ConfigErrReadSettings, path, err)
	}
	if err := goyaml.Unmarshal(b, &settings); err != nil {
		return settings, fmt.Errorf(lang.ConfigErrUnmarshalSettings, path, err)
	}
	return settings, nil
}
