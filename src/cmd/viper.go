// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package cmd contains the CLI commands for repogen.
package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/centulus/repogen/src/config/lang"
	"github.com/centulus/repogen/src/pkg/logger"
)

// Constants for use when loading configurations from viper config files
const (
	// Root config keys

	VLogLevel     = "log_level"
	VLogFormat    = "log_format"
	VNoColor      = "no_color"
	VRootDir      = "root"
	VOutputDir    = "output"
	VRepositoryID = "repository_id"
)

var (
	// Viper instance used by the cmd package
	v *viper.Viper

	// Viper configuration error
	vConfigError error
)

func initViper() {
	// Already initialized by some other command
	if v != nil {
		return
	}

	v = viper.New()

	// Specify an alternate config file
	cfgFile := os.Getenv("REPOGEN_CONFIG")

	if cfgFile != "" {
		// Use config file from the env var.
		v.SetConfigFile(cfgFile)
	} else {
		// Search config paths in the current directory and $HOME/.repogen.
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.repogen")
		v.SetConfigName("repogen-config")
	}

	// E.g. REPOGEN_LOG_LEVEL=debug
	v.SetEnvPrefix("repogen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optional, so hold on to any error until a logger is configured
	vConfigError = v.ReadInConfig()
}

// printViperConfigUsed reports which config file, if any, fed the defaults.
// A missing config file is fine; a malformed one is worth a warning.
func printViperConfigUsed(ctx context.Context) {
	l := logger.From(ctx)
	if vConfigError != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(vConfigError, &notFound) {
			l.Warn(lang.RootCmdWarnConfigLoad, "error", vConfigError)
		}
		return
	}
	if used := v.ConfigFileUsed(); used != "" {
		l.Debug(lang.RootCmdDebugConfigUsed, "path", used)
	}
}
