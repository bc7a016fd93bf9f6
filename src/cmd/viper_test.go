// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package cmd contains the CLI commands for repogen.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/centulus/repogen/src/pkg/logger"
)

// newCaptureContext returns a context whose logger writes json lines to buf.
func newCaptureContext(t *testing.T, buf *bytes.Buffer) context.Context {
	t.Helper()
	l, err := logger.New(logger.Config{
		Level:       logger.Debug,
		Format:      logger.FormatJSON,
		Destination: buf,
	})
	require.NoError(t, err)
	return logger.WithContext(context.Background(), l)
}

func TestPrintViperConfigUsed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "repogen-config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\n"), 0o644))

	v = viper.New()
	v.SetConfigFile(cfgPath)
	vConfigError = v.ReadInConfig()
	require.NoError(t, vConfigError)

	var buf bytes.Buffer
	printViperConfigUsed(newCaptureContext(t, &buf))
	require.Contains(t, buf.String(), "repogen-config.yaml")
}

func TestPrintViperConfigUsedMalformed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "repogen-config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: [oops"), 0o644))

	v = viper.New()
	v.SetConfigFile(cfgPath)
	vConfigError = v.ReadInConfig()
	require.Error(t, vConfigError)

	var buf bytes.Buffer
	printViperConfigUsed(newCaptureContext(t, &buf))
	require.Contains(t, buf.String(), "WARN")
}

func TestPrintViperConfigUsedNoFile(t *testing.T) {
	v = viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigName("repogen-config")
	vConfigError = v.ReadInConfig()

	var buf bytes.Buffer
	printViperConfigUsed(newCaptureContext(t, &buf))
	require.Empty(t, buf.String())
}
