// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package utils provides generic helper functions.
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMD5OfFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "artifact")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	sum, err := GetMD5OfFile(path)
	require.NoError(t, err)
	// well-known digest of "hello world"
	require.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)
}

func TestGetMD5OfFileMissing(t *testing.T) {
	t.Parallel()
	_, err := GetMD5OfFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestWriteChecksumFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "artifact.zip")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	sum, err := WriteChecksumFile(path)
	require.NoError(t, err)
	require.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)

	b, err := os.ReadFile(path + ".md5")
	require.NoError(t, err)
	require.Equal(t, sum, string(b))
}
