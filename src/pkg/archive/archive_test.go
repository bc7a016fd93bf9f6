// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package archive builds the per-addon zip artifacts and their checksum
// siblings.
package archive

import (
	"archive/zip"
	"context"
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/centulus/repogen/src/pkg/exclusion"
)

// writeTree lays out a synthetic addon directory with both included and
// excluded content.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"addon.xml":                  `<addon id="plugin.video.acme" version="1.0.0"/>`,
		"main.py":                    "print('hi')\n",
		"resources/settings.xml":     "<settings/>",
		"resources/lib/util.py":      "util = True\n",
		"Thumbs.db":                  "junk",
		"main.pyc":                   "junk",
		".hidden":                    "junk",
		".git/config":                "junk",
		"__pycache__/main.cpython":   "junk",
		"resources/.DS_Store":        "junk",
		"resources/lib/util.py.swp":  "junk",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestEnumerate(t *testing.T) {
	t.Parallel()
	dir := writeTree(t)
	rules := exclusion.DefaultRules()

	members, err := Enumerate(dir, "plugin.video.acme", rules)
	require.NoError(t, err)

	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}
	require.Equal(t, []string{
		"plugin.video.acme/addon.xml",
		"plugin.video.acme/main.py",
		"plugin.video.acme/resources/lib/util.py",
		"plugin.video.acme/resources/settings.xml",
	}, names)

	// no member may match the exclusion rules
	for _, m := range members {
		require.False(t, rules.ExcludeFile(m.Name), "excluded member %s", m.Name)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := writeTree(t)
	out := t.TempDir()

	archivePath, err := Build(ctx, dir, out, "plugin.video.acme", "1.0.0", exclusion.DefaultRules())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "plugin.video.acme", "plugin.video.acme-1.0.0.zip"), archivePath)

	// member set matches enumeration, in order
	r, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer r.Close()
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{
		"plugin.video.acme/addon.xml",
		"plugin.video.acme/main.py",
		"plugin.video.acme/resources/lib/util.py",
		"plugin.video.acme/resources/settings.xml",
	}, names)

	// checksum sibling holds the md5 of the archive's exact bytes
	sum, err := os.ReadFile(archivePath + ".md5")
	require.NoError(t, err)
	b, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	digest := md5.Sum(b) //nolint:gosec
	require.Equal(t, hex.EncodeToString(digest[:]), string(sum))

	// no staging file is left behind
	require.NoFileExists(t, archivePath+".tmp")
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := writeTree(t)
	out := t.TempDir()
	rules := exclusion.DefaultRules()

	first, err := Build(ctx, dir, out, "plugin.video.acme", "1.0.0", rules)
	require.NoError(t, err)
	firstBytes, err := os.ReadFile(first)
	require.NoError(t, err)

	second, err := Build(ctx, dir, out, "plugin.video.acme", "1.0.0", rules)
	require.NoError(t, err)
	secondBytes, err := os.ReadFile(second)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, firstBytes, secondBytes)
}

func TestSelectArchiver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dest      string
		supported bool
	}{
		{name: "zip", dest: "plugin.video.acme-1.0.0.zip", supported: true},
		{name: "tarball", dest: "bundle.tar", supported: true},
		{name: "compressed tarball", dest: "bundle.tar.gz", supported: true},
		// the writer stages archives to a .tmp name, so format selection must
		// use the final destination, never the staging name
		{name: "staging name", dest: "plugin.video.acme-1.0.0.zip" + stagingSuffix, supported: false},
		{name: "unknown extension", dest: "plugin.video.acme-1.0.0.rar", supported: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.supported, selectArchiver(tt.dest) != nil)
		})
	}
}

func TestBuildMissingSource(t *testing.T) {
	t.Parallel()
	_, err := Build(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), "acme", "1.0.0", exclusion.DefaultRules())
	require.Error(t, err)
}
