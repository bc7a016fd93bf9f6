// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package manifest aggregates addon descriptor fragments into the repository
// addons.xml document.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/defenseunicorns/pkg/helpers/v2"

	"github.com/centulus/repogen/src/config"
	"github.com/centulus/repogen/src/pkg/utils"
)

const (
	header = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<addons>\n"
	footer = "\n</addons>\n"
)

// Aggregate wraps the declaration and root element around the fragments, in
// the order supplied by the caller, writes the document to
// <outputDir>/addons.xml with an md5 checksum sibling, and returns the
// manifest path. The manifest is regenerated in full on every run.
func Aggregate(fragments []string, outputDir string) (string, error) {
	if err := helpers.CreateDirectory(outputDir, helpers.ReadExecuteAllWriteUser); err != nil {
		return "", err
	}

	doc := header + strings.Join(fragments, "\n") + footer
	path := filepath.Join(outputDir, config.ManifestFile)
	if err := os.WriteFile(path, []byte(doc), helpers.ReadWriteUser); err != nil {
		return "", err
	}
	if _, err := utils.WriteChecksumFile(path); err != nil {
		return "", err
	}
	return path, nil
}
