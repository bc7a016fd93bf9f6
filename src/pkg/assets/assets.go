// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package assets carries the generated placeholder visuals for the
// repository addon.
package assets

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"

	"github.com/defenseunicorns/pkg/helpers/v2"

	"github.com/centulus/repogen/src/config"
	"github.com/centulus/repogen/src/config/lang"
	"github.com/centulus/repogen/src/pkg/logger"
)

// placeholderIcon is a 1x1 transparent PNG.
//
//go:embed icon.png
var placeholderIcon []byte

// EnsureIcon writes a placeholder icon.png into dir if none exists.
// Idempotent; an existing icon is never touched.
func EnsureIcon(ctx context.Context, dir string) error {
	path := filepath.Join(dir, config.IconFile)
	if !helpers.InvalidPath(path) {
		return nil
	}
	if err := os.WriteFile(path, placeholderIcon, helpers.ReadWriteUser); err != nil {
		return err
	}
	logger.From(ctx).Info(lang.AssetsInfoCreatedIcon, "path", path)
	return nil
}
