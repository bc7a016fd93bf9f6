// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package builder orchestrates one repository build: discover addons, package
// each one, aggregate the manifest, and publish the repository addon's zip to
// the project root.
package builder

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/defenseunicorns/pkg/helpers/v2"

	"github.com/centulus/repogen/src/config"
	"github.com/centulus/repogen/src/config/lang"
	"github.com/centulus/repogen/src/pkg/addon"
	"github.com/centulus/repogen/src/pkg/archive"
	"github.com/centulus/repogen/src/pkg/assets"
	"github.com/centulus/repogen/src/pkg/exclusion"
	"github.com/centulus/repogen/src/pkg/logger"
	"github.com/centulus/repogen/src/pkg/manifest"
	"github.com/centulus/repogen/src/pkg/utils"
)

// ErrNoAddons is returned when discovery finds no addon directories under the
// project root. Nothing is written in that case.
var ErrNoAddons = errors.New("no addons found")

// Options configure one repository build.
type Options struct {
	// RootDir is the project root containing the addon directories.
	RootDir string
	// OutputDir is where archives and the manifest land. Empty means
	// <RootDir>/zips.
	OutputDir string
	// RepositoryID is the distinguished addon whose archive is additionally
	// copied to the project root. Empty means config.RepositoryID.
	RepositoryID string
	// Rules decide which files and directories stay out of the archives.
	Rules exclusion.Rules
}

// Builder runs the packaging pipeline. Every run re-derives all state from
// the filesystem; nothing is cached between runs.
type Builder struct {
	opts Options
}

// New returns a Builder with defaults filled in.
func New(opts Options) *Builder {
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join(opts.RootDir, config.ZipsDir)
	}
	if opts.RepositoryID == "" {
		opts.RepositoryID = config.RepositoryID
	}
	return &Builder{opts: opts}
}

// Run executes the pipeline to completion: Discover, PackageEach, Aggregate,
// Publish. Any failure before Publish aborts the run; a missing repository
// addon at Publish time only logs a warning.
func (b *Builder) Run(ctx context.Context) error {
	l := logger.From(ctx)

	addons, err := b.discover(ctx)
	if err != nil {
		return err
	}

	var repoZip string
	for _, a := range addons {
		if a.ID == b.opts.RepositoryID {
			if err := assets.EnsureIcon(ctx, a.Dir); err != nil {
				return err
			}
		}
		zipPath, err := archive.Build(ctx, a.Dir, b.opts.OutputDir, a.ID, a.Version, b.opts.Rules)
		if err != nil {
			return err
		}
		l.Info(lang.BuilderInfoBuiltArchive, "name", filepath.Base(zipPath), "id", a.ID, "version", a.Version)
		if a.ID == b.opts.RepositoryID {
			repoZip = zipPath
		}
	}

	fragments := make([]string, 0, len(addons))
	for _, a := range addons {
		fragment, err := addon.ReadFragment(a.Dir)
		if err != nil {
			return fmt.Errorf(lang.BuilderErrReadFragment, config.DescriptorFile, a.Dir, err)
		}
		fragments = append(fragments, fragment)
	}
	manifestPath, err := manifest.Aggregate(fragments, b.opts.OutputDir)
	if err != nil {
		return err
	}
	l.Info(lang.BuilderInfoWroteManifest, "path", manifestPath, "addons", len(addons))

	if err := b.publish(ctx, repoZip); err != nil {
		return err
	}

	l.Info(lang.BuilderInfoDone)
	return nil
}

// discover enumerates immediate subdirectories of the project root that carry
// a descriptor, excluding the archive output directory, and reads each one's
// identity. Directory names are listed sorted so discovery order, and with it
// the manifest fragment order, is stable across platforms.
func (b *Builder) discover(ctx context.Context) ([]addon.Addon, error) {
	dirs, err := utils.ListDirectories(b.opts.RootDir)
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Clean(b.opts.OutputDir)
	var addons []addon.Addon
	for _, dir := range dirs {
		if filepath.Clean(dir) == outputDir {
			continue
		}
		if helpers.InvalidPath(filepath.Join(dir, config.DescriptorFile)) {
			continue
		}
		a, err := addon.ReadIdentity(ctx, dir)
		if err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}

	if len(addons) == 0 {
		return nil, fmt.Errorf(lang.BuilderErrNoAddons, ErrNoAddons, b.opts.RootDir, config.DescriptorFile)
	}
	return addons, nil
}

// publish copies the repository addon's archive and checksum sibling,
// unmodified, to the project root. A missing repository addon is not fatal.
func (b *Builder) publish(ctx context.Context, repoZip string) error {
	l := logger.From(ctx)
	if repoZip == "" {
		l.Warn(lang.BuilderWarnNoRepository, "id", b.opts.RepositoryID)
		return nil
	}

	dest := filepath.Join(b.opts.RootDir, filepath.Base(repoZip))
	if err := utils.CreatePathAndCopy(repoZip, dest); err != nil {
		return fmt.Errorf(lang.BuilderErrPublish, repoZip, dest, err)
	}
	checksum := repoZip + config.ChecksumExtension
	if err := utils.CreatePathAndCopy(checksum, dest+config.ChecksumExtension); err != nil {
		return fmt.Errorf(lang.BuilderErrPublish, checksum, dest+config.ChecksumExtension, err)
	}
	l.Info(lang.BuilderInfoPublished, "name", filepath.Base(dest))
	return nil
}
