// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package archive builds the per-addon zip artifacts and their checksum
// siblings. Enumeration is separated from archive writing so the inclusion
// logic stays testable without producing archives.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/defenseunicorns/pkg/helpers/v2"
	"github.com/mholt/archives"

	"github.com/centulus/repogen/src/config"
	"github.com/centulus/repogen/src/config/lang"
	"github.com/centulus/repogen/src/pkg/exclusion"
	"github.com/centulus/repogen/src/pkg/utils"
)

const (
	extensionZip = ".zip"
	extensionTar = ".tar"
	extensionTgz = ".tgz"
	extensionGz  = ".tar.gz"

	stagingSuffix = ".tmp"
)

// Member is one file selected for an archive: where it lives on disk and the
// name it gets inside the archive.
type Member struct {
	Path string
	Name string
}

// Enumerate walks addonDir and returns the ordered member list for an archive
// rooted at a folder named id. Excluded directories are pruned before descent
// and excluded files are skipped. The walk is lexical, so the member set and
// order are deterministic for a given directory snapshot.
func Enumerate(addonDir, id string, rules exclusion.Rules) ([]Member, error) {
	var members []Member
	err := filepath.WalkDir(addonDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == addonDir {
				return nil
			}
			if rules.ExcludeDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if rules.ExcludeFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(addonDir, p)
		if err != nil {
			return err
		}
		members = append(members, Member{
			Path: p,
			Name: path.Join(id, filepath.ToSlash(rel)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(lang.ArchiveErrEnumerate, addonDir, err)
	}
	return members, nil
}

// Build packages addonDir into <outputRoot>/<id>/<id>-<version>.zip, writes
// the lowercase hex md5 of the archive bytes to a sibling .md5 file, and
// returns the archive path. The archive is staged to a temp file and renamed
// into place, so a failed run never leaves a partially-written artifact
// behind under the final name.
func Build(ctx context.Context, addonDir, outputRoot, id, version string, rules exclusion.Rules) (string, error) {
	outDir := filepath.Join(outputRoot, id)
	if err := helpers.CreateDirectory(outDir, helpers.ReadExecuteAllWriteUser); err != nil {
		return "", fmt.Errorf(lang.ArchiveErrCreateOutputDir, outDir, err)
	}

	members, err := Enumerate(addonDir, id, rules)
	if err != nil {
		return "", err
	}

	archivePath := filepath.Join(outDir, fmt.Sprintf("%s-%s%s", id, version, config.ArchiveExtension))
	staging := archivePath + stagingSuffix
	if err := compress(ctx, members, archivePath, staging); err != nil {
		_ = os.Remove(staging)
		return "", fmt.Errorf(lang.ArchiveErrWrite, archivePath, err)
	}
	if err := os.Rename(staging, archivePath); err != nil {
		_ = os.Remove(staging)
		return "", fmt.Errorf(lang.ArchiveErrWrite, archivePath, err)
	}

	if _, err := utils.WriteChecksumFile(archivePath); err != nil {
		return "", fmt.Errorf(lang.ArchiveErrChecksum, archivePath, err)
	}
	return archivePath, nil
}

// compress writes members into staging, inferring the archive format from the
// final destination's extension. Entries are written in member order.
func compress(ctx context.Context, members []Member, dest, staging string) (err error) {
	out, err := os.Create(staging)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", staging, err)
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	mapping := make(map[string]string, len(members))
	order := make(map[string]int, len(members))
	for i, m := range members {
		mapping[m.Path] = m.Name
		order[m.Name] = i
	}
	files, err := archives.FilesFromDisk(ctx, nil, mapping)
	if err != nil {
		return fmt.Errorf("failed to stat sources: %w", err)
	}
	// FilesFromDisk walks a map, so restore the enumeration order.
	sort.SliceStable(files, func(i, j int) bool {
		return order[files[i].NameInArchive] < order[files[j].NameInArchive]
	})

	archiver := selectArchiver(dest)
	if archiver == nil {
		return fmt.Errorf("unsupported archive extension for %q", dest)
	}
	if err := archiver.Archive(ctx, out, files); err != nil {
		return fmt.Errorf("archive failed for %q: %w", dest, err)
	}
	return nil
}

// selectArchiver returns an archives.Archiver matching the longest suffix from dest.
func selectArchiver(dest string) archives.Archiver {
	var archiveExt string
	for ext := range archiverMap() {
		if strings.HasSuffix(dest, ext) && len(ext) > len(archiveExt) {
			archiveExt = ext
		}
	}
	return archiverMap()[archiveExt]
}

// archiverMap defines supported extensions to their Archiver implementations.
// Kodi repositories only ever use zip, but the writer stays format-agnostic.
func archiverMap() map[string]archives.Archiver {
	return map[string]archives.Archiver{
		extensionZip: archives.Zip{},
		extensionTar: archives.Tar{},
		extensionTgz: archives.CompressedArchive{Compression: archives.Gz{}, Archival: archives.Tar{}},
		extensionGz:  archives.CompressedArchive{Compression: archives.Gz{}, Archival: archives.Tar{}},
	}
}
