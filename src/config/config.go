// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package config stores the well-known names and defaults shared across repogen.
package config

const (
	// DescriptorFile is the metadata document every addon directory must carry.
	DescriptorFile = "addon.xml"

	// ManifestFile is the aggregated repository manifest consumed by Kodi clients.
	ManifestFile = "addons.xml"

	// ZipsDir is the default archive output directory name under the project root.
	ZipsDir = "zips"

	// RepositoryID is the default distinguished addon whose archive is published
	// to the project root after packaging.
	RepositoryID = "repository.centulus"

	// SettingsFile is the optional per-project overrides document.
	SettingsFile = "repogen.yaml"

	// IconFile is the placeholder visual asset generated for the repository addon.
	IconFile = "icon.png"

	// ArchiveExtension is the only archive format Kodi repositories accept.
	ArchiveExtension = ".zip"

	// ChecksumExtension names the digest sibling written next to every artifact.
	ChecksumExtension = ".md5"
)
