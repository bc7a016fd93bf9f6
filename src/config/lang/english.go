// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package lang contains the English language text for repogen.
package lang

// All messages should be in the form of a constant.
// The format should be <PkgName><Err/Warn/Info/Debug><ShortDescription>.
const (
	// root cmd

	RootCmdShort = "Package Kodi addons into a distributable repository"
	RootCmdLong = "repogen walks a project root for addon directories, zips each one with an " +
		"md5 checksum sibling, aggregates every descriptor into addons.xml, and copies the " +
		"repository addon's zip to the project root for easy installation."

	RootCmdFlagRoot         = "Project root directory containing the addon directories"
	RootCmdFlagOutput       = "Archive output directory (default <root>/zips)"
	RootCmdFlagRepositoryID = "Addon id whose archive is published to the project root"
	RootCmdFlagLogLevel     = "Log level for repogen. Valid options are: warn, info, debug, error"
	RootCmdFlagLogFormat    = "Log format for repogen. Valid options are: console, json, dev, none"
	RootCmdFlagNoColor      = "Disable color output"

	RootCmdErrInvalidLogLevel  = "unable to set the log level: %w"
	RootCmdErrInvalidLogFormat = "unable to set the log format: %w"

	RootCmdDebugConfigUsed = "using config file"
	RootCmdWarnConfigLoad  = "unable to load the config file"

	// config

	ConfigErrReadSettings      = "failed to read %s: %w"
	ConfigErrUnmarshalSettings = "failed to unmarshal %s: %w"

	// addon

	AddonErrDescriptorRead  = "unable to read addon descriptor %s: %w"
	AddonErrDescriptorParse = "unable to parse addon descriptor"
	AddonErrMissingIdentity = "missing id or version attribute"

	// archive

	ArchiveErrCreateOutputDir = "unable to create archive output directory %s: %w"
	ArchiveErrEnumerate       = "unable to enumerate %s: %w"
	ArchiveErrWrite           = "unable to write archive %s: %w"
	ArchiveErrChecksum        = "unable to write checksum for %s: %w"

	// builder

	BuilderErrNoAddons       = "%w under %s (each addon must have an %s)"
	BuilderErrReadFragment   = "failed reading %s from %s: %w"
	BuilderErrPublish        = "unable to publish %s to %s: %w"
	BuilderWarnNoRepository  = "repository addon not found; skipping copy of the repository zip to the project root"
	BuilderInfoBuiltArchive  = "built archive"
	BuilderInfoWroteManifest = "generated manifest"
	BuilderInfoPublished     = "copied repository zip to project root"
	BuilderInfoDone          = "all done"

	// assets

	AssetsInfoCreatedIcon = "created placeholder icon"
)
