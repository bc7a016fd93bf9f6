// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package addon reads the identity and manifest fragment of a single addon
// directory from its addon.xml descriptor.
package addon

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/centulus/repogen/src/config"
	"github.com/centulus/repogen/src/config/lang"
	"github.com/centulus/repogen/src/pkg/logger"
)

// Addon is the identity of one discovered addon directory.
type Addon struct {
	ID      string
	Version string
	Dir     string
}

// MetadataError reports a descriptor that is absent, malformed, or missing
// its identity attributes. It is fatal for the whole run.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid addon descriptor %s: %s", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// descriptor models only the identity attributes of the addon root element.
// The rest of the document is carried verbatim as the manifest fragment.
type descriptor struct {
	XMLName xml.Name `xml:"addon"`
	ID      string   `xml:"id,attr"`
	Version string   `xml:"version,attr"`
}

// declarationRegex matches a leading XML declaration plus surrounding whitespace.
var declarationRegex = regexp.MustCompile(`^\s*<\?xml[^>]*>\s*`)

// ReadIdentity parses the descriptor in dir and returns its declared identity.
func ReadIdentity(ctx context.Context, dir string) (Addon, error) {
	path := filepath.Join(dir, config.DescriptorFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return Addon{}, &MetadataError{Path: path, Err: err}
	}

	var d descriptor
	if err := xml.Unmarshal(b, &d); err != nil {
		return Addon{}, &MetadataError{Path: path, Err: fmt.Errorf("%s: %w", lang.AddonErrDescriptorParse, err)}
	}
	if d.ID == "" || d.Version == "" {
		return Addon{}, &MetadataError{Path: path, Err: fmt.Errorf("%s", lang.AddonErrMissingIdentity)}
	}

	// Kodi versions are usually but not always semver; flag oddballs early.
	if _, err := semver.NewVersion(d.Version); err != nil {
		logger.From(ctx).Debug("addon version is not semver", "id", d.ID, "version", d.Version)
	}

	return Addon{ID: d.ID, Version: d.Version, Dir: dir}, nil
}

// ReadFragment returns the descriptor text with any leading XML declaration
// stripped and surrounding whitespace trimmed, so fragments can be
// concatenated inside the repository manifest.
func ReadFragment(dir string) (string, error) {
	path := filepath.Join(dir, config.DescriptorFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(lang.AddonErrDescriptorRead, path, err)
	}
	txt := declarationRegex.ReplaceAllString(string(b), "")
	return strings.TrimSpace(txt), nil
}
