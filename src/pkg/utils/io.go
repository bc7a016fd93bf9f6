// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package utils provides generic helper functions.
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/defenseunicorns/pkg/helpers/v2"
	"github.com/otiai10/copy"

	"github.com/centulus/repogen/src/config"
)

// WriteChecksumFile computes the md5 of artifactPath and writes it, as
// lowercase hex text, to the sibling checksum file. Returns the digest.
func WriteChecksumFile(artifactPath string) (string, error) {
	sum, err := GetMD5OfFile(artifactPath)
	if err != nil {
		return "", err
	}
	sibling := artifactPath + config.ChecksumExtension
	if err := os.WriteFile(sibling, []byte(sum), helpers.ReadWriteUser); err != nil {
		return "", err
	}
	return sum, nil
}

// ListDirectories returns the sorted immediate subdirectories of directory.
func ListDirectories(directory string) ([]string, error) {
	var directories []string
	paths, err := os.ReadDir(directory)
	if err != nil {
		return directories, fmt.Errorf("unable to load the directory %s: %w", directory, err)
	}

	for _, entry := range paths {
		if entry.IsDir() {
			directories = append(directories, filepath.Join(directory, entry.Name()))
		}
	}

	return directories, nil
}

// CreatePathAndCopy creates the parent directory for the destination and
// copies the source file or folder there.
func CreatePathAndCopy(source string, destination string) error {
	if err := helpers.CreateDirectory(filepath.Dir(destination), helpers.ReadExecuteAllWriteUser); err != nil {
		return err
	}
	return copy.Copy(source, destination)
}
