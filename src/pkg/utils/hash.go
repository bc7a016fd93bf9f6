// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package utils provides generic helper functions.
package utils

import (
	"crypto/md5" //nolint:gosec // md5 is fixed by the Kodi repository protocol
	"encoding/hex"
	"errors"
	"io"
	"os"
)

// GetMD5OfFile returns the lowercase hex md5 digest of a file's exact bytes.
func GetMD5OfFile(path string) (_ string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	hash := md5.New() //nolint:gosec
	if _, err = io.Copy(hash, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
