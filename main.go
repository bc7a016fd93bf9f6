// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package main is the entrypoint for the repogen CLI.
package main

import (
	"github.com/centulus/repogen/src/cmd"
)

func main() {
	cmd.Execute()
}
