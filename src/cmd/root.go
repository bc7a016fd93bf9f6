// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present The Repogen Authors

// Package cmd contains the CLI commands for repogen.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centulus/repogen/src/config"
	"github.com/centulus/repogen/src/config/lang"
	"github.com/centulus/repogen/src/pkg/builder"
	"github.com/centulus/repogen/src/pkg/exclusion"
	"github.com/centulus/repogen/src/pkg/logger"
)

var (
	logLevel     string
	logFormat    string
	noColor      bool
	rootDir      string
	outputDir    string
	repositoryID string
)

var rootCmd = &cobra.Command{
	Use:          "repogen",
	Short:        lang.RootCmdShort,
	Long:         lang.RootCmdLong,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf(lang.RootCmdErrInvalidLogLevel, err)
		}
		format, err := logger.ParseFormat(logFormat)
		if err != nil {
			return fmt.Errorf(lang.RootCmdErrInvalidLogFormat, err)
		}
		l, err := logger.New(logger.Config{
			Level:       level,
			Format:      format,
			Destination: logger.DestinationDefault,
			Color:       logger.Color(!noColor),
		})
		if err != nil {
			return err
		}
		logger.SetDefault(l)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
		printViperConfigUsed(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		settings, err := config.LoadSettings(rootDir)
		if err != nil {
			return err
		}

		repoID := repositoryID
		if settings.RepositoryID != "" && !cmd.Flags().Changed("repository-id") {
			repoID = settings.RepositoryID
		}
		rules := exclusion.DefaultRules().
			WithExtra(settings.ExcludeFiles, settings.ExcludeExtensions, settings.ExcludeDirs)

		b := builder.New(builder.Options{
			RootDir:      rootDir,
			OutputDir:    outputDir,
			RepositoryID: repoID,
			Rules:        rules,
		})
		return b.Run(ctx)
	},
}

// Execute runs the root command, exiting non-zero on any fatal error.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	initViper()

	v.SetDefault(VLogLevel, "info")
	v.SetDefault(VLogFormat, string(logger.FormatConsole))
	v.SetDefault(VNoColor, false)
	v.SetDefault(VRootDir, ".")
	v.SetDefault(VOutputDir, "")
	v.SetDefault(VRepositoryID, config.RepositoryID)

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", v.GetString(VLogLevel), lang.RootCmdFlagLogLevel)
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", v.GetString(VLogFormat), lang.RootCmdFlagLogFormat)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", v.GetBool(VNoColor), lang.RootCmdFlagNoColor)

	rootCmd.Flags().StringVar(&rootDir, "root", v.GetString(VRootDir), lang.RootCmdFlagRoot)
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", v.GetString(VOutputDir), lang.RootCmdFlagOutput)
	rootCmd.Flags().StringVar(&repositoryID, "repository-id", v.GetString(VRepositoryID), lang.RootCmdFlagRepositoryID)
}
