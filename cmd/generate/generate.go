// Package generate provides the "generate" command.
package generate

import (
	"errors"
	"fmt"

	"github.com/safe-waters/docker-project/internal/logging"
	"github.com/safe-waters/docker-project/pkg/generate"
	"github.com/safe-waters/docker-project/pkg/generate/format"
	"github.com/safe-waters/docker-project/pkg/generate/parse"
	"github.com/safe-waters/docker-project/pkg/write"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const namespace = "generate"

// NewGenerateCmd creates the command 'generate' used in
// 'docker project generate'.
func NewGenerateCmd() (*cobra.Command, error) {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate composefiles from app configs",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindPFlags(cmd, []string{
				"base-dir",
				"configfiles",
				"configfile-globs",
				"configfile-recursive",
				"composefile-name",
				"env-file",
				"validate",
				"tempdir",
				"verbose",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := parseFlags()
			if err != nil {
				return err
			}

			logger, err := logging.New(flags.Verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() // nolint: errcheck

			generator, err := SetupGenerator(flags, logger)
			if err != nil {
				return err
			}

			committer, err := write.NewCommitter(
				write.NewComposefileWriter(), write.NewRenamer(),
			)
			if err != nil {
				return err
			}

			done := make(chan struct{})
			defer close(done)

			if err := committer.Commit(
				generator.GenerateComposefiles(cmd.Context(), done),
				flags.TempDir,
			); err != nil {
				return err
			}

			logger.Info("successfully generated composefiles!")

			return nil
		},
	}
	generateCmd.Flags().String(
		"base-dir", ".", "Top level directory to collect app configs from",
	)
	generateCmd.Flags().StringSlice(
		"configfiles", []string{}, "Paths to app configs",
	)
	generateCmd.Flags().StringSlice(
		"configfile-globs", []string{}, "Glob pattern to select app configs",
	)
	generateCmd.Flags().Bool(
		"configfile-recursive", false, "Recursively collect app configs",
	)
	generateCmd.Flags().String(
		"composefile-name", "docker-compose.yml",
		"Composefile name to be output next to each app config",
	)
	generateCmd.Flags().StringP(
		"env-file", "e", ".env",
		"Path to .env file used when validating composefiles",
	)
	generateCmd.Flags().Bool(
		"validate", false,
		"Check that docker-compose can load each generated composefile",
	)
	generateCmd.Flags().String(
		"tempdir", "",
		"Directory where composefiles are written before being renamed, "+
			"defaults to the current working directory",
	)
	generateCmd.Flags().BoolP(
		"verbose", "v", false, "Log each app config as it is projected",
	)

	return generateCmd, nil
}

// SetupGenerator creates a Generator configured for docker-project's cli.
func SetupGenerator(
	flags *Flags,
	logger *zap.Logger,
) (generate.IGenerator, error) {
	if flags == nil || flags.ConfigfileFlags == nil {
		return nil, errors.New("flags cannot be nil")
	}

	collector, err := DefaultPathCollector(flags.ConfigfileFlags)
	if err != nil {
		return nil, err
	}

	validator, err := DefaultComposefileValidator(
		flags.Validate, flags.EnvPath,
	)
	if err != nil {
		return nil, err
	}

	return generate.NewGenerator(
		collector, parse.NewConfigParser(), format.NewComposefileFormatter(),
		validator, flags.ComposefileName, logger,
	)
}

func bindPFlags(cmd *cobra.Command, flagNames []string) error {
	for _, name := range flagNames {
		if err := viper.BindPFlag(
			fmt.Sprintf("%s.%s", namespace, name), cmd.Flags().Lookup(name),
		); err != nil {
			return err
		}
	}

	return nil
}

func parseFlags() (*Flags, error) {
	var (
		baseDir = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "base-dir"),
		)
		configfilePaths = viper.GetStringSlice(
			fmt.Sprintf("%s.%s", namespace, "configfiles"),
		)
		configfileGlobs = viper.GetStringSlice(
			fmt.Sprintf("%s.%s", namespace, "configfile-globs"),
		)
		configfileRecursive = viper.GetBool(
			fmt.Sprintf("%s.%s", namespace, "configfile-recursive"),
		)
		composefileName = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "composefile-name"),
		)
		envPath = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "env-file"),
		)
		validate = viper.GetBool(
			fmt.Sprintf("%s.%s", namespace, "validate"),
		)
		tempDir = viper.GetString(
			fmt.Sprintf("%s.%s", namespace, "tempdir"),
		)
		verbose = viper.GetBool(
			fmt.Sprintf("%s.%s", namespace, "verbose"),
		)
	)

	return NewFlags(
		baseDir, configfilePaths, configfileGlobs, configfileRecursive,
		composefileName, envPath, validate, tempDir, verbose,
	)
}
