// Package verify provides the "verify" command.
package verify

import (
	"errors"
	"fmt"

	cmd_generate "github.com/safe-waters/docker-project/cmd/generate"
	"github.com/safe-waters/docker-project/internal/logging"
	"github.com/safe-waters/docker-project/pkg/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const namespace = "verify"

// NewVerifyCmd creates the command 'verify' used in 'docker project verify'.
func NewVerifyCmd() (*cobra.Command, error) {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that composefiles are up-to-date with app configs",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindPFlags(cmd, []string{
				"base-dir",
				"configfiles",
				"configfile-globs",
				"configfile-recursive",
				"composefile-name",
				"env-file",
				"validate",
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

			verifier, err := SetupVerifier(flags, logger)
			if err != nil {
				return err
			}

			if err := verifier.VerifyComposefiles(cmd.Context()); err != nil {
				return err
			}

			logger.Info("composefiles are up-to-date!")

			return nil
		},
	}
	verifyCmd.Flags().String(
		"base-dir", ".", "Top level directory to collect app configs from",
	)
	verifyCmd.Flags().StringSlice(
		"configfiles", []string{}, "Paths to app configs",
	)
	verifyCmd.Flags().StringSlice(
		"configfile-globs", []string{}, "Glob pattern to select app configs",
	)
	verifyCmd.Flags().Bool(
		"configfile-recursive", false, "Recursively collect app configs",
	)
	verifyCmd.Flags().String(
		"composefile-name", "docker-compose.yml",
		"Composefile name expected next to each app config",
	)
	verifyCmd.Flags().StringP(
		"env-file", "e", ".env",
		"Path to .env file used when validating composefiles",
	)
	verifyCmd.Flags().Bool(
		"validate", false,
		"Check that docker-compose can load each generated composefile",
	)
	verifyCmd.Flags().BoolP(
		"verbose", "v", false, "Log each composefile as it is verified",
	)

	return verifyCmd, nil
}

// SetupVerifier creates a Verifier configured for docker-project's cli.
func SetupVerifier(
	flags *Flags,
	logger *zap.Logger,
) (verify.IVerifier, error) {
	if flags == nil {
		return nil, errors.New("flags cannot be nil")
	}

	generator, err := cmd_generate.SetupGenerator(
		&cmd_generate.Flags{
			ConfigfileFlags: flags.ConfigfileFlags,
			ComposefileName: flags.ComposefileName,
			EnvPath:         flags.EnvPath,
			Validate:        flags.Validate,
			Verbose:         flags.Verbose,
		},
		logger,
	)
	if err != nil {
		return nil, err
	}

	return verify.NewVerifier(generator, logger)
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
		verbose = viper.GetBool(
			fmt.Sprintf("%s.%s", namespace, "verbose"),
		)
	)

	return NewFlags(
		baseDir, configfilePaths, configfileGlobs, configfileRecursive,
		composefileName, envPath, validate, verbose,
	)
}
