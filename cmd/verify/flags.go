package verify

import (
	cmd_generate "github.com/safe-waters/docker-project/cmd/generate"
)

// Flags are all possible flags to initialize a Verifier.
type Flags struct {
	ConfigfileFlags *cmd_generate.ConfigfileFlags
	ComposefileName string
	EnvPath         string
	Validate        bool
	Verbose         bool
}

// NewFlags returns Flags after validating its fields. App configs are
// selected and validated the same way as in the "generate" command.
func NewFlags(
	baseDir string,
	manualPaths []string,
	globs []string,
	recursive bool,
	composefileName string,
	envPath string,
	validate bool,
	verbose bool,
) (*Flags, error) {
	configfileFlags, err := cmd_generate.NewConfigfileFlags(
		baseDir, manualPaths, globs, recursive,
	)
	if err != nil {
		return nil, err
	}

	if err := cmd_generate.ValidateComposefileName(
		composefileName,
	); err != nil {
		return nil, err
	}

	return &Flags{
		ConfigfileFlags: configfileFlags,
		ComposefileName: composefileName,
		EnvPath:         envPath,
		Validate:        validate,
		Verbose:         verbose,
	}, nil
}
