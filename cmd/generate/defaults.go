package generate

import (
	"errors"

	"github.com/safe-waters/docker-project/pkg/generate"
	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/generate/validate"
	"github.com/safe-waters/docker-project/pkg/kind"
)

// DefaultConfigfileNames are the app config names collected when no paths
// or globs are given, and the names searched for when recursive.
var DefaultConfigfileNames = []string{ // nolint: gochecknoglobals
	"app.yml", "app.yaml", "app.json",
}

// DefaultPathCollector creates an IPathCollector for app configs, according
// to flags.
func DefaultPathCollector(
	flags *ConfigfileFlags,
) (generate.IPathCollector, error) {
	if flags == nil {
		return nil, errors.New("flags cannot be nil")
	}

	return collect.NewPathCollector(
		kind.Configfile, flags.BaseDir, DefaultConfigfileNames,
		flags.ManualPaths, flags.Globs, flags.Recursive,
	)
}

// DefaultComposefileValidator creates an IComposefileValidator that
// interpolates variables from the .env file at envPath and the process
// environment. If validation is disabled, it returns nil.
func DefaultComposefileValidator(
	enabled bool,
	envPath string,
) (generate.IComposefileValidator, error) {
	if !enabled {
		return nil, nil // nolint: nilnil
	}

	env, err := validate.LoadEnv(envPath)
	if err != nil {
		return nil, err
	}

	return validate.NewComposefileValidator(env), nil
}
