package validate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"github.com/joho/godotenv"
)

type composefileValidator struct {
	env types.Mapping
}

// NewComposefileValidator returns an IComposefileValidator that loads
// composefiles with compose-go. env is used to interpolate variables.
func NewComposefileValidator(env map[string]string) IComposefileValidator {
	return &composefileValidator{env: types.Mapping(env)}
}

// Validate loads contents as if it were the composefile at path.
//
// The consistency check is skipped: a service may still link to or depend on
// a service that was dropped for having neither 'build' nor 'image'.
func (c *composefileValidator) Validate(
	ctx context.Context,
	path string,
	contents []byte,
) error {
	workingDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return err
	}

	projectName := loader.NormalizeProjectName(filepath.Base(workingDir))
	if projectName == "" {
		projectName = "docker-project"
	}

	if _, err := loader.LoadWithContext(
		ctx,
		types.ConfigDetails{
			WorkingDir: workingDir,
			ConfigFiles: []types.ConfigFile{
				{Filename: path, Content: contents},
			},
			Environment: c.env,
		},
		func(o *loader.Options) {
			o.SetProjectName(projectName, true)
			o.SkipConsistencyCheck = true
			o.SkipNormalization = true
			o.SkipExtends = true
			o.ResolvePaths = false
		},
	); err != nil {
		return fmt.Errorf("'%s' is not a valid composefile: %w", path, err)
	}

	return nil
}

// LoadEnv reads variables from the process environment and fills in the
// ones that are not set from the .env file at envPath. A missing .env file
// is not an error.
func LoadEnv(envPath string) (map[string]string, error) {
	env := map[string]string{}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	if envPath == "" {
		return env, nil
	}

	if _, err := os.Stat(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return env, nil
		}

		return nil, err
	}

	fileEnv, err := godotenv.Read(envPath)
	if err != nil {
		return nil, fmt.Errorf("malformed '%s' file: %w", envPath, err)
	}

	if err := mergo.Merge(&env, fileEnv); err != nil {
		return nil, err
	}

	return env, nil
}
