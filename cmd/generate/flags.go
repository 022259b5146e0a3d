package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigfileFlags represents the flags that select app configs.
type ConfigfileFlags struct {
	BaseDir     string
	ManualPaths []string
	Globs       []string
	Recursive   bool
}

// Flags holds all command line options for generating composefiles.
type Flags struct {
	ConfigfileFlags *ConfigfileFlags
	ComposefileName string
	EnvPath         string
	Validate        bool
	TempDir         string
	Verbose         bool
}

// NewConfigfileFlags returns ConfigfileFlags after validating its fields.
//
// baseDir must be the current working directory or a sub directory.
//
// manualPaths and globs must be in the current working directory or
// in a sub directory.
//
// Absolute paths are not supported.
func NewConfigfileFlags(
	baseDir string,
	manualPaths []string,
	globs []string,
	recursive bool,
) (*ConfigfileFlags, error) {
	if baseDir != "" {
		if err := validateBaseDirectory(baseDir); err != nil {
			return nil, err
		}
	}

	if len(manualPaths) != 0 {
		if err := validateManualPaths(baseDir, manualPaths); err != nil {
			return nil, err
		}
	}

	if len(globs) != 0 {
		if err := validateGlobs(globs); err != nil {
			return nil, err
		}
	}

	return &ConfigfileFlags{
		BaseDir:     baseDir,
		ManualPaths: manualPaths,
		Globs:       globs,
		Recursive:   recursive,
	}, nil
}

// NewFlags returns Flags for generating composefiles, subject to the
// validation logic in NewConfigfileFlags.
//
// composefileName may not contain slashes, since every composefile is
// written next to its app config.
func NewFlags(
	baseDir string,
	manualPaths []string,
	globs []string,
	recursive bool,
	composefileName string,
	envPath string,
	validate bool,
	tempDir string,
	verbose bool,
) (*Flags, error) {
	configfileFlags, err := NewConfigfileFlags(
		baseDir, manualPaths, globs, recursive,
	)
	if err != nil {
		return nil, err
	}

	if err := ValidateComposefileName(composefileName); err != nil {
		return nil, err
	}

	return &Flags{
		ConfigfileFlags: configfileFlags,
		ComposefileName: composefileName,
		EnvPath:         envPath,
		Validate:        validate,
		TempDir:         tempDir,
		Verbose:         verbose,
	}, nil
}

// ValidateComposefileName ensures composefileName is a non empty file name
// without slashes.
func ValidateComposefileName(composefileName string) error {
	if composefileName == "" {
		return errors.New("composefile-name cannot be empty")
	}

	if filepath.IsAbs(composefileName) {
		return fmt.Errorf(
			"'%s' composefile-name does not support absolute paths",
			composefileName,
		)
	}

	composefileName = filepath.Join(".", composefileName)

	if strings.ContainsAny(composefileName, `/\`) {
		return fmt.Errorf(
			"'%s' composefile-name cannot contain slashes", composefileName,
		)
	}

	if composefileName == "." || composefileName == ".." {
		return fmt.Errorf(
			"'%s' composefile-name is not a file name", composefileName,
		)
	}

	return nil
}

func validateBaseDirectory(baseDir string) error {
	if filepath.IsAbs(baseDir) {
		return fmt.Errorf(
			"'%s' base-dir does not support absolute paths", baseDir,
		)
	}

	if strings.HasPrefix(filepath.Join(".", baseDir), "..") {
		return fmt.Errorf(
			"'%s' base-dir is outside the current working directory", baseDir,
		)
	}

	fileInfo, err := os.Stat(baseDir)
	if err != nil {
		return err
	}

	if mode := fileInfo.Mode(); !mode.IsDir() {
		return fmt.Errorf(
			"'%s' base-dir is not sub directory "+
				"of the current working directory",
			baseDir,
		)
	}

	return nil
}

func validateManualPaths(baseDir string, manualPaths []string) error {
	for _, path := range manualPaths {
		if filepath.IsAbs(path) {
			return fmt.Errorf(
				"'%s' input paths do not support absolute paths", path,
			)
		}

		path = filepath.Join(baseDir, path)

		if strings.HasPrefix(path, "..") {
			return fmt.Errorf(
				"'%s' is outside the current working directory", path,
			)
		}
	}

	return nil
}

func validateGlobs(globs []string) error {
	for _, glob := range globs {
		if filepath.IsAbs(glob) {
			return fmt.Errorf("'%s' globs do not support absolute paths", glob)
		}
	}

	return nil
}
