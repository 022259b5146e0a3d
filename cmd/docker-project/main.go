// Package main is a cli tool that projects app configs to composefiles.
// An app config describes every service of a project, and docker-project
// writes a docker-compose file next to it with only the services that can be
// built or pulled, each reduced to the keys docker-compose needs to run it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/safe-waters/docker-project/cmd/docker"
	"github.com/safe-waters/docker-project/cmd/generate"
	"github.com/safe-waters/docker-project/cmd/project"
	"github.com/safe-waters/docker-project/cmd/verify"
	"github.com/safe-waters/docker-project/cmd/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docker-cli-plugin-metadata" {
		m := map[string]string{
			"SchemaVersion":    "0.1.0",
			"Vendor":           "https://github.com/safe-waters/docker-project",
			"Version":          version.Version,
			"ShortDescription": "Generate composefiles from app configs",
		}
		j, _ := json.Marshal(m)

		fmt.Println(string(j))

		os.Exit(0)
	}

	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}

func execute() error {
	if err := initViper(); err != nil {
		return err
	}

	dockerCmd := docker.NewDockerCmd()

	dockerCmd.SilenceUsage = true
	dockerCmd.SilenceErrors = true

	projectCmd := project.NewProjectCmd()
	versionCmd := version.NewVersionCmd()

	generateCmd, err := generate.NewGenerateCmd()
	if err != nil {
		return err
	}

	verifyCmd, err := verify.NewVerifyCmd()
	if err != nil {
		return err
	}

	dockerCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(
		[]*cobra.Command{versionCmd, generateCmd, verifyCmd}...,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return dockerCmd.ExecuteContext(ctx)
}

func initViper() error {
	const cfgFilePrefix = ".docker-project"

	// works with variety of files such as .docker-project.[yaml|json|toml]
	viper.SetConfigName(cfgFilePrefix)
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("malformed '%s' file: %v", cfgFilePrefix, err)
		}
	}

	return nil
}
