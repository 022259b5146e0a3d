// Package project provides the "project" command.
package project

import (
	"github.com/spf13/cobra"
)

// NewProjectCmd creates the command 'project' used in 'docker project'.
func NewProjectCmd() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Project app configs to composefiles",
	}

	return projectCmd
}
