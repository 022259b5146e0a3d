// Package format provides functionality to format compose configs as
// composefiles.
package format

import "github.com/safe-waters/docker-project/pkg/projector"

// IComposefileFormatter provides an interface for ComposefileFormatters,
// which encode compose configs as the contents of a composefile.
type IComposefileFormatter interface {
	FormatComposefile(config *projector.ComposeConfig) ([]byte, error)
}
