// Package generate provides functionality to generate composefiles from
// app configs.
package generate

import (
	"context"

	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/generate/parse"
	"github.com/safe-waters/docker-project/pkg/projector"
)

// IGenerator provides an interface for Generators, which are responsible
// for creating composefiles.
type IGenerator interface {
	GenerateComposefiles(
		ctx context.Context,
		done <-chan struct{},
	) <-chan *Composefile
}

// IPathCollector provides an interface for PathCollectors, which are
// responsible for collecting app config paths.
type IPathCollector interface {
	CollectPaths(done <-chan struct{}) <-chan *collect.Path
}

// IConfigParser provides an interface for ConfigParsers, which are
// responsible for parsing app configs from paths.
type IConfigParser interface {
	ParseFiles(
		paths <-chan *collect.Path,
		done <-chan struct{},
	) <-chan *parse.Config
}

// IComposefileFormatter provides an interface for ComposefileFormatters,
// which are responsible for encoding compose configs.
type IComposefileFormatter interface {
	FormatComposefile(config *projector.ComposeConfig) ([]byte, error)
}

// IComposefileValidator provides an interface for ComposefileValidators,
// which are responsible for checking that docker-compose accepts a
// composefile.
type IComposefileValidator interface {
	Validate(ctx context.Context, path string, contents []byte) error
}

// Composefile is generated from the app config at ConfigPath and belongs
// at Path. If generating failed, Err is set.
type Composefile struct {
	ConfigPath string
	Path       string
	Contents   []byte
	Err        error
}
