// Package parse provides functionality to parse app configs from collected
// files.
package parse

import (
	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/projector"
)

// IConfigParser provides an interface for ConfigParsers, which are
// responsible for reading app config files.
type IConfigParser interface {
	ParseFiles(
		paths <-chan *collect.Path,
		done <-chan struct{},
	) <-chan *Config
}

// Config is an app config parsed from Path. If parsing failed, Err is set.
type Config struct {
	Path   string
	Config *projector.ParsedConfig
	Err    error
}
