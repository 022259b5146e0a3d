// Package collect provides functionality to collect app config paths.
package collect

import "github.com/safe-waters/docker-project/pkg/kind"

// IPathCollector provides an interface for PathCollectors,
// which collect paths to be processed downstream.
type IPathCollector interface {
	Kind() kind.Kind
	CollectPaths(done <-chan struct{}) <-chan *Path
}

// Path is a collected path of a specific kind. If collecting failed,
// Err is set and Val is empty.
type Path struct {
	Kind kind.Kind
	Val  string
	Err  error
}
