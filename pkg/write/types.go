// Package write provides functionality to write generated composefiles
// over their targets in a single transaction.
package write

import "github.com/safe-waters/docker-project/pkg/generate"

// IComposefileWriter provides an interface for ComposefileWriters, which
// write composefiles to temporary paths in tempDir.
type IComposefileWriter interface {
	WriteFiles(
		composefiles <-chan *generate.Composefile,
		tempDir string,
		done <-chan struct{},
	) <-chan *WrittenPath
}

// IRenamer provides an interface for Renamers, which rename temporary files
// from IComposefileWriters to their original paths.
type IRenamer interface {
	RenameFiles(writtenPaths <-chan *WrittenPath) error
}

// ICommitter provides an interface for Committers, which are responsible
// for writing all composefiles or none of them.
type ICommitter interface {
	Commit(composefiles <-chan *generate.Composefile, tempDir string) error
}

// WrittenPath links the temporary file NewPath to OriginalPath, the path it
// will be renamed to. If writing failed, Err is set.
type WrittenPath struct {
	OriginalPath string
	NewPath      string
	Err          error
}
