package write

import (
	"errors"
	"os"
	"reflect"

	"github.com/safe-waters/docker-project/pkg/generate"
)

// TempDirPattern names the directory Commit creates for temporary files.
const TempDirPattern = "temp-generate-*"

type committer struct {
	writer  IComposefileWriter
	renamer IRenamer
}

// NewCommitter returns an ICommitter after ensuring writer and renamer
// are non nil.
func NewCommitter(writer IComposefileWriter, renamer IRenamer) (ICommitter, error) {
	if writer == nil || reflect.ValueOf(writer).IsNil() {
		return nil, errors.New("'writer' cannot be nil")
	}

	if renamer == nil || reflect.ValueOf(renamer).IsNil() {
		return nil, errors.New("'renamer' cannot be nil")
	}

	return &committer{writer: writer, renamer: renamer}, nil
}

// Commit writes composefiles in two steps. First, all of them are written to
// temporary paths in a new, uniquely named subdirectory of tempDir (which
// will be created if it does not exist). If tempDir is empty, the current
// working directory is used. Next, all temporary files are renamed to their
// targets, so tempDir must be on the same filesystem as the targets.
// If any composefile could not be generated or written, no target changes.
func (c *committer) Commit(
	composefiles <-chan *generate.Composefile,
	tempDir string,
) error {
	if composefiles == nil {
		return errors.New("'composefiles' cannot be nil")
	}

	if tempDir == "" {
		tempDir = "."
	}

	if err := os.MkdirAll(tempDir, 0700); err != nil { // nolint: gomnd
		return err
	}

	tempDir, err := os.MkdirTemp(tempDir, TempDirPattern)
	if err != nil {
		return err
	}

	defer os.RemoveAll(tempDir)

	done := make(chan struct{})
	defer close(done)

	writtenPaths := c.writer.WriteFiles(composefiles, tempDir, done)

	err = c.renamer.RenameFiles(writtenPaths)

	// The renamer stops reading on the first error. Drain the rest so no
	// write is still in flight when tempDir is removed.
	for range writtenPaths { // nolint: revive
	}

	return err
}
