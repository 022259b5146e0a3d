package write

import (
	"errors"
	"os"
	"sync"
)

type renamer struct{}

// NewRenamer returns an IRenamer.
func NewRenamer() IRenamer {
	return &renamer{}
}

// RenameFiles renames new paths in WrittenPaths to their original paths.
// Nothing is renamed unless every path was written successfully.
func (r *renamer) RenameFiles(writtenPaths <-chan *WrittenPath) error {
	if writtenPaths == nil {
		return errors.New("'writtenPaths' cannot be nil")
	}

	var allWrittenPaths []*WrittenPath // nolint: prealloc

	for writtenPath := range writtenPaths {
		if writtenPath.Err != nil {
			return writtenPath.Err
		}

		allWrittenPaths = append(allWrittenPaths, writtenPath)
	}

	var (
		waitGroup sync.WaitGroup
		errCh     = make(chan error, len(allWrittenPaths))
	)

	for _, writtenPath := range allWrittenPaths {
		writtenPath := writtenPath

		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			if err := os.Rename(
				writtenPath.NewPath, writtenPath.OriginalPath,
			); err != nil {
				errCh <- err
			}
		}()
	}

	waitGroup.Wait()
	close(errCh)

	for err := range errCh {
		return err
	}

	return nil
}
