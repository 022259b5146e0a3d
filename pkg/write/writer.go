package write

import (
	"fmt"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/safe-waters/docker-project/pkg/generate"
)

const composefileMode = 0644

type composefileWriter struct{}

// NewComposefileWriter returns an IComposefileWriter.
func NewComposefileWriter() IComposefileWriter {
	return &composefileWriter{}
}

// WriteFiles writes the contents of each composefile to a new file in
// tempDir. A composefile with an error is forwarded as is.
func (c *composefileWriter) WriteFiles(
	composefiles <-chan *generate.Composefile,
	tempDir string,
	done <-chan struct{},
) <-chan *WrittenPath {
	if composefiles == nil {
		return nil
	}

	var (
		waitGroup    sync.WaitGroup
		writtenPaths = make(chan *WrittenPath)
	)

	waitGroup.Add(1)

	go func() {
		defer waitGroup.Done()

		for composefile := range composefiles {
			composefile := composefile

			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				writtenPath := &WrittenPath{
					OriginalPath: composefile.Path,
					Err:          composefile.Err,
				}

				if writtenPath.Err == nil {
					writtenPath.NewPath, writtenPath.Err = c.writeFile(
						composefile, tempDir,
					)
				}

				select {
				case <-done:
				case writtenPaths <- writtenPath:
				}
			}()
		}
	}()

	go func() {
		waitGroup.Wait()
		close(writtenPaths)
	}()

	return writtenPaths
}

func (c *composefileWriter) writeFile(
	composefile *generate.Composefile,
	tempDir string,
) (string, error) {
	replacer := strings.NewReplacer("/", "-", "\\", "-")
	tempPattern := replacer.Replace(fmt.Sprintf("%s-*", composefile.Path))

	writtenFile, err := ioutil.TempFile(tempDir, tempPattern)
	if err != nil {
		return "", err
	}
	defer writtenFile.Close()

	if _, err = writtenFile.Write(composefile.Contents); err != nil {
		return "", err
	}

	if err = writtenFile.Chmod(composefileMode); err != nil {
		return "", err
	}

	return writtenFile.Name(), nil
}
