package verify

import "fmt"

// DifferentComposefileError reports differences between the existing
// composefile at Path and one that is newly generated.
type DifferentComposefileError struct {
	Path             string
	ExistingContents []byte
	NewContents      []byte
	Diff             string
}

// Error returns the path of the composefile and the differences, where
// removed lines came from the existing composefile.
func (d *DifferentComposefileError) Error() string {
	return fmt.Sprintf(
		"'%s' is out of date (-existing +new):\n%s", d.Path, d.Diff,
	)
}
