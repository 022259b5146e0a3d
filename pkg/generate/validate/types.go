// Package validate provides functionality to check that docker-compose
// accepts generated composefiles.
package validate

import "context"

// IComposefileValidator provides an interface for ComposefileValidators,
// which report whether the contents of a composefile would load.
type IComposefileValidator interface {
	Validate(ctx context.Context, path string, contents []byte) error
}
