// Package verify provides functionality for verifying that existing
// composefiles are up-to-date with their app configs.
package verify

import "context"

// IVerifier provides an interface for Verifiers, which are responsible
// for verifying that newly generated composefiles equal the existing ones.
type IVerifier interface {
	VerifyComposefiles(ctx context.Context) error
}
