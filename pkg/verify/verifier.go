package verify

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/safe-waters/docker-project/pkg/generate"
	"github.com/safe-waters/docker-project/pkg/generate/parse"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type verifier struct {
	generator generate.IGenerator
	logger    *zap.Logger
}

// NewVerifier returns an IVerifier after ensuring generator is non nil.
func NewVerifier(
	generator generate.IGenerator,
	logger *zap.Logger,
) (IVerifier, error) {
	if generator == nil || reflect.ValueOf(generator).IsNil() {
		return nil, errors.New("'generator' cannot be nil")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &verifier{generator: generator, logger: logger}, nil
}

// VerifyComposefiles generates composefiles and compares each of them
// against the existing composefile at the same path. Composefiles are
// compared after decoding, so formatting differences are ignored. The first
// difference is returned as a *DifferentComposefileError.
func (v *verifier) VerifyComposefiles(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	for composefile := range v.generator.GenerateComposefiles(ctx, done) {
		if composefile.Err != nil {
			return composefile.Err
		}

		if err := v.verifyComposefile(composefile); err != nil {
			return err
		}

		v.logger.Debug(
			"composefile is up to date", zap.String("path", composefile.Path),
		)
	}

	return ctx.Err()
}

func (v *verifier) verifyComposefile(composefile *generate.Composefile) error {
	existingContents, err := ioutil.ReadFile(composefile.Path)
	if err != nil {
		return fmt.Errorf(
			"'%s' could not be read, it may need to be generated: %w",
			composefile.Path, err,
		)
	}

	existing, err := decode(existingContents)
	if err != nil {
		return fmt.Errorf(
			"'%s' failed to parse with err: %w", composefile.Path, err,
		)
	}

	generated, err := decode(composefile.Contents)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(existing, generated); diff != "" {
		return &DifferentComposefileError{
			Path:             composefile.Path,
			ExistingContents: existingContents,
			NewContents:      composefile.Contents,
			Diff:             diff,
		}
	}

	return nil
}

func decode(contents []byte) (interface{}, error) {
	var val interface{}
	if err := yaml.Unmarshal(contents, &val); err != nil {
		return nil, err
	}

	return parse.StringKeys(val), nil
}
