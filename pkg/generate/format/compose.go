package format

import (
	"bytes"
	"errors"

	"github.com/safe-waters/docker-project/pkg/projector"
	"gopkg.in/yaml.v2"
)

type composefileFormatter struct{}

// NewComposefileFormatter returns an IComposefileFormatter that writes YAML.
// Mapping keys are sorted, so the same config always has the same contents.
func NewComposefileFormatter() IComposefileFormatter {
	return &composefileFormatter{}
}

// FormatComposefile encodes config as YAML.
func (c *composefileFormatter) FormatComposefile(
	config *projector.ComposeConfig,
) ([]byte, error) {
	if config == nil {
		return nil, errors.New("'config' cannot be nil")
	}

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)

	if err := encoder.Encode(config); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
