package parse

import (
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/safe-waters/docker-project/pkg/generate/collect"
	"github.com/safe-waters/docker-project/pkg/projector"
	"gopkg.in/yaml.v2"
)

type configParser struct{}

// NewConfigParser returns an IConfigParser for app configs written in
// YAML or JSON.
func NewConfigParser() IConfigParser {
	return &configParser{}
}

// ParseFiles parses app configs from paths. Each path is parsed in its own
// goroutine, so configs may arrive in any order.
func (c *configParser) ParseFiles(
	paths <-chan *collect.Path,
	done <-chan struct{},
) <-chan *Config {
	if paths == nil {
		return nil
	}

	var (
		waitGroup sync.WaitGroup
		configs   = make(chan *Config)
	)

	waitGroup.Add(1)

	go func() {
		defer waitGroup.Done()

		for path := range paths {
			path := path

			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				var config *Config

				if path.Err != nil {
					config = &Config{Err: path.Err}
				} else {
					config = c.parseFile(path.Val)
				}

				select {
				case <-done:
				case configs <- config:
				}
			}()
		}
	}()

	go func() {
		waitGroup.Wait()
		close(configs)
	}()

	return configs
}

func (c *configParser) parseFile(path string) *Config {
	byt, err := ioutil.ReadFile(path)
	if err != nil {
		return &Config{Path: path, Err: err}
	}

	config, err := ParseConfig(byt)
	if err != nil {
		return &Config{
			Path: path,
			Err:  fmt.Errorf("'%s' failed to parse with err: %w", path, err),
		}
	}

	return &Config{Path: path, Config: config}
}

// rawConfig is decoded before ParsedConfig, so a malformed optional field
// does not fail the whole file.
type rawConfig struct {
	Version  looseString `yaml:"version"`
	Services interface{} `yaml:"services"`
	Volumes  interface{} `yaml:"volumes"`
}

// ParseConfig decodes an app config. Nested mappings are decoded with string
// keys so the config can also be encoded as JSON.
//
// Malformed optional fields are treated as not present: a 'services' or
// 'volumes' value that is not a mapping is dropped, and a service whose
// value is not a mapping gets a nil spec, which is never buildable.
func ParseConfig(byt []byte) (*projector.ParsedConfig, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(byt, &raw); err != nil {
		return nil, err
	}

	config := &projector.ParsedConfig{Version: string(raw.Version)}

	if services, ok := StringKeys(raw.Services).(map[string]interface{}); ok {
		config.Services = make(
			map[string]projector.ServiceSpec, len(services),
		)

		for name, val := range services {
			spec, _ := val.(map[string]interface{})
			config.Services[name] = spec
		}
	}

	if volumes, ok := StringKeys(raw.Volumes).(map[string]interface{}); ok {
		config.Volumes = volumes
	}

	return config, nil
}

// looseString holds the text of a scalar. Any other node decodes to "".
type looseString string

func (l *looseString) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		*l = ""
		return nil // nolint: nilerr
	}

	*l = looseString(s)

	return nil
}

// StringKeys converts every map[interface{}]interface{} in val, which
// yaml.v2 produces for nested mappings, to map[string]interface{}.
func StringKeys(val interface{}) interface{} {
	switch val := val.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))

		for k, v := range val {
			m[fmt.Sprint(k)] = StringKeys(v)
		}

		return m
	case []interface{}:
		for i, v := range val {
			val[i] = StringKeys(v)
		}

		return val
	default:
		return val
	}
}
