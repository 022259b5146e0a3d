// Package projector provides functionality to derive docker-compose
// configuration from an app config.
package projector

import "reflect"

// ParsedConfig is an app config that describes named services.
type ParsedConfig struct {
	Version  string                 `yaml:"version,omitempty" json:"version,omitempty"`   // nolint: lll
	Services map[string]ServiceSpec `yaml:"services,omitempty" json:"services,omitempty"` // nolint: lll
	Volumes  map[string]interface{} `yaml:"volumes,omitempty" json:"volumes,omitempty"`   // nolint: lll
}

// ComposeConfig is the docker-compose view of a ParsedConfig. It only
// contains services that docker-compose can build or run.
type ComposeConfig struct {
	Version  string                 `yaml:"version,omitempty" json:"version,omitempty"` // nolint: lll
	Services map[string]ServiceSpec `yaml:"services" json:"services"`
	Volumes  map[string]interface{} `yaml:"volumes,omitempty" json:"volumes,omitempty"` // nolint: lll
}

// ServiceSpec maps configuration keys of a service to their values.
type ServiceSpec map[string]interface{}

// IsBuildable reports whether the service declares a non empty 'build'
// or 'image' key.
func (s ServiceSpec) IsBuildable() bool {
	return isSet(s["build"]) || isSet(s["image"])
}

func isSet(val interface{}) bool {
	if val == nil {
		return false
	}

	v := reflect.ValueOf(val)

	switch v.Kind() { // nolint: exhaustive
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() != 0
	case reflect.Ptr, reflect.Interface:
		return !v.IsNil()
	default:
		return true
	}
}
