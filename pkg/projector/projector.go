package projector

import (
	"sort"

	"github.com/samber/lo"
)

// Whitelist holds the service keys docker-compose recognizes. All other keys
// are dropped during projection.
var Whitelist = []string{ // nolint: gochecknoglobals
	"build",
	"image",
	"ports",
	"restart",
	"links",
	"depends_on",
	"environment",
	"volumes",
	"command",
}

// Project derives a ComposeConfig from config. Services without a 'build' or
// 'image' source are excluded and the remaining services only keep
// whitelisted keys. Values are copied as is. 'version' and 'volumes' are
// passed through unchanged.
//
// config is never modified, so Project may be called concurrently.
func Project(config *ParsedConfig) *ComposeConfig {
	if config == nil {
		return &ComposeConfig{Services: map[string]ServiceSpec{}}
	}

	buildable := lo.PickBy(
		config.Services,
		func(_ string, spec ServiceSpec) bool {
			return spec.IsBuildable()
		},
	)

	services := make(map[string]ServiceSpec, len(buildable))

	for name, spec := range buildable {
		services[name] = ServiceSpec(lo.PickByKeys(spec, Whitelist))
	}

	return &ComposeConfig{
		Version:  config.Version,
		Services: services,
		Volumes:  config.Volumes,
	}
}

// Dropped returns the sorted names of services in config that Project
// excludes.
func Dropped(config *ParsedConfig) []string {
	if config == nil {
		return nil
	}

	dropped := lo.Keys(lo.OmitBy(
		config.Services,
		func(_ string, spec ServiceSpec) bool {
			return spec.IsBuildable()
		},
	))
	sort.Strings(dropped)

	return dropped
}
