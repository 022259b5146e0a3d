package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/safe-waters/docker-project/pkg/projector"
	"go.uber.org/zap"
)

type generator struct {
	pathCollector       IPathCollector
	configParser        IConfigParser
	composefileFormat   IComposefileFormatter
	composefileValidate IComposefileValidator
	composefileName     string
	logger              *zap.Logger
}

// NewGenerator returns an IGenerator after ensuring pathCollector,
// configParser, and composefileFormatter are non nil. composefileValidator
// may be nil, in which case composefiles are not validated. Composefiles are
// named composefileName and placed next to their app configs.
func NewGenerator(
	pathCollector IPathCollector,
	configParser IConfigParser,
	composefileFormatter IComposefileFormatter,
	composefileValidator IComposefileValidator,
	composefileName string,
	logger *zap.Logger,
) (IGenerator, error) {
	if pathCollector == nil || reflect.ValueOf(pathCollector).IsNil() {
		return nil, errors.New("'pathCollector' may not be nil")
	}

	if configParser == nil || reflect.ValueOf(configParser).IsNil() {
		return nil, errors.New("'configParser' may not be nil")
	}

	if composefileFormatter == nil ||
		reflect.ValueOf(composefileFormatter).IsNil() {
		return nil, errors.New("'composefileFormatter' may not be nil")
	}

	if composefileValidator != nil &&
		reflect.ValueOf(composefileValidator).IsNil() {
		composefileValidator = nil
	}

	if composefileName == "" {
		return nil, errors.New("'composefileName' may not be empty")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &generator{
		pathCollector:       pathCollector,
		configParser:        configParser,
		composefileFormat:   composefileFormatter,
		composefileValidate: composefileValidator,
		composefileName:     composefileName,
		logger:              logger,
	}, nil
}

// GenerateComposefiles collects app configs, projects each of them to a
// compose config, and streams the formatted composefiles. After the first
// error, no more composefiles are sent.
func (g *generator) GenerateComposefiles(
	ctx context.Context,
	done <-chan struct{},
) <-chan *Composefile {
	var (
		waitGroup    sync.WaitGroup
		composefiles = make(chan *Composefile)
	)

	paths := g.pathCollector.CollectPaths(done)
	configs := g.configParser.ParseFiles(paths, done)

	waitGroup.Add(1)

	go func() {
		defer waitGroup.Done()

		var (
			mu      sync.Mutex
			seen    = map[string]string{}
			inner   sync.WaitGroup
			results = make(chan *Composefile)
		)

		inner.Add(1)

		go func() {
			defer inner.Done()

			for config := range configs {
				config := config

				inner.Add(1)

				go func() {
					defer inner.Done()

					composefile := g.generateComposefile(ctx, config.Path,
						config.Config, config.Err,
					)

					if composefile.Err == nil {
						mu.Lock()
						other, ok := seen[composefile.Path]
						seen[composefile.Path] = composefile.ConfigPath
						mu.Unlock()

						if ok {
							composefile = &Composefile{Err: fmt.Errorf(
								"'%s' and '%s' both generate '%s'",
								other, composefile.ConfigPath,
								composefile.Path,
							)}
						}
					}

					select {
					case <-done:
					case <-ctx.Done():
					case results <- composefile:
					}
				}()
			}
		}()

		go func() {
			inner.Wait()
			close(results)
		}()

		for composefile := range results {
			select {
			case <-done:
				return
			case <-ctx.Done():
				select {
				case <-done:
				case composefiles <- &Composefile{Err: ctx.Err()}:
				}

				return
			case composefiles <- composefile:
			}

			if composefile.Err != nil {
				return
			}
		}
	}()

	go func() {
		waitGroup.Wait()
		close(composefiles)
	}()

	return composefiles
}

func (g *generator) generateComposefile(
	ctx context.Context,
	configPath string,
	config *projector.ParsedConfig,
	err error,
) *Composefile {
	if err != nil {
		return &Composefile{ConfigPath: configPath, Err: err}
	}

	path := filepath.Join(filepath.Dir(configPath), g.composefileName)
	if filepath.Clean(path) == filepath.Clean(configPath) {
		return &Composefile{
			ConfigPath: configPath,
			Err: fmt.Errorf(
				"'%s' would be overwritten by its own composefile",
				configPath,
			),
		}
	}

	composeConfig := projector.Project(config)

	g.logger.Debug(
		"projected app config",
		zap.String("config", configPath),
		zap.String("composefile", path),
		zap.Int("services", len(composeConfig.Services)),
		zap.Strings("dropped", projector.Dropped(config)),
	)

	contents, err := g.composefileFormat.FormatComposefile(composeConfig)
	if err != nil {
		return &Composefile{ConfigPath: configPath, Err: err}
	}

	if g.composefileValidate != nil {
		if err := g.composefileValidate.Validate(
			ctx, path, contents,
		); err != nil {
			return &Composefile{ConfigPath: configPath, Err: err}
		}
	}

	return &Composefile{
		ConfigPath: configPath,
		Path:       path,
		Contents:   contents,
	}
}
