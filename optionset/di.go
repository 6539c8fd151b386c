package optionset

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-attr/config"
	filefetcher "github.com/0xalexb/hjarta-attr/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-attr/config/parser/yaml"
	"github.com/0xalexb/hjarta-attr/option"

	"go.uber.org/fx"
)

// ErrNilDeclare is returned when NewModule is given no declaration function.
var ErrNilDeclare = errors.New("declare function must not be nil")

// Declare registers the options of a Set.
type Declare func(set *Set) error

// ModuleOption configures a Set module.
type ModuleOption func(*moduleConfig)

type moduleConfig struct {
	values  Values
	file    string
	section string
}

// WithValues assigns values after every other source.
func WithValues(values Values) ModuleOption {
	return func(cfg *moduleConfig) {
		if cfg.values == nil {
			cfg.values = make(Values, len(values))
		}

		for name, value := range values {
			cfg.values[name] = value
		}
	}
}

// WithConfigFile loads a Config from the YAML file at path. section is a colon
// separated path to the Config within the document, empty for the whole document.
func WithConfigFile(path, section string) ModuleOption {
	return func(cfg *moduleConfig) {
		cfg.file = path
		cfg.section = section
	}
}

// NewModule creates an Fx module that provides a *Set under the DI name tag name.
// declare registers the options, then values are applied from the config file,
// from a Config supplied to the container under the same name tag, and from WithValues.
// An option.Host supplied under the name tag is used to validate encoder options.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, declare Declare, opts ...ModuleOption) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if declare == nil {
		return fx.Error(ErrNilDeclare)
	}

	var cfg moduleConfig

	for _, apply := range opts {
		apply(&cfg)
	}

	nameTag := fmt.Sprintf(`name:"%s"`, name)
	optionalTag := fmt.Sprintf(`name:"%s" optional:"true"`, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(logger *slog.Logger, host option.Host, external Config) (*Set, error) {
					return buildSet(name, declare, cfg, logger, host, external)
				},
				fx.ParamTags("", optionalTag, optionalTag),
				fx.ResultTags(nameTag),
			),
		),
		fx.Invoke(
			fx.Annotate(
				func(logger *slog.Logger, set *Set) {
					logger.Info("option set ready", slog.String("set", name), slog.Int("options", set.Len()))
				},
				fx.ParamTags("", nameTag),
			),
		),
	)
}

func buildSet(
	name string,
	declare Declare,
	cfg moduleConfig,
	logger *slog.Logger,
	host option.Host,
	external Config,
) (*Set, error) {
	set := NewSet(host, logger.With(slog.String("set", name)))

	err := declare(set)
	if err != nil {
		return nil, fmt.Errorf("declaring options of %s: %w", name, err)
	}

	if cfg.file != "" {
		fileConfig, err := LoadConfig(cfg.file, cfg.section)
		if err != nil {
			return nil, err
		}

		err = set.Apply(fileConfig.Values)
		if err != nil {
			return nil, fmt.Errorf("applying %s values of %s: %w", cfg.file, name, err)
		}
	}

	err = set.Apply(external.Values)
	if err != nil {
		return nil, fmt.Errorf("applying supplied values of %s: %w", name, err)
	}

	err = set.Apply(cfg.values)
	if err != nil {
		return nil, fmt.Errorf("applying module values of %s: %w", name, err)
	}

	return set, nil
}

// LoadConfig reads a Config from the YAML file at path, navigating to section first.
func LoadConfig(path, section string) (*Config, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("loading option values: %w", err)
	}

	parser := yamlparser.NewParser(yamlparser.WithDisallowUnknownFields())

	cfg, err := config.Provider(&Config{}, section)(parser, fetcher)
	if err != nil {
		return nil, fmt.Errorf("loading option values from %s: %w", path, err)
	}

	return cfg, nil
}
