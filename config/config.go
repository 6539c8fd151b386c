package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes configuration data into target.
// path is a colon separated section path; an empty path decodes the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by targets that can check themselves after parsing.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill in defaults. It reports whether anything changed.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches, parses, defaults and validates target.
// The returned function has the shape of an Fx constructor taking a Parser and a DataFetcher.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Debug("configuration defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
