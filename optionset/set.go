package optionset

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-attr/option"

	"github.com/facette/natsort"
)

// ErrEmptyName is returned when an option or set name is empty.
var ErrEmptyName = errors.New("name must not be empty")

// ErrNilOption is returned when a nil option is added to a Set.
var ErrNilOption = errors.New("option must not be nil")

// ErrDuplicateOption is returned when an option name is added twice.
var ErrDuplicateOption = errors.New("option already defined")

// ErrUnknownOption is returned when an operation names an option that is not in the Set.
var ErrUnknownOption = errors.New("unknown option")

// Set is a collection of named options owned by a single host.
// It is not safe for concurrent use.
type Set struct {
	host    option.Host
	logger  *slog.Logger
	options map[string]option.Option
}

// NewSet creates an empty Set. host is passed to every assignment and may be nil,
// in which case encoder options reject all values. A nil logger uses slog.Default.
func NewSet(host option.Host, logger *slog.Logger) *Set {
	if logger == nil {
		logger = slog.Default()
	}

	return &Set{
		host:    host,
		logger:  logger,
		options: make(map[string]option.Option),
	}
}

// Host returns the host used to validate assignments.
//
//nolint:ireturn // the host is supplied by the caller.
func (s *Set) Host() option.Host {
	return s.host
}

// Add registers opt under name and sets its label.
func (s *Set) Add(name string, opt option.Option) error {
	if name == "" {
		return ErrEmptyName
	}

	if opt == nil {
		return fmt.Errorf("%w: %s", ErrNilOption, name)
	}

	if _, exists := s.options[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOption, name)
	}

	opt.SetLabel(name)
	s.options[name] = opt

	return nil
}

// Get returns the option registered under name.
//
//nolint:ireturn // options are a closed set of variants.
func (s *Set) Get(name string) (option.Option, bool) {
	opt, ok := s.options[name]

	return opt, ok
}

// Len returns the number of options.
func (s *Set) Len() int {
	return len(s.options)
}

// Names returns the option names in natural order, so "port2" sorts before "port10".
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.options))
	for name := range s.options {
		names = append(names, name)
	}

	natsort.Sort(names)

	return names
}

// Assign validates raw and stores it in the named option.
// A rejected value leaves the option unchanged and returns the option's *option.ValidationError.
func (s *Set) Assign(name, raw string) error {
	opt, ok := s.options[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}

	err := opt.Set(s.host, raw)
	if err != nil {
		s.logger.Warn("option value rejected",
			slog.String("option", name),
			slog.String("kind", opt.Kind().String()),
			slog.Any("error", err),
		)

		return fmt.Errorf("setting %s: %w", name, err)
	}

	s.logger.Debug("option value set",
		slog.String("option", name),
		slog.String("kind", opt.Kind().String()),
		slog.String("display", opt.Display()),
	)

	return nil
}

// Apply assigns every value in natural name order. It does not stop at the first
// failure; all failures are returned joined.
func (s *Set) Apply(values Values) error {
	var errs []error

	for _, name := range values.Names() {
		err := s.Assign(name, values[name])
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Resolve returns the typed value of the named option.
func (s *Set) Resolve(name string) (any, error) {
	opt, ok := s.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}

	value, err := opt.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}

	return value, nil
}

// Display returns the display value of the named option.
func (s *Set) Display(name string) (string, error) {
	opt, ok := s.options[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}

	return opt.Display(), nil
}

// Values returns the display value of every option. Applying the result to a Set
// declared the same way reproduces the current settings, except for encoder
// options whose display value is the resolved identifier.
func (s *Set) Values() Values {
	values := make(Values, len(s.options))
	for name, opt := range s.options {
		values[name] = opt.Display()
	}

	return values
}
