package attr

import (
	"io"

	"github.com/0xalexb/hjarta-attr/optionset"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithOptionSet adds a named option set module to the application.
// The name is the Fx module name and the DI name tag of the provided *optionset.Set,
// of an optional option.Host and of an optional optionset.Config.
// Call multiple times with different names to host several sets.
func WithOptionSet(name string, declare optionset.Declare, opts ...optionset.ModuleOption) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, optionset.NewModule(name, declare, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log output, os.Stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
