// Package logging builds the slog logger shared by the application and its option sets.
// Output is JSON by default, or logfmt-style text with Format "text".
package logging
