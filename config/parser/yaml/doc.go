// Package yaml implements config.Parser with github.com/goccy/go-yaml.
//
// Section paths use colons and are translated to YAML paths:
//
//	""                        -> whole document
//	"modules"                 -> "$.modules"
//	"modules:telnet_default"  -> "$.modules.telnet_default"
//
// WithDisallowUnknownFields turns misspelled keys into decode errors.
package yaml
