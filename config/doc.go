// Package config loads configuration documents for option sets and their host.
//
// Loading is split into four extension points:
//   - Parser: decodes raw data into a target, optionally after navigating to a section
//   - DataFetcher: retrieves raw data (see config/fetcher/file)
//   - Defaulter: fills in defaults after parsing
//   - Validator: rejects invalid documents after defaults are applied
//
// # Section paths
//
// Provider takes a colon separated path to the section holding the target:
//
//	"modules:telnet_default"  -> doc["modules"]["telnet_default"]
//	""                        -> entire document
//
// The YAML parser in config/parser/yaml navigates with goccy/go-yaml PathString
// before decoding.
//
// # Example
//
//	provider := config.Provider(&optionset.Config{}, "modules:telnet_default")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
//	if err != nil {
//	    // fetch, parse or validation failure
//	}
//	err = set.Apply(cfg.Values)
package config
