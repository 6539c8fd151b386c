package optionset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/facette/natsort"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Errors returned when decoding option values from YAML.
var (
	ErrNestedValue = errors.New("option value must be a scalar or a sequence of scalars")
	ErrCommaInWord = errors.New("sequence item must not contain a comma")
)

// Values maps option names to raw input strings.
type Values map[string]string

// Names returns the option names in natural order.
func (v Values) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}

	natsort.Sort(names)

	return names
}

// UnmarshalYAML decodes a mapping of option names to scalars or sequences.
// Scalars keep their source text, so "1.50" and "0x50" reach the option exactly as written.
// Sequences are joined with commas so they can be assigned to word list options.
func (v *Values) UnmarshalYAML(data []byte) error {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return fmt.Errorf("decoding option values: %w", err)
	}

	values := Values{}

	for _, doc := range file.Docs {
		err = values.decodeBody(doc.Body)
		if err != nil {
			return err
		}
	}

	*v = values

	return nil
}

func (v Values) decodeBody(body ast.Node) error {
	switch node := body.(type) {
	case nil, *ast.NullNode:
		return nil
	case *ast.MappingNode:
		for _, pair := range node.Values {
			err := v.decodePair(pair)
			if err != nil {
				return err
			}
		}

		return nil
	case *ast.MappingValueNode:
		return v.decodePair(node)
	default:
		return fmt.Errorf("decoding option values: %w", ErrNestedValue)
	}
}

func (v Values) decodePair(pair *ast.MappingValueNode) error {
	name, err := scalarString(pair.Key)
	if err != nil {
		return fmt.Errorf("option key %q: %w", pair.Key.String(), err)
	}

	text, err := valueString(pair.Value)
	if err != nil {
		return fmt.Errorf("option %q: %w", name, err)
	}

	v[name] = text

	return nil
}

func valueString(node ast.Node) (string, error) {
	switch typed := node.(type) {
	case *ast.SequenceNode:
		words := make([]string, 0, len(typed.Values))

		for _, item := range typed.Values {
			word, err := scalarString(item)
			if err != nil {
				return "", err
			}

			if strings.Contains(word, ",") {
				return "", fmt.Errorf("%w: %q", ErrCommaInWord, word)
			}

			words = append(words, word)
		}

		return strings.Join(words, ","), nil
	case *ast.TagNode:
		return valueString(typed.Value)
	case *ast.AnchorNode:
		return valueString(typed.Value)
	default:
		return scalarString(node)
	}
}

func scalarString(node ast.Node) (string, error) {
	switch typed := node.(type) {
	case nil, *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return typed.Value, nil
	case *ast.LiteralNode:
		return typed.Value.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return typed.GetToken().Value, nil
	case *ast.TagNode:
		return scalarString(typed.Value)
	case *ast.AnchorNode:
		return scalarString(typed.Value)
	default:
		return "", ErrNestedValue
	}
}

// Config is the configuration document for a Set.
type Config struct {
	Values Values `yaml:"values"`
}

// Validate rejects blank option names.
func (c *Config) Validate() error {
	for name := range c.Values {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config values: %w", ErrEmptyName)
		}
	}

	return nil
}
