package option

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name or value does not match any variant.
var ErrUnknownKind = errors.New("unknown option kind")

// Kind identifies an option variant.
type Kind int

// Option kinds.
const (
	KindIP Kind = iota + 1
	KindPort
	KindBool
	KindInteger
	KindFloat
	KindString
	KindMAC
	KindWordDictionary
	KindEncoder
)

//nolint:gochecknoglobals // lookup table for a closed enum.
var kindNames = map[Kind]string{
	KindIP:             "ip",
	KindPort:           "port",
	KindBool:           "bool",
	KindInteger:        "integer",
	KindFloat:          "float",
	KindString:         "string",
	KindMAC:            "mac",
	KindWordDictionary: "wordlist",
	KindEncoder:        "encoder",
}

// Kinds returns every option kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindIP, KindPort, KindBool, KindInteger, KindFloat,
		KindString, KindMAC, KindWordDictionary, KindEncoder,
	}
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return name
}

// ParseKind returns the kind for a name produced by Kind.String. Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	for kind, kindName := range kindNames {
		if kindName == lower {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
