package option

// Host is the object that owns options.
// Options whose validation depends on their owner consult it during Set.
type Host interface {
	// ResolveEncoder returns the identifier of the encoder registered under name.
	ResolveEncoder(name string) (encoder string, ok bool)
}

// HostFunc adapts a plain function to the Host interface.
type HostFunc func(name string) (string, bool)

// ResolveEncoder calls f(name).
func (f HostFunc) ResolveEncoder(name string) (string, bool) {
	return f(name)
}

// Option is a typed value that validates its own input.
//
// The interface is sealed: the variants in this package are the only implementations,
// so a type switch over them is exhaustive.
type Option interface {
	// Kind reports the variant.
	Kind() Kind
	// Label returns the name assigned by the owner, empty until set.
	Label() string
	// SetLabel is called by the owner when the option is registered.
	SetLabel(label string)
	// Description returns the help text given at construction.
	Description() string
	// Display returns the current value as it should be shown to a user.
	Display() string
	// IsEmpty reports whether the option holds no value.
	IsEmpty() bool
	// Set validates raw and stores it. On error the option is left unchanged.
	Set(host Host, raw string) error
	// Resolve returns the typed value.
	Resolve() (any, error)

	sealed()
}

// base holds the state shared by every variant. Display and value are only ever
// written together through commit.
type base[T any] struct {
	label       string
	description string
	display     string
	value       T
}

func newBase[T any](description string) base[T] {
	return base[T]{description: description}
}

func (b *base[T]) Label() string {
	return b.label
}

func (b *base[T]) SetLabel(label string) {
	b.label = label
}

func (b *base[T]) Description() string {
	return b.description
}

func (b *base[T]) Display() string {
	return b.display
}

func (b *base[T]) IsEmpty() bool {
	return b.display == ""
}

// Value returns the typed value.
func (b *base[T]) Value() T {
	return b.value
}

func (b *base[T]) Resolve() (any, error) {
	return b.value, nil
}

func (b *base[T]) commit(display string, value T) {
	b.display = display
	b.value = value
}

func (b *base[T]) sealed() {}

// New creates an option of the given kind. A non-empty def is validated exactly as
// a later Set would validate it, except for encoder options whose default is trusted.
// Bool options accept "", "false" or "true" as default.
//
//nolint:ireturn // the variant is chosen at runtime.
func New(kind Kind, def, description string) (Option, error) {
	switch kind {
	case KindIP:
		return checked(NewIPOption(def, description))
	case KindPort:
		return checked(NewPortOption(def, description))
	case KindBool:
		if def == "" {
			return NewBoolOption(false, description), nil
		}

		value, err := parseBool(def)
		if err != nil {
			return nil, err
		}

		return NewBoolOption(value, description), nil
	case KindInteger:
		return checked(NewIntegerOption(def, description))
	case KindFloat:
		return checked(NewFloatOption(def, description))
	case KindString:
		return NewStringOption(def, description), nil
	case KindMAC:
		return checked(NewMACOption(def, description))
	case KindWordDictionary:
		return checked(NewWordDictionaryOption(def, description))
	case KindEncoder:
		return NewEncoderOption(def, description), nil
	default:
		return nil, ErrUnknownKind
	}
}

// checked keeps a failed constructor from producing a non-nil Option holding a nil pointer.
//
//nolint:ireturn // see New.
func checked[T Option](opt T, err error) (Option, error) {
	if err != nil {
		return nil, err
	}

	return opt, nil
}
