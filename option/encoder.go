package option

// EncoderOption selects an encoder registered with the owning Host.
//
// After a successful Set the display value is the encoder identifier returned by
// the host while Value keeps the name the user typed.
type EncoderOption struct {
	base[string]
}

// NewEncoderOption creates an EncoderOption. A non-empty def is stored as both display
// and typed value without consulting any host.
func NewEncoderOption(def, description string) *EncoderOption {
	opt := &EncoderOption{base: newBase[string](description)}
	opt.commit(def, def)

	return opt
}

// Kind returns KindEncoder.
func (o *EncoderOption) Kind() Kind { return KindEncoder }

// Set asks host to resolve raw. A nil host resolves nothing.
func (o *EncoderOption) Set(host Host, raw string) error {
	if host == nil {
		return invalid(KindEncoder, raw, ErrEncoderNotAvailable)
	}

	encoder, ok := host.ResolveEncoder(raw)
	if !ok || encoder == "" {
		return invalid(KindEncoder, raw, ErrEncoderNotAvailable)
	}

	o.commit(encoder, raw)

	return nil
}
