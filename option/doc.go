// Package option provides typed, self-validating option values.
//
// An option accepts untyped user input (usually a string typed at a command prompt),
// validates and coerces it into a typed value and keeps a display form for showing
// the current setting back to the user.
//
// The set of variants is closed:
//
//	KindIP             IPv4 or IPv6 address, or empty
//	KindPort           integer in 1..65535
//	KindBool           literal "true" or "false"
//	KindInteger        any integer
//	KindFloat          any floating point number
//	KindString         any string
//	KindMAC            six colon separated groups of one or two hex digits
//	KindWordDictionary comma separated words, or "file://<path>" to a word list file
//	KindEncoder        encoder name resolved by the owning Host
//
// Assignment is atomic. Set either replaces both the display and the typed value, or
// returns a *ValidationError and leaves the option untouched:
//
//	port, err := option.NewPortOption("80", "Target port")
//	if err != nil {
//	    // invalid default
//	}
//
//	err = port.Set(nil, "65536")
//	var verr *option.ValidationError
//	errors.As(err, &verr)           // true
//	errors.Is(err, option.ErrPortOutOfRange) // true
//	port.Value()                    // still 80
//
// Word list options backed by a file only check that the file exists at assignment.
// The file is read on every Resolve, so its read errors are plain I/O errors rather
// than validation errors.
package option
