package option

import (
	"errors"
	"math"
	"net/netip"
	"strconv"
	"strings"

	"github.com/grafana/regexp"
)

const maxPort = 65535

//nolint:gochecknoglobals // compiled once.
var macPattern = regexp.MustCompile(`^[a-f\d]{1,2}(:[a-f\d]{1,2}){5}$`)

// IsIPv4 reports whether s is a textual IPv4 address.
func IsIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)

	return err == nil && addr.Is4()
}

// IsIPv6 reports whether s is a textual IPv6 address, including IPv4-mapped forms.
// Zoned addresses such as "fe80::1%eth0" are rejected.
func IsIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)

	return err == nil && addr.Is6() && addr.Zone() == ""
}

// IPOption holds an IPv4 or IPv6 address. The empty string is accepted and means unset.
type IPOption struct {
	base[string]
}

// NewIPOption creates an IPOption, validating def when it is not empty.
func NewIPOption(def, description string) (*IPOption, error) {
	return withDefault(&IPOption{base: newBase[string](description)}, def)
}

// Kind returns KindIP.
func (o *IPOption) Kind() Kind { return KindIP }

// Set stores raw when it is empty or a valid address.
func (o *IPOption) Set(_ Host, raw string) error {
	if raw != "" && !IsIPv4(raw) && !IsIPv6(raw) {
		return invalid(KindIP, raw, ErrInvalidAddress)
	}

	o.commit(raw, raw)

	return nil
}

// PortOption holds a TCP or UDP port number.
type PortOption struct {
	base[int]
}

// NewPortOption creates a PortOption, validating def when it is not empty.
func NewPortOption(def, description string) (*PortOption, error) {
	return withDefault(&PortOption{base: newBase[int](description)}, def)
}

// Kind returns KindPort.
func (o *PortOption) Kind() Kind { return KindPort }

// Set parses raw as a port. The display value is the canonical decimal form,
// so " 080" is shown as "80".
func (o *PortOption) Set(_ Host, raw string) error {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return invalid(KindPort, raw, ErrInvalidPort)
	}

	if port < 1 || port > maxPort {
		return invalid(KindPort, raw, ErrPortOutOfRange)
	}

	o.commit(strconv.Itoa(port), port)

	return nil
}

// BoolOption holds a boolean flag set with the literals "true" and "false".
type BoolOption struct {
	base[bool]
}

// NewBoolOption creates a BoolOption holding def.
func NewBoolOption(def bool, description string) *BoolOption {
	opt := &BoolOption{base: newBase[bool](description)}
	opt.commit(strconv.FormatBool(def), def)

	return opt
}

// Kind returns KindBool.
func (o *BoolOption) Kind() Kind { return KindBool }

// Set accepts exactly "true" or "false".
func (o *BoolOption) Set(_ Host, raw string) error {
	value, err := parseBool(raw)
	if err != nil {
		return err
	}

	o.commit(raw, value)

	return nil
}

func parseBool(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, invalid(KindBool, raw, ErrInvalidBool)
	}
}

// IntegerOption holds a signed integer.
type IntegerOption struct {
	base[int]
}

// NewIntegerOption creates an IntegerOption, validating def when it is not empty.
func NewIntegerOption(def, description string) (*IntegerOption, error) {
	return withDefault(&IntegerOption{base: newBase[int](description)}, def)
}

// Kind returns KindInteger.
func (o *IntegerOption) Kind() Kind { return KindInteger }

// Set parses raw as a base 10 integer. The display value keeps raw exactly as typed.
// Well-formed integers that do not fit in an int fail with ErrIntegerOutOfRange.
func (o *IntegerOption) Set(_ Host, raw string) error {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		return invalid(KindInteger, raw, ErrIntegerOutOfRange)
	}

	if err != nil {
		return invalid(KindInteger, raw, ErrInvalidInteger)
	}

	o.commit(raw, value)

	return nil
}

// FloatOption holds a 64-bit floating point number.
type FloatOption struct {
	base[float64]
}

// NewFloatOption creates a FloatOption, validating def when it is not empty.
func NewFloatOption(def, description string) (*FloatOption, error) {
	return withDefault(&FloatOption{base: newBase[float64](description)}, def)
}

// Kind returns KindFloat.
func (o *FloatOption) Kind() Kind { return KindFloat }

// Set parses raw as a decimal float. The display value keeps raw exactly as typed.
// Hexadecimal input is rejected and values beyond the float64 range become ±Inf.
func (o *FloatOption) Set(_ Host, raw string) error {
	trimmed := strings.TrimSpace(raw)
	if isHexFloat(trimmed) {
		return invalid(KindFloat, raw, ErrInvalidFloat)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(value, 0)) {
		return invalid(KindFloat, raw, ErrInvalidFloat)
	}

	o.commit(raw, value)

	return nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// StringOption holds free text.
type StringOption struct {
	base[string]
}

// NewStringOption creates a StringOption holding def.
func NewStringOption(def, description string) *StringOption {
	opt := &StringOption{base: newBase[string](description)}
	opt.commit(def, def)

	return opt
}

// Kind returns KindString.
func (o *StringOption) Kind() Kind { return KindString }

// Set stores raw. It never fails.
func (o *StringOption) Set(_ Host, raw string) error {
	o.commit(raw, raw)

	return nil
}

// MACOption holds a hardware address such as "aa:bb:cc:dd:ee:ff".
// The typed value is lower-cased, the display value is the input as typed.
type MACOption struct {
	base[string]
}

// NewMACOption creates a MACOption, validating def when it is not empty.
func NewMACOption(def, description string) (*MACOption, error) {
	return withDefault(&MACOption{base: newBase[string](description)}, def)
}

// Kind returns KindMAC.
func (o *MACOption) Kind() Kind { return KindMAC }

// Set accepts six colon separated groups of one or two hex digits, in any case.
func (o *MACOption) Set(_ Host, raw string) error {
	lower := strings.ToLower(raw)
	if !macPattern.MatchString(lower) {
		return invalid(KindMAC, raw, ErrInvalidMAC)
	}

	o.commit(raw, lower)

	return nil
}

// withDefault runs a non-empty default through the regular assignment path.
func withDefault[T Option](opt T, def string) (T, error) {
	if def == "" {
		return opt, nil
	}

	err := opt.Set(nil, def)
	if err != nil {
		var zero T

		return zero, err
	}

	return opt, nil
}
