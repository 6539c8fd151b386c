package optionset_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-attr/logging"
	"github.com/0xalexb/hjarta-attr/option"
	"github.com/0xalexb/hjarta-attr/optionset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T, host option.Host, logger *slog.Logger) *optionset.Set {
	t.Helper()

	set := optionset.NewSet(host, logger)

	rhost, err := option.NewIPOption("", "Target address")
	require.NoError(t, err)

	rport, err := option.NewPortOption("80", "Target port")
	require.NoError(t, err)

	usernames, err := option.NewWordDictionaryOption("admin", "Usernames")
	require.NoError(t, err)

	require.NoError(t, set.Add("rhost", rhost))
	require.NoError(t, set.Add("rport", rport))
	require.NoError(t, set.Add("usernames", usernames))
	require.NoError(t, set.Add("encoder", option.NewEncoderOption("", "Payload encoder")))

	return set
}

func TestSet_Add(t *testing.T) {
	t.Parallel()

	set := optionset.NewSet(nil, nil)
	opt := option.NewStringOption("", "Banner")

	require.NoError(t, set.Add("banner", opt))
	assert.Equal(t, "banner", opt.Label())
	assert.Equal(t, 1, set.Len())

	got, ok := set.Get("banner")
	require.True(t, ok)
	assert.Same(t, opt, got)

	err := set.Add("banner", option.NewStringOption("", ""))
	require.ErrorIs(t, err, optionset.ErrDuplicateOption)

	err = set.Add("", option.NewStringOption("", ""))
	require.ErrorIs(t, err, optionset.ErrEmptyName)

	err = set.Add("nothing", nil)
	require.ErrorIs(t, err, optionset.ErrNilOption)

	assert.Equal(t, 1, set.Len())
}

func TestSet_Names_NaturalOrder(t *testing.T) {
	t.Parallel()

	set := optionset.NewSet(nil, nil)

	for _, name := range []string{"port10", "port2", "host", "port1"} {
		require.NoError(t, set.Add(name, option.NewStringOption("", "")))
	}

	assert.Equal(t, []string{"host", "port1", "port2", "port10"}, set.Names())
}

func TestSet_Assign(t *testing.T) {
	t.Parallel()

	set := newTestSet(t, nil, nil)

	require.NoError(t, set.Assign("rport", "8080"))

	value, err := set.Resolve("rport")
	require.NoError(t, err)
	assert.Equal(t, 8080, value)

	display, err := set.Display("rport")
	require.NoError(t, err)
	assert.Equal(t, "8080", display)

	err = set.Assign("rport", "0")
	require.ErrorIs(t, err, option.ErrPortOutOfRange)
	assert.Contains(t, err.Error(), "rport")

	var verr *option.ValidationError

	require.ErrorAs(t, err, &verr)

	display, err = set.Display("rport")
	require.NoError(t, err)
	assert.Equal(t, "8080", display)
}

func TestSet_UnknownOption(t *testing.T) {
	t.Parallel()

	set := newTestSet(t, nil, nil)

	require.ErrorIs(t, set.Assign("lhost", "127.0.0.1"), optionset.ErrUnknownOption)

	_, err := set.Resolve("lhost")
	require.ErrorIs(t, err, optionset.ErrUnknownOption)

	_, err = set.Display("lhost")
	require.ErrorIs(t, err, optionset.ErrUnknownOption)
}

func TestSet_AssignEncoderUsesHost(t *testing.T) {
	t.Parallel()

	host := option.HostFunc(func(name string) (string, bool) {
		if name == "xor" {
			return "generic/xor", true
		}

		return "", false
	})

	set := newTestSet(t, host, nil)
	assert.NotNil(t, set.Host())

	require.NoError(t, set.Assign("encoder", "xor"))

	display, err := set.Display("encoder")
	require.NoError(t, err)
	assert.Equal(t, "generic/xor", display)

	value, err := set.Resolve("encoder")
	require.NoError(t, err)
	assert.Equal(t, "xor", value)

	err = set.Assign("encoder", "rot13")
	require.ErrorIs(t, err, option.ErrEncoderNotAvailable)
}

func TestSet_AssignEncoderWithoutHost(t *testing.T) {
	t.Parallel()

	set := newTestSet(t, nil, nil)

	err := set.Assign("encoder", "xor")
	require.ErrorIs(t, err, option.ErrEncoderNotAvailable)
}

func TestSet_Apply_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	set := newTestSet(t, nil, nil)

	err := set.Apply(optionset.Values{
		"rhost":     "10.0.0.1",
		"rport":     "http",
		"usernames": "root,guest",
		"missing":   "x",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, option.ErrInvalidPort)
	require.ErrorIs(t, err, optionset.ErrUnknownOption)

	rhost, resolveErr := set.Resolve("rhost")
	require.NoError(t, resolveErr)
	assert.Equal(t, "10.0.0.1", rhost)

	usernames, resolveErr := set.Resolve("usernames")
	require.NoError(t, resolveErr)
	assert.Equal(t, []string{"root", "guest"}, usernames)

	require.NoError(t, set.Apply(nil))
}

func TestSet_ResolveWordListReadError(t *testing.T) {
	t.Parallel()

	set := optionset.NewSet(nil, nil)

	opt, err := option.NewWordDictionaryOption("a", "")
	require.NoError(t, err)
	require.NoError(t, set.Add("passwords", opt))

	path := filepath.Join(t.TempDir(), "passwords.txt")

	require.NoError(t, os.WriteFile(path, []byte("secret\n"), 0o600))
	require.NoError(t, set.Assign("passwords", option.FileScheme+path))
	require.NoError(t, os.Remove(path))

	_, err = set.Resolve("passwords")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving passwords")

	var verr *option.ValidationError

	assert.False(t, errors.As(err, &verr))
}

func TestSet_Values(t *testing.T) {
	t.Parallel()

	set := newTestSet(t, nil, nil)
	require.NoError(t, set.Assign("rhost", "::1"))

	assert.Equal(t, optionset.Values{
		"rhost":     "::1",
		"rport":     "80",
		"usernames": "admin",
		"encoder":   "",
	}, set.Values())
}

func TestSet_LogsAssignments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug"}, &buf)
	set := newTestSet(t, nil, logger)

	require.NoError(t, set.Assign("rport", "443"))
	require.Error(t, set.Assign("rhost", "example.com"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var accepted, rejected map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &accepted))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rejected))

	assert.Equal(t, "DEBUG", accepted["level"])
	assert.Equal(t, "rport", accepted["option"])
	assert.Equal(t, "port", accepted["kind"])
	assert.Equal(t, "443", accepted["display"])

	assert.Equal(t, "WARN", rejected["level"])
	assert.Equal(t, "rhost", rejected["option"])
	assert.Contains(t, rejected["error"], "not a valid IPv4 or IPv6 address")
}
