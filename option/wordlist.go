package option

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// FileScheme prefixes word list values that refer to a file.
const FileScheme = "file://"

const maxWordLength = 1024 * 1024

// WordDictionaryOption holds a list of words, given either inline as "a,b,c" or as
// "file://<path>" referring to a file with one word per line.
//
// Only the existence of the file is checked by Set. Its contents are read on every
// Resolve, so edits made after assignment are observed, and a file removed after
// assignment makes Resolve fail with an I/O error. Lines longer than 1 MiB make Resolve
// fail with bufio.ErrTooLong.
type WordDictionaryOption struct {
	base[string]

	fs afero.Fs
}

// NewWordDictionaryOption creates a WordDictionaryOption on the OS filesystem,
// validating def when it is not empty.
func NewWordDictionaryOption(def, description string) (*WordDictionaryOption, error) {
	return NewWordDictionaryOptionFs(afero.NewOsFs(), def, description)
}

// NewWordDictionaryOptionFs creates a WordDictionaryOption that resolves files on fs.
func NewWordDictionaryOptionFs(fs afero.Fs, def, description string) (*WordDictionaryOption, error) {
	return withDefault(&WordDictionaryOption{base: newBase[string](description), fs: fs}, def)
}

// Kind returns KindWordDictionary.
func (o *WordDictionaryOption) Kind() Kind { return KindWordDictionary }

// Set stores raw. A "file://" value is rejected when the file does not exist.
func (o *WordDictionaryOption) Set(_ Host, raw string) error {
	path, isFile := strings.CutPrefix(raw, FileScheme)
	if isFile {
		exists, err := afero.Exists(o.fs, path)
		if err != nil {
			return invalid(KindWordDictionary, path, fmt.Errorf("%w: %w", ErrFileNotExist, err))
		}

		if !exists {
			return invalid(KindWordDictionary, path, ErrFileNotExist)
		}
	}

	o.commit(raw, raw)

	return nil
}

// Path returns the referenced file path and true when the option points to a file.
func (o *WordDictionaryOption) Path() (string, bool) {
	return strings.CutPrefix(o.display, FileScheme)
}

// Words returns the word list. Inline values are split on commas, so an empty value
// gives a single empty word. File values are read line by line with trailing whitespace
// removed and blank lines kept.
func (o *WordDictionaryOption) Words() ([]string, error) {
	path, isFile := o.Path()
	if !isFile {
		return strings.Split(o.display, ","), nil
	}

	return readLines(o.fs, path)
}

// Resolve returns Words as []string.
func (o *WordDictionaryOption) Resolve() (any, error) {
	return o.Words()
}

func readLines(fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list %q: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxWordLength)

	lines := []string{}

	for scanner.Scan() {
		lines = append(lines, strings.TrimRightFunc(scanner.Text(), unicode.IsSpace))
	}

	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("reading word list %q: %w", path, err)
	}

	return lines, nil
}
