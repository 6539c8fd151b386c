package optionset

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mitchellh/go-wordwrap"
)

const columnPadding = 3

// Describe writes the options as a table with the columns Name, Current settings
// and Description. Descriptions longer than width are wrapped onto continuation
// rows; a zero width disables wrapping.
func (s *Set) Describe(w io.Writer, width uint) error {
	table := tabwriter.NewWriter(w, 0, 0, columnPadding, ' ', 0)

	_, _ = fmt.Fprintln(table, "Name\tCurrent settings\tDescription")
	_, _ = fmt.Fprintln(table, "----\t----------------\t-----------")

	for _, name := range s.Names() {
		opt := s.options[name]

		description := opt.Description()
		if width > 0 {
			description = wordwrap.WrapString(description, width)
		}

		lines := strings.Split(description, "\n")

		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\n", name, opt.Display(), lines[0])

		for _, line := range lines[1:] {
			_, _ = fmt.Fprintf(table, "\t\t%s\n", line)
		}
	}

	err := table.Flush()
	if err != nil {
		return fmt.Errorf("writing options table: %w", err)
	}

	return nil
}
