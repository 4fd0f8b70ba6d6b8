// Package csvio implements the contact CSV interchange format.
//
// The format is fixed for compatibility with files produced by earlier
// versions: a literal header line, then one raw comma-joined line per
// contact. Fields are not quoted, so embedded commas are a known limitation
// of the format and must not be "fixed" here.
package csvio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hushbook/hushbook/internal/model"
)

// Header is the exact first line of every contact CSV file.
const Header = "Name,Contact,KeepAfterWipe"

// ErrInvalidFormat is returned when a file cannot be parsed as contact CSV.
// Import is all-or-nothing: a failed parse leaves the collection untouched.
var ErrInvalidFormat = errors.New("invalid CSV format")

// Export renders contacts as CSV. No trailing newline.
func Export(contacts []*model.Contact) string {
	lines := make([]string, 0, len(contacts)+1)
	lines = append(lines, Header)
	for _, c := range contacts {
		keep := "No"
		if c.KeepAfterWipe {
			keep = "Yes"
		}
		lines = append(lines, c.Name+","+c.Contact+","+keep)
	}
	return strings.Join(lines, "\n")
}

// Import parses contact CSV. The first line is discarded as the header and
// blank lines are skipped. Every remaining line must split on comma into
// exactly three fields; the third is the keep-after-wipe flag, true iff it
// equals "yes" case-insensitively. Each parsed contact receives a fresh id.
func Import(data string) ([]*model.Contact, error) {
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need a header line and at least one row", ErrInvalidFormat)
	}

	contacts := make([]*model.Contact, 0, len(rows)-1)
	for i, row := range rows[1:] {
		fields := strings.Split(row, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3",
				ErrInvalidFormat, i+2, len(fields))
		}

		keep := strings.EqualFold(strings.TrimSpace(fields[2]), "yes")
		contacts = append(contacts, model.NewContact(fields[0], fields[1], keep))
	}

	return contacts, nil
}
