// Package export renders collections as CSV downloads.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// CSV writes rows as comma separated values. The header row lists the
// field names, every cell below it is the JSON rendering of the value so
// that strings come out quoted and numbers plain. Nil values render as
// the empty string. Rows are separated by CRLF.
func CSV(w io.Writer, headers []string, rows [][]any) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, row := range rows {
		cells := make([]string, 0, len(headers))
		for i := range headers {
			var value any
			if i < len(row) {
				value = row[i]
			}

			cell, err := encode(value)
			if err != nil {
				return err
			}

			cells = append(cells, cell)
		}

		lines = append(lines, strings.Join(cells, ","))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\r\n"))
	return err
}

// encode renders a single cell. Nil becomes an empty quoted string, every
// other value its JSON representation.
func encode(value any) (string, error) {
	if value == nil {
		return `""`, nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(value); err != nil {
		return "", fmt.Errorf("cannot encode %v: %w", value, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
