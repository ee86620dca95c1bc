package feed

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSV parses delimited text into a Table. The delimiter is sniffed from
// the header line: tracker exports from Spanish-locale spreadsheets come
// semicolon-separated about as often as comma-separated.
func ParseCSV(r io.Reader) (*Table, error) {
	buffered := bufio.NewReader(r)
	delimiter, err := sniffDelimiter(buffered)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	reader := csv.NewReader(buffered)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty feed", ErrInvalidFormat)
	}

	table := &Table{Headers: rows[0]}
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// sniffDelimiter peeks at the first line and picks whichever of semicolon and
// comma occurs more often, defaulting to comma.
func sniffDelimiter(r *bufio.Reader) (rune, error) {
	peek, err := r.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';', nil
	}
	return ',', nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
