package feed

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX parses the first sheet of a workbook into a Table. The first
// non-blank row is the header.
func ParseXLSX(r io.Reader) (*Table, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %v", ErrParseFailure, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %s: %v", ErrParseFailure, sheets[0], err)
	}

	table := &Table{}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if table.Headers == nil {
			table.Headers = row
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	if table.Headers == nil {
		return nil, fmt.Errorf("%w: empty feed", ErrInvalidFormat)
	}
	return table, nil
}
