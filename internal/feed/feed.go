package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"gestor/internal/record"
)

// Feed error taxonomy. Every error leaving this package wraps one of these.
var (
	ErrFetchFailure  = errors.New("feed fetch failed")
	ErrParseFailure  = errors.New("feed parse failed")
	ErrInvalidFormat = errors.New("feed format invalid")
)

// Table is a parsed feed: an ordered header row plus data rows. Cell values
// are raw — sanitization happens downstream.
type Table struct {
	Headers []string
	Rows    [][]string
}

// xlsxMagic is the ZIP local-file signature every XLSX starts with.
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// Loader reads a feed from a local path or an HTTP(S) URL and parses it into
// a Table.
type Loader struct {
	client *Client
}

// NewLoader builds a Loader with a default HTTP client.
func NewLoader() *Loader {
	return &Loader{client: NewClient()}
}

// Load reads and parses the feed at source, which is either a filesystem path
// or an http(s) URL. The result is validated for the minimum column set.
func (l *Loader) Load(ctx context.Context, source string) (*Table, error) {
	var data []byte
	var err error

	if isURL(source) {
		data, err = l.client.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrFetchFailure, source, err)
		}
	}

	table, err := Parse(data, source)
	if err != nil {
		return nil, err
	}

	if err := ValidateRequiredColumns(table.Headers); err != nil {
		return nil, err
	}

	log.Info().Str("source", source).Int("rows", len(table.Rows)).Msg("Feed loaded")
	return table, nil
}

// Parse decodes raw feed bytes. XLSX content is recognized by its ZIP
// signature or the source's extension; everything else parses as delimited
// text.
func Parse(data []byte, source string) (*Table, error) {
	if bytes.HasPrefix(data, xlsxMagic) || strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return ParseXLSX(bytes.NewReader(data))
	}
	return ParseCSV(bytes.NewReader(data))
}

// ValidateRequiredColumns checks that the header carries at least one alias
// of each column the pipeline cannot work without: key, summary and state.
func ValidateRequiredColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		if field, known := record.CanonicalField(h); known {
			present[field] = true
		}
	}
	for _, field := range []string{record.FieldKey, record.FieldSummary, record.FieldState} {
		if !present[field] {
			return fmt.Errorf("%w: missing required column %q", ErrInvalidFormat, field)
		}
	}
	return nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
