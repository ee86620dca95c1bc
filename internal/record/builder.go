package record

import (
	"fmt"
	"time"
)

// Placeholder values injected when a source row lacks a usable summary or
// state. The synthetic key is the only other default the builder produces.
const (
	PlaceholderSummary = "Sin resumen"
	PlaceholderState   = "Sin estado"
)

// Record is the canonical, immutable representation of one source row. Empty
// strings mean "absent"; date fields are nil when missing or unparseable.
type Record struct {
	Key                string
	Summary            string
	Description        string
	State              string
	Country            string
	Area               string
	Epic               string
	Assignee           string
	DevResponsible     string
	Priority           string
	Sizing             string
	BusinessPriority   string
	TechnologyPriority string

	StartDate      *time.Time
	EndDate        *time.Time
	UATStart       *time.Time
	UATEnd         *time.Time
	ProdDate       *time.Time
	CreatedDate    *time.Time
	RegulatoryDate *time.Time

	// Extra holds columns that matched no known header alias, keyed by their
	// camelCased header. Downstream views never read them, but nothing is
	// silently dropped during normalization.
	Extra map[string]string
}

// BuildOptions configures record assembly.
type BuildOptions struct {
	Dates DateBounds

	// RequireKey drops rows whose key is empty after sanitization instead of
	// generating a synthetic one. Off by default: retention with a synthetic
	// key preserves strictly more information.
	RequireKey bool
}

// DefaultBuildOptions returns the standard assembly policy.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Dates: DefaultDateBounds}
}

// Build assembles one canonical record from a normalized row and its zero-based
// source index. Field-level anomalies degrade to defaults; they never fail.
func Build(row map[string]string, index int, opts BuildOptions) Record {
	rec := Record{
		Key:                Clean(row[FieldKey]),
		Summary:            Clean(row[FieldSummary]),
		Description:        Clean(row[FieldDescription]),
		State:              Clean(row[FieldState]),
		Country:            Clean(row[FieldCountry]),
		Area:               Clean(row[FieldArea]),
		Epic:               Clean(row[FieldEpic]),
		Assignee:           Clean(row[FieldAssignee]),
		DevResponsible:     Clean(row[FieldDevResponsible]),
		Priority:           Clean(row[FieldPriority]),
		Sizing:             Clean(row[FieldSizing]),
		BusinessPriority:   Clean(row[FieldBusinessPriority]),
		TechnologyPriority: Clean(row[FieldTechnologyPriority]),

		StartDate:      ParseDate(row[FieldStartDate], opts.Dates),
		EndDate:        ParseDate(row[FieldEndDate], opts.Dates),
		UATStart:       ParseDate(row[FieldUATStart], opts.Dates),
		UATEnd:         ParseDate(row[FieldUATEnd], opts.Dates),
		ProdDate:       ParseDate(row[FieldProdDate], opts.Dates),
		CreatedDate:    ParseDate(row[FieldCreatedDate], opts.Dates),
		RegulatoryDate: ParseDate(row[FieldRegulatoryDate], opts.Dates),
	}

	if rec.Key == "" {
		rec.Key = fmt.Sprintf("ITEM-%d", index+1)
	}
	if rec.Summary == "" {
		rec.Summary = PlaceholderSummary
	}
	if rec.State == "" {
		rec.State = PlaceholderState
	}

	for field, value := range row {
		if isCanonical(field) {
			continue
		}
		cleaned := Clean(value)
		if cleaned == "" {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[field] = cleaned
	}

	return rec
}

// BuildAll normalizes and assembles every row of a raw table. Rows are only
// ever skipped by the explicit RequireKey policy; synthetic keys use the
// original row position so they stay stable regardless of that policy.
func BuildAll(headers []string, rows [][]string, opts BuildOptions) []Record {
	records := make([]Record, 0, len(rows))
	for i, cells := range rows {
		row := NormalizeRow(headers, cells)
		if opts.RequireKey && Clean(row[FieldKey]) == "" {
			continue
		}
		records = append(records, Build(row, i, opts))
	}
	return records
}

var canonicalFields = map[string]bool{
	FieldKey:                true,
	FieldSummary:            true,
	FieldDescription:        true,
	FieldState:              true,
	FieldCountry:            true,
	FieldArea:               true,
	FieldEpic:               true,
	FieldAssignee:           true,
	FieldDevResponsible:     true,
	FieldPriority:           true,
	FieldStartDate:          true,
	FieldEndDate:            true,
	FieldUATStart:           true,
	FieldUATEnd:             true,
	FieldProdDate:           true,
	FieldCreatedDate:        true,
	FieldRegulatoryDate:     true,
	FieldSizing:             true,
	FieldBusinessPriority:   true,
	FieldTechnologyPriority: true,
}

func isCanonical(field string) bool {
	return canonicalFields[field]
}
