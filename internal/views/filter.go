package views

import (
	"sort"
	"time"

	"gestor/internal/record"
)

// Lifecycle filter modes.
const (
	LifecycleFinalizados = "finalizados"
	LifecycleActivos     = "activos"
)

// FilterSet defines the active view over the canonical record set. It is a
// value object: a user change produces a whole new FilterSet.
type FilterSet struct {
	Country   string `json:"country,omitempty"`
	Epic      string `json:"epic,omitempty"`
	Area      string `json:"area,omitempty"`
	Lifecycle string `json:"lifecycle,omitempty"` // "", "finalizados" or "activos"

	CompletedSince *time.Time `json:"completedSince,omitempty"`
	TimelineSince  *time.Time `json:"timelineSince,omitempty"`
}

// CompletionDate resolves the date a finished record was actually delivered:
// production pass, else UAT end, else due date. Nil when none is set.
func CompletionDate(r record.Record) *time.Time {
	if r.ProdDate != nil {
		return r.ProdDate
	}
	if r.UATEnd != nil {
		return r.UATEnd
	}
	return r.EndDate
}

// Apply evaluates the filter predicates over the record set, AND-combined.
// It preserves input order and is idempotent for an unchanged FilterSet.
func Apply(records []record.Record, f FilterSet) []record.Record {
	filtered := make([]record.Record, 0, len(records))
	for _, r := range records {
		if matches(r, f) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matches(r record.Record, f FilterSet) bool {
	if f.Country != "" && r.Country != f.Country {
		return false
	}
	if f.Epic != "" && r.Epic != f.Epic {
		return false
	}
	if f.Area != "" && r.Area != f.Area {
		return false
	}

	cat := record.Classify(r.State)

	switch f.Lifecycle {
	case LifecycleFinalizados:
		if cat != record.CategoryFinalizados {
			return false
		}
	case LifecycleActivos:
		if !record.IsActive(r.State) {
			return false
		}
	}

	// CompletedSince only prunes which finished items show; active items pass
	// through regardless of their dates.
	if f.CompletedSince != nil && cat == record.CategoryFinalizados {
		done := CompletionDate(r)
		if done == nil || done.Before(*f.CompletedSince) {
			return false
		}
	}

	if f.TimelineSince != nil && !touchesTimeline(r, *f.TimelineSince) {
		return false
	}

	return true
}

func touchesTimeline(r record.Record, since time.Time) bool {
	for _, d := range []*time.Time{r.StartDate, r.EndDate, r.UATStart, r.UATEnd, r.ProdDate, r.CreatedDate} {
		if d != nil && !d.Before(since) {
			return true
		}
	}
	return false
}

// validCountries are the portfolio's country codes; anything else in the
// country column is treated as noise by the filter options.
var validCountries = []string{"GT", "RG", "CR", "SV", "MX", "AK", "PX"}

// CountryNames maps portfolio country codes to display names.
var CountryNames = map[string]string{
	"GT": "Guatemala",
	"RG": "Regional",
	"CR": "Costa Rica",
	"SV": "El Salvador",
	"MX": "México",
	"AK": "Akros",
	"PX": "PEX",
}

// Options lists the distinct values available for each filter dropdown.
type Options struct {
	Countries []string `json:"countries"`
	Areas     []string `json:"areas"`
	Epics     []string `json:"epics"`
}

// FilterOptions derives the selectable filter values from the full record set.
// Epics are narrowed to the active area when one is selected, matching how the
// epic dropdown cascades from the area dropdown.
func FilterOptions(records []record.Record, activeArea string) Options {
	known := make(map[string]bool, len(validCountries))
	for _, c := range validCountries {
		known[c] = true
	}

	countries := make(map[string]bool)
	areas := make(map[string]bool)
	epics := make(map[string]bool)

	for _, r := range records {
		if known[r.Country] {
			countries[r.Country] = true
		}
		if r.Area != "" && !record.IsSentinel(r.Area) {
			areas[r.Area] = true
		}
		if activeArea != "" && r.Area != activeArea {
			continue
		}
		if IsValidEpic(r.Epic) {
			epics[r.Epic] = true
		}
	}

	return Options{
		Countries: sortedKeys(countries),
		Areas:     sortedKeys(areas),
		Epics:     sortedKeys(epics),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
