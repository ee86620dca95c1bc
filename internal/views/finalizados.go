package views

import (
	"sort"
	"time"

	"gestor/internal/record"
)

// FinalizadoRecord is one delivered item in the completions listing.
type FinalizadoRecord struct {
	Key         string     `json:"key"`
	Summary     string     `json:"summary"`
	State       string     `json:"state"`
	Country     string     `json:"country,omitempty"`
	Epic        string     `json:"epic,omitempty"`
	Area        string     `json:"area,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// BuildFinalizados lists the delivered records, most recent delivery first.
// Records without any completion date sort last, keyed alphabetically.
func BuildFinalizados(records []record.Record) []FinalizadoRecord {
	listing := make([]FinalizadoRecord, 0, len(records))
	for _, r := range records {
		if !record.IsFinalizado(r.State) {
			continue
		}
		listing = append(listing, FinalizadoRecord{
			Key:         r.Key,
			Summary:     r.Summary,
			State:       r.State,
			Country:     r.Country,
			Epic:        r.Epic,
			Area:        r.Area,
			CompletedAt: CompletionDate(r),
		})
	}

	sort.Slice(listing, func(i, j int) bool {
		a, b := listing[i].CompletedAt, listing[j].CompletedAt
		switch {
		case a == nil && b == nil:
			return listing[i].Key < listing[j].Key
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.After(*b)
		}
		return listing[i].Key < listing[j].Key
	})
	return listing
}
