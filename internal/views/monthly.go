package views

import (
	"fmt"
	"time"

	"gestor/internal/record"
)

// MonthBucket reports one calendar month of the completion trend.
type MonthBucket struct {
	Key       string    `json:"key"` // YYYY-MM
	Start     time.Time `json:"start"`
	Completed int       `json:"completed"` // finished items delivered this month
	Active    int       `json:"active"`    // unfinished items whose phases touched this month
}

// BuildMonthlyTrend buckets the filtered set over the last twelve calendar
// months, oldest first. Completions are placed by delivery date; unfinished
// records count as active in every month one of their phase intervals
// intersects, at most once per month each.
func BuildMonthlyTrend(records []record.Record, now time.Time) []MonthBucket {
	months := make([]MonthBucket, 0, 12)
	index := make(map[string]int, 12)
	for i := 11; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month()))
		index[key] = len(months)
		months = append(months, MonthBucket{Key: key, Start: start})
	}

	for _, r := range records {
		if record.IsFinalizado(r.State) {
			done := CompletionDate(r)
			if done == nil {
				continue
			}
			key := fmt.Sprintf("%04d-%02d", done.Year(), int(done.Month()))
			if i, ok := index[key]; ok {
				months[i].Completed++
			}
			continue
		}

		for i := range months {
			if activeDuring(r, months[i].Start) {
				months[i].Active++
			}
		}
	}

	return months
}

// activeDuring reports whether any of the record's phase intervals intersects
// the month starting at monthStart. The checks short-circuit, so a record is
// counted at most once per month.
func activeDuring(r record.Record, monthStart time.Time) bool {
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if r.StartDate != nil && r.EndDate != nil &&
		!r.StartDate.After(monthEnd) && !r.EndDate.Before(monthStart) {
		return true
	}
	if r.UATStart != nil && r.UATEnd != nil &&
		!r.UATStart.After(monthEnd) && !r.UATEnd.Before(monthStart) {
		return true
	}
	if r.ProdDate != nil &&
		!r.ProdDate.Before(monthStart) && !r.ProdDate.After(monthEnd) {
		return true
	}
	return false
}
