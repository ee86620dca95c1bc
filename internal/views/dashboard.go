package views

import (
	"sort"
	"time"

	"gestor/internal/record"
)

// Dashboard is the top-level rollup over the filtered record set.
type Dashboard struct {
	Total      int                     `json:"total"`
	Categories map[record.Category]int `json:"categories"` // seven buckets + otros, zero-filled
	Activos    int                     `json:"activos"`    // neither finalizados nor cancelados

	// UpcomingDue counts unfinished records whose due date falls within the
	// next 14 days.
	UpcomingDue int `json:"upcomingDue"`
}

// BuildDashboard computes the dashboard counts. Every bucket is present in the
// output even when zero, so the partition always sums to Total.
func BuildDashboard(records []record.Record, now time.Time) Dashboard {
	dash := Dashboard{
		Total:      len(records),
		Categories: emptyCategoryCounts(),
	}

	horizon := now.AddDate(0, 0, 14)
	for _, r := range records {
		cat := record.Classify(r.State)
		dash.Categories[cat]++

		if cat != record.CategoryFinalizados && cat != record.CategoryCancelados {
			dash.Activos++
		}

		if cat != record.CategoryFinalizados && r.EndDate != nil &&
			!r.EndDate.Before(now) && !r.EndDate.After(horizon) {
			dash.UpcomingDue++
		}
	}

	return dash
}

func emptyCategoryCounts() map[record.Category]int {
	counts := make(map[record.Category]int, len(record.Categories)+1)
	for _, cat := range record.Categories {
		counts[cat] = 0
	}
	counts[record.CategoryOtros] = 0
	return counts
}

// CountryHealth is one row of the regional matrix.
type CountryHealth struct {
	Country       string                  `json:"country"`
	Name          string                  `json:"name"`
	Total         int                     `json:"total"`
	Categories    map[record.Category]int `json:"categories"`
	CompletionPct int                     `json:"completionPct"`
}

// CountryMatrix breaks the record set down per portfolio country. Countries
// with no records are included with zero counts so the matrix stays stable.
func CountryMatrix(records []record.Record) []CountryHealth {
	matrix := make([]CountryHealth, 0, len(validCountries))
	for _, code := range validCountries {
		row := CountryHealth{
			Country:    code,
			Name:       CountryNames[code],
			Categories: emptyCategoryCounts(),
		}
		for _, r := range records {
			if r.Country != code {
				continue
			}
			row.Total++
			row.Categories[record.Classify(r.State)]++
		}
		if row.Total > 0 {
			row.CompletionPct = roundPct(row.Categories[record.CategoryFinalizados], row.Total)
		}
		matrix = append(matrix, row)
	}
	return matrix
}

// AreaHealth summarizes one responsible area.
type AreaHealth struct {
	Area          string `json:"area"`
	Total         int    `json:"total"`
	Finalizados   int    `json:"finalizados"`
	CompletionPct int    `json:"completionPct"`
}

// AreaBreakdown groups records by area, largest first. Records without an
// area are left out; they have no bucket to report under.
func AreaBreakdown(records []record.Record) []AreaHealth {
	byArea := make(map[string]*AreaHealth)
	for _, r := range records {
		if r.Area == "" {
			continue
		}
		stats, ok := byArea[r.Area]
		if !ok {
			stats = &AreaHealth{Area: r.Area}
			byArea[r.Area] = stats
		}
		stats.Total++
		if record.IsFinalizado(r.State) {
			stats.Finalizados++
		}
	}

	breakdown := make([]AreaHealth, 0, len(byArea))
	for _, stats := range byArea {
		stats.CompletionPct = roundPct(stats.Finalizados, stats.Total)
		breakdown = append(breakdown, *stats)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Total != breakdown[j].Total {
			return breakdown[i].Total > breakdown[j].Total
		}
		return breakdown[i].Area < breakdown[j].Area
	})
	return breakdown
}

func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
