package views

import (
	"math"
	"regexp"
	"sort"

	"gestor/internal/record"
)

// Health score weights: delivered work dominates, in-flight work counts for
// less, work waiting on approval counts least.
const (
	healthWeightFinalizados  = 0.60
	healthWeightEnProceso    = 0.30
	healthWeightEnAprobacion = 0.15
)

var (
	purelyNumeric = regexp.MustCompile(`^\d+$`)
	dateShaped    = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// IsValidEpic reports whether a value is a usable epic label. Short strings,
// bare numbers and date-shaped values are spreadsheet formula leakage, not
// workstream names.
func IsValidEpic(epic string) bool {
	if epic == "" || record.IsSentinel(epic) || epic == "Sin épica" {
		return false
	}
	if len([]rune(epic)) < 3 {
		return false
	}
	if purelyNumeric.MatchString(epic) {
		return false
	}
	if dateShaped.MatchString(epic) {
		return false
	}
	return true
}

// EpicRollup aggregates one epic's records and its 0-100 health score.
type EpicRollup struct {
	Epic        string                  `json:"epic"`
	Total       int                     `json:"total"`
	Categories  map[record.Category]int `json:"categories"`
	HealthScore int                     `json:"healthScore"`
	Keys        []string                `json:"keys"`
}

// BuildEpicRollups groups records by valid epic and scores each group,
// largest epic first.
func BuildEpicRollups(records []record.Record) []EpicRollup {
	byEpic := make(map[string]*EpicRollup)
	for _, r := range records {
		if !IsValidEpic(r.Epic) {
			continue
		}
		rollup, ok := byEpic[r.Epic]
		if !ok {
			rollup = &EpicRollup{Epic: r.Epic, Categories: emptyCategoryCounts()}
			byEpic[r.Epic] = rollup
		}
		rollup.Total++
		rollup.Categories[record.Classify(r.State)]++
		rollup.Keys = append(rollup.Keys, r.Key)
	}

	rollups := make([]EpicRollup, 0, len(byEpic))
	for _, rollup := range byEpic {
		rollup.HealthScore = healthScore(
			rollup.Categories[record.CategoryFinalizados],
			rollup.Categories[record.CategoryEnProceso],
			rollup.Categories[record.CategoryEnAprobacion],
			rollup.Total,
		)
		rollups = append(rollups, *rollup)
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Total != rollups[j].Total {
			return rollups[i].Total > rollups[j].Total
		}
		return rollups[i].Epic < rollups[j].Epic
	})
	return rollups
}

// healthScore computes the weighted completion ratio scaled to 0-100.
func healthScore(finalizados, enProceso, enAprobacion, total int) int {
	if total == 0 {
		return 0
	}
	ratio := healthWeightFinalizados*float64(finalizados)/float64(total) +
		healthWeightEnProceso*float64(enProceso)/float64(total) +
		healthWeightEnAprobacion*float64(enAprobacion)/float64(total)

	score := math.Round(math.Max(0, math.Min(1, ratio)) * 100)
	return int(score)
}
