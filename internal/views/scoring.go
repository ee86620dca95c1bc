package views

import (
	"math"
	"sort"
	"time"

	"gestor/internal/record"
)

// priorityWeights feeds the simple prioritization score. Labels absent from
// the table score the Medium default.
var priorityWeights = map[string]int{
	"Critical": 40,
	"Highest":  30,
	"High":     20,
	"Alta":     20,
	"Medium":   10,
	"Low":      5,
	"Baja":     5,
}

const defaultPriorityWeight = 10

// ScoredRecord is one row of the general prioritization ranking.
type ScoredRecord struct {
	Key      string     `json:"key"`
	Summary  string     `json:"summary"`
	State    string     `json:"state"`
	Epic     string     `json:"epic,omitempty"`
	Area     string     `json:"area,omitempty"`
	Priority string     `json:"priority,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Score    int        `json:"score"`
}

// BuildPriorityRanking scores every record that is neither finished nor
// cancelled and ranks them descending. The score rewards explicit priority,
// schedule urgency and work that has not started yet.
func BuildPriorityRanking(records []record.Record, now time.Time) []ScoredRecord {
	ranking := make([]ScoredRecord, 0, len(records))
	for _, r := range records {
		cat := record.Classify(r.State)
		if cat == record.CategoryFinalizados || cat == record.CategoryCancelados {
			continue
		}

		weight, ok := priorityWeights[r.Priority]
		if !ok {
			weight = defaultPriorityWeight
		}

		due := nearestDueDate(r)
		urgency := 0
		if due == nil {
			urgency = 5
		} else {
			days := int(math.Round(due.Sub(now).Hours() / 24))
			switch {
			case days <= 0:
				urgency = 30
			case days <= 7:
				urgency = 20
			case days <= 14:
				urgency = 10
			}
		}

		startPenalty := 15
		if r.StartDate != nil {
			startPenalty = 5
		}

		ranking = append(ranking, ScoredRecord{
			Key:      r.Key,
			Summary:  r.Summary,
			State:    r.State,
			Epic:     r.Epic,
			Area:     r.Area,
			Priority: r.Priority,
			DueDate:  due,
			Score:    weight + urgency + startPenalty,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}

func nearestDueDate(r record.Record) *time.Time {
	if r.EndDate != nil {
		return r.EndDate
	}
	if r.ProdDate != nil {
		return r.ProdDate
	}
	return r.UATEnd
}

// ScoringConfig holds the weighted multi-factor scoring model: four factor
// weights plus a static category-to-points lookup per factor. Unmapped
// categories score zero.
type ScoringConfig struct {
	BusinessWeight   float64
	TechnologyWeight float64
	SizingWeight     float64
	StateWeight      float64

	BusinessValues   map[string]float64
	TechnologyValues map[string]float64
	SizingValues     map[string]float64
	StateValues      map[string]float64
}

// DefaultScoringConfig is the portfolio's standing valuation model.
var DefaultScoringConfig = ScoringConfig{
	BusinessWeight:   0.40,
	TechnologyWeight: 0.25,
	SizingWeight:     0.20,
	StateWeight:      0.15,

	BusinessValues: map[string]float64{
		"1. Riesgo/Regulatorio":                         100,
		"2. Aumento de ingresos":                        80,
		"3. Mejora de servicio (percibido por cliente)": 60,
		"4. Reducción de gasto":                         40,
		"5. Mejora tecnológica":                         20,
	},
	TechnologyValues: map[string]float64{
		"1. Regulatorio":    100,
		"4. Ciberseguridad": 90,
		"2. Nuevo Feature":  60,
		"5. Soporte Nivel 2 (Escalación de soporte a Desarrollo)": 40,
		"3. Refactor": 20,
	},
	SizingValues: map[string]float64{
		"XS": 100,
		"S":  80,
		"M":  60,
		"L":  30,
		"XL": 10,
	},
	StateValues: map[string]float64{
		"PRIORIZAR":                 100,
		"ANALISIS":                  90,
		"APROBACION DISEÑO TECNICO": 70,
		"SOLUTIONS":                 60,
		"DEV":                       50,
		"UAT":                       40,
		"Pase Produccion":           20,
	},
}

// weightedExcludedStates lists the states the dedicated scoring view skips:
// work already in build, UAT or production, and terminal states. Scoring
// targets backlog-stage work, not work in flight.
var weightedExcludedStates = map[string]bool{
	"DEV":                       true,
	"UAT":                       true,
	"ANALISIS":                  true,
	"Pase Produccion":           true,
	"DONE":                      true,
	"Completado":                true,
	"Finalizada":                true,
	"Completada":                true,
	"En curso":                  true,
	"En pausa":                  true,
	"En planificacion-analisis": true,
	"En implementación":         true,
	"En Planificación":          true,
	"Cancelada":                 true,
	"Analizada - Descartada":    true,
	"Duplicada":                 true,
}

// EligibleForWeighted reports whether a record belongs in the weighted
// scoring view.
func EligibleForWeighted(r record.Record) bool {
	return r.State != "" && !weightedExcludedStates[r.State]
}

// WeightedScore computes the multi-factor score for one record, rounded to
// the nearest integer.
func WeightedScore(r record.Record, cfg ScoringConfig) int {
	sum := cfg.BusinessValues[r.BusinessPriority]*cfg.BusinessWeight +
		cfg.TechnologyValues[r.TechnologyPriority]*cfg.TechnologyWeight +
		cfg.SizingValues[r.Sizing]*cfg.SizingWeight +
		cfg.StateValues[r.State]*cfg.StateWeight
	return int(math.Round(sum))
}

// FactorScore details one factor's contribution to a weighted score.
type FactorScore struct {
	Raw        float64 `json:"raw"`
	Weighted   float64 `json:"weighted"`
	Percentage float64 `json:"percentage"`
}

// ScoreBreakdown itemizes a record's weighted score by factor.
type ScoreBreakdown struct {
	Business   FactorScore `json:"business"`
	Technology FactorScore `json:"technology"`
	Sizing     FactorScore `json:"sizing"`
	State      FactorScore `json:"state"`
	Total      int         `json:"total"`
}

// BreakdownScore itemizes the weighted score for one record.
func BreakdownScore(r record.Record, cfg ScoringConfig) ScoreBreakdown {
	business := cfg.BusinessValues[r.BusinessPriority]
	technology := cfg.TechnologyValues[r.TechnologyPriority]
	sizing := cfg.SizingValues[r.Sizing]
	state := cfg.StateValues[r.State]

	return ScoreBreakdown{
		Business:   FactorScore{Raw: business, Weighted: business * cfg.BusinessWeight, Percentage: cfg.BusinessWeight * 100},
		Technology: FactorScore{Raw: technology, Weighted: technology * cfg.TechnologyWeight, Percentage: cfg.TechnologyWeight * 100},
		Sizing:     FactorScore{Raw: sizing, Weighted: sizing * cfg.SizingWeight, Percentage: cfg.SizingWeight * 100},
		State:      FactorScore{Raw: state, Weighted: state * cfg.StateWeight, Percentage: cfg.StateWeight * 100},
		Total:      WeightedScore(r, cfg),
	}
}

// WeightedScoredRecord is one row of the weighted scoring ranked view.
type WeightedScoredRecord struct {
	Key       string         `json:"key"`
	Summary   string         `json:"summary"`
	State     string         `json:"state"`
	Epic      string         `json:"epic,omitempty"`
	Sizing    string         `json:"sizing,omitempty"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// BuildWeightedRanking scores eligible backlog-stage records and ranks them
// descending.
func BuildWeightedRanking(records []record.Record, cfg ScoringConfig) []WeightedScoredRecord {
	ranking := make([]WeightedScoredRecord, 0, len(records))
	for _, r := range records {
		if !EligibleForWeighted(r) {
			continue
		}
		warnings, _ := ValidateScoringData(r)
		ranking = append(ranking, WeightedScoredRecord{
			Key:       r.Key,
			Summary:   r.Summary,
			State:     r.State,
			Epic:      r.Epic,
			Sizing:    r.Sizing,
			Score:     WeightedScore(r, cfg),
			Breakdown: BreakdownScore(r, cfg),
			Warnings:  warnings,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}

// ValidateScoringData reports data-quality findings for a record's scoring
// inputs. Missing valuations are warnings; a missing state is an error since
// the state factor anchors the model.
func ValidateScoringData(r record.Record) (warnings, errs []string) {
	if r.BusinessPriority == "" {
		warnings = append(warnings, "Valoración de prioridad de negocio faltante")
	}
	if r.TechnologyPriority == "" {
		warnings = append(warnings, "Valoración de prioridad tecnológica faltante")
	}
	if r.Sizing == "" {
		warnings = append(warnings, "Sizing faltante")
	}
	if r.State == "" {
		errs = append(errs, "Estado requerido para scoring")
	}
	return warnings, errs
}
