package views

import (
	"fmt"
	"time"

	"gestor/internal/record"
)

// RiskFlag marks one risk condition on an active record.
type RiskFlag string

const (
	RiskOverdue      RiskFlag = "overdue"
	RiskDueSoon      RiskFlag = "dueSoon"
	RiskUnassigned   RiskFlag = "unassigned"
	RiskHighPriority RiskFlag = "highPriority"
	RiskNoDueDate    RiskFlag = "noDueDate"
)

// highPriorities are the priority labels that raise the highPriority flag.
var highPriorities = map[string]bool{
	"Highest":  true,
	"High":     true,
	"Alta":     true,
	"Critical": true,
}

// FlaggedRecord is one active record together with its risk flags.
type FlaggedRecord struct {
	Key      string     `json:"key"`
	Summary  string     `json:"summary"`
	State    string     `json:"state"`
	Country  string     `json:"country,omitempty"`
	Assignee string     `json:"assignee,omitempty"`
	Priority string     `json:"priority,omitempty"`
	EndDate  *time.Time `json:"endDate,omitempty"`
	Flags    []RiskFlag `json:"flags"`
}

// RiskSummary aggregates risk conditions over the active portion of the
// filtered set. Finished records are excluded from every computation here.
type RiskSummary struct {
	Active       int     `json:"active"`
	Overdue      int     `json:"overdue"`
	DueSoon      int     `json:"dueSoon"`
	Unassigned   int     `json:"unassigned"`
	HighPriority int     `json:"highPriority"`
	NoDueDate    int     `json:"noDueDate"`
	Ratio        float64 `json:"ratio"` // (overdue + dueSoon) / active

	Flagged []FlaggedRecord `json:"flagged"`
}

// BuildRiskSummary flags every active record's risk conditions. A record may
// carry several flags at once; records without flags are not listed.
func BuildRiskSummary(records []record.Record, now time.Time) RiskSummary {
	var summary RiskSummary
	soon := now.AddDate(0, 0, 7)

	for _, r := range records {
		if record.IsFinalizado(r.State) {
			continue
		}
		summary.Active++

		var flags []RiskFlag
		if r.EndDate != nil && r.EndDate.Before(now) {
			flags = append(flags, RiskOverdue)
			summary.Overdue++
		}
		if r.EndDate != nil && r.EndDate.After(now) && !r.EndDate.After(soon) {
			flags = append(flags, RiskDueSoon)
			summary.DueSoon++
		}
		if r.Assignee == "" && r.DevResponsible == "" {
			flags = append(flags, RiskUnassigned)
			summary.Unassigned++
		}
		if highPriorities[r.Priority] {
			flags = append(flags, RiskHighPriority)
			summary.HighPriority++
		}
		if r.EndDate == nil {
			flags = append(flags, RiskNoDueDate)
			summary.NoDueDate++
		}

		if len(flags) > 0 {
			summary.Flagged = append(summary.Flagged, FlaggedRecord{
				Key:      r.Key,
				Summary:  r.Summary,
				State:    r.State,
				Country:  r.Country,
				Assignee: r.Assignee,
				Priority: r.Priority,
				EndDate:  r.EndDate,
				Flags:    flags,
			})
		}
	}

	if summary.Active > 0 {
		summary.Ratio = float64(summary.Overdue+summary.DueSoon) / float64(summary.Active)
	}

	return summary
}

// RiskFactor is one scored condition in a per-record risk profile.
type RiskFactor struct {
	Factor      string `json:"factor"`
	Score       int    `json:"score"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// RiskProfile is the deterministic rule-based risk assessment for one record.
type RiskProfile struct {
	Key             string       `json:"key"`
	Score           int          `json:"score"` // capped at 100
	Level           string       `json:"level"` // low, medium, high, critical
	Factors         []RiskFactor `json:"factors"`
	Recommendations []string     `json:"recommendations"`
}

var riskRecommendations = map[string]string{
	"sin asignar":          "Asignar inmediatamente a un recurso disponible",
	"proyecto atrasado":    "Revisar scope y considerar re-priorización urgente",
	"deadline próximo":     "Aumentar foco y recursos en este proyecto",
	"proyecto complejo":    "Considerar dividir en fases más pequeñas",
	"recurso sobrecargado": "Redistribuir carga de trabajo",
}

// ProfileRisk scores one record against the portfolio using fixed heuristic
// rules: missing ownership, schedule slippage, sizing complexity and resource
// overload. It is deterministic; there is no trained model behind it.
func ProfileRisk(r record.Record, all []record.Record, now time.Time) RiskProfile {
	profile := RiskProfile{Key: r.Key}

	addFactor := func(factor string, score int, level, description string) {
		profile.Factors = append(profile.Factors, RiskFactor{
			Factor:      factor,
			Score:       score,
			Level:       level,
			Description: description,
		})
		profile.Score += score
	}

	if r.Assignee == "" && r.DevResponsible == "" {
		addFactor("sin asignar", 30, "high", "Proyecto sin ownership definido")
	}

	if r.EndDate != nil {
		daysToDeadline := int(r.EndDate.Sub(now).Hours() / 24)
		if r.EndDate.Before(now) {
			addFactor("proyecto atrasado", 40, "critical",
				fmt.Sprintf("%d días de retraso", -daysToDeadline))
		} else if daysToDeadline < 7 && !record.IsFinalizado(r.State) {
			addFactor("deadline próximo", 25, "high",
				fmt.Sprintf("Solo %d días para completar", daysToDeadline))
		}
	}

	switch r.Sizing {
	case "XL":
		addFactor("proyecto complejo", 20, "medium", "Proyectos XL tienen mayor riesgo de problemas")
	case "L":
		addFactor("proyecto complejo", 15, "medium", "Proyectos L tienen mayor riesgo de problemas")
	}

	if owner, _, ok := assignedResource(r); ok {
		load := 0
		for _, other := range all {
			if other.Assignee != owner && other.DevResponsible != owner {
				continue
			}
			cat := record.Classify(other.State)
			if cat != record.CategoryFinalizados && cat != record.CategoryCancelados {
				load++
			}
		}
		if load > 5 {
			addFactor("recurso sobrecargado", 20, "medium",
				fmt.Sprintf("%s tiene %d proyectos activos", owner, load))
		}
	}

	if profile.Score > 100 {
		profile.Score = 100
	}
	switch {
	case profile.Score > 60:
		profile.Level = "critical"
	case profile.Score > 35:
		profile.Level = "high"
	case profile.Score > 15:
		profile.Level = "medium"
	default:
		profile.Level = "low"
	}

	for _, f := range profile.Factors {
		if rec, ok := riskRecommendations[f.Factor]; ok {
			profile.Recommendations = append(profile.Recommendations, rec)
		}
	}
	if len(profile.Recommendations) == 0 {
		profile.Recommendations = append(profile.Recommendations, "Proyecto en buen estado, continuar seguimiento regular")
	}

	return profile
}
