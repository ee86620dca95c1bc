package views

import (
	"math"
	"time"

	"gestor/internal/record"
)

// Prediction methods.
const (
	MethodSimilarProjects = "similar_projects"
	MethodSizingBaseline  = "sizing_baseline"
)

// Prediction is a deterministic completion estimate for one record.
type Prediction struct {
	PredictedEnd   *time.Time `json:"predictedEnd,omitempty"`
	AvgDuration    int        `json:"avgDurationDays"`
	Variance       int        `json:"varianceDays"`
	Confidence     int        `json:"confidence"` // 0-100
	BasedOn        int        `json:"basedOn"`    // matched history size, 0 for baseline
	Method         string     `json:"method"`
	NeedsStartDate bool       `json:"needsStartDate,omitempty"`
}

// sizingBaselines are fallback durations in days per sizing bucket.
var sizingBaselines = map[string]struct {
	Avg      int
	Variance int
}{
	"XS": {Avg: 7, Variance: 3},
	"S":  {Avg: 14, Variance: 5},
	"M":  {Avg: 21, Variance: 7},
	"L":  {Avg: 35, Variance: 10},
	"XL": {Avg: 56, Variance: 15},
}

// PredictCompletion estimates when a record will finish. It averages the dev
// durations of completed records with the same sizing and country; with fewer
// than three matches it falls back to the sizing baseline table. Purely
// rule-based: the same inputs always give the same estimate.
func PredictCompletion(r record.Record, history []record.Record) Prediction {
	var durations []float64
	for _, h := range history {
		if h.Sizing != r.Sizing || h.Country != r.Country {
			continue
		}
		if !record.IsFinalizado(h.State) || h.StartDate == nil || h.EndDate == nil {
			continue
		}
		days := h.EndDate.Sub(*h.StartDate).Hours() / 24
		if days > 0 {
			durations = append(durations, days)
		}
	}

	if len(durations) < 3 {
		return predictBySizing(r)
	}

	var sum float64
	for _, d := range durations {
		sum += d
	}
	avg := sum / float64(len(durations))

	var sqDiff float64
	for _, d := range durations {
		sqDiff += (d - avg) * (d - avg)
	}
	stdDev := math.Sqrt(sqDiff / float64(len(durations)))

	confidence := len(durations) * 15
	if confidence > 90 {
		confidence = 90
	}

	p := Prediction{
		AvgDuration: int(math.Round(avg)),
		Variance:    int(math.Round(stdDev)),
		Confidence:  confidence,
		BasedOn:     len(durations),
		Method:      MethodSimilarProjects,
	}
	if r.StartDate == nil {
		p.NeedsStartDate = true
		return p
	}

	end := r.StartDate.Add(time.Duration(avg*24) * time.Hour)
	p.PredictedEnd = &end
	return p
}

func predictBySizing(r record.Record) Prediction {
	baseline, ok := sizingBaselines[r.Sizing]
	if !ok {
		baseline = sizingBaselines["M"]
	}

	p := Prediction{
		AvgDuration: baseline.Avg,
		Variance:    baseline.Variance,
		Confidence:  60,
		Method:      MethodSizingBaseline,
	}
	if r.StartDate == nil {
		p.NeedsStartDate = true
		return p
	}

	end := r.StartDate.AddDate(0, 0, baseline.Avg)
	p.PredictedEnd = &end
	return p
}
