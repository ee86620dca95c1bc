package views

import (
	"sort"
	"time"

	"gestor/internal/record"
)

// Phase names shown on the timeline.
const (
	PhaseDev  = "DEV"
	PhaseUAT  = "UAT"
	PhaseProd = "PROD"
	PhaseReg  = "REG"
)

// Phase is one dated segment of a ticket's life. Point-in-time phases (prod
// pass, regulatory deadline) have Start == End.
type Phase struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TicketTimeline is one ticket's dated phases.
type TicketTimeline struct {
	Key     string  `json:"key"`
	Summary string  `json:"summary"`
	State   string  `json:"state"`
	Phases  []Phase `json:"phases"`
}

// EpicTimeline is the chronological span of one epic and its tickets.
type EpicTimeline struct {
	Epic           string           `json:"epic"`
	Start          time.Time        `json:"start"`
	End            time.Time        `json:"end"`
	TotalItems     int              `json:"totalItems"`
	CompletedItems int              `json:"completedItems"`
	Tickets        []TicketTimeline `json:"tickets"`
}

// TimelineRange is the window the timeline view renders.
type TimelineRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DefaultTimelineRange computes the rendered window: six months back and
// three months forward, or nine months forward from an explicit threshold.
func DefaultTimelineRange(now time.Time, since *time.Time) TimelineRange {
	if since != nil {
		return TimelineRange{Start: *since, End: since.AddDate(0, 9, 0)}
	}
	return TimelineRange{Start: now.AddDate(0, -6, 0), End: now.AddDate(0, 3, 0)}
}

// TicketPhases extracts the dated phase segments of one record.
func TicketPhases(r record.Record) []Phase {
	var phases []Phase
	if r.StartDate != nil && r.EndDate != nil {
		phases = append(phases, Phase{Name: PhaseDev, Start: *r.StartDate, End: *r.EndDate})
	}
	if r.UATStart != nil && r.UATEnd != nil {
		phases = append(phases, Phase{Name: PhaseUAT, Start: *r.UATStart, End: *r.UATEnd})
	}
	if r.ProdDate != nil {
		phases = append(phases, Phase{Name: PhaseProd, Start: *r.ProdDate, End: *r.ProdDate})
	}
	if r.RegulatoryDate != nil {
		phases = append(phases, Phase{Name: PhaseReg, Start: *r.RegulatoryDate, End: *r.RegulatoryDate})
	}
	return phases
}

// BuildEpicTimeline groups dated records by valid epic and computes each
// epic's overall span, earliest first. Records without any date are left out;
// they have no position on a timeline.
func BuildEpicTimeline(records []record.Record) []EpicTimeline {
	byEpic := make(map[string]*EpicTimeline)

	for _, r := range records {
		if !IsValidEpic(r.Epic) {
			continue
		}

		dates := recordDates(r)
		if len(dates) == 0 {
			continue
		}

		timeline, ok := byEpic[r.Epic]
		if !ok {
			timeline = &EpicTimeline{Epic: r.Epic, Start: dates[0], End: dates[0]}
			byEpic[r.Epic] = timeline
		}

		timeline.TotalItems++
		if record.IsFinalizado(r.State) {
			timeline.CompletedItems++
		}
		for _, d := range dates {
			if d.Before(timeline.Start) {
				timeline.Start = d
			}
			if d.After(timeline.End) {
				timeline.End = d
			}
		}

		timeline.Tickets = append(timeline.Tickets, TicketTimeline{
			Key:     r.Key,
			Summary: r.Summary,
			State:   r.State,
			Phases:  TicketPhases(r),
		})
	}

	timelines := make([]EpicTimeline, 0, len(byEpic))
	for _, timeline := range byEpic {
		timelines = append(timelines, *timeline)
	}
	sort.Slice(timelines, func(i, j int) bool {
		if !timelines[i].Start.Equal(timelines[j].Start) {
			return timelines[i].Start.Before(timelines[j].Start)
		}
		return timelines[i].Epic < timelines[j].Epic
	})
	return timelines
}

func recordDates(r record.Record) []time.Time {
	var dates []time.Time
	for _, d := range []*time.Time{r.StartDate, r.EndDate, r.UATStart, r.UATEnd, r.ProdDate, r.RegulatoryDate} {
		if d != nil {
			dates = append(dates, *d)
		}
	}
	return dates
}
