package visuals

import (
	"strings"
	"testing"
	"time"

	"gestor/internal/record"
	"gestor/internal/views"
)

func TestGenerateTrendChart(t *testing.T) {
	months := []views.MonthBucket{
		{Key: "2024-01", Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Completed: 3, Active: 5},
		{Key: "2024-02", Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Completed: 1, Active: 4},
	}

	chart := GenerateTrendChart(months)
	if !strings.Contains(chart, "xychart-beta") {
		t.Fatalf("chart = %q", chart)
	}
	if !strings.Contains(chart, "bar [3, 1]") || !strings.Contains(chart, "line [5, 4]") {
		t.Errorf("series missing:\n%s", chart)
	}
	if GenerateTrendChart(nil) != "" {
		t.Error("empty input must produce no chart")
	}
}

func TestGenerateEpicGantt(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	prod := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	timelines := []views.EpicTimeline{{
		Epic:  "Billetera: Fase 1",
		Start: start,
		End:   prod,
		Tickets: []views.TicketTimeline{{
			Key: "PROJ-1",
			Phases: []views.Phase{
				{Name: views.PhaseDev, Start: start, End: end},
				{Name: views.PhaseProd, Start: prod, End: prod},
			},
		}},
	}}

	chart := GenerateEpicGantt(timelines)
	if !strings.Contains(chart, "section Billetera  Fase 1") {
		t.Errorf("section label must be sanitized:\n%s", chart)
	}
	if !strings.Contains(chart, "PROJ-1 DEV : 2024-01-10, 2024-02-01") {
		t.Errorf("dev phase missing:\n%s", chart)
	}
	if !strings.Contains(chart, "milestone, 2024-03-01") {
		t.Errorf("prod pass must render as milestone:\n%s", chart)
	}
}

func TestGenerateCategoryPie(t *testing.T) {
	dashboard := views.Dashboard{
		Total: 3,
		Categories: map[record.Category]int{
			record.CategoryFinalizados: 2,
			record.CategoryEnProceso:   1,
		},
	}
	chart := GenerateCategoryPie(dashboard)
	if !strings.Contains(chart, `"finalizados" : 2`) {
		t.Errorf("chart = %s", chart)
	}
	if strings.Contains(chart, " : 0") {
		t.Error("zero slices must be omitted")
	}
}
