package views

import (
	"testing"
	"time"

	"gestor/internal/record"
)

func TestDefaultTimelineRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	r := DefaultTimelineRange(now, nil)
	if !r.Start.Equal(now.AddDate(0, -6, 0)) || !r.End.Equal(now.AddDate(0, 3, 0)) {
		t.Errorf("default range = %v..%v", r.Start, r.End)
	}

	since := date(2024, 1, 1)
	r = DefaultTimelineRange(now, since)
	if !r.Start.Equal(*since) || !r.End.Equal(since.AddDate(0, 9, 0)) {
		t.Errorf("explicit range = %v..%v", r.Start, r.End)
	}
}

func TestTicketPhases(t *testing.T) {
	r := record.Record{
		Key:       "P-1",
		StartDate: date(2024, 1, 1), EndDate: date(2024, 2, 1),
		UATStart: date(2024, 2, 5), UATEnd: date(2024, 2, 15),
		ProdDate: date(2024, 3, 1),
	}
	phases := TicketPhases(r)
	if len(phases) != 3 {
		t.Fatalf("phases = %+v", phases)
	}
	if phases[0].Name != PhaseDev || phases[1].Name != PhaseUAT || phases[2].Name != PhaseProd {
		t.Errorf("phase order = %+v", phases)
	}
	if !phases[2].Start.Equal(phases[2].End) {
		t.Error("prod pass is a point-in-time phase")
	}

	// A lone start date without an end does not form a dev phase.
	partial := record.Record{Key: "P-2", StartDate: date(2024, 1, 1), RegulatoryDate: date(2024, 6, 1)}
	phases = TicketPhases(partial)
	if len(phases) != 1 || phases[0].Name != PhaseReg {
		t.Errorf("partial phases = %+v", phases)
	}
}

func TestBuildEpicTimeline(t *testing.T) {
	records := []record.Record{
		{Key: "P-1", State: "DONE", Epic: "Billetera Digital", StartDate: date(2024, 1, 10), EndDate: date(2024, 2, 1)},
		{Key: "P-2", State: "DEV", Epic: "Billetera Digital", ProdDate: date(2024, 4, 1)},
		{Key: "P-3", State: "DEV", Epic: "Billetera Digital"}, // undated, skipped
		{Key: "P-4", State: "UAT", Epic: "Migración Core", StartDate: date(2023, 11, 1), EndDate: date(2023, 12, 15)},
		{Key: "P-5", State: "DEV", Epic: "123", StartDate: date(2023, 1, 1), EndDate: date(2023, 2, 1)}, // invalid epic
	}

	timelines := BuildEpicTimeline(records)
	if len(timelines) != 2 {
		t.Fatalf("epics = %d, want 2", len(timelines))
	}

	// Earliest start first.
	if timelines[0].Epic != "Migración Core" {
		t.Errorf("first epic = %q", timelines[0].Epic)
	}

	billetera := timelines[1]
	if billetera.TotalItems != 2 || billetera.CompletedItems != 1 {
		t.Errorf("billetera counts = %+v", billetera)
	}
	if !billetera.Start.Equal(*date(2024, 1, 10)) || !billetera.End.Equal(*date(2024, 4, 1)) {
		t.Errorf("billetera span = %v..%v", billetera.Start, billetera.End)
	}
	if len(billetera.Tickets) != 2 {
		t.Errorf("tickets = %d, want 2 (undated ticket excluded)", len(billetera.Tickets))
	}
}
