package views

import (
	"testing"
	"time"

	"gestor/internal/record"
)

func TestBuildMonthlyTrendWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	months := BuildMonthlyTrend(nil, now)

	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[0].Key != "2023-04" {
		t.Errorf("oldest month = %q, want 2023-04", months[0].Key)
	}
	if months[11].Key != "2024-03" {
		t.Errorf("newest month = %q, want 2024-03", months[11].Key)
	}
}

func TestBuildMonthlyTrendCompletions(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []record.Record{
		// Delivery date wins over UAT end for placement.
		{Key: "P-1", State: "DONE", ProdDate: date(2024, 1, 10), UATEnd: date(2023, 12, 20)},
		{Key: "P-2", State: "Cerrado", UATEnd: date(2024, 1, 25)},
		{Key: "P-3", State: "DONE"},                             // no completion date, skipped
		{Key: "P-4", State: "DONE", ProdDate: date(2022, 5, 1)}, // outside the window
	}

	months := BuildMonthlyTrend(records, now)
	byKey := make(map[string]MonthBucket)
	for _, m := range months {
		byKey[m.Key] = m
	}

	if byKey["2024-01"].Completed != 2 {
		t.Errorf("2024-01 completed = %d, want 2", byKey["2024-01"].Completed)
	}
	if byKey["2023-12"].Completed != 0 {
		t.Errorf("2023-12 completed = %d, want 0 (prod date wins)", byKey["2023-12"].Completed)
	}
}

func TestBuildMonthlyTrendActive(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []record.Record{
		// Dev spans Jan-Feb, UAT overlaps Feb: Feb must count it once only.
		{
			Key: "P-1", State: "DEV",
			StartDate: date(2024, 1, 10), EndDate: date(2024, 2, 20),
			UATStart: date(2024, 2, 15), UATEnd: date(2024, 2, 28),
		},
	}

	months := BuildMonthlyTrend(records, now)
	byKey := make(map[string]MonthBucket)
	for _, m := range months {
		byKey[m.Key] = m
	}

	if byKey["2024-01"].Active != 1 {
		t.Errorf("2024-01 active = %d, want 1", byKey["2024-01"].Active)
	}
	if byKey["2024-02"].Active != 1 {
		t.Errorf("2024-02 active = %d, want 1 (no double counting)", byKey["2024-02"].Active)
	}
	if byKey["2024-03"].Active != 0 {
		t.Errorf("2024-03 active = %d, want 0", byKey["2024-03"].Active)
	}
}

func TestActiveDuringProdOnly(t *testing.T) {
	monthStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	r := record.Record{Key: "P-1", State: "UAT", ProdDate: date(2024, 2, 10)}
	if !activeDuring(r, monthStart) {
		t.Error("prod date inside the month must count as active")
	}
	r.ProdDate = date(2024, 3, 1)
	if activeDuring(r, monthStart) {
		t.Error("prod date outside the month must not count")
	}
}
