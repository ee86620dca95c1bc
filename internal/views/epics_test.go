package views

import (
	"testing"

	"gestor/internal/record"
)

func TestIsValidEpic(t *testing.T) {
	cases := []struct {
		epic string
		want bool
	}{
		{"Billetera Digital", true},
		{"", false},
		{"#N/A", false},
		{"Sin épica", false},
		{"ab", false},         // too short
		{"12345", false},      // purely numeric
		{"15/03/2024", false}, // date leakage
		{"Migración Core", true},
	}
	for _, c := range cases {
		if got := IsValidEpic(c.epic); got != c.want {
			t.Errorf("IsValidEpic(%q) = %v, want %v", c.epic, got, c.want)
		}
	}
}

func TestHealthScoreBoundaries(t *testing.T) {
	// An epic with no records in the three weighted buckets scores 0; a fully
	// delivered epic tops out at the finished-work weight.
	if got := healthScore(0, 0, 0, 5); got != 0 {
		t.Errorf("all-idle epic score = %d, want 0", got)
	}
	if got := healthScore(5, 0, 0, 5); got != 60 {
		t.Errorf("all-finished epic score = %d, want 60", got)
	}
	// Weighted mix: 2/4 finished, 1/4 in process, 1/4 in approval.
	// 0.60*0.5 + 0.30*0.25 + 0.15*0.25 = 0.4125 -> 41
	if got := healthScore(2, 1, 1, 4); got != 41 {
		t.Errorf("mixed epic score = %d, want 41", got)
	}
	if got := healthScore(0, 0, 0, 0); got != 0 {
		t.Errorf("empty epic score = %d, want 0", got)
	}
}

func TestBuildEpicRollups(t *testing.T) {
	records := []record.Record{
		{Key: "P-1", State: "DONE", Epic: "Billetera Digital"},
		{Key: "P-2", State: "DEV", Epic: "Billetera Digital"},
		{Key: "P-3", State: "FooBarState", Epic: "Billetera Digital"},
		{Key: "P-4", State: "DONE", Epic: "Migración Core"},
		{Key: "P-5", State: "DONE", Epic: "123"}, // invalid epic, skipped
	}

	rollups := BuildEpicRollups(records)
	if len(rollups) != 2 {
		t.Fatalf("expected 2 epics, got %d", len(rollups))
	}

	first := rollups[0]
	if first.Epic != "Billetera Digital" || first.Total != 3 {
		t.Errorf("first rollup = %+v", first)
	}
	if first.Categories[record.CategoryOtros] != 1 {
		t.Errorf("uncategorized state must be counted, got %d", first.Categories[record.CategoryOtros])
	}
	// 0.60*(1/3) + 0.30*(1/3) = 0.30 -> 30
	if first.HealthScore != 30 {
		t.Errorf("health = %d, want 30", first.HealthScore)
	}

	if rollups[1].HealthScore != 60 {
		t.Errorf("fully-finished epic health = %d, want 60", rollups[1].HealthScore)
	}
}
