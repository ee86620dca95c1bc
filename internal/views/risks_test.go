package views

import (
	"testing"
	"time"

	"gestor/internal/record"
)

func TestBuildRiskSummaryExcludesFinished(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	yesterday := date(2024, 2, 29)

	// Same overdue end date, only the lifecycle state differs.
	records := []record.Record{
		{Key: "P-1", State: "DEV", EndDate: yesterday, Assignee: "Ana"},
		{Key: "P-2", State: "DONE", EndDate: yesterday, Assignee: "Ana"},
	}

	summary := BuildRiskSummary(records, now)
	if summary.Active != 1 {
		t.Fatalf("active = %d, want 1", summary.Active)
	}
	if summary.Overdue != 1 {
		t.Errorf("overdue = %d, want 1", summary.Overdue)
	}
	if len(summary.Flagged) != 1 || summary.Flagged[0].Key != "P-1" {
		t.Fatalf("flagged = %+v, want only P-1", summary.Flagged)
	}
	for _, f := range summary.Flagged {
		if f.Key == "P-2" {
			t.Error("finished record must never be flagged")
		}
	}
}

func TestBuildRiskSummaryFlags(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []record.Record{
		{Key: "P-1", State: "DEV", EndDate: date(2024, 3, 5), Priority: "Highest"},  // dueSoon + high + unassigned
		{Key: "P-2", State: "UAT", Assignee: "Luis"},                                // noDueDate
		{Key: "P-3", State: "ANALISIS", EndDate: date(2024, 6, 1), Assignee: "Ana"}, // clean
	}

	summary := BuildRiskSummary(records, now)
	if summary.DueSoon != 1 || summary.HighPriority != 1 || summary.Unassigned != 1 || summary.NoDueDate != 1 {
		t.Errorf("summary counts = %+v", summary)
	}
	if len(summary.Flagged) != 2 {
		t.Fatalf("flagged = %d records, want 2 (clean records are not listed)", len(summary.Flagged))
	}
	if len(summary.Flagged[0].Flags) != 3 {
		t.Errorf("P-1 flags = %v, want dueSoon, unassigned and highPriority", summary.Flagged[0].Flags)
	}
	// (0 overdue + 1 dueSoon) / 3 active
	if summary.Ratio < 0.333 || summary.Ratio > 0.334 {
		t.Errorf("ratio = %f", summary.Ratio)
	}
}

func TestProfileRisk(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Unassigned, overdue and XL: 30 + 40 + 20 = 90, critical.
	r := record.Record{Key: "P-1", State: "DEV", EndDate: date(2024, 2, 20), Sizing: "XL"}
	profile := ProfileRisk(r, []record.Record{r}, now)
	if profile.Score != 90 || profile.Level != "critical" {
		t.Fatalf("profile = score %d level %q, want 90 critical", profile.Score, profile.Level)
	}
	if len(profile.Factors) != 3 {
		t.Errorf("factors = %+v", profile.Factors)
	}
	if len(profile.Recommendations) != 3 {
		t.Errorf("recommendations = %v", profile.Recommendations)
	}
}

func TestProfileRiskOverload(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	all := make([]record.Record, 0, 7)
	for i := 0; i < 6; i++ {
		all = append(all, record.Record{Key: "P-" + string(rune('1'+i)), State: "DEV", Assignee: "Ana"})
	}
	// A finished record must not add to Ana's load.
	all = append(all, record.Record{Key: "P-9", State: "DONE", Assignee: "Ana"})

	profile := ProfileRisk(all[0], all, now)
	found := false
	for _, f := range profile.Factors {
		if f.Factor == "recurso sobrecargado" {
			found = true
		}
	}
	if !found {
		t.Errorf("6 active projects must trigger the overload factor, got %+v", profile.Factors)
	}
	if profile.Factors[len(profile.Factors)-1].Score != 20 {
		t.Errorf("overload score = %+v", profile.Factors)
	}
}

func TestProfileRiskHealthy(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r := record.Record{Key: "P-1", State: "DEV", Assignee: "Ana", EndDate: date(2024, 6, 1), Sizing: "S"}

	profile := ProfileRisk(r, []record.Record{r}, now)
	if profile.Score != 0 || profile.Level != "low" {
		t.Errorf("profile = score %d level %q", profile.Score, profile.Level)
	}
	if len(profile.Recommendations) != 1 {
		t.Errorf("healthy record must get the default recommendation, got %v", profile.Recommendations)
	}
}
