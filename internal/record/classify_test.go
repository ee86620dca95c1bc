package record

import "testing"

func TestClassifyExactMembership(t *testing.T) {
	cases := []struct {
		state string
		want  Category
	}{
		{"DONE", CategoryFinalizados},
		{"Pase Produccion", CategoryFinalizados},
		{"DEV", CategoryEnProceso},
		{"UAT", CategoryEnProceso},
		{"APROBACION DISEÑO TECNICO", CategoryEnAprobacion},
		{"SOLUTIONS", CategoryEnDiseno},
		{"PRIORIZAR", CategoryAPriorizar},
		{"Highest", CategoryBocaBacklog},
		{"Cancelada", CategoryCancelados},
		{"FooBarState", CategoryOtros},
		{"", CategoryOtros},
	}
	for _, c := range cases {
		if got := Classify(c.state); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.state, got, c.want)
		}
	}
}

func TestClassifyIsCaseSensitive(t *testing.T) {
	// "Por Analizar" and "Por analizar" are distinct states in distinct buckets.
	if got := Classify("Por Analizar"); got != CategoryAPriorizar {
		t.Errorf("Classify(\"Por Analizar\") = %q, want %q", got, CategoryAPriorizar)
	}
	if got := Classify("Por analizar"); got != CategoryBocaBacklog {
		t.Errorf("Classify(\"Por analizar\") = %q, want %q", got, CategoryBocaBacklog)
	}
	// No fuzzy matching: casing mismatches fall through to otros.
	if got := Classify("done"); got != CategoryOtros {
		t.Errorf("Classify(\"done\") = %q, want %q", got, CategoryOtros)
	}
}

func TestClassifyPartitionCompleteness(t *testing.T) {
	states := []string{"DONE", "DEV", "UAT", "SOLUTIONS", "PRIORIZAR", "Highest", "Cancelada", "FooBarState", "DONE", "DEV"}

	counts := make(map[Category]int)
	for _, s := range states {
		counts[Classify(s)]++
	}

	total := 0
	for _, cat := range Categories {
		total += counts[cat]
	}
	total += counts[CategoryOtros]

	if total != len(states) {
		t.Errorf("category counts sum to %d, want %d", total, len(states))
	}
	if counts[CategoryOtros] != 1 {
		t.Errorf("otros = %d, want exactly 1", counts[CategoryOtros])
	}
}

func TestStateAppearsInAtMostOneCategory(t *testing.T) {
	seen := make(map[string]Category)
	for _, cat := range Categories {
		for _, state := range stateCategories[cat] {
			if prev, ok := seen[state]; ok {
				t.Errorf("state %q appears in both %q and %q", state, prev, cat)
			}
			seen[state] = cat
		}
	}
}
