package record

import (
	"testing"
	"time"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hola  ", "hola"},
		{"#N/A", ""},
		{"n/a", ""},
		{"NULL", ""},
		{"undefined", ""},
		{"-", ""},
		{"Sin dato", ""},
		{"Sin área", ""},
		{"sin area", ""},
		{"", ""},
		{"N/A pendiente", "N/A pendiente"}, // only exact sentinel matches
	}
	for _, c := range cases {
		if got := Clean(c.in); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDateDayMonthYear(t *testing.T) {
	d := ParseDate("15/03/2024", DefaultDateBounds)
	if d == nil {
		t.Fatal("expected 15/03/2024 to parse")
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("got %v, want 2024-03-15", d)
	}
}

func TestParseDateISO(t *testing.T) {
	d := ParseDate("2024-03-15T00:00:00Z", DefaultDateBounds)
	if d == nil {
		t.Fatal("expected ISO timestamp to parse")
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 15 {
		t.Errorf("got %v, want 2024-03-15", d)
	}

	plain := ParseDate("2024-03-15", DefaultDateBounds)
	if plain == nil || !plain.Equal(*d) {
		t.Errorf("plain ISO date should give the same calendar day, got %v", plain)
	}
}

func TestParseDateVariants(t *testing.T) {
	cases := []string{"5/3/24", "05-03-2024", "5.3.2024"}
	for _, c := range cases {
		d := ParseDate(c, DefaultDateBounds)
		if d == nil {
			t.Errorf("expected %q to parse", c)
			continue
		}
		if d.Year() != 2024 || d.Month() != time.March || d.Day() != 5 {
			t.Errorf("ParseDate(%q) = %v, want 2024-03-05", c, d)
		}
	}
}

func TestParseDateRejections(t *testing.T) {
	cases := []string{
		"32/13/2024", // impossible day/month
		"29/02/2023", // not a leap year
		"#N/A",
		"mañana",
		"15/03/1999", // below plausibility floor
		"15/03/2050", // above plausibility ceiling
		"",
	}
	for _, c := range cases {
		if d := ParseDate(c, DefaultDateBounds); d != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", c, d)
		}
	}
}

func TestParseDateCustomBounds(t *testing.T) {
	bounds := DateBounds{MinYear: 1990, MaxYear: 2100}
	if d := ParseDate("15/03/1999", bounds); d == nil {
		t.Error("expected 1999 date to pass with widened bounds")
	}
}
