package timezone

import (
	"testing"
	"time"
)

func TestParseISO_Accepted(t *testing.T) {
	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	inputs := []string{
		"2024-05-01T10:00:00",
		"2024-05-01T10:00",
		"2024-05-01 10:00:00",
		"2024-05-01T10:00:00Z",
		"2024-05-01T12:00:00+02:00",
		"2024-05-01T10:00:00.000000",
	}

	for _, in := range inputs {
		got, err := ParseISO(in)
		if err != nil {
			t.Errorf("ParseISO(%q) unexpected error: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseISO(%q) = %v, want %v", in, got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseISO(%q) location = %v, want UTC", in, got.Location())
		}
	}
}

func TestParseISO_DateOnly(t *testing.T) {
	got, err := ParseISO("2024-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestParseISO_Rejected(t *testing.T) {
	inputs := []string{"", "   ", "tomorrow", "2024-13-01T10:00:00", "01/05/2024 10:00", "2024-05-01T25:00"}

	for _, in := range inputs {
		if _, err := ParseISO(in); err == nil {
			t.Errorf("ParseISO(%q) expected error", in)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)
	got := StartOfDay(in)

	if !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start of day %v", got)
	}
}
