package domain

import (
	"testing"
	"time"
)

func TestScreeningOverlaps(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	// Existing screening occupies [10:00, 12:00).
	screening := &Screening{StartTime: at(10, 0), EndTime: at(12, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "identical interval", start: at(10, 0), end: at(12, 0), want: true},
		{name: "overlapping tail", start: at(11, 0), end: at(13, 0), want: true},
		{name: "overlapping head", start: at(9, 0), end: at(11, 0), want: true},
		{name: "contained", start: at(10, 30), end: at(11, 30), want: true},
		{name: "surrounding", start: at(9, 0), end: at(13, 0), want: true},
		{name: "touching end boundary", start: at(12, 0), end: at(14, 0), want: false},
		{name: "touching start boundary", start: at(8, 0), end: at(10, 0), want: false},
		{name: "disjoint before", start: at(7, 0), end: at(8, 0), want: false},
		{name: "disjoint after", start: at(13, 0), end: at(14, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screening.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
