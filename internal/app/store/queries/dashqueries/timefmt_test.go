package dashqueries

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	base := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, "Never"},
		{"seconds ago", base.Add(-30 * time.Second), "Just now"},
		{"minutes ago", base.Add(-5 * time.Minute), "5 min ago"},
		{"just under an hour", base.Add(-59 * time.Minute), "59 min ago"},
		{"hours ago", base.Add(-3 * time.Hour), "3h ago"},
		{"just under a day", base.Add(-23 * time.Hour), "23h ago"},
		{"days ago", base.Add(-2 * 24 * time.Hour), "2d ago"},
		{"just under a month", base.Add(-29 * 24 * time.Hour), "29d ago"},
		{"older than a month", base.Add(-45 * 24 * time.Hour), "5/1/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relative(tt.t, base); got != tt.want {
				t.Errorf("Relative = %q, want %q", got, tt.want)
			}
		})
	}
}
