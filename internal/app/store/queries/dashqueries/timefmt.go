// internal/app/store/queries/dashqueries/timefmt.go
package dashqueries

import (
	"fmt"
	"time"
)

// Relative renders a timestamp the way the dashboard displays dates:
// "Just now", "N min ago", "Nh ago", "Nd ago", then a plain date. A zero
// timestamp renders as "Never".
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return "Never"
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("1/2/2006")
	}
}
