package util

import (
	"fmt"
	"time"
)

// FormatDistance formats a distance in kilometres into human readable format (e.g., "850 m", "12.4 km").
func FormatDistance(km float64) string {
	if km < 0 {
		km = 0
	}

	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000+0.5))
	}

	return fmt.Sprintf("%.1f km", km)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s", "120ms").
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
