package infos

import (
	"fmt"
	"math"
	"time"
)

// ago turns an elapsed duration into relative-time text like
// "just now", "3 hours ago" or "last month". Buckets widen as the
// elapsed time grows, so the text stays readable on a badge.
func ago(elapsed time.Duration) string {

	if elapsed <= 0 {
		return "not yet"
	}

	minutes := int(elapsed.Minutes())
	switch {
	case minutes < 1:
		return "just now"
	case minutes == 1:
		return "1 minute ago"
	case minutes < 60:
		return fmt.Sprintf("%v minutes ago", minutes)
	case minutes < 120:
		return "1 hour ago"
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%v hours ago", hours)
	}

	days := hours / 24
	switch {
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%v days ago", days)
	case days < 14:
		return "last week"
	case days < 21:
		return "2 weeks ago"
	case days < 28:
		return "3 weeks ago"
	case days < 60:
		return "last month"
	case days < 365:
		return fmt.Sprintf("%v months ago", int(math.Round(float64(days)/30)))
	case days < 730:
		return "last year"
	}

	return fmt.Sprintf("%v years ago", int(math.Round(float64(days)/365)))
}
