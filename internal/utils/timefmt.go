package utils

import (
	"fmt"
	"time"
)

// RelativeTime formats a timestamp the way list pages display it.
func RelativeTime(t time.Time) string {
	seconds := int(time.Since(t).Seconds())

	switch {
	case seconds < 60:
		return "방금 전"
	case seconds < 3600:
		return fmt.Sprintf("%d분 전", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d시간 전", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%d일 전", seconds/86400)
	}
	return t.Format("2006.01.02")
}
