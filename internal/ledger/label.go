package ledger

import (
	"fmt"
	"time"
)

// RelativeDayLabel buckets a movement date relative to now: "Today",
// "Yesterday", or "N days ago" up to a week. For older dates ok is false and
// the caller formats a calendar date in the account's locale instead.
func RelativeDayLabel(date, now time.Time) (label string, ok bool) {
	days := int((now.Sub(date).Abs().Hours() / 24) + 0.5)
	switch {
	case days == 0:
		return "Today", true
	case days == 1:
		return "Yesterday", true
	case days <= 7:
		return fmt.Sprintf("%d days ago", days), true
	default:
		return "", false
	}
}
