package calculation

import (
	"math"
	"time"

	"github.com/estatecalc/esc/internal/domain"
)

// urgentWindowDays is the remaining-day threshold below which an upcoming
// deadline is classified urgent.
const urgentWindowDays = 30

// FilingDeadline returns the letters-issued date advanced by six calendar
// months. The day of month is carried as-is: when the target month is
// shorter, the date normalizes into the following month (January 31 keeps
// July 31, but August 31 rolls to March 2 or 3). No letters date, no
// deadline.
func FilingDeadline(letters domain.Date) domain.Date {
	if letters.IsZero() {
		return domain.Date{}
	}
	return domain.Date{Time: letters.AddDate(0, 6, 0)}
}

// DaysUntil counts the whole days from now to the deadline, rounding any
// partial day up. Negative when the deadline is in the past.
func DaysUntil(now time.Time, deadline domain.Date) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// ClassifyDeadline grades the deadline against the given clock and reports
// the remaining whole-day count.
func ClassifyDeadline(now time.Time, deadline domain.Date) (domain.DeadlineStatus, int) {
	if deadline.IsZero() {
		return domain.DeadlineNone, 0
	}
	days := DaysUntil(now, deadline)
	switch {
	case deadline.Before(now):
		return domain.DeadlinePassed, days
	case days <= urgentWindowDays:
		return domain.DeadlineUrgent, days
	default:
		return domain.DeadlineOK, days
	}
}
