package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
)

// CalendarDate is a plain year/month/day triple decoded from a YYYY-MM-DD
// string. Stored dates are compared and rendered through this form only;
// building a time.Time from the raw string can shift the displayed day
// depending on the local time zone.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// ParseCalendarDate splits a YYYY-MM-DD string into its integer components.
func ParseCalendarDate(s string) (CalendarDate, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, s)
	}

	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// Display renders the date as dd/mm/yyyy.
func (d CalendarDate) Display() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// DisplayShort renders the date as dd/mm for compact contexts.
func (d CalendarDate) DisplayShort() string {
	return fmt.Sprintf("%02d/%02d", d.Day, d.Month)
}

// DisplayDate renders a stored YYYY-MM-DD value as dd/mm/yyyy.
// A missing or malformed date renders as "-"; display is never an error.
func DisplayDate(s string) string {
	if s == "" {
		return "-"
	}
	d, err := ParseCalendarDate(s)
	if err != nil {
		return "-"
	}
	return d.Display()
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	// Day zero of the following month; no string parsing involved.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
