package catalog

import (
	"fmt"
	"time"
)

const yearMonthLayout = "2006-01"

// YearMonth is a calendar month such as 2025-07.
type YearMonth struct {
	t time.Time
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: %w", s, err)
	}
	return YearMonth{t: t}, nil
}

// MustYearMonth is ParseYearMonth for literals.
func MustYearMonth(s string) YearMonth {
	ym, err := ParseYearMonth(s)
	if err != nil {
		panic(err)
	}
	return ym
}

func (y YearMonth) IsZero() bool { return y.t.IsZero() }

func (y YearMonth) Before(o YearMonth) bool { return y.t.Before(o.t) }

func (y YearMonth) After(o YearMonth) bool { return y.t.After(o.t) }

// String returns the YYYY-MM form.
func (y YearMonth) String() string {
	if y.IsZero() {
		return ""
	}
	return y.t.Format(yearMonthLayout)
}

// Display renders the month for people, e.g. "Jul 2025".
func (y YearMonth) Display() string {
	if y.IsZero() {
		return ""
	}
	return y.t.Format("Jan 2006")
}

func (y YearMonth) MarshalText() ([]byte, error) { return []byte(y.String()), nil }

func (y *YearMonth) UnmarshalText(b []byte) error {
	ym, err := ParseYearMonth(string(b))
	if err != nil {
		return err
	}
	*y = ym
	return nil
}

// Period renders "Jul 2025 - Dec 2025", or "Jul 2025 - Present" when ongoing.
func (d Duration) Period() string {
	if d.End == nil {
		return d.Start.Display() + " - Present"
	}
	return d.Start.Display() + " - " + d.End.Display()
}
