package finance

import (
	"time"
)

// =============================================================================
// TIME POINT - Day-granularity date (the ledger has no time-of-day semantics)
// =============================================================================

type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func NewTimePointFromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

// Today reads the system clock. Only the outermost entry points (HTTP handler,
// server main) use this; every engine stage takes an explicit asOf.
func Today() TimePoint {
	now := time.Now()
	return NewTimePoint(now.Year(), now.Month(), now.Day())
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return tp.Before(other) || tp.Equal(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return tp.After(other) || tp.Equal(other) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint   { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) AddMonths(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(0, n, 0)} }
func (tp TimePoint) AddYears(n int) TimePoint  { return TimePoint{Time: tp.Time.AddDate(n, 0, 0)} }

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

func (tp TimePoint) String() string {
	return tp.Time.Format("2006-01-02")
}

// InMonth reports whether the date falls in the given calendar month.
func (tp TimePoint) InMonth(year int, month time.Month) bool {
	return tp.Year() == year && tp.Month() == month
}

// =============================================================================
// MONTH KEY - Calendar month identifier for bucketing
// =============================================================================

// MonthKey identifies one calendar month. It is the bucketing key for the
// monthly aggregation stage.
type MonthKey struct {
	Year  int
	Month time.Month
}

func MonthOf(tp TimePoint) MonthKey {
	return MonthKey{Year: tp.Year(), Month: tp.Month()}
}

// Prev returns the immediately preceding calendar month.
func (m MonthKey) Prev() MonthKey {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Next returns the immediately following calendar month.
func (m MonthKey) Next() MonthKey {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// AfterKey reports whether m is a later month than other.
func (m MonthKey) AfterKey(other MonthKey) bool {
	if m.Year != other.Year {
		return m.Year > other.Year
	}
	return m.Month > other.Month
}

func (m MonthKey) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

func DaysBetween(from, to TimePoint) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

func StartOfMonth(year int, month time.Month) TimePoint {
	return NewTimePoint(year, month, 1)
}

func EndOfMonth(year int, month time.Month) TimePoint {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return TimePoint{Time: t}
}

// LastCompleteMonth returns the calendar month immediately before asOf's
// month. The runway estimator anchors on it because the current month is,
// by definition, still accumulating transactions.
func LastCompleteMonth(asOf TimePoint) MonthKey {
	return MonthOf(asOf).Prev()
}
