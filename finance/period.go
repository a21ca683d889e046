package finance

// =============================================================================
// PERIOD - Inclusive date range for aggregation
// =============================================================================

// Period is an inclusive date range. It is used both for the caller-selected
// "current period" and for the engine-derived "previous period" of identical
// length immediately preceding it.
type Period struct {
	Start TimePoint
	End   TimePoint
}

// NewPeriod builds a period and validates its orientation.
func NewPeriod(start, end TimePoint) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

// Contains returns true if the time point is within [Start, End].
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.BeforeOrEqual(p.End)
}

// Previous returns the period of identical duration ending the day before
// this period starts. Percentage deltas compare against it.
func (p Period) Previous() Period {
	duration := DaysBetween(p.Start, p.End)
	newEnd := p.Start.AddDays(-1)
	newStart := newEnd.AddDays(-duration)
	return Period{Start: newStart, End: newEnd}
}

// Months returns every calendar month the period touches, from the start
// month to the end month inclusive. Months with no transactions are still
// listed; the reducer corrects averages for them.
func (p Period) Months() []MonthKey {
	var months []MonthKey
	current := MonthOf(p.Start)
	last := MonthOf(p.End)
	for !current.AfterKey(last) {
		months = append(months, current)
		current = current.Next()
	}
	return months
}

// Filter returns the transactions whose date falls inside the period.
func (p Period) Filter(txs []Transaction) []Transaction {
	var result []Transaction
	for _, tx := range txs {
		if p.Contains(tx.Date) {
			result = append(result, tx)
		}
	}
	return result
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
