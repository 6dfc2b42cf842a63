package core

import "time"

// Window is an inclusive date range used to filter records before
// aggregation. Start is never after End.
type Window struct {
	Start Date
	End   Date
}

// Lookback returns the window [anchor - days, anchor].
func Lookback(anchor Date, days int) Window {
	return Window{
		Start: Date{Time: anchor.AddDate(0, 0, -days)},
		End:   anchor,
	}
}

// MonthToDate returns the window [first of anchor's month, anchor].
func MonthToDate(anchor Date) Window {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	return Window{Start: Date{Time: first}, End: anchor}
}

// Contains reports whether d falls inside the window. The zero Date is
// never contained.
func (w Window) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(w.Start.Time) && !d.After(w.End.Time)
}

// Filter returns the ledger rows whose dates fall inside the window,
// preserving source order. The input is never mutated.
func (w Window) Filter(l Ledger) Ledger {
	out := make(Ledger, 0, len(l))
	for _, tx := range l {
		if w.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}
