package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Anchor layouts accepted at the operation boundary. Reports take a plain
// date, dashboards take a full timestamp.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// rowLayouts lists the formats tolerated on individual ledger rows,
// day-first bank-export formats included.
var rowLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006",
	DateTimeLayout,
	DateLayout,
}

type (
	Date struct {
		time.Time
	}

	// Transaction is one normalized ledger row. Negative Amount is an
	// expense, positive is income. CardNumber is empty when the source
	// row carried none. A zero Date marks a row whose source date could
	// not be parsed; bulk scans skip such rows.
	Transaction struct {
		Date        Date
		Amount      float64
		Category    string
		Description string
		CardNumber  string
	}

	// Ledger is the full transaction collection for one run, in source
	// order. Consumers treat it as read-only.
	Ledger []Transaction
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidLimit = errors.New("limit must be positive")
)

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf wraps a time.Time, keeping the full timestamp.
func DateOf(t time.Time) Date {
	return Date{Time: t}
}

// ParseAnchor parses a required anchor date in the given layout. A malformed
// anchor is a hard error: the caller's whole operation aborts.
func ParseAnchor(s, layout string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: anchor %q does not match %s", ErrInvalidDate, s, layout)
	}
	return Date{Time: t}, nil
}

// ParseRowDate parses a per-row date leniently. It returns the zero Date
// when no known layout matches; row-level dirt is tolerated, not fatal.
func ParseRowDate(s string) Date {
	s = strings.TrimSpace(s)
	for _, layout := range rowLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}
		}
	}
	return Date{}
}

// IsWorkday reports whether the date falls on Monday..Friday.
func (d Date) IsWorkday() bool {
	wd := d.Time.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// InMonth reports whether the date falls in the given calendar month.
func (d Date) InMonth(year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}

// IsExpense reports whether the transaction is an expense row.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}
