// Package reports implements the report engine: windowed filtering and
// aggregation over a transaction ledger, plus opt-in persistence of any
// report result to a JSON artifact.
package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"kopilka/internal/core"
	"kopilka/internal/log"
)

const (
	lookbackDays = 90
	cashbackRate = 0.05

	// DefaultTopN is the default size of the top-transactions report.
	DefaultTopN = 5

	// unknownCategory labels expense rows without a category.
	unknownCategory = "Неизвестно"
)

type (
	// CategorySpend is one expense row of the category report.
	CategorySpend struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}

	// WeekdaySpend is the average expense for one weekday.
	WeekdaySpend struct {
		Weekday      string  `json:"weekday"`
		AverageSpent float64 `json:"average_spent"`
	}

	// WorkdaySpend compares average expenses on workdays vs weekends.
	WorkdaySpend struct {
		WorkdayAvg float64 `json:"workday_avg"`
		WeekendAvg float64 `json:"weekend_avg"`
	}

	// CardStat summarizes one card: total over all its rows plus the
	// notional 1% cashback.
	CardStat struct {
		LastDigits string  `json:"last_digits"`
		TotalSpent float64 `json:"total_spent"`
		Cashback   float64 `json:"cashback"`
	}

	// TopTransaction is one row of the top-N report.
	TopTransaction struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	}
)

// Service computes reports over read-only ledger slices. All methods are
// pure functions of (ledger, parameters); the logger only records progress
// and skipped dirty rows.
type Service struct {
	log *log.Logger
}

func NewService(logger *log.Logger) *Service {
	return &Service{log: logger.WithComponent(log.ComponentReports)}
}

// anchorOrNow parses an optional report anchor date. Empty means now;
// anything else must match the plain date layout.
func anchorOrNow(anchor string) (core.Date, error) {
	if anchor == "" {
		return core.DateOf(time.Now()), nil
	}
	return core.ParseAnchor(anchor, core.DateLayout)
}

// lookbackExpenses collects the expense rows of the 90-day window ending at
// the anchor, in ledger order. Rows with an unparseable date are skipped
// with a warning; they are dirty data, not an error.
func (s *Service) lookbackExpenses(l core.Ledger, anchor core.Date) core.Ledger {
	window := core.Lookback(anchor, lookbackDays)
	out := make(core.Ledger, 0, len(l))
	for i, tx := range l {
		if tx.Date.IsZero() {
			s.log.Warn("skipping row with unparseable date", log.FieldRow, i)
			continue
		}
		if window.Contains(tx.Date) && tx.IsExpense() {
			out = append(out, tx)
		}
	}
	return out
}

// SpendingByCategory returns the expenses of one category over the last 90
// days ending at anchor (empty anchor = today). Category matching is
// case-insensitive; ledger order is preserved.
func (s *Service) SpendingByCategory(l core.Ledger, category, anchor string) ([]CategorySpend, error) {
	end, err := anchorOrNow(anchor)
	if err != nil {
		return nil, fmt.Errorf("spending by category: %w", err)
	}

	result := make([]CategorySpend, 0)
	for _, tx := range s.lookbackExpenses(l, end) {
		if !strings.EqualFold(tx.Category, category) {
			continue
		}
		result = append(result, CategorySpend{
			Date:        tx.Date.Format(core.DateLayout),
			Amount:      core.Round2(tx.Amount),
			Description: tx.Description,
		})
	}

	s.log.Info("category report built",
		log.FieldCategory, category,
		log.FieldCount, len(result))
	return result, nil
}

// weekdayOrder fixes the output order of the weekday report.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// SpendingByWeekday returns the average expense per weekday over the last
// 90 days ending at anchor. Weekdays without expenses are absent.
func (s *Service) SpendingByWeekday(l core.Ledger, anchor string) ([]WeekdaySpend, error) {
	end, err := anchorOrNow(anchor)
	if err != nil {
		return nil, fmt.Errorf("spending by weekday: %w", err)
	}

	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, tx := range s.lookbackExpenses(l, end) {
		wd := tx.Date.Time.Weekday()
		sums[wd] += tx.Amount
		counts[wd]++
	}

	result := make([]WeekdaySpend, 0, len(counts))
	for _, wd := range weekdayOrder {
		if counts[wd] == 0 {
			continue
		}
		result = append(result, WeekdaySpend{
			Weekday:      wd.String(),
			AverageSpent: core.Round2(sums[wd] / float64(counts[wd])),
		})
	}

	s.log.Info("weekday report built", log.FieldCount, len(result))
	return result, nil
}

// SpendingByWorkday returns the average expense on workdays and weekends
// over the last 90 days ending at anchor. An empty partition averages to
// 0.0 by policy.
func (s *Service) SpendingByWorkday(l core.Ledger, anchor string) (WorkdaySpend, error) {
	end, err := anchorOrNow(anchor)
	if err != nil {
		return WorkdaySpend{}, fmt.Errorf("spending by workday: %w", err)
	}

	var workSum, weekendSum float64
	var workN, weekendN int
	for _, tx := range s.lookbackExpenses(l, end) {
		if tx.Date.IsWorkday() {
			workSum += tx.Amount
			workN++
		} else {
			weekendSum += tx.Amount
			weekendN++
		}
	}

	result := WorkdaySpend{}
	if workN > 0 {
		result.WorkdayAvg = core.Round2(workSum / float64(workN))
	}
	if weekendN > 0 {
		result.WeekendAvg = core.Round2(weekendSum / float64(weekendN))
	}

	s.log.Info("workday report built")
	return result, nil
}

// TopTransactions returns the n largest transactions by amount, ties broken
// by ledger order. Dates are formatted day.month.year.
func (s *Service) TopTransactions(l core.Ledger, n int) []TopTransaction {
	sorted := make(core.Ledger, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}

	result := make([]TopTransaction, 0, n)
	for _, tx := range sorted[:n] {
		result = append(result, TopTransaction{
			Date:        tx.Date.Format("02.01.2006"),
			Amount:      core.Round2(tx.Amount),
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return result
}

// CardStats groups the ledger by card number and sums each card's amounts.
// Cashback is total/100 rounded. One row per distinct card, in order of
// first appearance.
func (s *Service) CardStats(l core.Ledger) []CardStat {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, tx := range l {
		if _, seen := totals[tx.CardNumber]; !seen {
			order = append(order, tx.CardNumber)
		}
		totals[tx.CardNumber] += tx.Amount
	}

	result := make([]CardStat, 0, len(order))
	for _, card := range order {
		total := core.Round2(totals[card])
		result = append(result, CardStat{
			LastDigits: card,
			TotalSpent: total,
			Cashback:   core.Round2(total / 100),
		})
	}
	return result
}

// CashbackByCategory estimates the 5% cashback each category would earn on
// the given calendar month's expenses. Accumulation stays in floats; each
// category is rounded once at the end. Rows with an unparseable date are
// skipped with a warning.
func (s *Service) CashbackByCategory(l core.Ledger, year int, month time.Month) map[string]float64 {
	s.log.Info("cashback analysis",
		log.FieldYear, year,
		log.FieldMonth, int(month))

	acc := make(map[string]float64)
	for i, tx := range l {
		if tx.Date.IsZero() {
			s.log.Warn("skipping row with unparseable date", log.FieldRow, i)
			continue
		}
		if !tx.Date.InMonth(year, month) || !tx.IsExpense() {
			continue
		}
		category := tx.Category
		if category == "" {
			category = unknownCategory
		}
		acc[category] += -tx.Amount * cashbackRate
	}

	result := make(map[string]float64, len(acc))
	for category, v := range acc {
		result[category] = core.Round2(v)
	}
	return result
}

// InvestmentRoundup totals the savings from rounding every expense of the
// given month ("YYYY-MM") up to the next multiple of limit. Rows outside
// the month, income rows and rows with an unparseable date are skipped
// silently. limit must be positive.
func (s *Service) InvestmentRoundup(month string, l core.Ledger, limit int) (float64, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("investment roundup: %w: got %d", core.ErrInvalidLimit, limit)
	}
	target, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, fmt.Errorf("investment roundup: %w: %q is not YYYY-MM", core.ErrInvalidMonth, month)
	}

	var total float64
	for _, tx := range l {
		if tx.Date.IsZero() || !tx.IsExpense() {
			continue
		}
		if !tx.Date.InMonth(target.Year(), target.Month()) {
			continue
		}
		spent := -tx.Amount
		total += core.RoundUpToMultiple(spent, limit) - spent
	}

	saved := core.Round2(total)
	s.log.Info("investment roundup computed",
		log.FieldMonth, month,
		log.FieldAmount, saved)
	return saved, nil
}
