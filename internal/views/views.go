// Package views assembles the dashboard payloads: the report engine on a
// month-to-date ledger slice merged with externally fetched quotes.
package views

import (
	"context"
	"fmt"
	"strings"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
	"kopilka/internal/log"
	"kopilka/internal/quotes"
	"kopilka/internal/reports"
	"kopilka/internal/settings"
)

type (
	// HomePayload is the "home" dashboard.
	HomePayload struct {
		Greeting        string                  `json:"greeting"`
		Cards           []reports.CardStat      `json:"cards"`
		TopTransactions []reports.TopTransaction `json:"top_transactions"`
		CurrencyRates   []quotes.CurrencyRate   `json:"currency_rates"`
		StockPrices     []quotes.StockPrice     `json:"stock_prices"`
	}

	// CategoryBuckets partitions the window's distinct categories by name.
	CategoryBuckets struct {
		Main      []string `json:"main"`
		Transfers []string `json:"transfers"`
		Cash      []string `json:"cash"`
	}

	// EventsPayload is the "events" dashboard.
	EventsPayload struct {
		Expenses      float64               `json:"expenses"`
		Income        float64               `json:"income"`
		Categories    CategoryBuckets       `json:"categories"`
		CurrencyRates []quotes.CurrencyRate `json:"currency_rates"`
		StockPrices   []quotes.StockPrice   `json:"stock_prices"`
	}
)

// Composer builds dashboards from the ledger, settings and quote
// collaborators. Collaborator failures propagate: a dead quote API fails
// the whole dashboard (stock symbols excepted, the provider zero-fills
// those per symbol).
type Composer struct {
	ledger   ledger.Loader
	settings settings.Loader
	quotes   quotes.Provider
	reports  *reports.Service
	log      *log.Logger
}

func NewComposer(l ledger.Loader, s settings.Loader, q quotes.Provider, r *reports.Service, logger *log.Logger) *Composer {
	return &Composer{
		ledger:   l,
		settings: s,
		quotes:   q,
		reports:  r,
		log:      logger.WithComponent(log.ComponentViews),
	}
}

// Greeting buckets the anchor's hour of day: morning [5,12), afternoon
// [12,17), evening [17,23), night otherwise.
func Greeting(anchor core.Date) string {
	switch hour := anchor.Hour(); {
	case hour >= 5 && hour < 12:
		return "Доброе утро"
	case hour >= 12 && hour < 17:
		return "Добрый день"
	case hour >= 17 && hour < 23:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}

// monthSlice loads the ledger and cuts the month-to-date window ending at
// the anchor datetime. A malformed anchor is a hard error.
func (c *Composer) monthSlice(ctx context.Context, anchor string) (core.Ledger, core.Date, error) {
	end, err := core.ParseAnchor(anchor, core.DateTimeLayout)
	if err != nil {
		return nil, core.Date{}, err
	}
	l, err := c.ledger.Load(ctx)
	if err != nil {
		return nil, core.Date{}, fmt.Errorf("load ledger: %w", err)
	}
	return core.MonthToDate(end).Filter(l), end, nil
}

// fetchQuotes reads the user symbols and resolves both quote batches.
func (c *Composer) fetchQuotes(ctx context.Context) ([]quotes.CurrencyRate, []quotes.StockPrice, error) {
	cfg, err := c.settings.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	rates, err := c.quotes.CurrencyRates(ctx, cfg.UserCurrencies)
	if err != nil {
		return nil, nil, fmt.Errorf("currency rates: %w", err)
	}
	prices, err := c.quotes.StockPrices(ctx, cfg.UserStocks)
	if err != nil {
		return nil, nil, fmt.Errorf("stock prices: %w", err)
	}
	return rates, prices, nil
}

// Home builds the home dashboard for the anchor datetime
// ("2006-01-02 15:04:05").
func (c *Composer) Home(ctx context.Context, anchor string) (HomePayload, error) {
	slice, end, err := c.monthSlice(ctx, anchor)
	if err != nil {
		return HomePayload{}, fmt.Errorf("home dashboard: %w", err)
	}

	rates, prices, err := c.fetchQuotes(ctx)
	if err != nil {
		return HomePayload{}, fmt.Errorf("home dashboard: %w", err)
	}

	payload := HomePayload{
		Greeting:        Greeting(end),
		Cards:           c.reports.CardStats(slice),
		TopTransactions: c.reports.TopTransactions(slice, reports.DefaultTopN),
		CurrencyRates:   rates,
		StockPrices:     prices,
	}
	c.log.Info("home dashboard composed",
		log.FieldAnchor, anchor,
		log.FieldCount, len(slice))
	return payload, nil
}

// Events builds the events dashboard for the anchor datetime.
func (c *Composer) Events(ctx context.Context, anchor string) (EventsPayload, error) {
	slice, _, err := c.monthSlice(ctx, anchor)
	if err != nil {
		return EventsPayload{}, fmt.Errorf("events dashboard: %w", err)
	}

	var expenses, income float64
	for _, tx := range slice {
		if tx.Amount < 0 {
			expenses += tx.Amount
		} else {
			income += tx.Amount
		}
	}

	rates, prices, err := c.fetchQuotes(ctx)
	if err != nil {
		return EventsPayload{}, fmt.Errorf("events dashboard: %w", err)
	}

	payload := EventsPayload{
		Expenses:      core.Round2(expenses),
		Income:        core.Round2(income),
		Categories:    bucketCategories(slice),
		CurrencyRates: rates,
		StockPrices:   prices,
	}
	c.log.Info("events dashboard composed",
		log.FieldAnchor, anchor,
		log.FieldCount, len(slice))
	return payload, nil
}

// bucketCategories splits the window's distinct categories, in order of
// first appearance: names containing "перевод" are transfers, "налич" is
// cash, everything else is main.
func bucketCategories(l core.Ledger) CategoryBuckets {
	buckets := CategoryBuckets{
		Main:      make([]string, 0),
		Transfers: make([]string, 0),
		Cash:      make([]string, 0),
	}
	seen := make(map[string]bool)
	for _, tx := range l {
		if seen[tx.Category] {
			continue
		}
		seen[tx.Category] = true
		name := strings.ToLower(tx.Category)
		switch {
		case strings.Contains(name, "перевод"):
			buckets.Transfers = append(buckets.Transfers, tx.Category)
		case strings.Contains(name, "налич"):
			buckets.Cash = append(buckets.Cash, tx.Category)
		default:
			buckets.Main = append(buckets.Main, tx.Category)
		}
	}
	return buckets
}
