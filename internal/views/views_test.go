package views

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"kopilka/internal/core"
	"kopilka/internal/ledger/memory"
	"kopilka/internal/log"
	"kopilka/internal/quotes"
	"kopilka/internal/reports"
	"kopilka/internal/settings"
)

func testComposer(l core.Ledger, q quotes.Provider) *Composer {
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	cfg := &settings.Static{Settings: settings.Settings{
		UserCurrencies: []string{"USD"},
		UserStocks:     []string{"AAPL"},
	}}
	return NewComposer(memory.New(l), cfg, q, reports.NewService(logger), logger)
}

func decemberLedger() core.Ledger {
	return core.Ledger{
		{Date: core.DateOf(time.Date(2021, 12, 1, 10, 0, 0, 0, time.UTC)), Amount: 50000, Category: "Пополнения", Description: "Зарплата", CardNumber: "*7197"},
		{Date: core.DateOf(time.Date(2021, 12, 5, 12, 0, 0, 0, time.UTC)), Amount: -1500, Category: "Супермаркеты", Description: "Магнит", CardNumber: "*7197"},
		{Date: core.DateOf(time.Date(2021, 12, 10, 9, 0, 0, 0, time.UTC)), Amount: -800, Category: "Переводы", Description: "Иван С.", CardNumber: "*5091"},
		{Date: core.DateOf(time.Date(2021, 12, 20, 18, 0, 0, 0, time.UTC)), Amount: -300, Category: "Снятие наличных", Description: "Банкомат", CardNumber: "*5091"},
		// outside the month-to-date window
		{Date: core.DateOf(time.Date(2021, 11, 30, 9, 0, 0, 0, time.UTC)), Amount: -9999, Category: "Кафе", Description: "Ноябрь", CardNumber: "*7197"},
	}
}

func staticQuotes() *quotes.Static {
	return &quotes.Static{
		Rates:  map[string]float64{"USD": 73.21},
		Prices: map[string]float64{"AAPL": 150.12},
	}
}

func TestGreeting(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{5, "Доброе утро"},
		{11, "Доброе утро"},
		{12, "Добрый день"},
		{16, "Добрый день"},
		{17, "Добрый вечер"},
		{22, "Добрый вечер"},
		{23, "Доброй ночи"},
		{0, "Доброй ночи"},
		{4, "Доброй ночи"},
	}
	for _, tc := range cases {
		d := core.DateOf(time.Date(2021, 12, 31, tc.hour, 0, 0, 0, time.UTC))
		if got := Greeting(d); got != tc.want {
			t.Fatalf("hour %d: got %q want %q", tc.hour, got, tc.want)
		}
	}
}

func TestHome(t *testing.T) {
	c := testComposer(decemberLedger(), staticQuotes())
	got, err := c.Home(context.Background(), "2021-12-31 16:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Greeting != "Добрый день" {
		t.Fatalf("unexpected greeting %q", got.Greeting)
	}
	// November row is outside the window, so two cards remain
	if len(got.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %+v", got.Cards)
	}
	if got.Cards[0].LastDigits != "*7197" || got.Cards[0].TotalSpent != 48500 {
		t.Fatalf("unexpected card stats: %+v", got.Cards[0])
	}
	if len(got.TopTransactions) != 4 { // min(5, 4 rows in window)
		t.Fatalf("expected 4 top transactions, got %d", len(got.TopTransactions))
	}
	if got.TopTransactions[0].Amount != 50000 {
		t.Fatalf("top transaction must be the salary: %+v", got.TopTransactions[0])
	}
	if len(got.CurrencyRates) != 1 || got.CurrencyRates[0].Rate != 73.21 {
		t.Fatalf("unexpected rates: %+v", got.CurrencyRates)
	}
	if len(got.StockPrices) != 1 || got.StockPrices[0].Price != 150.12 {
		t.Fatalf("unexpected prices: %+v", got.StockPrices)
	}
}

func TestHomeBadAnchor(t *testing.T) {
	c := testComposer(decemberLedger(), staticQuotes())
	if _, err := c.Home(context.Background(), "2021-12-31"); err == nil {
		t.Fatalf("expected error for date-only anchor")
	}
}

func TestHomeQuoteFailureFailsDashboard(t *testing.T) {
	c := testComposer(decemberLedger(), &quotes.Static{Err: errors.New("api down")})
	if _, err := c.Home(context.Background(), "2021-12-31 16:00:00"); err == nil {
		t.Fatalf("quote failure must fail the dashboard")
	}
}

func TestEvents(t *testing.T) {
	c := testComposer(decemberLedger(), staticQuotes())
	got, err := c.Events(context.Background(), "2021-12-31 16:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Expenses != -2600 { // -1500 -800 -300
		t.Fatalf("expenses = %v, want -2600", got.Expenses)
	}
	if got.Income != 50000 {
		t.Fatalf("income = %v, want 50000", got.Income)
	}
	if len(got.Categories.Main) != 2 ||
		got.Categories.Main[0] != "Пополнения" ||
		got.Categories.Main[1] != "Супермаркеты" {
		t.Fatalf("unexpected main bucket: %+v", got.Categories.Main)
	}
	if len(got.Categories.Transfers) != 1 || got.Categories.Transfers[0] != "Переводы" {
		t.Fatalf("unexpected transfers bucket: %+v", got.Categories.Transfers)
	}
	if len(got.Categories.Cash) != 1 || got.Categories.Cash[0] != "Снятие наличных" {
		t.Fatalf("unexpected cash bucket: %+v", got.Categories.Cash)
	}
}

func TestEventsWindowExcludesPreviousMonth(t *testing.T) {
	c := testComposer(decemberLedger(), staticQuotes())
	got, err := c.Events(context.Background(), "2021-12-31 16:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, cat := range got.Categories.Main {
		if cat == "Кафе" {
			t.Fatalf("november category leaked into the window")
		}
	}
}
