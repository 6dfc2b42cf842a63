// Package quotes provides the currency-rate and stock-price collaborator
// consumed by the dashboards.
package quotes

import "context"

type (
	// CurrencyRate is one currency quote of the dashboard payload.
	CurrencyRate struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}

	// StockPrice is one stock quote of the dashboard payload.
	StockPrice struct {
		Stock string  `json:"stock"`
		Price float64 `json:"price"`
	}

	// Provider fetches quote batches. CurrencyRates omits unknown codes
	// and fails on a non-success response; StockPrices zero-fills a
	// failed symbol and keeps going, so one dead ticker never kills the
	// dashboard.
	Provider interface {
		CurrencyRates(ctx context.Context, codes []string) ([]CurrencyRate, error)
		StockPrices(ctx context.Context, symbols []string) ([]StockPrice, error)
	}
)

// Static is a fixed in-memory provider for tests.
type Static struct {
	Rates  map[string]float64
	Prices map[string]float64
	Err    error
}

var _ Provider = (*Static)(nil)

func (s *Static) CurrencyRates(_ context.Context, codes []string) ([]CurrencyRate, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		if rate, ok := s.Rates[code]; ok {
			out = append(out, CurrencyRate{Currency: code, Rate: rate})
		}
	}
	return out, nil
}

func (s *Static) StockPrices(_ context.Context, symbols []string) ([]StockPrice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		out = append(out, StockPrice{Stock: symbol, Price: s.Prices[symbol]})
	}
	return out, nil
}
