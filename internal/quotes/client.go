package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"kopilka/internal/core"
	"kopilka/internal/log"
)

// Client fetches quotes over HTTP: a rates API for currencies and a
// finnhub-style quote endpoint for stocks.
type Client struct {
	ratesURL  string
	ratesKey  string
	stocksURL string
	stocksKey string
	hc        *http.Client
	log       *log.Logger
}

var _ Provider = (*Client)(nil)

func NewClient(ratesURL, ratesKey, stocksURL, stocksKey string, logger *log.Logger) *Client {
	return &Client{
		ratesURL:  ratesURL,
		ratesKey:  ratesKey,
		stocksURL: stocksURL,
		stocksKey: stocksKey,
		hc:        &http.Client{Timeout: 15 * time.Second},
		log:       logger.WithComponent(log.ComponentQuotes),
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// CurrencyRates fetches the full rate table once and picks the requested
// codes. Unknown codes are omitted. Any non-success response is an error
// that the caller propagates.
func (c *Client) CurrencyRates(ctx context.Context, codes []string) ([]CurrencyRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ratesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("currency rates request: %w", err)
	}
	req.Header.Set("apikey", c.ratesKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("currency rates fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("currency rates fetch: status %d: %s", resp.StatusCode, body)
	}

	var data ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("currency rates decode: %w", err)
	}

	out := make([]CurrencyRate, 0, len(codes))
	for _, code := range codes {
		rate, ok := data.Rates[code]
		if !ok {
			c.log.Warn("currency not in rate table", log.FieldSymbol, code)
			continue
		}
		out = append(out, CurrencyRate{Currency: code, Rate: core.Round2(rate)})
	}
	return out, nil
}

type quoteResponse struct {
	Current float64 `json:"c"`
}

// StockPrices fetches each symbol separately. A failed or empty quote
// yields a zero-price placeholder for that symbol only; the batch always
// completes.
func (c *Client) StockPrices(ctx context.Context, symbols []string) ([]StockPrice, error) {
	out := make([]StockPrice, 0, len(symbols))
	for _, symbol := range symbols {
		price, err := c.stockQuote(ctx, symbol)
		if err != nil {
			c.log.Warn("stock quote failed, zero-filling",
				log.FieldSymbol, symbol,
				log.FieldError, err)
			price = 0.0
		}
		out = append(out, StockPrice{Stock: symbol, Price: core.Round2(price)})
	}
	return out, nil
}

func (c *Client) stockQuote(ctx context.Context, symbol string) (float64, error) {
	u := fmt.Sprintf("%s/quote?symbol=%s&token=%s",
		c.stocksURL, url.QueryEscape(symbol), url.QueryEscape(c.stocksKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status %d", resp.StatusCode)
	}
	var data quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, err
	}
	return data.Current, nil
}
