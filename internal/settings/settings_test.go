package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_settings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, `{"user_currencies": ["USD", "EUR"], "user_stocks": ["AAPL", "GOOGL"]}`)
	s, err := NewFileLoader(path).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.UserCurrencies) != 2 || s.UserCurrencies[0] != "USD" {
		t.Fatalf("unexpected currencies: %v", s.UserCurrencies)
	}
	if len(s.UserStocks) != 2 || s.UserStocks[1] != "GOOGL" {
		t.Fatalf("unexpected stocks: %v", s.UserStocks)
	}
}

func TestLoadMissingKeys(t *testing.T) {
	cases := []string{
		`{"user_currencies": ["USD"]}`,
		`{"user_stocks": ["AAPL"]}`,
		`{}`,
	}
	for _, content := range cases {
		path := writeSettings(t, content)
		if _, err := NewFileLoader(path).Load(); err == nil {
			t.Fatalf("expected error for %s", content)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.json")).Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeSettings(t, `{"user_currencies": [`)
	if _, err := NewFileLoader(path).Load(); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}
