package csvfile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"kopilka/internal/log"
)

func testLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "operations.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "Дата операции,Сумма платежа,Категория,Описание,Номер карты\n"+
		"31.12.2021 16:44:00,-160.89,Супермаркеты,Колхоз,*7197\n"+
		"31.12.2021 16:42:04,-564.00,Различные товары,Ozon.ru,*7197\n")

	l, err := New(path, testLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(l))
	}
	if l[0].Category != "Супермаркеты" || l[0].Amount != -160.89 {
		t.Fatalf("unexpected row: %+v", l[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv"), testLogger()).Load(context.Background())
	if err == nil {
		t.Fatalf("expected hard error for missing file")
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeFile(t, "Дата операции,Описание\n01.10.2024,x\n")
	if _, err := New(path, testLogger()).Load(context.Background()); err == nil {
		t.Fatalf("expected hard error for missing columns")
	}
}

func TestLoadKeepsDirtyRows(t *testing.T) {
	path := writeFile(t, "Дата операции,Сумма платежа,Категория,Описание,Номер карты\n"+
		"битая дата,-100,Кафе,Кофейня,*5091\n")
	l, err := New(path, testLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("dirty row must not abort the load: %v", err)
	}
	if len(l) != 1 || !l[0].Date.IsZero() || l[0].Amount != -100 {
		t.Fatalf("unexpected ledger: %+v", l)
	}
}
