package ledger

import (
	"context"

	"kopilka/internal/core"
)

// Ports for inbound ledger adapters.
type (
	// Loader reads the whole transaction collection for one run. A
	// missing or malformed source is a hard error; individual dirty rows
	// are loaded with zero-value fields and logged, not dropped.
	Loader interface {
		Load(ctx context.Context) (core.Ledger, error)
	}
)

// Column names of the source spreadsheet. The loader resolves columns by
// header, never by position, so reordered exports keep working.
const (
	ColDate        = "Дата операции"
	ColAmount      = "Сумма платежа"
	ColCategory    = "Категория"
	ColDescription = "Описание"
	ColCard        = "Номер карты"
)
