package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"kopilka/internal/core"
	"kopilka/internal/log"
)

// ParseRows converts a header row plus value rows (as read from a CSV file
// or the Sheets API) into a Ledger. A missing required column is a hard
// error. A row whose date or amount does not parse is kept with the
// zero value for that field and logged as a warning; searches still see
// the row while date/amount scans skip it.
func ParseRows(headers []string, rows [][]string, logger *log.Logger) (core.Ledger, error) {
	colDate := indexOf(headers, ColDate)
	colAmount := indexOf(headers, ColAmount)
	colCategory := indexOf(headers, ColCategory)
	colDescription := indexOf(headers, ColDescription)
	colCard := indexOf(headers, ColCard) // optional

	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{
		{ColDate, colDate},
		{ColAmount, colAmount},
		{ColCategory, colCategory},
		{ColDescription, colDescription},
	} {
		if c.idx == -1 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("ledger source is missing columns %s; got headers %v",
			strings.Join(missing, ", "), headers)
	}

	l := make(core.Ledger, 0, len(rows))
	for i, row := range rows {
		tx := core.Transaction{
			Category:    strings.TrimSpace(safeGet(row, colCategory)),
			Description: strings.TrimSpace(safeGet(row, colDescription)),
			CardNumber:  strings.TrimSpace(safeGet(row, colCard)),
		}

		rawDate := safeGet(row, colDate)
		tx.Date = core.ParseRowDate(rawDate)
		if tx.Date.IsZero() {
			logger.Warn("row date not parseable", log.FieldRow, i+1, "value", rawDate)
		}

		rawAmount := safeGet(row, colAmount)
		amount, ok := parseAmount(rawAmount)
		if !ok {
			logger.Warn("row amount not parseable", log.FieldRow, i+1, "value", rawAmount)
		}
		tx.Amount = amount

		l = append(l, tx)
	}
	return l, nil
}

// parseAmount accepts dot or comma decimal separators.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
