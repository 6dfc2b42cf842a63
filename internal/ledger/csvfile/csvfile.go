// Package csvfile loads the transaction ledger from a CSV export of the
// bank operations spreadsheet.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"kopilka/internal/core"
	"kopilka/internal/ledger"
	"kopilka/internal/log"
)

type Loader struct {
	path string
	log  *log.Logger
}

var _ ledger.Loader = (*Loader)(nil)

func New(path string, logger *log.Logger) *Loader {
	return &Loader{path: path, log: logger.WithComponent(log.ComponentLedger)}
}

// Load reads and parses the whole file. A missing file or an unreadable
// CSV structure is a hard error; dirty rows are tolerated by ParseRows.
func (l *Loader) Load(ctx context.Context) (core.Ledger, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open operations file %s: %w", l.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // bank exports pad rows inconsistently

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header from %s: %w", l.path, err)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record from %s: %w", l.path, err)
		}
		rows = append(rows, record)
	}

	out, err := ledger.ParseRows(headers, rows, l.log)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}
	l.log.Info("operations loaded",
		log.FieldFile, l.path,
		log.FieldCount, len(out))
	return out, nil
}
