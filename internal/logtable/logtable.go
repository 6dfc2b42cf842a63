// Package logtable converts the activity log into a flat CSV table with
// date, level and message columns.
package logtable

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"kopilka/internal/log"
)

// linePattern matches slog text-handler lines: time=<ts> level=<LEVEL>
// msg=<message>, message quoted when it contains spaces.
var linePattern = regexp.MustCompile(`^time=(\S+) level=(\S+) msg=("(?:[^"\\]|\\.)*"|\S+)`)

type Converter struct {
	log *log.Logger
}

func NewConverter(logger *log.Logger) *Converter {
	return &Converter{log: logger.WithComponent(log.ComponentLogTable)}
}

// Convert parses logPath and writes the table to outPath. It returns the
// number of converted rows; an empty or fully unparseable log writes no
// file and is not an error.
func (c *Converter) Convert(logPath, outPath string) (int, error) {
	f, err := os.Open(logPath)
	if err != nil {
		return 0, fmt.Errorf("open activity log %s: %w", logPath, err)
	}
	defer f.Close()

	var rows [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := linePattern.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		msg := m[3]
		if len(msg) > 0 && msg[0] == '"' {
			if unquoted, err := strconv.Unquote(msg); err == nil {
				msg = unquoted
			}
		}
		rows = append(rows, []string{m[1], m[2], msg})
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("read activity log %s: %w", logPath, err)
	}

	if len(rows) == 0 {
		c.log.Warn("activity log has no parseable lines", log.FieldFile, logPath)
		return 0, nil
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create log table %s: %w", outPath, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"Дата", "Уровень", "Сообщение"}); err != nil {
		return 0, fmt.Errorf("write log table header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("write log table rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("flush log table: %w", err)
	}

	c.log.Info("activity log converted",
		log.FieldFile, outPath,
		log.FieldCount, len(rows))
	return len(rows), nil
}
