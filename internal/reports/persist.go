package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kopilka/internal/log"
)

// Sink writes report results as JSON artifacts into a directory. Payloads
// are written as indented UTF-8 JSON with text preserved verbatim.
type Sink struct {
	dir string
	log *log.Logger
}

func NewSink(dir string, logger *log.Logger) *Sink {
	return &Sink{dir: dir, log: logger.WithComponent(log.ComponentPersist)}
}

// Write serializes v into dir/filename. The directory is created on demand.
func (s *Sink) Write(filename string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Saved decorates a report operation with opt-in persistence. The returned
// operation behaves exactly like fn when persist is false. When persist is
// true the result is additionally serialized to report_<op>.json in the
// sink; a failure there is logged and never surfaced, so the caller always
// receives fn's result.
func Saved[T any](sink *Sink, op string, fn func() (T, error)) func(persist bool) (T, error) {
	return SavedAs(sink, op, "report_"+op+".json", fn)
}

// SavedAs is Saved with an explicit artifact file name.
func SavedAs[T any](sink *Sink, op, filename string, fn func() (T, error)) func(persist bool) (T, error) {
	return func(persist bool) (T, error) {
		result, err := fn()
		if err != nil || !persist {
			return result, err
		}
		path, werr := sink.Write(filename, result)
		if werr != nil {
			sink.log.Error("report not saved",
				log.FieldOperation, op,
				log.FieldError, werr)
			return result, nil
		}
		sink.log.Info("report saved",
			log.FieldOperation, op,
			log.FieldArtifact, path)
		return result, nil
	}
}
