// Package settings reads the user settings file: the currency codes and
// stock tickers shown on the dashboards.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMissingKey marks a settings file without one of the required keys.
var ErrMissingKey = errors.New("missing required settings key")

// Settings are the user-configured dashboard symbols.
type Settings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}

// Loader reads settings for one run.
type Loader interface {
	Load() (Settings, error)
}

// FileLoader reads settings from a JSON file.
type FileLoader struct {
	path string
}

var _ Loader = (*FileLoader)(nil)

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Load parses the settings file. Both keys are required; a missing key is
// a precondition error, not a silent empty list.
func (l *FileLoader) Load() (Settings, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", l.path, err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", l.path, err)
	}
	for _, key := range []string{"user_currencies", "user_stocks"} {
		if _, ok := keys[key]; !ok {
			return Settings{}, fmt.Errorf("settings %s: %w: %s", l.path, ErrMissingKey, key)
		}
	}

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", l.path, err)
	}
	return s, nil
}

// Static is a fixed in-memory settings source for tests.
type Static struct {
	Settings Settings
}

var _ Loader = (*Static)(nil)

func (s *Static) Load() (Settings, error) {
	return s.Settings, nil
}
