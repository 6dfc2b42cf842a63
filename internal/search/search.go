// Package search implements the text and pattern classifiers over the raw
// transaction collection: keyword search, phone-number detection and
// personal-transfer detection.
package search

import (
	"regexp"
	"strings"

	"kopilka/internal/core"
	"kopilka/internal/log"
)

// transfersCategory is the exact category of person-to-person transfers,
// compared case-insensitively.
const transfersCategory = "переводы"

var (
	// Russian mobile format only: +7, then 3-3-2-2 digit groups with
	// optional space or hyphen separators. "+79994445566" and
	// "+7 999-444-55-66" match, "+1 999 444 5566" does not.
	phonePattern = regexp.MustCompile(`\+7\s?\d{3}[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}`)

	// A personal name token: capitalized Cyrillic word, space, capitalized
	// Cyrillic initial with a trailing period ("Иван С.").
	personPattern = regexp.MustCompile(`[А-ЯЁ][а-яё]+\s[А-ЯЁ]\.`)
)

// Service runs the classifiers. The ledger is only read.
type Service struct {
	log *log.Logger
}

func NewService(logger *log.Logger) *Service {
	return &Service{log: logger.WithComponent(log.ComponentSearch)}
}

// Simple returns the transactions whose category or description contains
// query, case-insensitively, in source order. No match is an empty result,
// never an error.
func (s *Service) Simple(query string, records core.Ledger) core.Ledger {
	q := strings.ToLower(query)
	result := make(core.Ledger, 0)
	for _, tx := range records {
		if strings.Contains(strings.ToLower(tx.Category), q) ||
			strings.Contains(strings.ToLower(tx.Description), q) {
			result = append(result, tx)
		}
	}
	s.log.Info("simple search done",
		log.FieldQuery, query,
		log.FieldCount, len(result))
	return result
}

// PhoneTransactions returns the transactions whose description contains a
// Russian mobile phone number.
func (s *Service) PhoneTransactions(records core.Ledger) core.Ledger {
	result := make(core.Ledger, 0)
	for _, tx := range records {
		if phonePattern.MatchString(tx.Description) {
			result = append(result, tx)
		}
	}
	s.log.Info("phone search done", log.FieldCount, len(result))
	return result
}

// PersonalTransfers returns the transfer transactions addressed to a person:
// the category is exactly "переводы" (case-insensitive) and the description
// carries a capitalized Cyrillic name with an initial.
func (s *Service) PersonalTransfers(records core.Ledger) core.Ledger {
	result := make(core.Ledger, 0)
	for _, tx := range records {
		if strings.EqualFold(tx.Category, transfersCategory) &&
			personPattern.MatchString(tx.Description) {
			result = append(result, tx)
		}
	}
	s.log.Info("personal transfer search done", log.FieldCount, len(result))
	return result
}
