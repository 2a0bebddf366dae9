package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
	"lexibot/internal/translator"
)

// PayloadSeparator packs an answer callback as "<chosen>_<correct>".
// Words containing it are rejected on input so the packed payload always
// splits back into exactly two parts.
const PayloadSeparator = "_"

// maxTranslationBytes bounds one side of the packed answer payload.
// Telegram caps callback data at 64 bytes and a payload carries two
// translations plus the separator, so each side gets at most 31 bytes.
const maxTranslationBytes = 31

// ErrInvalidWord marks user input that fails validation
var ErrInvalidWord = fmt.Errorf("invalid word")

// WordService handles word-related business logic
type WordService struct {
	wordRepo         repository.WordRepository
	translator       translator.Translator
	translateTimeout time.Duration
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, tr translator.Translator, translateTimeout time.Duration) *WordService {
	return &WordService{
		wordRepo:         wordRepo,
		translator:       tr,
		translateTimeout: translateTimeout,
	}
}

// AddWord normalizes the word, translates it and stores the pair in the
// user's personal pool. The translation call is bounded by a deadline and
// happens before any store access, so no connection is held while the
// external call is in flight. Returns the stored pair.
func (s *WordService) AddWord(ctx context.Context, userID int64, text string) (*domain.WordPair, error) {
	word := NormalizeWord(text)
	if err := validateWord(word); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.translateTimeout)
	defer cancel()

	translation, err := s.translator.Translate(ctx, word)
	if err != nil {
		return nil, err
	}
	if err := validateTranslation(translation); err != nil {
		return nil, fmt.Errorf("%w: bad translation %q", domain.ErrTranslationFailed, translation)
	}

	if err := s.wordRepo.AddPersonalWord(userID, word, translation); err != nil {
		return nil, err
	}

	return &domain.WordPair{Word: word, Translation: translation}, nil
}

// DeleteWord removes the word from the user's personal pool, matching the
// trimmed text exactly. Returns domain.ErrNotFound when nothing matched.
func (s *WordService) DeleteWord(userID int64, text string) error {
	word := strings.TrimSpace(text)
	if word == "" {
		return fmt.Errorf("%w: empty", ErrInvalidWord)
	}

	count, err := s.wordRepo.DeletePersonalWord(userID, word)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWords returns the user's personal pool
func (s *WordService) ListWords(userID int64) ([]domain.WordPair, error) {
	return s.wordRepo.ListPersonalWords(userID)
}

// NormalizeWord trims the text, uppercases the first letter and
// lowercases the rest.
func NormalizeWord(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

func validateWord(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	if utf8.RuneCountInString(word) > domain.MaxWordLen {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidWord, domain.MaxWordLen)
	}
	if strings.Contains(word, PayloadSeparator) {
		return fmt.Errorf("%w: contains %q", ErrInvalidWord, PayloadSeparator)
	}
	return nil
}

// validateTranslation additionally caps bytes, not just runes: only
// translations ride in callback payloads, and a multibyte 30-rune value
// would blow the 64-byte callback-data limit.
func validateTranslation(translation string) error {
	if err := validateWord(translation); err != nil {
		return err
	}
	if len(translation) > maxTranslationBytes {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidWord, maxTranslationBytes)
	}
	return nil
}
