package testutil

import (
	"lexibot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a test word pair
func NewTestPair(word, translation string) *domain.WordPair {
	return &domain.WordPair{
		Word:        word,
		Translation: translation,
	}
}
