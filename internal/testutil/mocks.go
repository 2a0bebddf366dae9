package testutil

import (
	"context"

	"lexibot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

// MockWordRepository is a mock for repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) AddPersonalWord(userID int64, word, translation string) error {
	args := m.Called(userID, word, translation)
	return args.Error(0)
}

func (m *MockWordRepository) DeletePersonalWord(userID int64, word string) (int64, error) {
	args := m.Called(userID, word)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) ListPersonalWords(userID int64) ([]domain.WordPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockWordRepository) PickRandomPair(userID int64) (*domain.WordPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordPair), args.Error(1)
}

func (m *MockWordRepository) PickDistractors(userID int64, exclude string, n int) ([]string, error) {
	args := m.Called(userID, exclude, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTranslator is a mock for translator.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
