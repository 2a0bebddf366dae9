package repository

import (
	"lexibot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	RegisterUser(userID int64, username string) error
}

// WordRepository defines word data operations
type WordRepository interface {
	AddPersonalWord(userID int64, word, translation string) error
	DeletePersonalWord(userID int64, word string) (int64, error)
	ListPersonalWords(userID int64) ([]domain.WordPair, error)
	PickRandomPair(userID int64) (*domain.WordPair, error)
	PickDistractors(userID int64, exclude string, n int) ([]string, error)
}
