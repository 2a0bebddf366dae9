package service

import (
	"math/rand"

	"lexibot/internal/domain"
	"lexibot/internal/repository"
)

// numDistractors is how many wrong options accompany the correct answer
const numDistractors = 3

// QuizService selects quiz questions with plausible distractors
type QuizService struct {
	wordRepo repository.WordRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo repository.WordRepository) *QuizService {
	return &QuizService{wordRepo: wordRepo}
}

// GenerateQuestion builds one multiple-choice round for the user: a random
// pair from the combined pool plus up to three distractors, shuffled so no
// position is favored. A tiny pool degrades to fewer options rather than
// padding. Propagates domain.ErrEmptyPool when the user has no words at all.
func (s *QuizService) GenerateQuestion(userID int64) (*domain.QuizQuestion, error) {
	pair, err := s.wordRepo.PickRandomPair(userID)
	if err != nil {
		return nil, err
	}

	distractors, err := s.wordRepo.PickDistractors(userID, pair.Translation, numDistractors)
	if err != nil {
		return nil, err
	}

	options := append(distractors, pair.Translation)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.QuizQuestion{
		Prompt:  pair.Word,
		Correct: pair.Translation,
		Options: options,
	}, nil
}

// CheckAnswer reports whether the chosen option is the correct one. Both
// values travel inside the callback payload, so no lookup is needed.
func (s *QuizService) CheckAnswer(chosen, correct string) bool {
	return chosen == correct
}
