package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"

	"lexibot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWordRepo_AddPersonalWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)
	word := "Стол"
	translation := "table"

	mock.ExpectExec("INSERT INTO user_words").
		WithArgs(word, translation, userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AddPersonalWord(userID, word, translation)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_DeletePersonalWord(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		mockResult    driver.Result
		mockError     error
		expectedCount int64
		expectedError bool
	}{
		{
			name:          "word deleted",
			word:          "Стол",
			mockResult:    sqlmock.NewResult(0, 1),
			expectedCount: 1,
		},
		{
			name:          "word not present",
			word:          "Небо",
			mockResult:    sqlmock.NewResult(0, 0),
			expectedCount: 0,
		},
		{
			name:          "database error",
			word:          "Стол",
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			userID := int64(123)

			if tt.mockError != nil {
				mock.ExpectExec("DELETE FROM user_words").
					WithArgs(tt.word, userID).
					WillReturnError(tt.mockError)
			} else {
				mock.ExpectExec("DELETE FROM user_words").
					WithArgs(tt.word, userID).
					WillReturnResult(tt.mockResult)
			}

			count, err := repo.DeletePersonalWord(userID, tt.word)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_ListPersonalWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)

	rows := sqlmock.NewRows([]string{"word_ru", "word_en"}).
		AddRow("Стол", "table").
		AddRow("Кошка", "cat")

	mock.ExpectQuery("SELECT word_ru, word_en FROM user_words WHERE user_id = \\$1").
		WithArgs(userID).
		WillReturnRows(rows)

	pairs, err := repo.ListPersonalWords(userID)

	assert.NoError(t, err)
	assert.Len(t, pairs, 2)
	assert.Equal(t, domain.WordPair{Word: "Стол", Translation: "table"}, pairs[0])
	assert.Equal(t, domain.WordPair{Word: "Кошка", Translation: "cat"}, pairs[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_ListPersonalWords_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(456)

	rows := sqlmock.NewRows([]string{"word_ru", "word_en"})

	mock.ExpectQuery("SELECT word_ru, word_en FROM user_words WHERE user_id = \\$1").
		WithArgs(userID).
		WillReturnRows(rows)

	pairs, err := repo.ListPersonalWords(userID)

	assert.NoError(t, err)
	assert.Empty(t, pairs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_PickRandomPair(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedPair  *domain.WordPair
		expectedError error
	}{
		{
			name:   "pair found",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"word_ru", "word_en"}).
				AddRow("Стол", "table"),
			expectedPair: &domain.WordPair{Word: "Стол", Translation: "table"},
		},
		{
			name:          "empty pool",
			userID:        456,
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrEmptyPool,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: fmt.Errorf("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			query := "SELECT word_ru, word_en FROM \\( SELECT word_ru, word_en FROM user_words WHERE user_id = \\$1 UNION SELECT word_ru, word_en FROM words \\) AS combined ORDER BY RANDOM\\(\\) LIMIT 1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			pair, err := repo.PickRandomPair(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, pair)
				if tt.expectedError == domain.ErrEmptyPool {
					assert.ErrorIs(t, err, domain.ErrEmptyPool)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPair, pair)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_PickDistractors(t *testing.T) {
	tests := []struct {
		name     string
		mockRows *sqlmock.Rows
		expected []string
	}{
		{
			name: "full set",
			mockRows: sqlmock.NewRows([]string{"word_en"}).
				AddRow("cat").
				AddRow("dog").
				AddRow("bird"),
			expected: []string{"cat", "dog", "bird"},
		},
		{
			name: "short pool returns fewer",
			mockRows: sqlmock.NewRows([]string{"word_en"}).
				AddRow("cat"),
			expected: []string{"cat"},
		},
		{
			name:     "nothing eligible",
			mockRows: sqlmock.NewRows([]string{"word_en"}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			userID := int64(123)
			exclude := "table"
			n := 3

			mock.ExpectQuery("SELECT word_en FROM \\( SELECT word_en FROM user_words WHERE user_id = \\$1 UNION SELECT word_en FROM words \\) AS combined WHERE word_en != \\$2 ORDER BY RANDOM\\(\\) LIMIT \\$3").
				WithArgs(userID, exclude, n).
				WillReturnRows(tt.mockRows)

			options, err := repo.PickDistractors(userID, exclude, n)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, options)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_PickDistractors_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT word_en FROM").
		WithArgs(int64(123), "table", 3).
		WillReturnError(fmt.Errorf("query error"))

	options, err := repo.PickDistractors(123, "table", 3)

	assert.Error(t, err)
	assert.Nil(t, options)
	assert.NoError(t, mock.ExpectationsWereMet())
}
