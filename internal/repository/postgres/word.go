package postgres

import (
	"database/sql"

	"lexibot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// AddPersonalWord inserts a word-translation pair into the user's personal
// pool. Duplicates are allowed.
func (r *WordRepo) AddPersonalWord(userID int64, word, translation string) error {
	query := `
		INSERT INTO user_words (word_ru, word_en, user_id)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, word, translation, userID)
	return err
}

// DeletePersonalWord removes entries matching the word exactly, scoped to
// the user. Returns the number of rows removed.
func (r *WordRepo) DeletePersonalWord(userID int64, word string) (int64, error) {
	query := `
		DELETE FROM user_words
		WHERE word_ru = $1 AND user_id = $2
	`
	res, err := r.db.Exec(query, word, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListPersonalWords returns all pairs from the user's personal pool
func (r *WordRepo) ListPersonalWords(userID int64) ([]domain.WordPair, error) {
	query := `
		SELECT word_ru, word_en
		FROM user_words
		WHERE user_id = $1
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.WordPair
	for rows.Next() {
		var p domain.WordPair
		if err := rows.Scan(&p.Word, &p.Translation); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, rows.Err()
}

// PickRandomPair selects one pair uniformly from the union of the shared
// pool and the user's personal pool. Returns domain.ErrEmptyPool when the
// union is empty.
func (r *WordRepo) PickRandomPair(userID int64) (*domain.WordPair, error) {
	var p domain.WordPair
	query := `
		SELECT word_ru, word_en
		FROM (
			SELECT word_ru, word_en FROM user_words WHERE user_id = $1
			UNION
			SELECT word_ru, word_en FROM words
		) AS combined
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(&p.Word, &p.Translation)

	if err == sql.ErrNoRows {
		return nil, domain.ErrEmptyPool
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// PickDistractors samples up to n distinct translations from the union
// pool, excluding the given value. The UNION deduplicates, so the result
// carries no repeats; it may be shorter than n when the pool is small.
func (r *WordRepo) PickDistractors(userID int64, exclude string, n int) ([]string, error) {
	query := `
		SELECT word_en
		FROM (
			SELECT word_en FROM user_words WHERE user_id = $1
			UNION
			SELECT word_en FROM words
		) AS combined
		WHERE word_en != $2
		ORDER BY RANDOM()
		LIMIT $3
	`
	rows, err := r.db.Query(query, userID, exclude, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var opt string
		if err := rows.Scan(&opt); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}
