// Seeder for the shared word pool. Safe to run repeatedly: already
// present pairs are skipped.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"lexibot/internal/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var seedWords = [][2]string{
	{"красный", "red"},
	{"синий", "blue"},
	{"зелёный", "green"},
	{"жёлтый", "yellow"},
	{"чёрный", "black"},

	{"я", "I"},
	{"ты", "you"},
	{"он", "he"},
	{"она", "she"},
	{"мы", "we"},

	{"кошка", "cat"},
	{"собака", "dog"},
	{"птица", "bird"},
	{"рыба", "fish"},
	{"лошадь", "horse"},

	{"дом", "house"},
	{"книга", "book"},
	{"стол", "table"},
	{"стул", "chair"},
	{"телефон", "phone"},
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadDatabase()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to open database connection", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	inserted, err := seed(db)
	if err != nil {
		logger.Fatal("Failed to seed words", zap.Error(err))
	}

	logger.Info("Seeding complete",
		zap.Int64("inserted", inserted),
		zap.Int("total", len(seedWords)),
	)
}

func seed(db *sql.DB) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO words (word_ru, word_en)
		VALUES ($1, $2)
		ON CONFLICT (word_ru, word_en) DO NOTHING
	`

	var inserted int64
	for _, pair := range seedWords {
		res, err := tx.Exec(query, pair[0], pair[1])
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", pair[0], err)
		}
		count, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += count
	}

	return inserted, tx.Commit()
}
