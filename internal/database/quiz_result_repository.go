package database

import (
	"fmt"
	"strings"

	"github.com/example/vocabcli/pkg/models"
)

// QuizResultRepository handles database operations for quiz results
type QuizResultRepository struct{}

// NewQuizResultRepository creates a new repository instance
func NewQuizResultRepository() *QuizResultRepository {
	return &QuizResultRepository{}
}

// Create inserts a new quiz result
func (r *QuizResultRepository) Create(result *models.QuizResult) error {
	if DB.DriverName() == "postgres" {
		query := `
			INSERT INTO quiz_results (topic, total_words, correct_words, duration, test_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		return DB.QueryRow(
			query,
			result.Topic,
			result.TotalWords,
			result.CorrectWords,
			result.Duration,
			result.TestDate,
		).Scan(&result.ID)
	}

	// For SQLite (no RETURNING)
	query := `
		INSERT INTO quiz_results (topic, total_words, correct_words, duration, test_date)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := DB.Exec(
		query,
		result.Topic,
		result.TotalWords,
		result.CorrectWords,
		result.Duration,
		result.TestDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz result: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	result.ID = id

	return nil
}

// Recent returns the latest quiz results across all topics
func (r *QuizResultRepository) Recent(limit int) ([]models.QuizResult, error) {
	query := `
		SELECT id, topic, total_words, correct_words, duration, test_date
		FROM quiz_results
		ORDER BY test_date DESC, id DESC
		LIMIT ?
	`

	// Replace ? with $ for PostgreSQL if needed
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", 1)
	}

	results := []models.QuizResult{}
	if err := DB.Select(&results, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get quiz results: %v", err)
	}
	return results, nil
}

// RecentByTopic returns the latest quiz results for a single topic
func (r *QuizResultRepository) RecentByTopic(topic string, limit int) ([]models.QuizResult, error) {
	query := `
		SELECT id, topic, total_words, correct_words, duration, test_date
		FROM quiz_results
		WHERE topic = ?
		ORDER BY test_date DESC, id DESC
		LIMIT ?
	`

	// Replace ? with $ for PostgreSQL if needed
	if DB.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", 1)
		query = strings.Replace(query, "?", "$2", 1)
	}

	results := []models.QuizResult{}
	if err := DB.Select(&results, query, topic, limit); err != nil {
		return nil, fmt.Errorf("failed to get quiz results by topic: %v", err)
	}
	return results, nil
}
