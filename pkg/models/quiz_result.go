package models

import "time"

// QuizResult represents the outcome of a single quiz run over a topic
type QuizResult struct {
	ID           int64     `json:"id" db:"id"`
	Topic        string    `json:"topic" db:"topic"`
	TotalWords   int       `json:"total_words" db:"total_words"`
	CorrectWords int       `json:"correct_words" db:"correct_words"`
	Duration     int       `json:"duration" db:"duration"` // seconds
	TestDate     time.Time `json:"test_date" db:"test_date"`
}
