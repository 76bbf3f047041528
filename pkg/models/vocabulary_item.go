package models

// VocabularyItem represents a word to be learned within a topic
type VocabularyItem struct {
	Word         string   `json:"word"`
	Translation  string   `json:"translation"`
	Contexts     []string `json:"contexts"`
	Memorization float64  `json:"memorization"` // 0.0-1.0 recall confidence, adjusted per quiz answer
}
