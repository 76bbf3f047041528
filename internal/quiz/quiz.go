package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/example/vocabcli/pkg/models"
)

// scoreStep is how much one quiz answer moves a memorization score
const scoreStep = 0.1

// Error kinds reported back to the command shell
var (
	ErrEmptyTopicName   = errors.New("topic name cannot be empty")
	ErrInvalidTopicName = errors.New("topic name contains invalid characters")
	ErrTopicExists      = errors.New("topic already exists")
	ErrTopicNotFound    = errors.New("topic does not exist")
	ErrEmptyWord        = errors.New("word cannot be empty")
	ErrEmptyTranslation = errors.New("translation cannot be empty")
	ErrNoItems          = errors.New("no vocabulary items in topic")
)

// Store is the persistence surface the engine depends on. *storage.Manager
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	TopicExists(topic string) bool
	Load(topic string) ([]models.VocabularyItem, bool)
	Save(topic string, items []models.VocabularyItem) error
	CreateTopic(topic string) error
	Append(topic string, item models.VocabularyItem) error
	Topics() ([]string, error)
}

// LineReader yields user input one line at a time. It abstracts the
// interactive input stream so the engine can be driven by scripted input.
type LineReader interface {
	ReadLine() (string, error)
}

// ScanLineReader reads lines from an io.Reader through a single buffer, so
// the command shell and the engine can share one input stream
type ScanLineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader wraps r in a line-by-line reader
func NewLineReader(r io.Reader) *ScanLineReader {
	return &ScanLineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next input line without its trailing newline. It
// returns io.EOF once the stream is exhausted.
func (l *ScanLineReader) ReadLine() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.scanner.Text(), nil
}

// Engine runs the interactive vocabulary operations against a Store
type Engine struct {
	store Store
	in    LineReader
	out   io.Writer
}

// New creates an engine reading answers from in and printing to out
func New(store Store, in LineReader, out io.Writer) *Engine {
	return &Engine{store: store, in: in, out: out}
}

// Summary reports the outcome of one quiz pass
type Summary struct {
	Topic    string
	Total    int
	Correct  int
	Duration time.Duration
}

// CreateTopic creates a new empty topic
func (e *Engine) CreateTopic(topic string) error {
	name := strings.TrimSpace(topic)
	if name == "" {
		return ErrEmptyTopicName
	}
	// Topic names map directly to file names
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidTopicName
	}
	if e.store.TopicExists(name) {
		return ErrTopicExists
	}
	return e.store.CreateTopic(name)
}

// AddItem interactively collects a word, its translation and any number of
// context sentences, then appends the new item to the topic
func (e *Engine) AddItem(topic string) error {
	if !e.store.TopicExists(topic) {
		return ErrTopicNotFound
	}

	fmt.Fprint(e.out, "Enter the word: ")
	word, err := e.readTrimmedLine()
	if err != nil {
		return err
	}
	if word == "" {
		return ErrEmptyWord
	}

	fmt.Fprint(e.out, "Enter the translation: ")
	translation, err := e.readTrimmedLine()
	if err != nil {
		return err
	}
	if translation == "" {
		return ErrEmptyTranslation
	}

	contexts, err := e.readContexts()
	if err != nil {
		return err
	}

	return e.store.Append(topic, models.VocabularyItem{
		Word:        word,
		Translation: translation,
		Contexts:    contexts,
	})
}

// RunQuiz asks the user to translate every word of a topic, most memorized
// first, adjusting each memorization score by scoreStep per answer. The
// updated list is persisted in a single write after the full pass.
func (e *Engine) RunQuiz(topic string) (*Summary, error) {
	if !e.store.TopicExists(topic) {
		return nil, ErrTopicNotFound
	}

	items, _ := e.store.Load(topic)
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	start := time.Now()
	correct := 0

	for i := range items {
		for j, context := range items[i].Contexts {
			fmt.Fprintf(e.out, "%d. %s\n\n", j+1, context)
		}

		fmt.Fprintf(e.out, "Word: %s\n", items[i].Word)
		fmt.Fprint(e.out, "Provide a correct translation: ")

		answer, err := e.in.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("failed to read answer: %v", err)
		}

		if normalize(answer) == normalize(items[i].Translation) {
			fmt.Fprintln(e.out, "CORRECT!")
			items[i].Memorization = math.Min(1.0, items[i].Memorization+scoreStep)
			correct++
		} else {
			fmt.Fprintf(e.out, "WRONG! Correct: %s\n", items[i].Translation)
			items[i].Memorization = math.Max(0.0, items[i].Memorization-scoreStep)
		}
		fmt.Fprintln(e.out)
	}

	// Items are written back in the order they were asked, not re-sorted
	// by the updated scores
	if err := e.store.Save(topic, items); err != nil {
		return nil, err
	}

	return &Summary{
		Topic:    topic,
		Total:    len(items),
		Correct:  correct,
		Duration: time.Since(start),
	}, nil
}

// Topics returns the names of all stored topics
func (e *Engine) Topics() ([]string, error) {
	return e.store.Topics()
}

// readContexts collects example sentences until the first blank line
func (e *Engine) readContexts() ([]string, error) {
	fmt.Fprintln(e.out, "Enter context for the word (empty to finish):")

	contexts := []string{}
	for {
		fmt.Fprint(e.out, "> ")
		line, err := e.readTrimmedLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return contexts, nil
		}
		contexts = append(contexts, line)
	}
}

func (e *Engine) readTrimmedLine() (string, error) {
	line, err := e.in.ReadLine()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %v", err)
	}
	return strings.TrimSpace(line), nil
}

// normalize prepares both sides of an answer comparison: surrounding
// whitespace is ignored and the match is case-insensitive
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
