package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/example/vocabcli/internal/excel"
	"github.com/example/vocabcli/internal/quiz"
	"github.com/example/vocabcli/pkg/models"
)

// historyLimit caps how many quiz runs the stats command shows
const historyLimit = 10

// handleCommand executes one command line. It returns true when the shell
// should terminate.
func (a *App) handleCommand(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "cr":
		a.handleCreateTopic(args)
	case "add":
		a.handleAddItem(args)
	case "voc":
		a.handleQuiz(args)
	case "imp":
		a.handleImport(args)
	case "top":
		a.handleListTopics()
	case "stats":
		a.handleStats(args)
	case "help":
		a.printOptions()
	case "exit":
		a.printPadded("Goodbye!")
		return true
	default:
		a.printPadded("Invalid command. Type 'help' for options.")
	}
	return false
}

func (a *App) handleCreateTopic(args []string) {
	if len(args) < 1 {
		a.printPadded("Not enough arguments for the command")
		return
	}

	topic := args[0]
	switch err := a.engine.CreateTopic(topic); {
	case err == nil:
		a.printPadded(fmt.Sprintf("Topic %s created successfully!", topic))
	case errors.Is(err, quiz.ErrEmptyTopicName):
		a.printPadded("Error: Topic name cannot be empty")
	case errors.Is(err, quiz.ErrInvalidTopicName):
		a.printPadded("Error: Topic name contains invalid characters")
	case errors.Is(err, quiz.ErrTopicExists):
		a.printPadded(fmt.Sprintf("Error: Topic %s already exists", topic))
	default:
		a.printPadded(fmt.Sprintf("Error creating topic: %v", err))
	}
}

func (a *App) handleAddItem(args []string) {
	if len(args) < 1 {
		a.printPadded("Not enough arguments for the command")
		return
	}

	switch err := a.engine.AddItem(args[0]); {
	case err == nil:
		a.printPadded("Vocabulary item has been added successfully")
	case errors.Is(err, quiz.ErrTopicNotFound):
		a.printPadded("This topic does not exist yet")
	case errors.Is(err, quiz.ErrEmptyWord):
		a.printPadded("Word cannot be empty")
	case errors.Is(err, quiz.ErrEmptyTranslation):
		a.printPadded("Translation cannot be empty")
	default:
		a.printPadded(fmt.Sprintf("Error adding item: %v", err))
	}
}

func (a *App) handleQuiz(args []string) {
	if len(args) < 1 {
		a.printPadded("Not enough arguments for the command")
		return
	}

	summary, err := a.engine.RunQuiz(args[0])
	switch {
	case errors.Is(err, quiz.ErrTopicNotFound):
		a.printPadded("This topic does not exist yet")
		return
	case errors.Is(err, quiz.ErrNoItems):
		a.printPadded("No vocabulary items in this topic")
		return
	case err != nil:
		a.printPadded(fmt.Sprintf("Error running quiz: %v", err))
		return
	}

	fmt.Fprintf(a.out, "You answered %d of %d correctly\n\n", summary.Correct, summary.Total)

	if a.results == nil {
		return
	}
	result := &models.QuizResult{
		Topic:        summary.Topic,
		TotalWords:   summary.Total,
		CorrectWords: summary.Correct,
		Duration:     int(summary.Duration.Seconds()),
		TestDate:     time.Now(),
	}
	if err := a.results.Create(result); err != nil {
		log.Printf("Failed to record quiz result: %v", err)
	}
}

func (a *App) handleImport(args []string) {
	if len(args) < 2 {
		a.printPadded("Not enough arguments for the command")
		return
	}

	topic := args[0]
	config := excel.DefaultImportConfig()
	config.FilePath = args[1]

	result, err := excel.ImportWords(a.store, topic, config)
	if err != nil {
		a.printPadded(fmt.Sprintf("Import failed: %v", err))
		return
	}

	a.printPadded(fmt.Sprintf("Imported %d of %d rows into %s (%d skipped)",
		result.Created, result.TotalProcessed, topic, result.Skipped))
	for _, msg := range result.Errors {
		fmt.Fprintf(a.out, "- %s\n", msg)
	}
	if len(result.Errors) > 0 {
		fmt.Fprintln(a.out)
	}
}

func (a *App) handleListTopics() {
	topics, err := a.engine.Topics()
	if err != nil {
		a.printPadded(fmt.Sprintf("Error listing topics: %v", err))
		return
	}
	if len(topics) == 0 {
		a.printPadded("No topics exist yet")
		return
	}

	a.printPadded("Available topics:")
	for _, topic := range topics {
		fmt.Fprintf(a.out, "- %s\n", topic)
	}
	fmt.Fprintln(a.out)
}

func (a *App) handleStats(args []string) {
	if a.results == nil {
		a.printPadded("Quiz history is not available")
		return
	}

	var results []models.QuizResult
	var err error
	if len(args) > 0 {
		results, err = a.results.RecentByTopic(args[0], historyLimit)
	} else {
		results, err = a.results.Recent(historyLimit)
	}
	if err != nil {
		a.printPadded(fmt.Sprintf("Error loading quiz history: %v", err))
		return
	}
	if len(results) == 0 {
		a.printPadded("No quiz results yet")
		return
	}

	a.printPadded("Recent quiz runs:")
	total, correct := 0, 0
	for _, r := range results {
		fmt.Fprintf(a.out, "- %s  %s  %d/%d in %ds\n",
			r.TestDate.Format("2006-01-02 15:04"), r.Topic, r.CorrectWords, r.TotalWords, r.Duration)
		total += r.TotalWords
		correct += r.CorrectWords
	}
	if total > 0 {
		fmt.Fprintf(a.out, "\nAccuracy: %.0f%% (%d of %d)\n", float64(correct)/float64(total)*100, correct, total)
	}
	fmt.Fprintln(a.out)
}
