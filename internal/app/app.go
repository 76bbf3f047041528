package app

import (
	"fmt"
	"io"

	"github.com/example/vocabcli/internal/quiz"
	"github.com/example/vocabcli/internal/storage"
	"github.com/example/vocabcli/pkg/models"
)

// ResultRecorder persists quiz outcomes for the stats command
type ResultRecorder interface {
	Create(result *models.QuizResult) error
	Recent(limit int) ([]models.QuizResult, error)
	RecentByTopic(topic string, limit int) ([]models.QuizResult, error)
}

// App is the line-oriented command shell
type App struct {
	engine  *quiz.Engine
	store   *storage.Manager
	results ResultRecorder
	in      quiz.LineReader
	out     io.Writer
}

// New creates the command shell. The shell and the engine must share the
// same LineReader so prompts and commands consume one input stream.
// results may be nil, which disables quiz history.
func New(engine *quiz.Engine, store *storage.Manager, results ResultRecorder, in quiz.LineReader, out io.Writer) *App {
	return &App{
		engine:  engine,
		store:   store,
		results: results,
		in:      in,
		out:     out,
	}
}

// Run processes commands until exit or end of input
func (a *App) Run() {
	a.printOptions()
	for {
		fmt.Fprint(a.out, "> ")
		line, err := a.in.ReadLine()
		if err != nil {
			a.printPadded("Goodbye!")
			return
		}
		if a.handleCommand(line) {
			return
		}
	}
}

// printOptions displays all available commands to the user
func (a *App) printOptions() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, " - [cr    <Topic>        ] - Create a new topic")
	fmt.Fprintln(a.out, " - [add   <Topic>        ] - Add word to dictionary")
	fmt.Fprintln(a.out, " - [voc   <Topic>        ] - Vocabulary test")
	fmt.Fprintln(a.out, " - [imp   <Topic> <File> ] - Import words from xlsx/csv")
	fmt.Fprintln(a.out, " - [top                  ] - See all topics")
	fmt.Fprintln(a.out, " - [stats [Topic]        ] - Show quiz history")
	fmt.Fprintln(a.out, " - [help                 ] - Print all options")
	fmt.Fprintln(a.out, " - [exit                 ] - Exit application")
	fmt.Fprintln(a.out)
}

// printPadded prints a message with vertical padding
func (a *App) printPadded(message string) {
	fmt.Fprintf(a.out, "\n%s\n\n", message)
}
