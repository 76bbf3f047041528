package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/vocabcli/internal/app"
	"github.com/example/vocabcli/internal/database"
	"github.com/example/vocabcli/internal/quiz"
	"github.com/example/vocabcli/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := app.ConfigFromEnv()

	if err := database.Connect(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// An interrupt terminates immediately; unsaved quiz progress is lost
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		database.Close()
		os.Exit(0)
	}()

	store := storage.New(cfg.TopicsDir)
	in := quiz.NewLineReader(os.Stdin)
	engine := quiz.New(store, in, os.Stdout)

	shell := app.New(engine, store, database.NewQuizResultRepository(), in, os.Stdout)
	shell.Run()
}
