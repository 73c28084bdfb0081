package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dyike/finchat/internal/config"
	"github.com/dyike/finchat/internal/dataset"
)

// InteractiveSession runs the chat read loop over stdin
type InteractiveSession struct {
	config     *config.Config
	store      *dataset.Store
	bot        *Bot
	reader     *bufio.Reader
	transcript *Transcript
}

// NewInteractiveSession creates a session over a loaded store
func NewInteractiveSession(cfg *config.Config, store *dataset.Store) *InteractiveSession {
	return &InteractiveSession{
		config:     cfg,
		store:      store,
		bot:        NewBot(cfg, store),
		reader:     bufio.NewReader(os.Stdin),
		transcript: NewTranscript(cfg.DataFile),
	}
}

// Start shows the banner and runs the loop until exit or end-of-input
func (s *InteractiveSession) Start() error {
	DisplayWelcomeBanner()

	for {
		fmt.Print("You: ")

		line, err := s.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return s.finish()
			}
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if done := s.handleLine(line); done {
			return s.finish()
		}
		fmt.Println()
	}
}

// handleLine dispatches one input line; true means the session is over
func (s *InteractiveSession) handleLine(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "q":
		return true

	case "help", "h", "?":
		s.showHelp()

	case "data":
		fmt.Println(RenderDataTable(s.store))

	case "examples":
		question, err := PromptForExample()
		if err != nil {
			fmt.Println(errorStyle.Render("Could not read selection."))
			return false
		}
		fmt.Printf("You: %s\n", question)
		s.answer(question)

	case "clear", "cls":
		ClearScreen()

	default:
		s.answer(line)
	}
	return false
}

func (s *InteractiveSession) answer(question string) {
	reply := s.bot.Answer(question)
	fmt.Println(botStyle.Render("Bot: " + reply))
	s.transcript.Append(question, reply)
}

func (s *InteractiveSession) showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  data       - show the loaded dataset")
	fmt.Println("  examples   - pick an example question")
	fmt.Println("  clear      - clear the screen")
	fmt.Println("  help       - show this help")
	fmt.Println("  exit       - leave the chat")
	fmt.Println()
	fmt.Println("Anything else is treated as a question, e.g.:")
	for _, q := range ExampleQuestions {
		fmt.Println(hintStyle.Render("  - " + q))
	}
}

// finish saves the transcript (when enabled) and says goodbye
func (s *InteractiveSession) finish() error {
	fmt.Println("Bot: Goodbye.")

	if !s.config.SaveTranscripts {
		return nil
	}
	path, err := s.transcript.Save(s.config.ResultsDir)
	if err != nil {
		fmt.Println(errorStyle.Render("Could not save transcript: " + err.Error()))
		return nil
	}
	if path != "" {
		fmt.Println(hintStyle.Render("Transcript saved to " + path))
	}
	return nil
}
