package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Turn is one question/answer pair in a chat session
type Turn struct {
	At       time.Time `json:"at"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}

// Transcript records an interactive session for later review. It is a
// write-only artifact: answering never reads it.
type Transcript struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
	DataFile  string    `json:"data_file"`
	Turns     []Turn    `json:"turns"`
}

// NewTranscript starts a transcript for a fresh session
func NewTranscript(dataFile string) *Transcript {
	return &Transcript{
		SessionID: uuid.NewString(),
		StartedAt: time.Now(),
		DataFile:  dataFile,
	}
}

// Append records one completed turn
func (t *Transcript) Append(question, reply string) {
	t.Turns = append(t.Turns, Turn{
		At:       time.Now(),
		Question: question,
		Answer:   reply,
	})
}

// Save writes the transcript as JSON under dir and returns the file path.
// Empty sessions are not saved.
func (t *Transcript) Save(dir string) (string, error) {
	if len(t.Turns) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create results directory: %w", err)
	}

	name := fmt.Sprintf("chat_%s_%s.json",
		t.StartedAt.Format("20060102_150405"), t.SessionID)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}
