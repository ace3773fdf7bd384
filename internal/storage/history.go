package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Job statuses recorded in the history file.
const (
	StatusSuccess     = "success"
	StatusUnverified  = "unverified"
	StatusToolError   = "tool_error"
	StatusLaunchError = "launch_error"
)

type JobEntry struct {
	JobID      string `json:"jobId"`
	Timestamp  string `json:"timestamp"`
	Document   string `json:"document"`
	Alias      string `json:"alias,omitempty"`
	Output     string `json:"output,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"durationMs"`
}

// JobLogger appends signing jobs to a JSONL history file.
type JobLogger struct {
	mu       sync.Mutex
	filePath string
}

func NewJobLogger(dir string) (*JobLogger, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &JobLogger{
		filePath: filepath.Join(dir, "history.jsonl"),
	}, nil
}

func (l *JobLogger) Log(entry JobEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.Timestamp = time.Now().Format(time.RFC3339)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write history entry: %w", err)
	}
	return nil
}

// ReadAll returns every decodable entry, oldest first. Corrupt lines are
// skipped.
func (l *JobLogger) ReadAll() ([]JobEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []JobEntry{}, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	var entries []JobEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry JobEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("scan history file: %w", err)
	}
	return entries, nil
}
