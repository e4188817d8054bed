package session

import (
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"time"
)

// RunLog records one run, from StartRun to EndRun.
type RunLog struct {
	Timestamp     time.Time      `json:"timestamp"`
	Hero          string         `json:"hero"`
	Duration      time.Duration  `json:"duration_ns"`
	Capacity      int            `json:"capacity"`
	Occupied      int            `json:"occupied"`
	Expansions    int            `json:"expansions"`
	Sorts         int            `json:"sorts"`
	ItemsLooted   map[string]int `json:"items_looted"`
	ItemsConsumed map[string]int `json:"items_consumed"`
	Discarded     int            `json:"discarded"`
	GoldEarned    int            `json:"gold_earned"`
	BestDrop      string         `json:"best_drop,omitempty"`
}

// EndRun summarizes the run so far. The session keeps counting afterwards.
func (s *Session) EndRun() RunLog {
	st := s.Stats()
	capacity, occupied := s.store.Capacity(), s.store.Occupied()

	s.mu.Lock()
	defer s.mu.Unlock()
	rl := RunLog{
		Timestamp:     time.Now(),
		Hero:          s.hero.ID,
		Duration:      time.Since(s.started),
		Capacity:      capacity,
		Occupied:      occupied,
		Expansions:    st.Expansions,
		Sorts:         s.sorts,
		ItemsLooted:   maps.Clone(s.looted),
		ItemsConsumed: maps.Clone(s.consumed),
		Discarded:     s.discarded,
		GoldEarned:    s.gold,
	}
	if s.best != nil {
		rl.BestDrop = s.best.Glyph + " " + s.best.DisplayName
	}
	return rl
}

// SaveRunLog appends rl as a single JSON line to runs.jsonl.
// Errors are logged but never returned: a disk problem must not end a game.
func SaveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(data)         //nolint:errcheck
	f.Write([]byte("\n")) //nolint:errcheck
}

// runLogDir is $XDG_DATA_HOME/emoji-stash, defaulting to
// ~/.local/share/emoji-stash.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "emoji-stash"), nil
}
