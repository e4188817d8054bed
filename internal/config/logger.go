package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger builds a text logger at the configured level. Records go to
// Log.File when set, else to w; a nil w discards them. The returned close
// func releases the file, if any.
func (l Log) NewLogger(w io.Writer) (*slog.Logger, func() error, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	noop := func() error { return nil }
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("config: log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f.Close, nil
	}
	if w == nil {
		return slog.New(slog.DiscardHandler), noop, nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), noop, nil
}
