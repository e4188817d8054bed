package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no PTY")

// DefaultTerm is used when the client's TERM is missing or not allowed.
const DefaultTerm = "xterm-256color"

// allowedTerms are the TERM values handed to terminfo as-is. Anything else
// falls back to DefaultTerm so a client cannot pick an arbitrary entry.
var allowedTerms = map[string]bool{
	"xterm": true, "xterm-color": true, "xterm-256color": true,
	"screen": true, "screen-256color": true,
	"tmux": true, "tmux-256color": true,
	"rxvt": true, "rxvt-unicode": true, "rxvt-unicode-256color": true,
	"linux": true, "vt100": true, "vt220": true, "ansi": true,
	"alacritty": true,
}

// termMu protects os.Setenv("TERM") around screen creation: terminfo lookup
// reads the process environment.
var termMu sync.Mutex

// resolveTerm picks the terminal type for a session: the PTY request's TERM
// first, then TERM from the session environment, then DefaultTerm.
func resolveTerm(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, env := range environ {
			if v, ok := strings.CutPrefix(env, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if allowedTerms[term] {
		return term
	}
	return DefaultTerm
}

// NewScreen creates and initializes a tcell screen drawing to s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := resolveTerm(pty.Term, s.Environ())

	tty := NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup (%s): %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
