package ssh

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var _ tcell.Tty = (*SessionTty)(nil)

func TestResolveTerm(t *testing.T) {
	cases := []struct {
		name    string
		pty     string
		environ []string
		want    string
	}{
		{"pty wins", "screen-256color", []string{"TERM=xterm"}, "screen-256color"},
		{"from environ", "", []string{"LANG=C", "TERM=tmux-256color"}, "tmux-256color"},
		{"missing", "", nil, DefaultTerm},
		{"not allowed", "dumb", nil, DefaultTerm},
		{"path tricks", "../../etc/passwd", nil, DefaultTerm},
		{"unlisted variant", "xterm-kitty", nil, DefaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveTerm(tc.pty, tc.environ); got != tc.want {
				t.Errorf("resolveTerm(%q, %v) = %q; want %q", tc.pty, tc.environ, got, tc.want)
			}
		})
	}
}

func TestWindowSizeFollowsResize(t *testing.T) {
	winCh := make(chan gossh.Window, 1)
	tty := NewSessionTty(nil, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	ws, _ := tty.WindowSize()
	if ws.Width != 80 || ws.Height != 24 {
		t.Errorf("WindowSize() = %dx%d; want 80x24", ws.Width, ws.Height)
	}

	var calls atomic.Int32
	tty.NotifyResize(func() { calls.Add(1) })
	tty.NotifyResize(func() { calls.Add(1) }) // re-registering must not start a second reader

	winCh <- gossh.Window{Width: 120, Height: 40}
	close(winCh)

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if calls.Load() != 1 {
		t.Errorf("resize callbacks = %d; want 1", calls.Load())
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("WindowSize() = %dx%d; want 120x40", ws.Width, ws.Height)
	}
}
