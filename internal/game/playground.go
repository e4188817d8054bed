// Package game runs the interactive stash playground on a tcell screen.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"emoji-stash/internal/render"
	"emoji-stash/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Options configures a Playground.
type Options struct {
	Title   string
	Refresh time.Duration // periodic redraw; 0 disables it
	Seed    int64         // loot RNG seed; 0 uses the clock
	Logger  *slog.Logger
	// OnRunEnd receives the summary of every run that ends, on new run or quit.
	OnRunEnd func(session.RunLog)
}

// Playground drives one player's session from keyboard input.
type Playground struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sess     *session.Session
	rng      *rand.Rand
	opts     Options
	logger   *slog.Logger

	cursor   int
	mark     int
	messages []string
}

// New creates a Playground. The caller owns screen and must Init it.
func New(screen tcell.Screen, sess *session.Session, opts Options) *Playground {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Title == "" {
		opts.Title = "EMOJI STASH"
	}
	return &Playground{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		sess:     sess,
		rng:      rand.New(rand.NewSource(seed)),
		opts:     opts,
		logger:   logger,
		mark:     -1,
	}
}

// Run draws and handles input until the player quits or the screen is
// finalized. Changes other players make to a shared store trigger a redraw.
func (p *Playground) Run() {
	stopWatch := render.Watch(p.screen, p.sess.Store())
	defer stopWatch()

	done := make(chan struct{})
	defer close(done)
	if p.opts.Refresh > 0 {
		go p.tick(done)
	}

	p.addMessage("[a] loot  [s] sort  [m] mark then [m] again to swap.")
	for {
		p.draw()
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			if !p.Handle(keyToAction(ev)) {
				return
			}
		}
	}
}

func (p *Playground) tick(done <-chan struct{}) {
	t := time.NewTicker(p.opts.Refresh)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// Handle applies one action. It returns false when the player quits.
func (p *Playground) Handle(a Action) bool {
	store := p.sess.Store()
	switch a {
	case ActionNone:
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
		p.moveCursor(cursorDelta(a, store.Columns()))
	case ActionLoot:
		if drop := p.sess.Loot(p.rng); drop != nil {
			p.addMessage(fmt.Sprintf("Looted %s %s (%s).", drop.Glyph, drop, drop.Rarity))
		}
	case ActionGrant:
		if err := p.sess.GrantStarter(); err != nil {
			p.logger.Warn("grant starter items", "error", err)
			p.addMessage("The starter kit is missing from the catalog.")
			break
		}
		p.addMessage("Starter kit granted.")
	case ActionSort:
		p.sess.Sort()
		p.mark = -1
		p.addMessage("Stash sorted.")
	case ActionConsume:
		p.consume()
	case ActionDiscard:
		if it := store.GetItem(p.cursor); it != nil && p.sess.Discard(p.cursor) {
			p.addMessage(fmt.Sprintf("Discarded %s.", it))
		}
	case ActionMark:
		p.markOrSwap()
	case ActionExpand:
		store.Expand()
		p.addMessage(fmt.Sprintf("Stash expanded to %d slots.", store.Capacity()))
	case ActionClear:
		store.Clear()
		p.mark = -1
		p.addMessage("Stash cleared.")
	case ActionNewRun:
		p.endRun()
		if err := p.sess.StartRun(p.sess.Hero().ID); err != nil {
			p.logger.Warn("start run", "error", err)
		}
		p.cursor, p.mark = 0, -1
		p.addMessage("A new run begins.")
	case ActionNextHero:
		next := p.sess.Roster().Next(p.sess.Hero().ID)
		if err := p.sess.SelectHero(next.ID); err == nil {
			p.addMessage(fmt.Sprintf("Now playing as %s %s. %s.", next.Emoji, next.Name, next.Lore))
		}
	case ActionQuit:
		p.endRun()
		return false
	}
	return true
}

func (p *Playground) moveCursor(delta int) {
	n := p.cursor + delta
	if n < 0 || n >= p.sess.Store().Capacity() {
		return
	}
	p.cursor = n
}

func (p *Playground) consume() {
	it := p.sess.Store().GetItem(p.cursor)
	switch {
	case it == nil:
		p.addMessage("Nothing there.")
	case !p.sess.Usable(it):
		p.addMessage(fmt.Sprintf("%s cannot use %s.", p.sess.Hero().Name, it.DisplayName))
	case p.sess.Consume(p.cursor, 1):
		p.addMessage(fmt.Sprintf("Used %s %s.", it.Glyph, it.DisplayName))
	}
}

func (p *Playground) markOrSwap() {
	switch {
	case p.mark < 0:
		p.mark = p.cursor
		p.addMessage(fmt.Sprintf("Marked slot %d.", p.cursor))
	case p.mark == p.cursor:
		p.mark = -1
	default:
		if p.sess.Swap(p.mark, p.cursor) {
			p.addMessage(fmt.Sprintf("Swapped slots %d and %d.", p.mark, p.cursor))
		}
		p.mark = -1
	}
}

func (p *Playground) endRun() {
	if p.opts.OnRunEnd != nil {
		p.opts.OnRunEnd(p.sess.EndRun())
	}
}

func (p *Playground) addMessage(msg string) {
	p.messages = append(p.messages, msg)
	if len(p.messages) > 50 {
		p.messages = p.messages[len(p.messages)-50:]
	}
}

func (p *Playground) draw() {
	store := p.sess.Store()
	slots := store.Slots()
	if p.cursor >= len(slots) {
		p.cursor = max(len(slots)-1, 0)
	}
	if p.mark >= len(slots) {
		p.mark = -1
	}
	h := p.sess.Hero()
	st := p.sess.Stats()
	status := fmt.Sprintf("%s %s  Gold:%d  Looted:%d  Used:%d  Expanded:%d",
		h.Emoji, h.Name, st.GoldEarned, st.Looted, st.Consumed, st.Expansions)
	if h.ID == "" {
		status = fmt.Sprintf("No hero  Looted:%d  Used:%d  Expanded:%d", st.Looted, st.Consumed, st.Expansions)
	}
	p.renderer.DrawFrame(render.View{
		Slots:    slots,
		Columns:  store.Columns(),
		Cursor:   p.cursor,
		Mark:     p.mark,
		Usable:   p.sess.Usable,
		Title:    p.opts.Title,
		Status:   status,
		Messages: p.messages,
	})
}
