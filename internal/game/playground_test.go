package game

import (
	"strings"
	"testing"

	"emoji-stash/assets"
	"emoji-stash/internal/catalog"
	"emoji-stash/internal/hero"
	"emoji-stash/internal/inventory"
	"emoji-stash/internal/session"

	"github.com/gdamore/tcell/v2"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func newSimScreen() tcell.SimulationScreen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init()
	ss.SetSize(100, 24)
	return ss
}

func newTestPlayground(t *testing.T, opts Options) (*Playground, *session.Session, tcell.SimulationScreen) {
	t.Helper()
	store := inventory.New(inventory.DefaultConfig(), nil)
	store.Initialize()
	sess := session.New(store, catalog.Default(), hero.Default(), nil)
	t.Cleanup(sess.Close)
	if err := sess.SelectHero("arcanist"); err != nil {
		t.Fatal(err)
	}
	ss := newSimScreen()
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return New(ss, sess, opts), sess, ss
}

func lastMessage(p *Playground) string {
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}

// ─── input ────────────────────────────────────────────────────────────────────

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveN},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionNextHero},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionMoveW},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionLoot},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), ActionSort},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), ActionMark},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("keyToAction(%s) = %d; want %d", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestCursorStaysInGrid(t *testing.T) {
	p, _, _ := newTestPlayground(t, Options{})
	p.Handle(ActionMoveN)
	p.Handle(ActionMoveW)
	if p.cursor != 0 {
		t.Errorf("cursor = %d; want 0 at the top-left edge", p.cursor)
	}
	p.Handle(ActionMoveS)
	p.Handle(ActionMoveE)
	if p.cursor != 6 {
		t.Errorf("cursor = %d; want 6", p.cursor)
	}
	for i := 0; i < 10; i++ {
		p.Handle(ActionMoveS)
	}
	if p.cursor != 26 {
		t.Errorf("cursor = %d; want 26 on the last row", p.cursor)
	}
}

// ─── actions ──────────────────────────────────────────────────────────────────

func TestLootAndSort(t *testing.T) {
	p, sess, _ := newTestPlayground(t, Options{})
	for i := 0; i < 12; i++ {
		p.Handle(ActionLoot)
	}
	if !strings.HasPrefix(lastMessage(p), "Looted ") {
		t.Errorf("last message = %q; want a loot report", lastMessage(p))
	}
	if sess.Stats().ItemsAdded != 12 {
		t.Errorf("ItemsAdded = %d; want 12", sess.Stats().ItemsAdded)
	}

	store := sess.Store()
	store.SwapItems(0, 29)
	p.Handle(ActionSort)
	occupied := store.Occupied()
	for i := 0; i < occupied; i++ {
		if store.GetItem(i) == nil {
			t.Fatalf("slot %d empty after sort; items must be packed to the front", i)
		}
	}
}

func TestMarkThenSwap(t *testing.T) {
	p, sess, _ := newTestPlayground(t, Options{})
	sess.Grant(assets.IDShardBlade, 1)

	p.Handle(ActionMark)
	if p.mark != 0 {
		t.Fatalf("mark = %d; want 0", p.mark)
	}
	p.Handle(ActionMoveE)
	p.Handle(ActionMoveE)
	p.Handle(ActionMark)

	if p.mark != -1 {
		t.Errorf("mark = %d; want cleared after swap", p.mark)
	}
	if it := sess.Store().GetItem(2); it == nil || it.Identifier != assets.IDShardBlade {
		t.Errorf("slot 2 = %v; want the blade", it)
	}
}

func TestConsumeRespectsHero(t *testing.T) {
	p, sess, _ := newTestPlayground(t, Options{})
	sess.Grant(assets.IDHyperflask, 2)
	sess.Grant(assets.IDAbyssalCleaver, 1)

	p.Handle(ActionConsume)
	if got := sess.Store().Count(assets.IDHyperflask); got != 1 {
		t.Errorf("flasks = %d; want 1", got)
	}

	p.Handle(ActionMoveE)
	p.Handle(ActionConsume)
	if !strings.Contains(lastMessage(p), "cannot use") {
		t.Errorf("last message = %q; arcanist should not use the cleaver", lastMessage(p))
	}
	if sess.Store().GetItem(1) == nil {
		t.Error("refused item was removed")
	}

	p.Handle(ActionDiscard)
	if sess.Store().GetItem(1) != nil {
		t.Error("discard should empty the slot")
	}
}

func TestNewRunReportsAndResets(t *testing.T) {
	var runs []session.RunLog
	p, sess, _ := newTestPlayground(t, Options{OnRunEnd: func(rl session.RunLog) { runs = append(runs, rl) }})
	p.Handle(ActionExpand)
	p.Handle(ActionLoot)

	p.Handle(ActionNewRun)

	if len(runs) != 1 || runs[0].Hero != "arcanist" || runs[0].Capacity != 35 {
		t.Fatalf("runs = %+v; want one arcanist run at capacity 35", runs)
	}
	store := sess.Store()
	if store.Capacity() != 30 {
		t.Errorf("Capacity() = %d; want 30", store.Capacity())
	}
	if store.Count(assets.IDHyperflask) != 3 {
		t.Errorf("flasks = %d; want the arcanist's 3 starter flasks", store.Count(assets.IDHyperflask))
	}
}

func TestNextHeroCycles(t *testing.T) {
	p, sess, _ := newTestPlayground(t, Options{})
	p.Handle(ActionNextHero)
	if sess.Hero().ID != "revenant" {
		t.Errorf("hero = %q; want revenant after arcanist", sess.Hero().ID)
	}
}

// ─── loop ─────────────────────────────────────────────────────────────────────

func TestRunQuitsOnKey(t *testing.T) {
	ended := 0
	p, sess, ss := newTestPlayground(t, Options{OnRunEnd: func(session.RunLog) { ended++ }})
	ss.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	p.Run()

	if sess.Stats().Looted == 0 {
		t.Error("loot keys were not handled")
	}
	if ended != 1 {
		t.Errorf("OnRunEnd calls = %d; want 1", ended)
	}
	if !strings.Contains(screenLine(ss, 0), "EMOJI STASH") {
		t.Errorf("title row = %q", screenLine(ss, 0))
	}
}

func screenLine(ss tcell.SimulationScreen, y int) string {
	cells, w, _ := ss.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[y*w+x].Runes; len(r) > 0 {
			b.WriteRune(r[0])
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
