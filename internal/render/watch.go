package render

import "github.com/gdamore/tcell/v2"

// Change names the store notification carried by an EventInterrupt posted
// from Watch.
type Change int

const (
	ChangeExpanded Change = iota
	ChangeReset
	ChangeItemAdded
)

// Notifier is the subscription side of an inventory store.
type Notifier interface {
	OnExpanded(fn func(added int)) func()
	OnReset(fn func()) func()
	OnItemAdded(fn func()) func()
}

// Watch posts a tcell.EventInterrupt carrying a Change to screen whenever the
// store reports one, so the event loop redraws changes made elsewhere. The
// returned func stops watching. Events are dropped when the queue is full.
func Watch(screen tcell.Screen, n Notifier) func() {
	post := func(c Change) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(c))
	}
	stops := []func(){
		n.OnExpanded(func(int) { post(ChangeExpanded) }),
		n.OnReset(func() { post(ChangeReset) }),
		n.OnItemAdded(func() { post(ChangeItemAdded) }),
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}
