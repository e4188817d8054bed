package inventory

type listener[F any] struct {
	id int
	fn F
}

// listeners is an ordered subscriber list. Callbacks run in subscription order.
type listeners[F any] struct {
	nextID int
	subs   []listener[F]
}

func (l *listeners[F]) add(fn F) func() {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, listener[F]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[F]) remove(id int) {
	for i, sub := range l.subs {
		if sub.id == id {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return
		}
	}
}

// each iterates over a snapshot so callbacks may unsubscribe themselves.
func (l *listeners[F]) each(call func(F)) {
	if len(l.subs) == 0 {
		return
	}
	subs := append([]listener[F](nil), l.subs...)
	for _, sub := range subs {
		call(sub.fn)
	}
}

// OnExpanded registers fn to run after each Expand with the number of slots
// added. The returned func unsubscribes.
func (s *Store) OnExpanded(fn func(added int)) func() {
	return s.expanded.add(fn)
}

// OnReset registers fn to run after each Reset.
func (s *Store) OnReset(fn func()) func() {
	return s.reset.add(fn)
}

// OnItemAdded registers fn to run once per successful Add.
func (s *Store) OnItemAdded(fn func()) func() {
	return s.itemAdded.add(fn)
}
