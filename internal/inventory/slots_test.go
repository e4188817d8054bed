package inventory

import "testing"

func TestGetItemOutOfRange(t *testing.T) {
	s := newTestStore(t)
	s.Add(gear(1, "Shard Blade"))
	for _, slot := range []int{-1, 30, 1000} {
		if it := s.GetItem(slot); it != nil {
			t.Errorf("GetItem(%d) = %v; want nil", slot, it)
		}
	}
	if it := s.GetItem(1); it != nil {
		t.Errorf("GetItem(1) = %v; want nil for empty slot", it)
	}
}

func TestRemoveItem(t *testing.T) {
	s := newTestStore(t)
	s.Add(gear(1, "Shard Blade"))

	if !s.RemoveItem(0) {
		t.Fatal("RemoveItem(0) should succeed")
	}
	if s.GetItem(0) != nil {
		t.Error("slot 0 should be empty after removal")
	}
	if s.RemoveItem(0) {
		t.Error("removing an empty slot should fail")
	}
	if s.RemoveItem(-1) || s.RemoveItem(30) {
		t.Error("removing out of range should fail")
	}
}

func TestRemoveAmount(t *testing.T) {
	cases := []struct {
		name     string
		amount   int
		wantOK   bool
		wantLeft int // 0 means the slot is empty
	}{
		{"partial", 4, true, 6},
		{"exact", 10, true, 0},
		{"more than held", 15, true, 0},
		{"zero rejected", 0, false, 10},
		{"negative rejected", -2, false, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			s.Add(stack(7, 10, 10))

			if got := s.RemoveAmount(0, tc.amount); got != tc.wantOK {
				t.Fatalf("RemoveAmount(0, %d) = %v; want %v", tc.amount, got, tc.wantOK)
			}
			it := s.GetItem(0)
			if tc.wantLeft == 0 {
				if it != nil {
					t.Errorf("slot 0 = %v; want empty", it)
				}
				if len(s.Items()) != 0 {
					t.Errorf("Items() = %v; want none", s.Items())
				}
				return
			}
			if it == nil || it.CurrentStack != tc.wantLeft {
				t.Errorf("slot 0 = %v; want stack %d", it, tc.wantLeft)
			}
		})
	}
}

func TestRemoveAmountInvalidSlot(t *testing.T) {
	s := newTestStore(t)
	if s.RemoveAmount(0, 1) {
		t.Error("RemoveAmount on empty slot should fail")
	}
	if s.RemoveAmount(99, 1) {
		t.Error("RemoveAmount out of range should fail")
	}
}

func TestSwapItems(t *testing.T) {
	s := newTestStore(t)
	s.Add(gear(1, "Shard Blade"))

	if !s.SwapItems(0, 7) {
		t.Fatal("SwapItems(0, 7) should succeed")
	}
	if s.GetItem(0) != nil {
		t.Error("slot 0 should be empty after swap")
	}
	if it := s.GetItem(7); it == nil || it.Identifier != 1 {
		t.Errorf("slot 7 = %v; want item 1", it)
	}

	before := s.Slots()
	s.SwapItems(0, 7)
	s.SwapItems(0, 7)
	after := s.Slots()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("double swap changed slot %d", i)
		}
	}
}

func TestSwapItemsOutOfRange(t *testing.T) {
	s := newTestStore(t)
	s.Add(gear(1, "Shard Blade"))
	if s.SwapItems(0, 30) || s.SwapItems(-1, 0) {
		t.Error("SwapItems with an out-of-range index should fail")
	}
	if s.GetItem(0) == nil {
		t.Error("failed swap must not move anything")
	}
}

func TestSlotsHidesDriftedItems(t *testing.T) {
	s := newTestStore(t)
	s.Add(stack(7, 3, 10))
	s.Add(gear(1, "Shard Blade"))
	s.slots[0].CurrentStack = 0

	if s.GetItem(0) != nil {
		t.Error("GetItem must hide a zero-stack item")
	}
	if s.Slots()[0] != nil {
		t.Error("Slots must report a zero-stack item as empty")
	}
	if s.Occupied() != 1 {
		t.Errorf("Occupied() = %d; want 1", s.Occupied())
	}

	s.SwapItems(1, 2)
	if s.slots[0] != nil {
		t.Error("a mutating call should normalise the drifted slot to nil")
	}
}

func TestFindAndCount(t *testing.T) {
	s := newTestStore(t)
	s.Add(gear(1, "Shard Blade"))
	s.Add(stack(7, 10, 10))
	s.Add(stack(7, 4, 10))

	if got := s.Find(7); got != 1 {
		t.Errorf("Find(7) = %d; want 1", got)
	}
	if got := s.Find(42); got != -1 {
		t.Errorf("Find(42) = %d; want -1", got)
	}
	if got := s.Count(7); got != 14 {
		t.Errorf("Count(7) = %d; want 14", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := newTestStore(t)
	calls := 0
	stop := s.OnItemAdded(func() { calls++ })
	s.Add(gear(1, "Shard Blade"))
	stop()
	s.Add(gear(2, "Echo Cutter"))
	if calls != 1 {
		t.Errorf("calls = %d; want 1 after unsubscribe", calls)
	}
}

func TestListenerMayUnsubscribeItself(t *testing.T) {
	s := newTestStore(t)
	var stop func()
	calls, other := 0, 0
	stop = s.OnReset(func() {
		calls++
		stop()
	})
	s.OnReset(func() { other++ })

	s.Reset()
	s.Reset()
	if calls != 1 || other != 2 {
		t.Errorf("calls = %d, other = %d; want 1, 2", calls, other)
	}
}
