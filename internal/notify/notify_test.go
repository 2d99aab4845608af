package notify

import (
	"sync"
	"testing"
	"time"

	"cardapio-cli/internal/model"
)

func TestShow_LifecyclePhases(t *testing.T) {
	q := NewQueueWithTimings(5*time.Millisecond, 60*time.Millisecond, 20*time.Millisecond)

	q.Show("saved")

	items := q.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item immediately after Show, got %d", len(items))
	}
	if !items[0].Entering || items[0].Leaving {
		t.Errorf("fresh item should be entering and not leaving: %+v", items[0])
	}
	if items[0].Message != "saved" {
		t.Errorf("message = %q", items[0].Message)
	}

	// After the enter delay the item settles but stays visible.
	time.Sleep(20 * time.Millisecond)
	items = q.Items()
	if len(items) != 1 {
		t.Fatalf("item should still be visible, got %d items", len(items))
	}
	if items[0].Entering {
		t.Error("entering flag should have cleared")
	}

	// After visibleFor it starts leaving, and after leaveDelay it is gone.
	time.Sleep(55 * time.Millisecond)
	items = q.Items()
	if len(items) == 1 && !items[0].Leaving {
		t.Error("item past its visible window should be leaving")
	}
	time.Sleep(40 * time.Millisecond)
	if items := q.Items(); len(items) != 0 {
		t.Errorf("item should be removed, still have %d", len(items))
	}
}

func TestShow_MonotonicIDsAndOrder(t *testing.T) {
	q := NewQueueWithTimings(time.Millisecond, time.Minute, time.Millisecond)
	q.Show("a")
	q.Show("b")
	q.Show("c")

	items := q.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].ID <= items[i-1].ID {
			t.Errorf("ids not increasing: %d then %d", items[i-1].ID, items[i].ID)
		}
	}
	if items[0].Message != "a" || items[2].Message != "c" {
		t.Errorf("order not preserved: %+v", items)
	}
}

func TestRemoveByID_NoOpWhenGone(t *testing.T) {
	q := NewQueueWithTimings(time.Millisecond, time.Minute, time.Millisecond)
	q.Show("x")
	id := q.Items()[0].ID

	q.RemoveByID(id)
	time.Sleep(10 * time.Millisecond)
	if n := len(q.Items()); n != 0 {
		t.Fatalf("expected empty queue, got %d", n)
	}

	// Second removal (late timer firing) must not panic or publish junk.
	q.RemoveByID(id)
	if n := len(q.Items()); n != 0 {
		t.Fatalf("no-op removal changed the queue: %d items", n)
	}
}

func TestSubscribe_ConvergesOnLatestSnapshot(t *testing.T) {
	// Timer callbacks publish from their own goroutines; the subscriber must
	// still end on the queue's newest state, never a stale non-empty list
	// after the queue has emptied.
	for i := 0; i < 300; i++ {
		q := NewQueueWithTimings(time.Microsecond, 2*time.Microsecond, time.Microsecond)

		var mu sync.Mutex
		var last []model.Notification
		emptied := make(chan struct{}, 8)
		q.Subscribe(func(items []model.Notification) {
			mu.Lock()
			last = items
			mu.Unlock()
			if len(items) == 0 {
				emptied <- struct{}{}
			}
		})

		q.Show("blink")

		select {
		case <-emptied:
		case <-time.After(time.Second):
			t.Fatal("empty snapshot never delivered")
		}
		// Give any straggler delivery goroutines a chance to run; stale
		// snapshots must be dropped, not delivered after the empty one.
		time.Sleep(2 * time.Millisecond)

		mu.Lock()
		n := len(last)
		mu.Unlock()
		if n != 0 {
			t.Fatalf("run %d: final snapshot stale with %d items", i, n)
		}
	}
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	q := NewQueueWithTimings(time.Millisecond, time.Minute, time.Millisecond)
	got := make(chan []model.Notification, 16)
	q.Subscribe(func(items []model.Notification) { got <- items })

	q.Show("hello")

	select {
	case snap := <-got:
		if len(snap) != 1 || snap[0].Message != "hello" {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received a snapshot")
	}
}
