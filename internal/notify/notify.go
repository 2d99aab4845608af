// Package notify holds the in-memory toast queue. Items enter, sit for a
// fixed visible duration, then leave; every phase change republishes the
// full ordered list to the subscriber so the UI can re-render.
package notify

import (
	"sync"
	"time"

	"cardapio-cli/internal/model"
)

const (
	// DefaultEnterDelay is how long an item keeps its Entering flag (pure
	// animation hook; nothing else changes when it clears).
	DefaultEnterDelay = 20 * time.Millisecond
	// DefaultVisibleFor is measured from creation, not from enter-done.
	DefaultVisibleFor = 3000 * time.Millisecond
	// DefaultLeaveDelay is how long an item stays with Leaving set before
	// it is dropped from the queue.
	DefaultLeaveDelay = 300 * time.Millisecond
)

// Queue is a fire-and-forget toast queue. Safe for concurrent use; timer
// callbacks run on their own goroutines.
type Queue struct {
	mu     sync.Mutex
	items  []model.Notification
	nextID int

	enterDelay time.Duration
	visibleFor time.Duration
	leaveDelay time.Duration

	// subscriber receives a copy of the full ordered list on every change.
	subscriber func([]model.Notification)

	// pubSeq numbers snapshots (under mu); deliveredSeq tracks the newest
	// one handed to the subscriber (under deliverMu). A snapshot older than
	// one already delivered is dropped, so the subscriber converges on the
	// queue's latest state even when delivery goroutines race.
	pubSeq       int
	deliverMu    sync.Mutex
	deliveredSeq int
}

func NewQueue() *Queue {
	return &Queue{
		enterDelay: DefaultEnterDelay,
		visibleFor: DefaultVisibleFor,
		leaveDelay: DefaultLeaveDelay,
	}
}

// NewQueueWithTimings exists for tests; production code uses NewQueue.
func NewQueueWithTimings(enter, visible, leave time.Duration) *Queue {
	return &Queue{enterDelay: enter, visibleFor: visible, leaveDelay: leave}
}

// Subscribe registers the single snapshot consumer. The callback must not
// call back into the queue synchronously.
func (q *Queue) Subscribe(fn func([]model.Notification)) {
	q.mu.Lock()
	q.subscriber = fn
	q.mu.Unlock()
}

// Show enqueues a message and schedules its lifecycle.
func (q *Queue) Show(message string) {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.items = append(q.items, model.Notification{
		ID:       id,
		Message:  message,
		Entering: true,
	})
	q.publishLocked()
	q.mu.Unlock()

	time.AfterFunc(q.enterDelay, func() { q.settle(id) })
	time.AfterFunc(q.visibleFor, func() { q.RemoveByID(id) })
}

// settle clears the Entering flag once the appear animation is done.
func (q *Queue) settle(id int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.items {
		if q.items[i].ID == id {
			q.items[i].Entering = false
			q.publishLocked()
			return
		}
	}
}

// RemoveByID starts the leave phase for an item and drops it after the
// leave delay. No-op when the id is already gone, which makes duplicate
// timer firings harmless.
func (q *Queue) RemoveByID(id int) {
	q.mu.Lock()
	found := false
	for i := range q.items {
		if q.items[i].ID == id {
			q.items[i].Leaving = true
			found = true
			break
		}
	}
	if found {
		q.publishLocked()
	}
	q.mu.Unlock()
	if !found {
		return
	}

	time.AfterFunc(q.leaveDelay, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		kept := q.items[:0]
		for _, n := range q.items {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		q.items = kept
		q.publishLocked()
	})
}

// Items returns a copy of the current queue, oldest first.
func (q *Queue) Items() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

func (q *Queue) snapshotLocked() []model.Notification {
	out := make([]model.Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) publishLocked() {
	if q.subscriber == nil {
		return
	}
	q.pubSeq++
	seq := q.pubSeq
	snap := q.snapshotLocked()
	fn := q.subscriber
	// Deliver off the lock; the subscriber typically hands the snapshot to
	// the TUI program's message loop. deliverMu serializes deliveries and
	// the sequence check drops any snapshot overtaken by a newer one.
	go func() {
		q.deliverMu.Lock()
		defer q.deliverMu.Unlock()
		if seq <= q.deliveredSeq {
			return
		}
		q.deliveredSeq = seq
		fn(snap)
	}()
}
