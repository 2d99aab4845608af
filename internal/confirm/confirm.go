// Package confirm decouples "who needs a yes/no decision" from "how it is
// rendered". A controller calls Confirm and waits on the returned channel;
// the single modal surface subscribed to the broker renders the published
// state and calls Close with the user's answer.
package confirm

import (
	"sync"

	"cardapio-cli/internal/model"
)

// Descriptor describes a pending yes/no decision.
type Descriptor struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Severity    model.Severity
}

// State is the descriptor as published to the rendering surface. The
// resolver is keyed by closure, not by an identifier: Close must be handed
// the exact State it is answering.
type State struct {
	Descriptor
	Open    bool
	resolve func(bool)
}

// Broker bridges a fire-and-forget "ask the user" call into an awaitable
// boolean. It does not enforce mutual exclusion between requests; callers
// must not issue overlapping confirms.
type Broker struct {
	mu         sync.Mutex
	subscriber func(State)
}

func NewBroker() *Broker {
	return &Broker{}
}

// Subscribe registers the single rendering surface.
func (b *Broker) Subscribe(fn func(State)) {
	b.mu.Lock()
	b.subscriber = fn
	b.mu.Unlock()
}

// Confirm publishes an open state and returns a channel that yields the
// user's answer exactly once.
func (b *Broker) Confirm(d Descriptor) <-chan bool {
	if d.ConfirmText == "" {
		d.ConfirmText = "Confirm"
	}
	if d.CancelText == "" {
		d.CancelText = "Cancel"
	}
	if d.Severity == "" {
		d.Severity = model.SeverityWarning
	}

	result := make(chan bool, 1)
	var once sync.Once
	st := State{
		Descriptor: d,
		Open:       true,
		resolve: func(v bool) {
			once.Do(func() { result <- v })
		},
	}
	b.publish(st)
	return result
}

// Close answers the given state and republishes it with Open cleared.
func (b *Broker) Close(result bool, st State) {
	if st.resolve != nil {
		st.resolve(result)
	}
	st.Open = false
	b.publish(st)
}

func (b *Broker) publish(st State) {
	b.mu.Lock()
	fn := b.subscriber
	b.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
