package memory

import (
	"sync"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
)

// Event is one published (topic, payload) pair.
type Event struct {
	Topic   string
	Payload any
}

// Publisher is an in-memory implementation of interfaces.EventPublisher.
// It keeps the run's audit trail for inspection; nothing leaves the process.
type Publisher struct {
	mu     sync.Mutex
	events []Event
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(topic string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, Event{Topic: topic, Payload: event})
	return nil
}

// Events returns a copy of everything published so far.
func (p *Publisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make([]Event, len(p.events))
	copy(copied, p.events)
	return copied
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
