package logging

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	interfaces "github.com/sheikh-saqib/payments-engine/internal/interfaces"
)

// Publisher writes every event to the process log instead of a broker.
type Publisher struct{}

// NewPublisher creates a log-backed publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	log.Debug().Str("topic", topic).RawJSON("event", data).Msg("event published")
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
