package interfaces

// EventPublisher receives the audit events produced while applying
// transactions. Implementations must never fail the run.
type EventPublisher interface {
	Publish(topic string, event any) error
}
