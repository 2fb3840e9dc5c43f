package queue

import (
	"fmt"

	"go.uber.org/zap"
)

// MessageQueue is the event bus used for lead and onboarding fan-out.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}

// New selects a queue implementation by driver name.
func New(driver, url string, log *zap.Logger) (MessageQueue, error) {
	switch driver {
	case "nats":
		return NewNATSQueue(url, log)
	case "rabbitmq":
		return NewRabbitMQQueue(url, log)
	default:
		return nil, fmt.Errorf("unknown queue driver: %s", driver)
	}
}
