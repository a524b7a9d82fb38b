package events

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tpfoyer/foyer-service/pkg/circuit_breaker"
	"github.com/tpfoyer/foyer-service/pkg/kafka"
	"github.com/tpfoyer/foyer-service/reservation/internal/model"
)

type Publisher struct {
	queue kafka.Enqueuer
	cb    circuit_breaker.CircuitBreaker
	topic string
	log   *zap.Logger
}

func NewPublisher(queue kafka.Enqueuer, log *zap.Logger) *Publisher {
	return &Publisher{
		queue: queue,
		cb:    circuit_breaker.New(20, 10*time.Second, 0.5, 2),
		topic: kafka.ReservationTopic,
		log:   log.Named("events"),
	}
}

// Publish sends the event keyed by reservation id. While the breaker is open
// it fails fast with circuit_breaker.ErrOpenCB.
func (p *Publisher) Publish(ctx context.Context, event model.ReservationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := p.cb.Call(func() error {
		return p.queue.Enqueue(p.topic, event.IDReservation, event)
	})
	if err != nil {
		return err
	}
	p.log.Debug("event published",
		zap.String("type", string(event.Type)),
		zap.String("id", event.IDReservation))
	return nil
}
