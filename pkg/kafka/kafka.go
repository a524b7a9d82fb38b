package kafka

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
)

const (
	ReservationTopic = "reservation-events"
)

type Config struct {
	Addrs    []string      `envconfig:"KAFKA_ADDRS"`
	ClientID string        `envconfig:"KAFKA_CLIENT_ID" default:"foyer-reservation"`
	Timeout  time.Duration `envconfig:"KAFKA_TIMEOUT" default:"5s"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()
	if cfg.ClientID != "" {
		defaultCfg.ClientID = cfg.ClientID
	}
	if cfg.Timeout > 0 {
		defaultCfg.Producer.Timeout = cfg.Timeout
	}

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Enqueuer interface {
	Enqueue(topic, key string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}
