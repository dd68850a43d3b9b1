package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Channel carries every broadcast; the envelope's "event" field tells
// subscribers what happened.
const Channel = "lanchonete:events"

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// RedisNotifier publishes events on a Redis pub/sub channel.
type RedisNotifier struct {
	rdb *redis.Client
	log *logrus.Logger
}

func NewRedisNotifier(redisURL string, log *logrus.Logger) (*RedisNotifier, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisNotifier{rdb: rdb, log: log}, nil
}

// Publish serializes the payload and broadcasts it. Failures are logged and
// swallowed: a missed notification must never fail an already-committed order.
func (n *RedisNotifier) Publish(event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		n.log.WithError(err).WithField("event", event).Error("failed to serialize event")
		return
	}
	if err := n.rdb.Publish(context.Background(), Channel, data).Err(); err != nil {
		n.log.WithError(err).WithField("event", event).Error("failed to publish event")
	}
}

func (n *RedisNotifier) Close() error {
	return n.rdb.Close()
}

// LogNotifier writes events to the log instead of broadcasting them. Used
// when Redis is not configured and in tests.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Publish(event string, payload interface{}) {
	n.log.WithField("event", event).Info("event published")
}
