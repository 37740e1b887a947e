package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const ackTimeout = 3 * time.Second

type RedisMessage struct {
	stream      string
	group       string
	id          string
	body        string
	redisClient *redis.Client
}

func (m *RedisMessage) ID() string {
	return m.id
}

func (m *RedisMessage) Body() string {
	return m.body
}

func (m *RedisMessage) Ack() error {
	ctx, cancel := context.WithTimeout(context.Background(), ackTimeout)
	defer cancel()

	return m.redisClient.XAck(ctx, m.stream, m.group, m.id).Err()
}

// Nack leaves the entry in the group's pending list, where it stays visible to
// XPENDING and can be claimed again by another consumer.
func (m *RedisMessage) Nack() error {
	return nil
}
