package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"prana/internal/domain/entity"
)

const (
	RedisImage = "redis:7-alpine"
	StreamName = "blog-events-test"
	GroupName  = "prana-test"
	Consumer   = "test-consumer"
)

func setupRedis(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        RedisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	uri := fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))

	return uri, func() {
		_ = redisC.Terminate(ctx)
	}
}

func newTestClient(t *testing.T, uri string) *Client {
	t.Helper()

	client, err := NewClient(Config{
		URI:        uri,
		StreamName: StreamName,
		GroupName:  GroupName,
	})
	require.NoError(t, err)

	return client
}

func blogEventBody(t *testing.T, eventType, id string) string {
	t.Helper()

	body, err := json.Marshal(entity.BlogEvent{
		Type: eventType,
		ID:   id,
		At:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	return string(body)
}

func TestPublish(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	tests := []struct {
		name     string
		stream   string
		messages []string
	}{
		{"one event", "one", []string{blogEventBody(t, entity.BlogCreated, "65a000000000000000000001")}},
		{"lifecycle", "lifecycle", []string{
			blogEventBody(t, entity.BlogCreated, "65a000000000000000000002"),
			blogEventBody(t, entity.BlogUpdated, "65a000000000000000000002"),
			blogEventBody(t, entity.BlogDeleted, "65a000000000000000000002"),
		}},
		{"empty body", "empty", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(Config{
				URI:        uri,
				StreamName: tt.stream,
				GroupName:  GroupName,
			})
			require.NoError(t, err)
			defer client.Close()

			publisher := NewPublisher(client, PublisherConfig{Timeout: 1000})

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			for _, msg := range tt.messages {
				assert.NoError(t, publisher.Publish(ctx, msg))
			}

			read, err := client.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    GroupName,
				Consumer: Consumer,
				Streams:  []string{tt.stream, ">"},
				Count:    int64(len(tt.messages)),
				Block:    2 * time.Second,
			}).Result()
			require.NoError(t, err)
			require.Len(t, read, 1)
			require.Len(t, read[0].Messages, len(tt.messages))

			for i, msg := range tt.messages {
				assert.Equal(t, msg, read[0].Messages[i].Values["body"])
			}
		})
	}
}

func TestPublishCapsStreamLength(t *testing.T) {
	t.Parallel()

	uri, terminate := setupRedis(t)
	defer terminate()

	client := newTestClient(t, uri)
	defer client.Close()

	// Approximate trimming only drops whole macro nodes, so publish well past
	// the cap and check the stream stayed far below the published count.
	publisher := NewPublisher(client, PublisherConfig{Timeout: 1000, MaxLen: 10})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const published = 1000
	for i := range published {
		require.NoError(t, publisher.Publish(ctx, fmt.Sprintf("event-%d", i)))
	}

	length, err := client.redis.XLen(ctx, StreamName).Result()
	require.NoError(t, err)
	assert.Less(t, length, int64(published))
}

func TestPublishWithoutClient(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(nil, PublisherConfig{Timeout: 1000})
	assert.Error(t, publisher.Publish(context.Background(), "body"))
}
