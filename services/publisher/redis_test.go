package publisher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"techdeals/dealsearcher/internal/deal"
)

// This test requires a running Redis instance
// If Redis is not available, the test will be skipped
func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()
	publisher := NewRedisPublisher(ctx, "localhost:6379", 0, "test_deals", 1, 100)
	defer publisher.Close()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer client.Close()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	err = client.XGroupCreateMkStream(ctx, "test_deals:0", "test_group", "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		t.Fatal(err)
	}

	messages := make(chan string, 1)

	go func() {
		message, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Streams:  []string{"test_deals:0", ">"},
			Group:    "test_group",
			Consumer: "test_consumer",
			Block:    0,
		}).Result()
		assert.NoError(t, err)
		messages <- message[0].Messages[0].Values["Newegg"].(string)
	}()

	time.Sleep(100 * time.Millisecond)

	published := deal.New("AMD Ryzen 9 5900X", deal.CategoryCPU, 549.99, 399.99, "Newegg", "https://www.newegg.com/example", "").ToRecord()
	err = publisher.PublishDeal("Newegg", published)
	assert.NoError(t, err)

	select {
	case msg := <-messages:
		// The payload is a base64 encoded JSON record
		decoded, err := base64.StdEncoding.DecodeString(msg)
		assert.NoError(t, err)

		var record deal.Record
		assert.NoError(t, json.Unmarshal(decoded, &record))
		assert.Equal(t, published, record)
	case <-time.After(1 * time.Second):
		t.Error("Timed out waiting for message")
	}
}
