package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/stream"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

var testAgent = stream.Agent{Name: "web-rag-agent", Type: "rag", Version: "1.0.0"}

func readEvents(t *testing.T, client *redis.Client, name string) []stream.EvaluationRequest {
	t.Helper()
	msgs, err := client.XRange(context.Background(), name, "-", "+").Result()
	require.NoError(t, err)

	events := make([]stream.EvaluationRequest, 0, len(msgs))
	for _, msg := range msgs {
		payload, ok := msg.Values["payload"].(string)
		require.True(t, ok, "payload field missing")

		var event stream.EvaluationRequest
		require.NoError(t, json.Unmarshal([]byte(payload), &event))
		events = append(events, event)
	}
	return events
}

func TestPublisher_PublishQuery(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	logger := zerolog.Nop()
	publisher := NewPublisher(client, "eval-events", testAgent, &logger)

	err := publisher.Publish(context.Background(), models.Interaction{
		RequestID: "req-42",
		Mode:      models.ModeQuery,
		Query:     "What is Go?",
		Context:   "Go is a language.",
		Answer:    "A programming language.",
		Sources:   []string{"https://go.dev"},
	})
	require.NoError(t, err)

	events := readEvents(t, client, "eval-events")
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, "req-42", event.EventID)
	assert.Equal(t, stream.EventTypeAgentResponse, event.EventType)
	assert.Equal(t, testAgent, event.Agent)
	assert.Equal(t, "What is Go?", event.Interaction.UserQuery)
	assert.Equal(t, "Go is a language.", event.Interaction.Context)
	assert.Equal(t, "A programming language.", event.Interaction.Answer)
}

func TestPublisher_PublishSummary(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	logger := zerolog.Nop()
	publisher := NewPublisher(client, "eval-events", testAgent, &logger)

	err := publisher.Publish(context.Background(), models.Interaction{
		Mode:    models.ModeSummary,
		Answer:  "Summary text",
		Sources: []string{"https://a.test", "https://b.test"},
	})
	require.NoError(t, err)

	events := readEvents(t, client, "eval-events")
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].EventID)
	assert.Equal(t, "Summarize: https://a.test, https://b.test", events[0].Interaction.UserQuery)
}

func TestPublisher_ClosedConnection(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	cleanup()

	logger := zerolog.Nop()
	publisher := NewPublisher(client, "eval-events", testAgent, &logger)

	err := publisher.Publish(context.Background(), models.Interaction{RequestID: "x", Answer: "y"})
	assert.Error(t, err)
}
