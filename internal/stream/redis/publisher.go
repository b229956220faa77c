package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/models"
	"github.com/povarna/generative-ai-agents/web-rag-agent/internal/stream"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Publisher appends answered requests to a Redis stream as evaluation events.
type Publisher struct {
	client *redis.Client
	stream string
	agent  stream.Agent
	logger *zerolog.Logger
}

func NewPublisher(client *redis.Client, streamName string, agent stream.Agent, logger *zerolog.Logger) *Publisher {
	return &Publisher{
		client: client,
		stream: streamName,
		agent:  agent,
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, interaction models.Interaction) error {
	eventID := interaction.RequestID
	if eventID == "" {
		eventID = uuid.New().String()
	}

	userQuery := interaction.Query
	if interaction.Mode == models.ModeSummary {
		userQuery = "Summarize: " + strings.Join(interaction.Sources, ", ")
	}

	event := stream.EvaluationRequest{
		EventID:   eventID,
		EventType: stream.EventTypeAgentResponse,
		Agent:     p.agent,
		Interaction: stream.Interaction{
			UserQuery: userQuery,
			Context:   interaction.Context,
			Answer:    interaction.Answer,
		},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation event: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{"payload": string(payload)},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to stream %s: %w", p.stream, err)
	}

	p.logger.Debug().Str("stream", p.stream).Str("id", id).Str("event_id", eventID).Msg("Interaction published")
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
