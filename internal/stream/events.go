package stream

type EventType string

const (
	EventTypeAgentResponse EventType = "agent_response"
	EventTypeAgentError    EventType = "agent_error"
)

type Agent struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Version string `json:"version"`
}

type Interaction struct {
	UserQuery string `json:"user_query"`
	Context   string `json:"context"`
	Answer    string `json:"answer"`
}

// EvaluationRequest is the message consumed by the evaluation agent.
type EvaluationRequest struct {
	EventID     string      `json:"event_id"`
	EventType   EventType   `json:"event_type"`
	Agent       Agent       `json:"agent"`
	Interaction Interaction `json:"interaction"`
}
