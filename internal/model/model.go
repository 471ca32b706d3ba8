package model

import "fmt"

// Role identifies the author of a chat turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// ChatTurn is a single message in a conversation. Turns are value types and
// are never mutated once created.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the inbound payload for a chat turn. History is owned by the
// caller: the pipeline reads a suffix window of it and returns it with exactly
// two turns appended, but never stores it.
type ChatRequest struct {
	Message string     `json:"message" validate:"required,min=1"`
	Image   string     `json:"image,omitempty"`
	History []ChatTurn `json:"history"`
}

// ValidateHistory checks that every supplied history entry carries a known
// role and non-empty content. The transport layer decodes history into typed
// turns, so this is the single place malformed entries are rejected.
func (r *ChatRequest) ValidateHistory() error {
	for i, turn := range r.History {
		if !turn.Role.Valid() {
			return fmt.Errorf("history entry %d has unknown role %q", i, turn.Role)
		}
		if turn.Content == "" {
			return fmt.Errorf("history entry %d has empty content", i)
		}
	}
	return nil
}

// ChatResponse is the outcome of one chat turn.
//
// UsedKnowledgeBase is true iff at least one retrieved document passed
// filtering; RagLimitExceeded is true iff retrieval was configured but yielded
// an empty context. The two flags are mutually exclusive by construction.
type ChatResponse struct {
	Reply             string     `json:"reply"`
	HasImage          bool       `json:"has_image"`
	ExtractedText     *string    `json:"extracted_text"`
	UsedKnowledgeBase bool       `json:"used_knowledge_base"`
	RagLimitExceeded  bool       `json:"rag_limit_exceeded"`
	HistoryUpdated    []ChatTurn `json:"history_updated"`
}
