package interfaces

import (
	"context"

	"docsight/internal/model"
	"docsight/internal/search"
)

// This file defines the interfaces for our core pipeline components.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// TextExtractor extracts text from a base64-encoded image. An empty result
// means no text could be extracted; extraction never fails hard.
type TextExtractor interface {
	Extract(ctx context.Context, imageBase64 string) string
}

// KnowledgeRetriever searches the document index and formats qualifying
// results into a bounded context. Configured distinguishes a disabled
// retrieval backend from one that is available but returned nothing.
type KnowledgeRetriever interface {
	Configured() bool
	Retrieve(ctx context.Context, query string) search.KnowledgeContext
}

// PromptComposer assembles the ordered message sequence for a completion call.
type PromptComposer interface {
	Compose(userMessage string, history []model.ChatTurn, kc search.KnowledgeContext) []model.ChatTurn
}

// ChatService defines the contract for handling one full chat turn.
type ChatService interface {
	HandleTurn(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}
