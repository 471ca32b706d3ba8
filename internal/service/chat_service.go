package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	app_errors "docsight/internal/errors"
	"docsight/internal/interfaces"
	"docsight/internal/llm"
	"docsight/internal/model"
)

// Generation parameters for the completion call. Temperature is kept low so
// replies stick to the retrieved documents.
const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.3
)

// imageAnnotationTemplate merges OCR output with the user's question. The
// annotated form is the working message: it is what retrieval sees, what the
// composed prompt ends with, and what lands in the returned history.
const imageAnnotationTemplate = "[Attached image]\n%s\n\nQuestion: %s"

// ChatService coordinates one retrieval-augmented chat turn: optional OCR
// extraction, knowledge retrieval, prompt composition, and the completion
// call. It holds no per-request state and is safe for concurrent use.
type ChatService struct {
	extractor interfaces.TextExtractor
	retriever interfaces.KnowledgeRetriever
	composer  interfaces.PromptComposer
	llm       llm.CompletionProvider
}

func NewChatService(
	extractor interfaces.TextExtractor,
	retriever interfaces.KnowledgeRetriever,
	composer interfaces.PromptComposer,
	provider llm.CompletionProvider,
) *ChatService {
	return &ChatService{
		extractor: extractor,
		retriever: retriever,
		composer:  composer,
		llm:       provider,
	}
}

// HandleTurn processes a chat request end to end and returns the response
// payload. It fails only on input or configuration errors; every
// backing-service failure degrades gracefully and still yields a response.
//
// The three backing calls run sequentially. OCR and retrieval are logically
// independent, but retrieval must see the OCR-annotated message, so the
// simple ordering is kept.
func (s *ChatService) HandleTurn(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", app_errors.ErrValidation)
	}
	if err := req.ValidateHistory(); err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrValidation, err.Error())
	}
	if !s.llm.Configured() {
		return nil, fmt.Errorf("%w: completion service endpoint or key missing", app_errors.ErrConfiguration)
	}

	turnID := uuid.NewString()
	hasImage := req.Image != ""
	slog.Info("Handling chat turn",
		"turn_id", turnID,
		"has_image", hasImage,
		"history_len", len(req.History),
	)

	// Step 1: OCR. A failed or empty extraction leaves the message unchanged.
	workingMessage := req.Message
	var extractedText *string
	if hasImage {
		if text := s.extractor.Extract(ctx, req.Image); text != "" {
			extractedText = &text
			workingMessage = fmt.Sprintf(imageAnnotationTemplate, text, req.Message)
			slog.Info("Merged OCR text into message", "turn_id", turnID, "chars", len(text))
		} else {
			slog.Info("No text extracted from image", "turn_id", turnID)
		}
	}

	// Step 2: retrieval, queried with the possibly annotated message.
	kc := s.retriever.Retrieve(ctx, workingMessage)
	usedKnowledgeBase := kc.DocumentCount > 0
	ragLimitExceeded := s.retriever.Configured() && !usedKnowledgeBase
	slog.Info("Knowledge retrieval finished",
		"turn_id", turnID,
		"documents", kc.DocumentCount,
		"limit_exceeded", ragLimitExceeded,
	)

	// Steps 3 and 4: compose and complete.
	messages := s.composer.Compose(workingMessage, req.History, kc)
	reply, err := s.llm.Complete(ctx, messages, llm.Options{
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		// Completion failures are embedded in the reply so the transport
		// response stays success-shaped.
		slog.Error("Completion call failed", "turn_id", turnID, "error", err)
		reply = fmt.Sprintf("Error: the assistant could not generate a reply (%v)", err)
	}

	// Step 5: append exactly two turns to a copy of the caller's history.
	historyUpdated := make([]model.ChatTurn, 0, len(req.History)+2)
	historyUpdated = append(historyUpdated, req.History...)
	historyUpdated = append(historyUpdated,
		model.ChatTurn{Role: model.RoleUser, Content: workingMessage},
		model.ChatTurn{Role: model.RoleAssistant, Content: reply},
	)

	slog.Info("Chat turn completed", "turn_id", turnID, "used_knowledge_base", usedKnowledgeBase)

	return &model.ChatResponse{
		Reply:             reply,
		HasImage:          hasImage,
		ExtractedText:     extractedText,
		UsedKnowledgeBase: usedKnowledgeBase,
		RagLimitExceeded:  ragLimitExceeded,
		HistoryUpdated:    historyUpdated,
	}, nil
}
