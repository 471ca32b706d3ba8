package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"docsight/internal/model"
)

// Options carries the fixed generation parameters for one completion call.
// Temperature is kept low by default so replies stay grounded in the supplied
// documents.
type Options struct {
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// CompletionProvider defines the interface for the chat-completion backend.
type CompletionProvider interface {
	Configured() bool
	Complete(ctx context.Context, messages []model.ChatTurn, opts Options) (string, error)
}

const completionTimeout = 60 * time.Second

type openAIProvider struct {
	client     *http.Client
	endpoint   string
	key        string
	deployment string
	apiVersion string
}

// NewOpenAIProvider builds a CompletionProvider against an Azure-style OpenAI
// deployment. If the endpoint already names a deployment it is used verbatim;
// otherwise the full chat-completions path is derived from the deployment name
// and API version.
func NewOpenAIProvider(endpoint, key, deployment, apiVersion string) CompletionProvider {
	return &openAIProvider{
		client:     &http.Client{Timeout: completionTimeout},
		endpoint:   endpoint,
		key:        key,
		deployment: deployment,
		apiVersion: apiVersion,
	}
}

func (p *openAIProvider) Configured() bool {
	return p.endpoint != "" && p.key != ""
}

func (p *openAIProvider) chatURL() string {
	if strings.Contains(p.endpoint, "deployments") {
		return p.endpoint
	}
	base := strings.TrimRight(p.endpoint, "/")
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s", base, p.deployment, p.apiVersion)
}

type completionRequest struct {
	Messages    []model.ChatTurn `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *openAIProvider) Complete(ctx context.Context, messages []model.ChatTurn, opts Options) (string, error) {
	body, err := json.Marshal(completionRequest{
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.chatURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", p.key)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("could not decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response carried no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
