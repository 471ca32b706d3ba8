package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsight/internal/llm"
	"docsight/internal/model"
)

// TestOpenAIProvider verifies that our completion HTTP client constructs the
// deployment URL, sends the generation parameters, and parses the reply. An
// httptest server stands in for the real API so the test needs no network.
func TestOpenAIProvider(t *testing.T) {
	var capturedPath, capturedQuery, capturedKey string
	var capturedBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedQuery = r.URL.RawQuery
		capturedKey = r.Header.Get("api-key")
		bodyBytes, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(bodyBytes, &capturedBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "grounded reply"}}]}`))
	}))
	defer server.Close()

	provider := llm.NewOpenAIProvider(server.URL, "api-secret", "gpt-test", "2024-08-01-preview")

	reply, err := provider.Complete(context.Background(),
		[]model.ChatTurn{
			{Role: model.RoleSystem, Content: "guardrail"},
			{Role: model.RoleUser, Content: "question"},
		},
		llm.Options{MaxTokens: 1000, Temperature: 0.3},
	)

	require.NoError(t, err)
	assert.Equal(t, "grounded reply", reply)

	assert.Equal(t, "/openai/deployments/gpt-test/chat/completions", capturedPath)
	assert.Equal(t, "api-version=2024-08-01-preview", capturedQuery)
	assert.Equal(t, "api-secret", capturedKey)
	assert.Equal(t, float64(1000), capturedBody["max_tokens"])
	assert.InDelta(t, 0.3, capturedBody["temperature"].(float64), 0.001)

	messages := capturedBody["messages"].([]any)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestOpenAIProvider_EndpointAlreadyNamesDeployment(t *testing.T) {
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer server.Close()

	endpoint := server.URL + "/openai/deployments/custom/chat/completions"
	provider := llm.NewOpenAIProvider(endpoint, "k", "ignored", "ignored")

	_, err := provider.Complete(context.Background(), nil, llm.Options{})
	require.NoError(t, err)
	// Used verbatim, no path derivation.
	assert.Equal(t, "/openai/deployments/custom/chat/completions", capturedPath)
}

func TestOpenAIProvider_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := llm.NewOpenAIProvider(server.URL, "k", "d", "v")
	_, err := provider.Complete(context.Background(), nil, llm.Options{})

	assert.ErrorContains(t, err, "503")
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	provider := llm.NewOpenAIProvider(server.URL, "k", "d", "v")
	_, err := provider.Complete(context.Background(), nil, llm.Options{})

	assert.ErrorContains(t, err, "no choices")
}

func TestOpenAIProvider_Configured(t *testing.T) {
	assert.True(t, llm.NewOpenAIProvider("https://o.example.com", "k", "d", "v").Configured())
	assert.False(t, llm.NewOpenAIProvider("", "k", "d", "v").Configured())
	assert.False(t, llm.NewOpenAIProvider("https://o.example.com", "", "d", "v").Configured())
}
