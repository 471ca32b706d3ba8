// The `_test` suffix creates a "black box" test package: the tests can only
// reach the api package's exported identifiers, which is how its consumers
// see it.
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docsight/internal/api"
	app_errors "docsight/internal/errors"
	"docsight/internal/interfaces/mocks"
	"docsight/internal/model"
)

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService) {
	mockSvc := mocks.NewMockChatService(t)
	handler := api.NewChatHandler(mockSvc, api.ServiceStatus{
		VisionConfigured:     true,
		SearchConfigured:     false,
		CompletionConfigured: true,
		SearchIndex:          "docs-index",
	})
	return handler, mockSvc
}

func postChat(handler *api.ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.HandleChat(rr, req)
	return rr
}

func TestChatHandler_HandleChat(t *testing.T) {
	t.Run("Success - full response shape", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)

		extracted := "INVOICE #123"
		mockSvc.On("HandleTurn", mock.Anything, mock.AnythingOfType("*model.ChatRequest")).
			Return(&model.ChatResponse{
				Reply:             "it is an invoice",
				HasImage:          true,
				ExtractedText:     &extracted,
				UsedKnowledgeBase: true,
				HistoryUpdated: []model.ChatTurn{
					{Role: model.RoleUser, Content: "what is this?"},
					{Role: model.RoleAssistant, Content: "it is an invoice"},
				},
			}, nil).Once()

		rr := postChat(handler, `{"message": "what is this?", "image": "aW1n", "history": []}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "it is an invoice", resp["reply"])
		assert.Equal(t, true, resp["has_image"])
		assert.Equal(t, "INVOICE #123", resp["extracted_text"])
		assert.Equal(t, true, resp["used_knowledge_base"])
		assert.Equal(t, false, resp["rag_limit_exceeded"])
		assert.Len(t, resp["history_updated"], 2)
	})

	t.Run("Success - extracted_text serializes as null when absent", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)

		mockSvc.On("HandleTurn", mock.Anything, mock.Anything).
			Return(&model.ChatResponse{Reply: "hi", HistoryUpdated: []model.ChatTurn{}}, nil).Once()

		rr := postChat(handler, `{"message": "hello"}`)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		val, present := resp["extracted_text"]
		assert.True(t, present)
		assert.Nil(t, val)
	})

	t.Run("Failure - malformed JSON body yields 400", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		rr := postChat(handler, `{"message": `)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.NotEmpty(t, resp["error"])
	})

	t.Run("Failure - missing message fails validation before the service is called", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		rr := postChat(handler, `{"history": []}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - service validation error maps to 400", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("HandleTurn", mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrValidation).Once()

		rr := postChat(handler, `{"message": "hello"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - configuration error maps to 500", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("HandleTurn", mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrConfiguration).Once()

		rr := postChat(handler, `{"message": "hello"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
	})
}

func TestChatHandler_HandleStatus(t *testing.T) {
	handler, _ := setupChatHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	rr := httptest.NewRecorder()
	handler.HandleStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var status api.ServiceStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.True(t, status.VisionConfigured)
	assert.False(t, status.SearchConfigured)
	assert.Equal(t, "docs-index", status.SearchIndex)
}
