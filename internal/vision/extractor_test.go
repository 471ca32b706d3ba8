package vision_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docsight/internal/vision"
	"docsight/internal/vision/mocks"
)

// instantSleeper lets the polling loop run without real delays.
type instantSleeper struct{}

func (instantSleeper) Sleep(context.Context, time.Duration) error { return nil }

const operationURL = "https://vision.example.com/operations/abc"

func setupExtractor(t *testing.T) (*vision.Extractor, *mocks.MockReadClient) {
	client := mocks.NewMockReadClient(t)
	extractor := vision.NewExtractorWithSleeper(client, instantSleeper{})
	return extractor, client
}

func encoded(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestExtractor_Extract(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - joins lines in service order", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, []byte("fake-image")).Return(operationURL, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(&vision.ReadResult{Status: vision.StatusRunning}, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(&vision.ReadResult{Status: vision.StatusSucceeded, Lines: []string{"INVOICE #123", "Total: 42"}}, nil).Once()

		text := extractor.Extract(ctx, encoded("fake-image"))
		assert.Equal(t, "INVOICE #123\nTotal: 42", text)
	})

	t.Run("Success - data URI payload is decoded after the first comma", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, []byte("fake-image")).Return(operationURL, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(&vision.ReadResult{Status: vision.StatusSucceeded, Lines: []string{"hello"}}, nil).Once()

		text := extractor.Extract(ctx, "data:image/png;base64,"+encoded("fake-image"))
		assert.Equal(t, "hello", text)
	})

	t.Run("None - job reports failed", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, mock.Anything).Return(operationURL, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(&vision.ReadResult{Status: vision.StatusFailed}, nil).Once()

		assert.Empty(t, extractor.Extract(ctx, encoded("x")))
	})

	t.Run("None - polling exhausts all 15 attempts", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, mock.Anything).Return(operationURL, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(&vision.ReadResult{Status: vision.StatusRunning}, nil).Times(15)

		assert.Empty(t, extractor.Extract(ctx, encoded("x")))
	})

	t.Run("None - transport errors consume attempts but do not raise", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, mock.Anything).Return(operationURL, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(nil, assert.AnError).Times(15)

		assert.Empty(t, extractor.Extract(ctx, encoded("x")))
	})

	t.Run("None - submit fails softly", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, mock.Anything).Return("", assert.AnError).Once()

		assert.Empty(t, extractor.Extract(ctx, encoded("x")))
	})

	t.Run("None - succeeded with zero lines normalizes to no text", func(t *testing.T) {
		extractor, client := setupExtractor(t)

		client.On("Configured").Return(true)
		client.On("Submit", ctx, mock.Anything).Return(operationURL, nil).Once()
		client.On("Poll", ctx, operationURL).
			Return(&vision.ReadResult{Status: vision.StatusSucceeded}, nil).Once()

		assert.Empty(t, extractor.Extract(ctx, encoded("x")))
	})

	t.Run("None - invalid base64 payload", func(t *testing.T) {
		extractor, client := setupExtractor(t)
		client.On("Configured").Return(true)

		assert.Empty(t, extractor.Extract(ctx, "!!not-base64!!"))
	})

	t.Run("None - client not configured, no submit attempted", func(t *testing.T) {
		extractor, client := setupExtractor(t)
		client.On("Configured").Return(false)

		assert.Empty(t, extractor.Extract(ctx, encoded("x")))
	})
}
