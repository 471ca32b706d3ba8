package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// JobStatus is the lifecycle state of an asynchronous text-extraction job.
type JobStatus string

const (
	StatusNotStarted JobStatus = "notStarted"
	StatusRunning    JobStatus = "running"
	StatusSucceeded  JobStatus = "succeeded"
	StatusFailed     JobStatus = "failed"
)

// ReadResult is one snapshot of a submitted job. Lines are populated only
// when Status is StatusSucceeded, in the order the service returned them.
type ReadResult struct {
	Status JobStatus
	Lines  []string
}

// ReadClient is the contract for the asynchronous OCR backend: submit image
// bytes, receive an operation handle, poll the handle until the job settles.
type ReadClient interface {
	Configured() bool
	Submit(ctx context.Context, image []byte) (operationURL string, err error)
	Poll(ctx context.Context, operationURL string) (*ReadResult, error)
}

const (
	readAPIVersion = "v3.2"
	submitTimeout  = 30 * time.Second
	pollTimeout    = 10 * time.Second
)

type readClient struct {
	submitClient *http.Client
	pollClient   *http.Client
	endpoint     string
	key          string
}

// NewReadClient builds a ReadClient against a Read-compatible OCR endpoint.
// An empty endpoint or key produces an unconfigured client; callers must check
// Configured before submitting.
func NewReadClient(endpoint, key string) ReadClient {
	return &readClient{
		submitClient: &http.Client{Timeout: submitTimeout},
		pollClient:   &http.Client{Timeout: pollTimeout},
		endpoint:     strings.TrimRight(endpoint, "/"),
		key:          key,
	}
}

func (c *readClient) Configured() bool {
	return c.endpoint != "" && c.key != ""
}

func (c *readClient) analyzeURL() string {
	return fmt.Sprintf("%s/vision/%s/read/analyze", c.endpoint, readAPIVersion)
}

func (c *readClient) Submit(ctx context.Context, image []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.analyzeURL(), bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("could not create submit request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/octet-stream")
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.submitClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("submit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("submit returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("submit response carried no Operation-Location header")
	}
	return operationURL, nil
}

// readOperation mirrors the wire shape of a Read operation result. Line order
// within each region, and region order within the result, are preserved.
type readOperation struct {
	Status        JobStatus `json:"status"`
	AnalyzeResult struct {
		ReadResults []struct {
			Lines []struct {
				Text string `json:"text"`
			} `json:"lines"`
		} `json:"readResults"`
	} `json:"analyzeResult"`
}

func (c *readClient) Poll(ctx context.Context, operationURL string) (*ReadResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create poll request: %w", err)
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", c.key)

	resp, err := c.pollClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("poll request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("poll returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var op readOperation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, fmt.Errorf("could not decode poll response: %w", err)
	}

	result := &ReadResult{Status: op.Status}
	for _, region := range op.AnalyzeResult.ReadResults {
		for _, line := range region.Lines {
			result.Lines = append(result.Lines, line.Text)
		}
	}
	return result, nil
}
