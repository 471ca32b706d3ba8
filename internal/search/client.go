package search

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

const searchAPIVersion = "2023-11-01"

// Query describes one request against the document index. Mode and Fields are
// left empty for wildcard queries; the service then searches every field.
type Query struct {
	Text   string
	Mode   string
	Fields []string
	Top    int
}

// Document is one retrieved index entry, transient per query. Score is the
// backing service's relevance score; result ordering is the service's ranking
// and is never re-sorted locally.
type Document struct {
	Title         string
	Content       string
	Score         float64
	Persons       []string
	Organizations []string
	Locations     []string
	KeyPhrases    []string
}

// Client is the contract for the knowledge index backend.
type Client interface {
	Configured() bool
	Search(ctx context.Context, q Query) ([]Document, error)
}

type searchClient struct {
	client   *http.Client
	endpoint string
	key      string
	index    string
}

func NewClient(endpoint, key, index string) Client {
	return &searchClient{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		index:    index,
	}
}

func (c *searchClient) Configured() bool {
	return c.endpoint != "" && c.key != ""
}

type searchRequest struct {
	Search       string `json:"search"`
	SearchMode   string `json:"searchMode,omitempty"`
	SearchFields string `json:"searchFields,omitempty"`
	Top          int    `json:"top"`
	Count        bool   `json:"count"`
}

type searchDocument struct {
	Title         string   `json:"title"`
	Chunk         string   `json:"chunk"`
	Score         float64  `json:"@search.score"`
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	KeyPhrases    []string `json:"keyPhrases"`
}

type searchResponse struct {
	Value []searchDocument `json:"value"`
}

func (c *searchClient) Search(ctx context.Context, q Query) ([]Document, error) {
	body, err := json.Marshal(searchRequest{
		Search:       q.Text,
		SearchMode:   q.Mode,
		SearchFields: strings.Join(q.Fields, ","),
		Top:          q.Top,
		Count:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s", c.endpoint, c.index, searchAPIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.key)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("could not decode search response: %w", err)
	}

	docs := make([]Document, 0, len(parsed.Value))
	for _, d := range parsed.Value {
		docs = append(docs, Document{
			Title:         d.Title,
			Content:       d.Chunk,
			Score:         d.Score,
			Persons:       d.Persons,
			Organizations: d.Organizations,
			Locations:     d.Locations,
			KeyPhrases:    d.KeyPhrases,
		})
	}
	return docs, nil
}
