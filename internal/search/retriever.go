package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

const (
	minContentLength  = 20
	maxContentLength  = 1200
	maxKeyPhrases     = 7
	genericResultTop  = 10
	specificResultTop = 5
)

// specificSearchFields restricts targeted queries to the fields that actually
// carry answerable text: the chunk body, the title, and the extracted
// entities and key phrases.
var specificSearchFields = []string{"chunk", "title", "keyPhrases", "persons", "organizations"}

// blockSeparator visually divides documents inside the assembled context.
var blockSeparator = "\n\n" + strings.Repeat("=", 60) + "\n\n"

// KnowledgeContext is the formatted block of retrieved document excerpts
// injected into the prompt. An empty context (DocumentCount == 0) is a valid
// state distinct from an error; retrieval never raises to the caller.
type KnowledgeContext struct {
	FormattedText string
	DocumentCount int
}

// Retriever classifies a query, executes it against the document index, and
// formats qualifying results into a bounded context string.
type Retriever struct {
	client Client

	// genericKeywords mark a query as a broad enumeration request. Matching is
	// a lowercase substring check, a deliberately simple heuristic that is
	// supplied by configuration because it is language- and domain-specific.
	genericKeywords []string
}

func NewRetriever(client Client, genericKeywords []string) *Retriever {
	return &Retriever{client: client, genericKeywords: genericKeywords}
}

// Configured reports whether the backing index is reachable in principle.
// The coordinator uses this to distinguish "retrieval disabled" from
// "retrieval available but empty" when setting response flags.
func (r *Retriever) Configured() bool {
	return r.client.Configured()
}

// Retrieve searches the knowledge base and returns formatted context for the
// query. All failures degrade to an empty context.
func (r *Retriever) Retrieve(ctx context.Context, query string) KnowledgeContext {
	if !r.client.Configured() {
		slog.Info("Search client not configured, retrieval disabled")
		return KnowledgeContext{}
	}

	generic := r.isGenericQuery(query)
	q := r.buildQuery(query, generic)
	slog.Info("Searching knowledge base", "generic", generic, "top", q.Top)

	docs, err := r.client.Search(ctx, q)
	if err != nil {
		slog.Warn("Knowledge search failed", "error", err)
		return KnowledgeContext{}
	}

	var blocks []string
	for i, doc := range docs {
		block, ok := formatDocument(doc, i+1)
		if !ok {
			slog.Debug("Document discarded, insufficient content", "title", doc.Title)
			continue
		}
		blocks = append(blocks, block)
	}
	slog.Info("Knowledge search finished", "returned", len(docs), "accepted", len(blocks))

	if len(blocks) == 0 {
		return KnowledgeContext{}
	}
	return KnowledgeContext{
		FormattedText: strings.Join(blocks, blockSeparator),
		DocumentCount: len(blocks),
	}
}

func (r *Retriever) isGenericQuery(query string) bool {
	lowered := strings.ToLower(query)
	for _, kw := range r.genericKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func (r *Retriever) buildQuery(query string, generic bool) Query {
	if generic {
		return Query{Text: "*", Top: genericResultTop}
	}
	return Query{
		Text:   query,
		Mode:   "any",
		Fields: specificSearchFields,
		Top:    specificResultTop,
	}
}

// formatDocument renders one accepted document as a titled block with its
// entity metadata and truncated content. Documents whose content is empty or
// at most minContentLength characters are rejected. Both the filter and the
// truncation count characters, not bytes, so multi-byte content is never cut
// mid-rune.
func formatDocument(doc Document, index int) (string, bool) {
	if utf8.RuneCountInString(doc.Content) <= minContentLength {
		return "", false
	}

	title := doc.Title
	if title == "" {
		title = fmt.Sprintf("doc_%d", index)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[DOC: %s]\n\n", title)

	if len(doc.Persons) > 0 {
		fmt.Fprintf(&b, "Persons: %s\n", strings.Join(doc.Persons, ", "))
	}
	if len(doc.Organizations) > 0 {
		fmt.Fprintf(&b, "Organizations: %s\n", strings.Join(doc.Organizations, ", "))
	}
	if len(doc.Locations) > 0 {
		fmt.Fprintf(&b, "Locations: %s\n", strings.Join(doc.Locations, ", "))
	}
	if len(doc.KeyPhrases) > 0 {
		phrases := doc.KeyPhrases
		if len(phrases) > maxKeyPhrases {
			phrases = phrases[:maxKeyPhrases]
		}
		fmt.Fprintf(&b, "Key phrases: %s\n", strings.Join(phrases, ", "))
	}

	content := doc.Content
	if utf8.RuneCountInString(content) > maxContentLength {
		runes := []rune(content)
		content = string(runes[:maxContentLength])
	}
	b.WriteString("\n")
	b.WriteString(content)

	return b.String(), true
}
