package prompt

import (
	"fmt"

	"docsight/internal/model"
	"docsight/internal/search"
)

// historyWindow is the number of trailing history turns carried into the
// prompt. The cut is a hard suffix cut, with no deduplication or summary.
const historyWindow = 10

// guardrailPrompt is the first message of every composed sequence. It
// constrains the completion to the supplied documents as the only source of
// truth.
const guardrailPrompt = `You are a professional assistant answering questions from a curated document knowledge base.

STRICT RULES (NON-NEGOTIABLE):
1. You may only state information that appears EXPLICITLY in the documents provided to you
2. Never invent, assume, or infer certifications, qualifications, or experience
3. If asked about something that is NOT in the documents, reply: "I do not have that information in the available documents"
4. Do not use your general world knowledge - use ONLY the documents provided
5. When citing, always name the source document exactly as it appears

FORBIDDEN:
- Inventing credentials or facts not present in the documents
- Assuming undocumented experience
- Drawing on prior training data

Answer professionally but honestly.`

// knowledgeTemplate wraps the retrieved context with an explicit directive to
// treat it as the only usable information.
const knowledgeTemplate = `OFFICIAL KNOWLEDGE BASE DOCUMENTS:

%s

---
IMPORTANT: The text above is the ONLY information you may use. Do not mention anything that is not explicitly in it. If the answer is not in the text above, say you do not have that information.`

// limitFallbackPrompt is emitted when retrieval is available in principle but
// produced nothing, which in practice means the backing index's daily query
// quota has been exhausted.
const limitFallbackPrompt = `IMPORTANT: You have no access to the knowledge base right now.

When asked about information that would come from the knowledge base, reply:

"I'm sorry, the daily query limit of my knowledge base has been reached. You can try again in a few hours, or reach out through an alternative channel to get the documents directly."

Any question unrelated to the knowledge base can be answered normally.`

// Composer assembles the ordered message sequence for a completion call.
// The ordering is a contract: the guardrail is always first, the knowledge
// block or fallback notice (never both) precedes the history window, and the
// current user turn is always last.
type Composer struct {
	// retrievalEnabled distinguishes a quota-limited empty context, which
	// warrants the fallback notice, from a system that was never configured
	// for retrieval, which gets neither block.
	retrievalEnabled bool
}

func NewComposer(retrievalEnabled bool) *Composer {
	return &Composer{retrievalEnabled: retrievalEnabled}
}

// Compose builds the message sequence for the given turn.
func (c *Composer) Compose(userMessage string, history []model.ChatTurn, kc search.KnowledgeContext) []model.ChatTurn {
	messages := []model.ChatTurn{{Role: model.RoleSystem, Content: guardrailPrompt}}

	if kc.DocumentCount > 0 {
		messages = append(messages, model.ChatTurn{
			Role:    model.RoleSystem,
			Content: fmt.Sprintf(knowledgeTemplate, kc.FormattedText),
		})
	} else if c.retrievalEnabled {
		messages = append(messages, model.ChatTurn{
			Role:    model.RoleSystem,
			Content: limitFallbackPrompt,
		})
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	messages = append(messages, history...)

	messages = append(messages, model.ChatTurn{Role: model.RoleUser, Content: userMessage})
	return messages
}
