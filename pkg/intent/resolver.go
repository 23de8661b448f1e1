package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"vendai-assistant-be/pkg/inventory"
	"vendai-assistant-be/pkg/llm"
	"vendai-assistant-be/pkg/store"
)

// Type is the closed set of message intents the engine matches on.
type Type string

const (
	TypeGreeting       Type = "GREETING"
	TypeProductInquiry Type = "PRODUCT_INQUIRY"
	TypeCartManagement Type = "CART_MANAGEMENT"
	TypeRecommendation Type = "RECOMMENDATION"
	TypeQuestion       Type = "QUESTION"
	TypeUnknown        Type = "UNKNOWN"
)

// Intent is the resolved classification of one inbound message.
// Category and PriceRange are only populated for product inquiries.
type Intent struct {
	Type       Type                 `json:"type"`
	Category   string               `json:"category,omitempty"`
	PriceRange *inventory.PriceRange `json:"price_range,omitempty"`
	Confidence float32              `json:"confidence"`
	Reasoning  string               `json:"reasoning,omitempty"`
}

// Filters converts the structured fields into scorer filters.
func (i *Intent) Filters() inventory.Filters {
	return inventory.Filters{
		Category:   i.Category,
		PriceRange: i.PriceRange,
	}
}

// Resolver performs LLM-based intent classification with a deterministic
// keyword fallback, so a dead LLM never blocks the order flow.
type Resolver struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewResolver(llmProvider llm.LLMProvider, logger *log.Logger) *Resolver {
	return &Resolver{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Resolve classifies the message. It never returns an error: classification
// failures degrade to the keyword fallback.
func (r *Resolver) Resolve(ctx context.Context, query string, session *store.Session) (*Intent, error) {
	prompt := r.buildPrompt(query, session)

	// Temperature 0 for deterministic classification output
	response, err := r.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		r.logger.Printf("[WARN] Intent resolution failed, using fallback: %v", err)
		return FallbackIntent(query), nil
	}

	resolved, err := r.parseIntent(response)
	if err != nil {
		r.logger.Printf("[WARN] Intent parsing failed, using fallback: %v", err)
		return FallbackIntent(query), nil
	}

	r.logger.Printf("[INTENT] Resolved: %s (Category: %s, Confidence: %.2f)",
		resolved.Type, resolved.Category, resolved.Confidence)

	return resolved, nil
}

func (r *Resolver) buildPrompt(query string, session *store.Session) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are an intent analyzer for a shopping assistant. Your ONLY job is to classify what the customer wants.\n")
	prompt.WriteString("You do NOT answer questions. You only classify intent.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<session_state>\n")
	if len(session.Cart) > 0 {
		prompt.WriteString("CART:\n")
		for i, item := range session.Cart {
			prompt.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, item.Name, item.RawPrice))
		}
	} else {
		prompt.WriteString("CART: empty\n")
	}
	if session.LastInquiry != nil {
		prompt.WriteString(fmt.Sprintf("LAST_INQUIRY: %q\n", session.LastInquiry.Query))
	}
	prompt.WriteString("</session_state>\n\n")

	prompt.WriteString("<customer_message>\n")
	prompt.WriteString(query)
	prompt.WriteString("\n</customer_message>\n\n")

	prompt.WriteString("<intent_definitions>\n")
	prompt.WriteString("greeting: Customer opens or resumes the conversation ('hi', 'hello', 'good morning')\n")
	prompt.WriteString("product_inquiry: Customer asks about a product or product category, possibly with a price range\n")
	prompt.WriteString("cart_management: Customer wants to change or review their cart or a pending order\n")
	prompt.WriteString("recommendation: Customer asks what they should buy or for suggestions\n")
	prompt.WriteString("question: Customer asks a knowledge question about products, delivery, or the store\n")
	prompt.WriteString("unknown: None of the above applies\n")
	prompt.WriteString("</intent_definitions>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"intent\": \"greeting|product_inquiry|cart_management|recommendation|question|unknown\",\n")
	prompt.WriteString("  \"context\": {\n")
	prompt.WriteString("    \"category\": \"optional category\",\n")
	prompt.WriteString("    \"priceRange\": {\"min\": 0, \"max\": 0}\n")
	prompt.WriteString("  },\n")
	prompt.WriteString("  \"confidence\": 0.95,\n")
	prompt.WriteString("  \"reasoning\": \"Brief explanation\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("Omit context fields that do not apply.\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

// rawIntent mirrors the JSON the model is asked to produce.
type rawIntent struct {
	Intent  string `json:"intent"`
	Context struct {
		Category   string `json:"category"`
		PriceRange *struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"priceRange"`
	} `json:"context"`
	Confidence float32 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func (r *Resolver) parseIntent(response string) (*Intent, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var raw rawIntent
	if err := json.Unmarshal([]byte(jsonContent), &raw); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	resolved := &Intent{
		Type:       mapIntentType(raw.Intent),
		Category:   strings.TrimSpace(raw.Context.Category),
		Confidence: raw.Confidence,
		Reasoning:  raw.Reasoning,
	}
	if raw.Context.PriceRange != nil && raw.Context.PriceRange.Max > 0 {
		resolved.PriceRange = &inventory.PriceRange{
			Min: raw.Context.PriceRange.Min,
			Max: raw.Context.PriceRange.Max,
		}
	}
	return resolved, nil
}

func mapIntentType(raw string) Type {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "greeting":
		return TypeGreeting
	case "product_inquiry":
		return TypeProductInquiry
	case "cart_management":
		return TypeCartManagement
	case "recommendation":
		return TypeRecommendation
	case "question":
		return TypeQuestion
	default:
		return TypeUnknown
	}
}

var greetingWords = map[string]bool{
	"hi":      true,
	"hello":   true,
	"hey":     true,
	"habari":  true,
	"jambo":   true,
	"morning": true,
}

// FallbackIntent is the deterministic classification used when the LLM call
// fails or produces unparseable output.
func FallbackIntent(query string) *Intent {
	lowered := strings.ToLower(strings.TrimSpace(query))

	for _, token := range strings.Fields(lowered) {
		if greetingWords[strings.Trim(token, "!,.")] {
			return &Intent{Type: TypeGreeting, Confidence: 0.5, Reasoning: "Fallback: greeting keyword"}
		}
	}

	if strings.Contains(lowered, "recommend") || strings.Contains(lowered, "suggest") {
		return &Intent{Type: TypeRecommendation, Confidence: 0.5, Reasoning: "Fallback: recommendation keyword"}
	}

	if strings.HasSuffix(lowered, "?") {
		return &Intent{Type: TypeQuestion, Confidence: 0.5, Reasoning: "Fallback: question mark"}
	}

	return &Intent{Type: TypeUnknown, Confidence: 0.3, Reasoning: "Fallback: no signal"}
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
