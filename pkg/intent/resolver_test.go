package intent

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"vendai-assistant-be/pkg/llm"
	"vendai-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func newTestResolver(response string, err error) *Resolver {
	return NewResolver(&stubLLM{response: response, err: err}, log.New(io.Discard, "", 0))
}

func TestResolveParsesCleanJSON(t *testing.T) {
	resolver := newTestResolver(`{
		"intent": "product_inquiry",
		"context": {"category": "Dry Goods", "priceRange": {"min": 100, "max": 500}},
		"confidence": 0.92,
		"reasoning": "asks for flour under 500"
	}`, nil)

	resolved, err := resolver.Resolve(context.Background(), "flour under 500", store.NewSession("c1", "Jo", true))
	require.NoError(t, err)

	assert.Equal(t, TypeProductInquiry, resolved.Type)
	assert.Equal(t, "Dry Goods", resolved.Category)
	require.NotNil(t, resolved.PriceRange)
	assert.Equal(t, 100.0, resolved.PriceRange.Min)
	assert.Equal(t, 500.0, resolved.PriceRange.Max)
}

func TestResolveParsesFencedJSON(t *testing.T) {
	resolver := newTestResolver("Here is the classification:\n```json\n{\"intent\": \"question\", \"confidence\": 0.8}\n```", nil)

	resolved, err := resolver.Resolve(context.Background(), "do you deliver?", store.NewSession("c1", "Jo", true))
	require.NoError(t, err)
	assert.Equal(t, TypeQuestion, resolved.Type)
}

func TestResolveUnknownIntentLabel(t *testing.T) {
	resolver := newTestResolver(`{"intent": "telepathy", "confidence": 0.9}`, nil)

	resolved, err := resolver.Resolve(context.Background(), "hmm", store.NewSession("c1", "Jo", true))
	require.NoError(t, err)
	assert.Equal(t, TypeUnknown, resolved.Type)
}

func TestResolveZeroMaxPriceRangeDropped(t *testing.T) {
	resolver := newTestResolver(`{"intent": "product_inquiry", "context": {"priceRange": {"min": 0, "max": 0}}, "confidence": 0.7}`, nil)

	resolved, err := resolver.Resolve(context.Background(), "flour", store.NewSession("c1", "Jo", true))
	require.NoError(t, err)
	assert.Nil(t, resolved.PriceRange)
}

func TestResolveFallsBackOnLLMError(t *testing.T) {
	resolver := newTestResolver("", errors.New("connection refused"))

	resolved, err := resolver.Resolve(context.Background(), "hello there", store.NewSession("c1", "Jo", true))
	require.NoError(t, err, "resolution never errors")
	assert.Equal(t, TypeGreeting, resolved.Type)
}

func TestResolveFallsBackOnGarbageOutput(t *testing.T) {
	resolver := newTestResolver("I think the customer wants groceries.", nil)

	resolved, err := resolver.Resolve(context.Background(), "what time do you open?", store.NewSession("c1", "Jo", true))
	require.NoError(t, err)
	assert.Equal(t, TypeQuestion, resolved.Type)
}

func TestFallbackIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Type
	}{
		{query: "hi", want: TypeGreeting},
		{query: "Hello!", want: TypeGreeting},
		{query: "jambo rafiki", want: TypeGreeting},
		{query: "good morning", want: TypeGreeting},
		{query: "can you recommend something", want: TypeRecommendation},
		{query: "suggest a snack", want: TypeRecommendation},
		{query: "do you deliver to Westlands?", want: TypeQuestion},
		{query: "flour", want: TypeUnknown},
		{query: "", want: TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackIntent(tt.query).Type)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`prefix {"a":1} suffix`))
	assert.Equal(t, "", extractJSON("no braces here"))
	assert.Equal(t, "", extractJSON("} reversed {"))
}
