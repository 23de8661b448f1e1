package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"vendai-assistant-be/pkg/intent"
	"vendai-assistant-be/pkg/inventory"
	"vendai-assistant-be/pkg/llm"
	"vendai-assistant-be/pkg/retrieval"
	"vendai-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	items []retrieval.ContextItem
	err   error
}

func (s *stubRetriever) Retrieve(ctx context.Context, query, scope string, k int) ([]retrieval.ContextItem, error) {
	return s.items, s.err
}

type stubIntents struct {
	intent   *intent.Intent
	panicMsg string
}

func (s *stubIntents) Resolve(ctx context.Context, query string, session *store.Session) (*intent.Intent, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.intent != nil {
		return s.intent, nil
	}
	return intent.FallbackIntent(query), nil
}

type stubLLM struct {
	answer string
	err    error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.answer, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.answer, s.err
}

type engineFixture struct {
	engine    *Engine
	retriever *stubRetriever
	intents   *stubIntents
	llm       *stubLLM
}

func newEngineFixture() *engineFixture {
	ix := inventory.NewIndex()
	ix.Load([]inventory.Row{
		{Name: "Maize Flour 2kg", Price: "50", Category: "Dry Goods"},
		{Name: "Rice 5kg", Price: "650", Category: "Dry Goods"},
		{Name: "Bar Soap", Price: "80", Category: "Household"},
	})

	r := &stubRetriever{}
	in := &stubIntents{}
	l := &stubLLM{answer: "We deliver within Nairobi."}

	eng := New(
		ix,
		inventory.NewScorer(ix),
		r,
		in,
		l,
		NewNameValidator(),
		log.New(io.Discard, "", 0),
		Config{KnowledgeScope: "shop", TopK: 3, Aliases: map[string]string{"unga": "Maize Flour 2kg"}},
	)
	return &engineFixture{engine: eng, retriever: r, intents: in, llm: l}
}

func newRegisteredSession(stage string) *store.Session {
	s := store.NewSession("254700000001", "Jo", true)
	s.FirstName = "Jo"
	s.Stage = stage
	return s
}

func TestRegistrationFlow(t *testing.T) {
	f := newEngineFixture()
	session := store.NewSession("254700000001", "Jo", false)
	require.Equal(t, store.StageAwaitingFirstName, session.Stage)

	// invalid first name re-prompts in place
	reply, order := f.engine.Handle(context.Background(), session, Message{Body: "123"})
	assert.Nil(t, order)
	assert.Equal(t, store.StageAwaitingFirstName, session.Stage)
	assert.Equal(t, replyFirstNameReprompt, reply)

	reply, _ = f.engine.Handle(context.Background(), session, Message{Body: "John"})
	assert.Equal(t, store.StageAwaitingLastName, session.Stage)
	assert.Equal(t, "John", session.FirstName)
	assert.Contains(t, reply, "John")

	reply, _ = f.engine.Handle(context.Background(), session, Message{Body: "Doe"})
	assert.Equal(t, store.StageAwaitingLocation, session.Stage)
	assert.Equal(t, "Doe", session.LastName)
	assert.Equal(t, replyAskLocation, reply)

	// text instead of a location payload re-prompts
	reply, _ = f.engine.Handle(context.Background(), session, Message{Body: "Nairobi"})
	assert.Equal(t, store.StageAwaitingLocation, session.Stage)
	assert.Equal(t, replyLocationReprompt, reply)

	reply, _ = f.engine.Handle(context.Background(), session, Message{
		Location: &Location{Latitude: -1.28, Longitude: 36.82},
	})
	assert.Equal(t, store.StageTakingOrder, session.Stage)
	assert.True(t, session.Registered)
	require.NotNil(t, session.Latitude)
	assert.Equal(t, -1.28, *session.Latitude)
	assert.Contains(t, reply, "Maize Flour 2kg")
	assert.Contains(t, reply, "1. ")
}

func TestIdleGreetingOpensOrder(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageIdle)

	reply, order := f.engine.Handle(context.Background(), session, Message{Body: "hello"})
	assert.Nil(t, order)
	assert.Equal(t, store.StageTakingOrder, session.Stage)
	assert.Contains(t, reply, "Rice 5kg")
}

func TestIdleNonGreetingStays(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageIdle)

	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "blargh"})
	assert.Equal(t, store.StageIdle, session.Stage)
	assert.Equal(t, replyDefault, reply)
}

func TestOrderFlowHappyPath(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageTakingOrder)

	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "Maize Flour 2kg"})
	assert.Equal(t, store.StageSelectingQuantity, session.Stage)
	require.NotNil(t, session.PendingProduct)
	assert.Equal(t, "Maize Flour 2kg", session.PendingProduct.Name)
	assert.Contains(t, reply, "How many")

	// leading integer is accepted even with trailing units
	reply, _ = f.engine.Handle(context.Background(), session, Message{Body: "10kg"})
	assert.Equal(t, store.StageConfirmingOrder, session.Stage)
	assert.Equal(t, 10, session.PendingQuantity)
	assert.Equal(t, 500.0, session.PendingTotal)
	assert.Contains(t, reply, "500.00")

	reply, order := f.engine.Handle(context.Background(), session, Message{Body: "yes"})
	require.NotNil(t, order)
	assert.Equal(t, "Maize Flour 2kg", order.Product.Name)
	assert.Equal(t, 10, order.Quantity)
	assert.Equal(t, 500.0, order.Total)
	assert.Equal(t, store.StageIdle, session.Stage)
	assert.Nil(t, session.PendingProduct)
	require.Len(t, session.Cart, 1)
	assert.Contains(t, reply, "confirmed")
}

func TestOrderAliasResolution(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageTakingOrder)

	f.engine.Handle(context.Background(), session, Message{Body: "unga"})
	require.NotNil(t, session.PendingProduct)
	assert.Equal(t, "Maize Flour 2kg", session.PendingProduct.Name)
}

func TestOrderUnknownProductListsCatalog(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageTakingOrder)

	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "bicycle"})
	assert.Equal(t, store.StageTakingOrder, session.Stage)
	assert.Nil(t, session.PendingProduct)
	assert.Contains(t, reply, "couldn't find")
	assert.Contains(t, reply, "Bar Soap")
}

func TestQuantityRejectsNonNumeric(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageSelectingQuantity)
	product := inventory.Record{Name: "Rice 5kg", RawPrice: "650", CleanPrice: 650, Category: "Dry Goods"}
	session.PendingProduct = &product

	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "a few"})
	assert.Equal(t, store.StageSelectingQuantity, session.Stage)
	assert.Contains(t, reply, "number")

	reply, _ = f.engine.Handle(context.Background(), session, Message{Body: "0"})
	assert.Equal(t, store.StageSelectingQuantity, session.Stage)
	assert.Contains(t, reply, "number")
}

func TestConfirmationNoReturnsToOrdering(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageConfirmingOrder)
	product := inventory.Record{Name: "Rice 5kg", RawPrice: "650", CleanPrice: 650}
	session.PendingProduct = &product
	session.PendingQuantity = 2
	session.PendingTotal = 1300

	reply, order := f.engine.Handle(context.Background(), session, Message{Body: "no"})
	assert.Nil(t, order)
	assert.Equal(t, store.StageTakingOrder, session.Stage)
	assert.Nil(t, session.PendingProduct)
	assert.Empty(t, session.Cart)
	assert.Equal(t, replyOrderCancelled, reply)
}

func TestConfirmationAmbiguousReprompts(t *testing.T) {
	f := newEngineFixture()
	session := newRegisteredSession(store.StageConfirmingOrder)
	product := inventory.Record{Name: "Rice 5kg", RawPrice: "650", CleanPrice: 650}
	session.PendingProduct = &product
	session.PendingQuantity = 1
	session.PendingTotal = 650

	reply, order := f.engine.Handle(context.Background(), session, Message{Body: "maybe later"})
	assert.Nil(t, order)
	assert.Equal(t, store.StageConfirmingOrder, session.Stage)
	assert.NotNil(t, session.PendingProduct)
	assert.Equal(t, replyConfirmReprompt, reply)
}

func TestKnowledgeQuestionKeepsStage(t *testing.T) {
	f := newEngineFixture()
	f.intents.intent = &intent.Intent{Type: intent.TypeQuestion}
	f.retriever.items = []retrieval.ContextItem{{Text: "We deliver across Nairobi.", Score: 0.9}}

	for _, stage := range []string{store.StageIdle, store.StageTakingOrder, store.StageConfirmingOrder} {
		session := newRegisteredSession(stage)
		product := inventory.Record{Name: "Rice 5kg", RawPrice: "650", CleanPrice: 650}
		session.PendingProduct = &product

		reply, order := f.engine.Handle(context.Background(), session, Message{Body: "do you deliver?"})
		assert.Nil(t, order)
		assert.Equal(t, stage, session.Stage, "question must not move the stage")
		assert.Equal(t, "We deliver within Nairobi.", reply)
	}
}

func TestKnowledgeQuestionNoContext(t *testing.T) {
	f := newEngineFixture()
	f.intents.intent = &intent.Intent{Type: intent.TypeQuestion}
	f.retriever.items = nil

	session := newRegisteredSession(store.StageIdle)
	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "what is the meaning of life?"})
	assert.Equal(t, replyNothingFound, reply)
}

func TestKnowledgeQuestionRetrievalFailure(t *testing.T) {
	f := newEngineFixture()
	f.intents.intent = &intent.Intent{Type: intent.TypeQuestion}
	f.retriever.err = retrieval.ErrEmbeddingUnavailable

	session := newRegisteredSession(store.StageIdle)
	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "do you deliver?"})
	assert.Equal(t, replyApology, reply)
	assert.Equal(t, store.StageIdle, session.Stage)
}

func TestKnowledgeQuestionLLMFailure(t *testing.T) {
	f := newEngineFixture()
	f.intents.intent = &intent.Intent{Type: intent.TypeQuestion}
	f.retriever.items = []retrieval.ContextItem{{Text: "ctx", Score: 0.8}}
	f.llm.err = errors.New("model offline")

	session := newRegisteredSession(store.StageIdle)
	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "do you deliver?"})
	assert.Equal(t, replyApology, reply)
}

func TestRecommendationUsesCart(t *testing.T) {
	f := newEngineFixture()
	f.intents.intent = &intent.Intent{Type: intent.TypeRecommendation}

	session := newRegisteredSession(store.StageTakingOrder)
	session.Cart = []inventory.Record{{Name: "Maize Flour 2kg", Category: "Dry Goods"}}

	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "what else should I get?"})
	assert.Equal(t, store.StageTakingOrder, session.Stage)
	assert.Contains(t, reply, "Rice 5kg")
	assert.NotContains(t, reply, "Bar Soap")
}

func TestRecommendationEmptyCart(t *testing.T) {
	f := newEngineFixture()
	f.intents.intent = &intent.Intent{Type: intent.TypeRecommendation}

	session := newRegisteredSession(store.StageTakingOrder)
	reply, _ := f.engine.Handle(context.Background(), session, Message{Body: "suggest something"})
	assert.Contains(t, reply, "Order something first")
}

func TestPanicRestoresSession(t *testing.T) {
	f := newEngineFixture()
	f.intents.panicMsg = "boom"

	session := newRegisteredSession(store.StageTakingOrder)
	session.Cart = []inventory.Record{{Name: "Rice 5kg", Category: "Dry Goods"}}
	before := *session

	reply, order := f.engine.Handle(context.Background(), session, Message{Body: "rice"})
	assert.Nil(t, order)
	assert.Equal(t, replyGenericError, reply)
	assert.Equal(t, before.Stage, session.Stage)
	assert.Equal(t, before.Cart, session.Cart)
	assert.Equal(t, before.PendingQuantity, session.PendingQuantity)
}

func TestFormatProducts(t *testing.T) {
	out := formatProducts([]inventory.Record{
		{Name: "Rice 5kg", RawPrice: "650", Category: "Dry Goods"},
		{Name: "Mystery Item", RawPrice: "10", Category: ""},
	})
	assert.Equal(t, "1. Rice 5kg - 650 (Dry Goods)\n2. Mystery Item - 10 (Uncategorized)", out)
}

func TestNameValidator(t *testing.T) {
	v := NewNameValidator()

	assert.True(t, v.Valid("John"))
	assert.True(t, v.Valid("  Wanjiku  "))
	assert.False(t, v.Valid(""))
	assert.False(t, v.Valid("J"))
	assert.False(t, v.Valid("John123"))
	assert.False(t, v.Valid("two words"))
}
