package engine

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"

	"vendai-assistant-be/pkg/intent"
	"vendai-assistant-be/pkg/inventory"
	"vendai-assistant-be/pkg/llm"
	"vendai-assistant-be/pkg/prompt"
	"vendai-assistant-be/pkg/retrieval"
	"vendai-assistant-be/pkg/store"
)

// Location is the structured payload a chat transport attaches to a shared
// location message.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Message is one inbound customer message at the engine boundary.
type Message struct {
	From        string
	DisplayName string
	Body        string
	Location    *Location
}

// Order is emitted when a customer confirms a pending order, so the caller
// can persist it.
type Order struct {
	Product  inventory.Record
	Quantity int
	Total    float64
}

// Retriever fetches scoped grounding context for knowledge questions.
type Retriever interface {
	Retrieve(ctx context.Context, query string, scope string, k int) ([]retrieval.ContextItem, error)
}

// IntentResolver classifies a message against the live session.
type IntentResolver interface {
	Resolve(ctx context.Context, query string, session *store.Session) (*intent.Intent, error)
}

// Config tunes the engine without touching its transition logic.
type Config struct {
	// KnowledgeScope partitions retrieval; search never crosses it.
	KnowledgeScope string
	// TopK context items per knowledge question.
	TopK int
	// Aliases maps alternative product spellings to canonical names.
	Aliases map[string]string
}

func DefaultConfig() Config {
	return Config{
		KnowledgeScope: "vendai",
		TopK:           3,
	}
}

// Engine is the per-message conversation state machine. Each call consumes
// one message, mutates the session, and emits exactly one reply.
type Engine struct {
	index     *inventory.Index
	scorer    *inventory.Scorer
	retriever Retriever
	intents   IntentResolver
	llm       llm.LLMProvider
	names     NameValidator
	logger    *log.Logger
	cfg       Config
}

func New(
	index *inventory.Index,
	scorer *inventory.Scorer,
	retriever Retriever,
	intents IntentResolver,
	llmProvider llm.LLMProvider,
	names NameValidator,
	logger *log.Logger,
	cfg Config,
) *Engine {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	return &Engine{
		index:     index,
		scorer:    scorer,
		retriever: retriever,
		intents:   intents,
		llm:       llmProvider,
		names:     names,
		logger:    logger,
		cfg:       cfg,
	}
}

// Handle processes one message. A non-nil order means the customer confirmed
// a purchase this turn. Any unexpected fault restores the session to its
// state at entry and yields the generic error reply.
func (e *Engine) Handle(ctx context.Context, session *store.Session, msg Message) (reply string, order *Order) {
	snapshot := *session
	defer func() {
		if rec := recover(); rec != nil {
			*session = snapshot
			e.logger.Printf("[ERROR] Recovered while handling message from %s: %v", msg.From, rec)
			reply = replyGenericError
			order = nil
		}
	}()

	body := strings.TrimSpace(msg.Body)

	// Registration stages capture raw input (names, a location payload) and
	// are never routed through the classifier.
	var resolved *intent.Intent
	switch session.Stage {
	case store.StageAwaitingFirstName, store.StageAwaitingLastName, store.StageAwaitingLocation:
	default:
		resolved, _ = e.intents.Resolve(ctx, body, session)
	}

	// Knowledge questions bypass the order flow at any stage and never
	// change it.
	if resolved != nil && resolved.Type == intent.TypeQuestion {
		return e.answerQuestion(ctx, body), nil
	}

	switch session.Stage {
	case store.StageAwaitingFirstName:
		return e.handleFirstName(session, body), nil
	case store.StageAwaitingLastName:
		return e.handleLastName(session, body), nil
	case store.StageAwaitingLocation:
		return e.handleLocation(session, msg.Location), nil
	case store.StageIdle:
		return e.handleIdle(session, body, resolved), nil
	case store.StageTakingOrder:
		return e.handleTakingOrder(session, body, resolved), nil
	case store.StageSelectingQuantity:
		return e.handleQuantity(session, body), nil
	case store.StageConfirmingOrder:
		return e.handleConfirmation(session, body)
	default:
		// Unreachable with a well-formed session; reset to a safe stage.
		e.logger.Printf("[WARN] Session %s in unknown stage %q, resetting", session.CustomerID, session.Stage)
		session.Stage = store.StageIdle
		return replyDefault, nil
	}
}

func (e *Engine) handleFirstName(session *store.Session, body string) string {
	if !e.names.Valid(body) {
		return replyFirstNameReprompt
	}
	session.FirstName = strings.TrimSpace(body)
	session.Stage = store.StageAwaitingLastName
	return askLastName(session.FirstName)
}

func (e *Engine) handleLastName(session *store.Session, body string) string {
	if !e.names.Valid(body) {
		return replyLastNameReprompt
	}
	session.LastName = strings.TrimSpace(body)
	session.Stage = store.StageAwaitingLocation
	return replyAskLocation
}

func (e *Engine) handleLocation(session *store.Session, location *Location) string {
	if location == nil {
		return replyLocationReprompt
	}
	lat, lng := location.Latitude, location.Longitude
	session.Latitude = &lat
	session.Longitude = &lng
	session.Registered = true
	session.Stage = store.StageTakingOrder
	return catalogGreeting(session.FirstName, e.index.All())
}

func (e *Engine) handleIdle(session *store.Session, body string, resolved *intent.Intent) string {
	if isGreeting(body, resolved) {
		session.Stage = store.StageTakingOrder
		return catalogGreeting(session.FirstName, e.index.All())
	}
	if resolved != nil && resolved.Type == intent.TypeCartManagement {
		return cartReply(session.Cart)
	}
	return replyDefault
}

func (e *Engine) handleTakingOrder(session *store.Session, body string, resolved *intent.Intent) string {
	if resolved != nil {
		switch resolved.Type {
		case intent.TypeRecommendation:
			return recommendationReply(e.scorer.Recommend(session.Cart, resolved.Filters()))
		case intent.TypeCartManagement:
			return cartReply(session.Cart)
		}
	}

	filters := inventory.Filters{}
	if resolved != nil && resolved.Type == intent.TypeProductInquiry {
		filters = resolved.Filters()
		session.LastInquiry = &store.Inquiry{Query: body, Filters: filters}
	}

	product, candidates := e.resolveProduct(body, filters)
	if product == nil {
		if len(candidates) > 0 {
			return matchListReply(candidates)
		}
		return productNotFound(e.index.All())
	}

	session.PendingProduct = product
	session.Stage = store.StageSelectingQuantity
	return quantityPrompt(product)
}

// resolveProduct maps a message to a single inventory record: exact name
// first, then the alias table, then the relevance scorer. A scored match is
// only accepted outright when it is unambiguous; otherwise the candidates
// are returned for a clarification list.
func (e *Engine) resolveProduct(body string, filters inventory.Filters) (*inventory.Record, []inventory.ScoredRecord) {
	if record := e.index.FindByName(body); record != nil {
		return record, nil
	}

	if canonical, ok := e.cfg.Aliases[strings.ToLower(strings.TrimSpace(body))]; ok {
		if record := e.index.FindByName(canonical); record != nil {
			return record, nil
		}
	}

	scored := e.scorer.Score(body, filters)
	if len(scored) == 0 {
		return nil, nil
	}
	if len(scored) == 1 || scored[0].Score >= 100 {
		record := scored[0].Record
		return &record, nil
	}
	return nil, scored
}

var leadingInteger = regexp.MustCompile(`^\s*(\d+)`)

func (e *Engine) handleQuantity(session *store.Session, body string) string {
	match := leadingInteger.FindStringSubmatch(body)
	if match == nil {
		return quantityReprompt(session.PendingProduct)
	}
	quantity, err := strconv.Atoi(match[1])
	if err != nil || quantity <= 0 {
		return quantityReprompt(session.PendingProduct)
	}

	session.PendingQuantity = quantity
	if session.PendingProduct.HasKnownPrice() {
		session.PendingTotal = float64(quantity) * session.PendingProduct.CleanPrice
	} else {
		session.PendingTotal = 0
	}
	session.Stage = store.StageConfirmingOrder
	return orderSummary(session.PendingProduct, quantity, session.PendingTotal)
}

func (e *Engine) handleConfirmation(session *store.Session, body string) (string, *Order) {
	switch normalizeConfirmation(body) {
	case "yes":
		order := &Order{
			Product:  *session.PendingProduct,
			Quantity: session.PendingQuantity,
			Total:    session.PendingTotal,
		}
		session.Cart = append(session.Cart, order.Product)
		session.ClearPending()
		session.Stage = store.StageIdle
		return orderConfirmed(order), order
	case "no":
		session.ClearPending()
		session.Stage = store.StageTakingOrder
		return replyOrderCancelled, nil
	default:
		return replyConfirmReprompt, nil
	}
}

func normalizeConfirmation(body string) string {
	lowered := strings.ToLower(strings.Trim(strings.TrimSpace(body), "!,."))
	switch lowered {
	case "yes", "y", "yeah", "yep", "confirm", "yes please":
		return "yes"
	case "no", "n", "nope", "cancel":
		return "no"
	default:
		return ""
	}
}

func isGreeting(body string, resolved *intent.Intent) bool {
	if resolved != nil && resolved.Type == intent.TypeGreeting {
		return true
	}
	// Classifier may be unavailable; the fallback heuristic still recognizes
	// plain greetings.
	return intent.FallbackIntent(body).Type == intent.TypeGreeting
}

// answerQuestion grounds a knowledge question with retrieved context and
// delegates generation to the LLM. It never mutates the session.
func (e *Engine) answerQuestion(ctx context.Context, question string) string {
	items, err := e.retriever.Retrieve(ctx, question, e.cfg.KnowledgeScope, e.cfg.TopK)
	if err != nil {
		e.logger.Printf("[ERROR] Context retrieval failed: %v", err)
		return replyApology
	}
	if len(items) == 0 {
		return replyNothingFound
	}

	userPrompt := prompt.Grounded(retrieval.JoinContext(items), question)
	answer, err := e.llm.Chat(ctx, []llm.Message{
		{Role: "system", Content: prompt.SystemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		e.logger.Printf("[ERROR] LLM generation failed: %v", err)
		return replyApology
	}
	return answer
}
