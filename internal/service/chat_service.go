package service

import (
	"context"
	"time"

	"vendai-assistant-be/internal/constant"
	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/internal/entity"
	"vendai-assistant-be/internal/pkg/logger"
	"vendai-assistant-be/internal/repository/memory"
	"vendai-assistant-be/internal/repository/unitofwork"
	"vendai-assistant-be/pkg/engine"
	"vendai-assistant-be/pkg/events"
	"vendai-assistant-be/pkg/nats"
	"vendai-assistant-be/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	HandleMessage(ctx context.Context, req *dto.IncomingMessageRequest) (*dto.ReplyResponse, error)
	History(ctx context.Context, phoneNumber string, limit int) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	engine         *engine.Engine
	sessions       *memory.SessionRepository
	locks          *store.KeyedMutex
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *nats.Publisher
	appLogger      logger.ILogger
}

func NewChatService(
	eng *engine.Engine,
	sessions *memory.SessionRepository,
	locks *store.KeyedMutex,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *nats.Publisher,
	appLogger logger.ILogger,
) IChatService {
	return &chatService{
		engine:         eng,
		sessions:       sessions,
		locks:          locks,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		appLogger:      appLogger,
	}
}

// HandleMessage serializes processing per customer. Messages from different
// customers run concurrently; messages from the same customer are strictly
// ordered.
func (c *chatService) HandleMessage(ctx context.Context, req *dto.IncomingMessageRequest) (*dto.ReplyResponse, error) {
	unlock := c.locks.Lock(req.From)
	defer unlock()

	uow := c.uowFactory.NewUnitOfWork(ctx)

	customer, err := c.ensureCustomer(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	session, found := c.sessions.Get(req.From)
	if !found {
		session = store.NewSession(req.From, req.DisplayName, customer.Registered)
		session.FirstName = customer.FirstName
		session.LastName = customer.LastName
	}
	wasRegistered := session.Registered

	msg := engine.Message{
		From:        req.From,
		DisplayName: req.DisplayName,
		Body:        req.Body,
	}
	if req.Location != nil {
		msg.Location = &engine.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	reply, order := c.engine.Handle(ctx, session, msg)
	c.sessions.Save(session)

	c.persistChatTurn(ctx, uow, customer.Id, session.Stage, req.Body, reply)

	if !wasRegistered && session.Registered {
		c.completeRegistration(ctx, uow, customer, session)
	}

	if order != nil {
		c.persistOrder(ctx, uow, customer.Id, order)
	}

	c.publishEvent(ctx, events.NewReplySentEvent(req.From, session.Stage, reply))

	return &dto.ReplyResponse{Reply: reply, Stage: session.Stage}, nil
}

// History returns the most recent persisted messages for a customer in
// chronological order. An unknown phone number yields an empty transcript.
func (c *chatService) History(ctx context.Context, phoneNumber string, limit int) (*dto.ChatHistoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	res := &dto.ChatHistoryResponse{
		PhoneNumber: phoneNumber,
		Messages:    []dto.ChatMessageDTO{},
	}

	customer, err := uow.CustomerRepository().FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return res, nil
	}

	messages, err := uow.ChatMessageRepository().FindRecentByCustomerId(ctx, customer.Id, limit)
	if err != nil {
		return nil, err
	}

	for _, m := range messages {
		res.Messages = append(res.Messages, dto.ChatMessageDTO{
			Role:      m.Role,
			Body:      m.Body,
			Stage:     m.Stage,
			CreatedAt: m.CreatedAt,
		})
	}
	return res, nil
}

// ensureCustomer guarantees a customer row exists for the sender so chat
// history and orders always have a foreign key target.
func (c *chatService) ensureCustomer(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.IncomingMessageRequest) (*entity.Customer, error) {
	customer, err := uow.CustomerRepository().FindByPhoneNumber(ctx, req.From)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	customer = &entity.Customer{
		Id:          uuid.New(),
		PhoneNumber: req.From,
		DisplayName: req.DisplayName,
		Registered:  false,
		CreatedAt:   time.Now(),
	}
	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (c *chatService) persistChatTurn(ctx context.Context, uow unitofwork.UnitOfWork, customerId uuid.UUID, stage, body, reply string) {
	messages := []*entity.ChatMessage{
		{
			Id:         uuid.New(),
			CustomerId: customerId,
			Role:       constant.ChatMessageRoleUser,
			Body:       body,
			Stage:      stage,
			CreatedAt:  time.Now(),
		},
		{
			Id:         uuid.New(),
			CustomerId: customerId,
			Role:       constant.ChatMessageRoleModel,
			Body:       reply,
			Stage:      stage,
			CreatedAt:  time.Now(),
		},
	}
	if err := uow.ChatMessageRepository().CreateBulk(ctx, messages); err != nil {
		// Chat history is auxiliary; the reply has already been computed.
		c.appLogger.Error("chat", "Failed to persist chat turn", map[string]interface{}{
			"customer_id": customerId.String(),
			"error":       err.Error(),
		})
	}
}

func (c *chatService) completeRegistration(ctx context.Context, uow unitofwork.UnitOfWork, customer *entity.Customer, session *store.Session) {
	customer.FirstName = session.FirstName
	customer.LastName = session.LastName
	customer.Latitude = session.Latitude
	customer.Longitude = session.Longitude
	customer.Registered = true

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		c.appLogger.Error("chat", "Failed to persist registration", map[string]interface{}{
			"customer_id": customer.Id.String(),
			"error":       err.Error(),
		})
		return
	}

	c.publishEvent(ctx, events.NewCustomerRegisteredEvent(customer.PhoneNumber, customer.FirstName, customer.LastName))
}

func (c *chatService) persistOrder(ctx context.Context, uow unitofwork.UnitOfWork, customerId uuid.UUID, order *engine.Order) {
	unitPrice := order.Product.CleanPrice
	if !order.Product.HasKnownPrice() {
		unitPrice = 0
	}

	record := &entity.Order{
		Id:         uuid.New(),
		CustomerId: customerId,
		Items: []entity.OrderItem{
			{
				ProductName: order.Product.Name,
				Category:    order.Product.Category,
				UnitPrice:   unitPrice,
				Quantity:    order.Quantity,
				LineTotal:   order.Total,
			},
		},
		Total:     order.Total,
		Status:    entity.OrderStatusConfirmed,
		CreatedAt: time.Now(),
	}

	if err := uow.OrderRepository().Create(ctx, record); err != nil {
		c.appLogger.Error("chat", "Failed to persist order", map[string]interface{}{
			"customer_id": customerId.String(),
			"product":     order.Product.Name,
			"error":       err.Error(),
		})
		return
	}

	c.publishEvent(ctx, events.NewOrderPlacedEvent(customerId.String(), order.Product.Name, order.Quantity, order.Total))
}

func (c *chatService) publishEvent(ctx context.Context, event events.Event) {
	if c.eventPublisher == nil {
		return
	}
	// Events are auxiliary; never fail the request over them.
	if err := c.eventPublisher.Publish(ctx, event); err != nil {
		c.appLogger.Warn("chat", "Failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}
