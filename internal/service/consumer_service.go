package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vendai-assistant-be/internal/constant"
	"vendai-assistant-be/internal/dto"
	"vendai-assistant-be/internal/entity"
	"vendai-assistant-be/internal/repository/unitofwork"
	"vendai-assistant-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IngestKnowledgeRequest
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Scope == "" || payload.Content == "" {
		log.Printf("[ERROR] Knowledge payload missing scope or content")
		msg.Ack()
		return
	}

	log.Printf("[INFO] Embedding knowledge snippet for scope %s (content length: %d)", payload.Scope, len(payload.Content))

	res, err := cs.embeddingProvider.Generate(payload.Content, constant.EmbeddingTaskDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for scope %s: %v", payload.Scope, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	knowledge := &entity.KnowledgeEmbedding{
		Id:             uuid.New(),
		Scope:          payload.Scope,
		Content:        payload.Content,
		EmbeddingValue: res.Embedding.Values,
		CreatedAt:      time.Now(),
	}

	if err := uow.KnowledgeEmbeddingRepository().Create(ctx, knowledge); err != nil {
		log.Printf("[ERROR] Failed to store knowledge embedding: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Knowledge stored for scope %s (id %s)", payload.Scope, knowledge.Id)
	msg.Ack()
}
