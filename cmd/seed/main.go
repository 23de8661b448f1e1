package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"vendai-assistant-be/internal/config"
	"vendai-assistant-be/internal/constant"
	"vendai-assistant-be/internal/entity"
	"vendai-assistant-be/internal/repository/unitofwork"
	"vendai-assistant-be/pkg/database"
	"vendai-assistant-be/pkg/embedding"
	"vendai-assistant-be/pkg/inventory"
	"vendai-assistant-be/pkg/prompt"

	"github.com/google/uuid"
)

// Seeds the knowledge base from the inventory CSV: one embedded digest per
// product category, so grounded answers can describe the catalog.
func main() {
	embedKnowledge := flag.Bool("embed", false, "embed per-category catalog digests into the knowledge base")
	flag.Parse()

	cfg := config.Load()

	rows, err := inventory.LoadCSVFile(cfg.Inventory.CSVPath)
	if err != nil {
		log.Fatalf("Unable to load inventory CSV: %v", err)
	}

	index := inventory.NewIndex()
	index.Load(rows)
	log.Printf("Loaded %d inventory records across %d categories", index.Len(), len(index.Categories()))

	if !*embedKnowledge {
		return
	}

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		provider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
	} else {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	}

	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	// Re-seed from scratch so digests match the current CSV.
	if err := uow.KnowledgeEmbeddingRepository().DeleteByScope(ctx, cfg.Inventory.KnowledgeScope); err != nil {
		log.Fatalf("Unable to clear knowledge scope %s: %v", cfg.Inventory.KnowledgeScope, err)
	}

	byCategory := make(map[string][]string)
	for _, record := range index.All() {
		line := fmt.Sprintf("%s - %s", record.Name, record.RawPrice)
		byCategory[record.Category] = append(byCategory[record.Category], line)
	}

	var embeddings []*entity.KnowledgeEmbedding
	for category, lines := range byCategory {
		content := prompt.CategoryDigest(category, lines)
		res, err := provider.Generate(content, constant.EmbeddingTaskDocument)
		if err != nil {
			log.Fatalf("Embedding failed for category %s: %v", category, err)
		}
		embeddings = append(embeddings, &entity.KnowledgeEmbedding{
			Id:             uuid.New(),
			Scope:          cfg.Inventory.KnowledgeScope,
			Content:        content,
			EmbeddingValue: res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.KnowledgeEmbeddingRepository().CreateBulk(ctx, embeddings); err != nil {
		log.Fatalf("Unable to store knowledge embeddings: %v", err)
	}

	log.Printf("✅ Seeded %d category digests into scope %s", len(embeddings), cfg.Inventory.KnowledgeScope)
}
