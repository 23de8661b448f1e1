package main

import (
	"log"

	"vendai-assistant-be/internal/config"
	"vendai-assistant-be/internal/model"
	"vendai-assistant-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// pgvector must exist before the embeddings table can be created.
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Panicf("Unable to create vector extension: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.Customer{},
		&model.ChatMessage{},
		&model.Order{},
		&model.KnowledgeEmbedding{},
	)
	if err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
