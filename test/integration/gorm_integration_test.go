package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"vendai-assistant-be/internal/repository/unitofwork"
	"vendai-assistant-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.CustomerRepository())
	assert.NotNil(t, uow.OrderRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	// Count implies the table and its columns exist.
	t.Run("Check Customer Repository", func(t *testing.T) {
		count, err := uow.CustomerRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Customer count: %d", count)
	})

	t.Run("Check Knowledge Embedding Repository", func(t *testing.T) {
		count, err := uow.KnowledgeEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("KnowledgeEmbedding count: %d", count)
	})

	t.Run("Check Chat Message Repository", func(t *testing.T) {
		count, err := uow.ChatMessageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatMessage count: %d", count)
	})
}
