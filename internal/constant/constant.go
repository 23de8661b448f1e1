package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	// Knowledge embeddings task types (Gemini semantics, mirrored by Ollama).
	EmbeddingTaskDocument = "RETRIEVAL_DOCUMENT"
	EmbeddingTaskQuery    = "RETRIEVAL_QUERY"
)
