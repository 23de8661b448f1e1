package factory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendai-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProviderUnsupported(t *testing.T) {
	_, err := NewLLMProvider(Config{Provider: "gpt-oss"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestDeepSeekUsesItsOwnBaseURL(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"pong"}}]}`))
	}))
	defer srv.Close()

	provider, err := NewLLMProvider(Config{
		Provider:        "deepseek",
		Model:           "deepseek-chat",
		OllamaBaseURL:   "http://localhost:1", // must never be contacted
		DeepSeekBaseURL: srv.URL,
		DeepSeekAPIKey:  "sk-test",
	})
	require.NoError(t, err)

	out, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "ping"}})
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestOllamaUsesItsOwnBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":{"role":"assistant","content":"pong"},"done":true}`))
	}))
	defer srv.Close()

	provider, err := NewLLMProvider(Config{
		Provider:        "ollama",
		Model:           "llama3",
		OllamaBaseURL:   srv.URL,
		DeepSeekBaseURL: "http://localhost:1",
	})
	require.NoError(t, err)

	out, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "ping"}})
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
	assert.Equal(t, "/api/chat", gotPath)
}
