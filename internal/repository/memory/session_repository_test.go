package memory

import (
	"testing"

	"vendai-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("254700000001")
	assert.False(t, found)

	session := store.NewSession("254700000001", "Jo", false)
	repo.Save(session)

	got, found := repo.Get("254700000001")
	require.True(t, found)
	assert.Same(t, session, got)
}

func TestSessionRepositoryMutationsVisible(t *testing.T) {
	repo := NewSessionRepository()
	session := store.NewSession("254700000001", "Jo", false)
	repo.Save(session)

	session.Stage = store.StageTakingOrder
	session.Registered = true

	got, found := repo.Get("254700000001")
	require.True(t, found)
	assert.Equal(t, store.StageTakingOrder, got.Stage)
	assert.True(t, got.Registered)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(store.NewSession("254700000001", "Jo", true))

	repo.Delete("254700000001")

	_, found := repo.Get("254700000001")
	assert.False(t, found)
}

func TestSessionRepositoryIsolatesCustomers(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(store.NewSession("254700000001", "Jo", true))
	repo.Save(store.NewSession("254700000002", "Amina", false))

	a, _ := repo.Get("254700000001")
	b, _ := repo.Get("254700000002")
	assert.Equal(t, store.StageIdle, a.Stage)
	assert.Equal(t, store.StageAwaitingFirstName, b.Stage)
}
