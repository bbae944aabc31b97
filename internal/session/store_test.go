package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EnsureCreatesCollapsedSession(t *testing.T) {
	store := NewStore(time.Hour)

	state, created, err := store.Ensure("")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, state.ID, idSize)
	assert.False(t, state.ShowSidebar)

	again, created, err := store.Ensure(state.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, state.ID, again.ID)
}

func TestStore_ToggleSidebarIsPerSession(t *testing.T) {
	store := NewStore(time.Hour)

	a, _, err := store.Ensure("")
	require.NoError(t, err)
	b, _, err := store.Ensure("")
	require.NoError(t, err)

	toggled, err := store.ToggleSidebar(a.ID)
	require.NoError(t, err)
	assert.True(t, toggled.ShowSidebar)

	other, ok := store.Get(b.ID)
	require.True(t, ok)
	assert.False(t, other.ShowSidebar)

	toggled, err = store.ToggleSidebar(a.ID)
	require.NoError(t, err)
	assert.False(t, toggled.ShowSidebar)
}

func TestStore_ToggleUnknownSession(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.ToggleSidebar("desconhecida")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Expiration(t *testing.T) {
	now := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour).WithClock(func() time.Time { return now })

	old, _, err := store.Ensure("")
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	fresh, _, err := store.Ensure("")
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, ok := store.Get(old.ID)
	assert.False(t, ok)

	assert.Equal(t, 1, store.PurgeExpired())
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)

	renewed, created, err := store.Ensure(old.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, old.ID, renewed.ID)
	assert.Equal(t, "sessions", store.Name())
}
