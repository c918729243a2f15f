package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokapasar/internal/domain/entity"
)

func newTestSession(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(context.Background(), NewMemoryPersister(), "test:session")
}

func TestSetUserFlipsAuthenticatedFlag(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	user, auth := session.User()
	assert.Nil(t, user)
	assert.False(t, auth)

	session.SetUser(ctx, &entity.User{ID: "u1", Email: "u1@example.com"})
	user, auth = session.User()
	require.NotNil(t, user)
	assert.True(t, auth)
	assert.Equal(t, "u1", user.ID)

	session.SetUser(ctx, nil)
	user, auth = session.User()
	assert.Nil(t, user)
	assert.False(t, auth)
}

func TestClearDropsUserAndAddresses(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	session.SetUser(ctx, &entity.User{ID: "u1"})
	session.AddAddress(ctx, entity.Address{Label: "Home"})
	session.Clear(ctx)

	user, auth := session.User()
	assert.Nil(t, user)
	assert.False(t, auth)
	assert.Empty(t, session.Addresses())
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	first := session.AddAddress(ctx, entity.Address{Label: "Home"})
	second := session.AddAddress(ctx, entity.Address{Label: "Office"})

	assert.NotEmpty(t, first.ID)
	assert.True(t, first.IsDefault)
	assert.False(t, second.IsDefault)
}

func TestSetDefaultAddressLeavesExactlyOneDefault(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	session.AddAddress(ctx, entity.Address{Label: "Home"})
	second := session.AddAddress(ctx, entity.Address{Label: "Office"})
	third := session.AddAddress(ctx, entity.Address{Label: "Warehouse"})

	require.NoError(t, session.SetDefaultAddress(ctx, second.ID))

	defaults := 0
	for _, a := range session.Addresses() {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	require.NoError(t, session.SetDefaultAddress(ctx, third.ID))
	defaults = 0
	for _, a := range session.Addresses() {
		if a.IsDefault {
			defaults++
			assert.Equal(t, third.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestSetDefaultAddressUnknownID(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	session.AddAddress(ctx, entity.Address{Label: "Home"})
	assert.Error(t, session.SetDefaultAddress(ctx, "missing"))
}

func TestUpdateAddressPreservesDefaultFlag(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	home := session.AddAddress(ctx, entity.Address{Label: "Home", City: "Bandung"})

	updated := home
	updated.City = "Jakarta"
	updated.IsDefault = false
	require.NoError(t, session.UpdateAddress(ctx, updated))

	addresses := session.Addresses()
	require.Len(t, addresses, 1)
	assert.Equal(t, "Jakarta", addresses[0].City)
	assert.True(t, addresses[0].IsDefault)
}

func TestUpdateAddressUnknownID(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	err := session.UpdateAddress(ctx, entity.Address{ID: "missing"})
	assert.Error(t, err)
}

func TestRemoveAddress(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	home := session.AddAddress(ctx, entity.Address{Label: "Home"})
	office := session.AddAddress(ctx, entity.Address{Label: "Office"})

	session.RemoveAddress(ctx, home.ID)

	addresses := session.Addresses()
	require.Len(t, addresses, 1)
	assert.Equal(t, office.ID, addresses[0].ID)

	session.RemoveAddress(ctx, "missing")
	assert.Len(t, session.Addresses(), 1)
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	persister := NewMemoryPersister()
	session := NewSessionStore(ctx, persister, "test:session")

	session.SetUser(ctx, &entity.User{ID: "u1", Email: "u1@example.com"})
	session.AddAddress(ctx, entity.Address{Label: "Home"})

	restored := NewSessionStore(ctx, persister, "test:session")
	user, auth := restored.User()
	require.NotNil(t, user)
	assert.True(t, auth)
	assert.Equal(t, "u1", user.ID)
	assert.Len(t, restored.Addresses(), 1)
}
