package auth

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/config"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager(config.JWT{
		Secret:     "super-secret-signing-key",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := newTestManager()
	user := entities.User{ID: 42, Role: entities.RoleAdmin}

	pair, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, time.Hour, pair.RefreshTTL)

	claims, err := m.Parse(pair.AccessToken, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entities.RoleAdmin, claims.Role)

	claims, err = m.Parse(pair.RefreshToken, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, KindRefresh, claims.Kind)
}

func TestTokenManager_Parse(t *testing.T) {
	m := newTestManager()
	pair, err := m.Issue(entities.User{ID: 1, Role: entities.RoleUser})
	require.NoError(t, err)

	other := NewTokenManager(config.JWT{Secret: "another-secret-signing-key", AccessTTL: time.Minute, RefreshTTL: time.Hour})

	expired := newTestManager()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(entities.User{ID: 1})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		mgr   *TokenManager
		token string
		kind  Kind
	}{
		{name: "refresh used as access", mgr: m, token: pair.RefreshToken, kind: KindAccess},
		{name: "access used as refresh", mgr: m, token: pair.AccessToken, kind: KindRefresh},
		{name: "foreign signature", mgr: other, token: pair.AccessToken, kind: KindAccess},
		{name: "expired", mgr: m, token: old.RefreshToken, kind: KindRefresh},
		{name: "garbage", mgr: m, token: "not.a.token", kind: KindAccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.mgr.Parse(tc.token, tc.kind)
			assert.ErrorIs(t, err, entities.ErrInvalidToken)
		})
	}
}

func TestTokenManager_IssueRotates(t *testing.T) {
	m := newTestManager()
	user := entities.User{ID: 7}

	first, err := m.Issue(user)
	require.NoError(t, err)
	second, err := m.Issue(user)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestClaimsContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), Claims{UserID: 5, Role: entities.RoleUser})
	c, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(5), c.UserID)
}
