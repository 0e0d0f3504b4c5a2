package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "file-custody-api/internal/domain/user"
	jwtSvc "file-custody-api/internal/infrastructure/jwt"
)

func TestAuthService_IssueToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("front-end-key"), bcrypt.MinCost)
	require.NoError(t, err)

	j := jwtSvc.New("test-secret")
	as := NewAuthService(j, string(hash))

	someUser := func(banned bool) *domain.User {
		return &domain.User{
			ID:          42,
			Username:    "alice",
			DisplayName: "Alice",
			IsAdmin:     true,
			IsBanned:    banned,
		}
	}

	t.Run("valid key issues a token with the caller identity", func(t *testing.T) {
		tok, err := as.IssueToken("front-end-key", someUser(false))
		require.NoError(t, err)
		require.NotEmpty(t, tok)

		claims, err := j.ValidateToken(tok)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "Alice", claims.DisplayName)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("wrong key refused", func(t *testing.T) {
		_, err := as.IssueToken("guess", someUser(false))
		require.ErrorIs(t, err, ErrInvalidBotKey)
	})

	t.Run("banned user refused even with a valid key", func(t *testing.T) {
		_, err := as.IssueToken("front-end-key", someUser(true))
		require.ErrorIs(t, err, ErrUserBanned)
	})
}
