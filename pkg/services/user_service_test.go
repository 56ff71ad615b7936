package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
	testdb "github.com/specsmith/specsmith/test/database"
)

func TestUserService_Register(t *testing.T) {
	client := testdb.NewIdentityTestClient(t)
	users := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		u, err := users.Register(ctx, models.RegisterRequest{Handle: "alice", Password: "correct horse"})
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Handle)
		assert.False(t, u.IsAdmin)
	})

	t.Run("duplicate handle rejected", func(t *testing.T) {
		_, err := users.Register(ctx, models.RegisterRequest{Handle: "alice", Password: "another pass"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := users.Register(ctx, models.RegisterRequest{Handle: "", Password: "long enough"})
		assert.True(t, IsValidationError(err))

		_, err = users.Register(ctx, models.RegisterRequest{Handle: "bob", Password: "short"})
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_LoginAndTokens(t *testing.T) {
	client := testdb.NewIdentityTestClient(t)
	users := NewUserService(client.Client)
	ctx := context.Background()

	registered, err := users.Register(ctx, models.RegisterRequest{Handle: "carol", Password: "sound password"})
	require.NoError(t, err)

	t.Run("login issues a usable token pair", func(t *testing.T) {
		pair, err := users.Login(ctx, models.LoginRequest{Handle: "carol", Password: "sound password"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		identity, err := users.Authenticate(ctx, pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, identity.UserID)
		assert.Equal(t, "carol", identity.Handle)
	})

	t.Run("wrong password and unknown handle look alike", func(t *testing.T) {
		_, err1 := users.Login(ctx, models.LoginRequest{Handle: "carol", Password: "wrong"})
		_, err2 := users.Login(ctx, models.LoginRequest{Handle: "nobody", Password: "wrong"})
		assert.ErrorIs(t, err1, ErrUnauthorized)
		assert.ErrorIs(t, err2, ErrUnauthorized)
	})

	t.Run("refresh rotates the pair", func(t *testing.T) {
		pair, err := users.Login(ctx, models.LoginRequest{Handle: "carol", Password: "sound password"})
		require.NoError(t, err)

		rotated, err := users.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, pair.AccessToken, rotated.AccessToken)

		// The used refresh token is revoked.
		_, err = users.Refresh(ctx, pair.RefreshToken)
		assert.ErrorIs(t, err, ErrUnauthorized)

		_, err = users.Authenticate(ctx, rotated.AccessToken)
		assert.NoError(t, err)
	})

	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		pair, err := users.Login(ctx, models.LoginRequest{Handle: "carol", Password: "sound password"})
		require.NoError(t, err)

		_, err = users.Refresh(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("logout revokes outstanding tokens", func(t *testing.T) {
		pair, err := users.Login(ctx, models.LoginRequest{Handle: "carol", Password: "sound password"})
		require.NoError(t, err)

		identity, err := users.Authenticate(ctx, pair.AccessToken)
		require.NoError(t, err)

		require.NoError(t, users.Logout(ctx, *identity))

		_, err = users.Authenticate(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserService_APIKeys(t *testing.T) {
	client := testdb.NewIdentityTestClient(t)
	users := NewUserService(client.Client)
	ctx := context.Background()

	u, err := users.Register(ctx, models.RegisterRequest{Handle: "dave", Password: "sound password"})
	require.NoError(t, err)
	identity := models.Identity{UserID: u.ID, Handle: u.Handle}

	t.Run("issued key authenticates", func(t *testing.T) {
		plaintext, row, err := users.CreateAPIKey(ctx, identity, "ci")
		require.NoError(t, err)
		assert.Equal(t, "ci", row.Name)

		got, err := users.Authenticate(ctx, plaintext)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.UserID)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := users.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
