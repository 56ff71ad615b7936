// Package services contains the store-facing business logic layer. Services
// take an ent client, validate input, and map storage failures onto the
// shared error taxonomy. Engines stay pure; all I/O happens here.
package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/apikey"
	"github.com/specsmith/specsmith/ent/refreshtoken"
	"github.com/specsmith/specsmith/ent/user"
	"github.com/specsmith/specsmith/pkg/models"
)

// Token prefixes distinguish the credential kinds on the wire. Only hashes
// are stored.
const (
	accessTokenPrefix  = "st_"
	refreshTokenPrefix = "rt_"
	apiKeyPrefix       = "sk_"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour

	minPasswordLength = 8
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// UserService manages identities and credentials in the identity store.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(httpCtx context.Context, req models.RegisterRequest) (*ent.User, error) {
	handle := strings.TrimSpace(req.Handle)
	if handle == "" {
		return nil, NewValidationError("handle", "required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetHandle(handle).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and issues a fresh token pair.
func (s *UserService) Login(httpCtx context.Context, req models.LoginRequest) (*TokenPair, error) {
	if req.Handle == "" {
		return nil, NewValidationError("handle", "required")
	}
	if req.Password == "" {
		return nil, NewValidationError("password", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	u, err := s.client.User.Query().
		Where(user.HandleEQ(strings.TrimSpace(req.Handle))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Same answer as a bad password; handles are not probeable.
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrUnauthorized
	}

	return s.issueTokens(ctx, u.ID)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. A revoked or expired token is rejected.
func (s *UserService) Refresh(httpCtx context.Context, token string) (*TokenPair, error) {
	if !strings.HasPrefix(token, refreshTokenPrefix) {
		return nil, ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	row, err := s.client.RefreshToken.Query().
		Where(refreshtoken.TokenHashEQ(hashToken(token))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if row.RevokedAt != nil || time.Now().After(row.ExpiresAt) {
		return nil, ErrUnauthorized
	}

	if err := s.client.RefreshToken.UpdateOneID(row.ID).
		SetRevokedAt(time.Now()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, row.UserID)
}

// Logout revokes every live token belonging to the presented access token's
// user.
func (s *UserService) Logout(httpCtx context.Context, identity models.Identity) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	_, err := s.client.RefreshToken.Update().
		Where(
			refreshtoken.UserIDEQ(identity.UserID),
			refreshtoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer credential (access token or API key) to
// an identity.
func (s *UserService) Authenticate(httpCtx context.Context, token string) (*models.Identity, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	switch {
	case strings.HasPrefix(token, accessTokenPrefix):
		return s.authenticateAccessToken(ctx, token)
	case strings.HasPrefix(token, apiKeyPrefix):
		return s.authenticateAPIKey(ctx, token)
	default:
		return nil, ErrUnauthorized
	}
}

func (s *UserService) authenticateAccessToken(ctx context.Context, token string) (*models.Identity, error) {
	row, err := s.client.RefreshToken.Query().
		Where(refreshtoken.TokenHashEQ(hashToken(token))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up access token: %w", err)
	}
	if row.RevokedAt != nil || time.Now().After(row.ExpiresAt) {
		return nil, ErrUnauthorized
	}
	return s.identityFor(ctx, row.UserID)
}

func (s *UserService) authenticateAPIKey(ctx context.Context, key string) (*models.Identity, error) {
	row, err := s.client.APIKey.Query().
		Where(apikey.KeyHashEQ(hashToken(key))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	if row.RevokedAt != nil {
		return nil, ErrUnauthorized
	}

	// Best effort; losing a timestamp update must not fail the request.
	_ = s.client.APIKey.UpdateOneID(row.ID).SetLastUsedAt(time.Now()).Exec(ctx)

	return s.identityFor(ctx, row.UserID)
}

func (s *UserService) identityFor(ctx context.Context, userID string) (*models.Identity, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &models.Identity{UserID: u.ID, Handle: u.Handle, IsAdmin: u.IsAdmin}, nil
}

// CreateAPIKey issues a long-lived API key. The plaintext is returned once
// and never stored.
func (s *UserService) CreateAPIKey(httpCtx context.Context, identity models.Identity, name string) (string, *ent.APIKey, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	plaintext := apiKeyPrefix + randomToken()
	row, err := s.client.APIKey.Create().
		SetID(uuid.New().String()).
		SetUserID(identity.UserID).
		SetName(strings.TrimSpace(name)).
		SetKeyHash(hashToken(plaintext)).
		Save(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create API key: %w", err)
	}
	return plaintext, row, nil
}

// issueTokens mints an access/refresh pair for the user. Both are stored as
// hashes in the refresh token table, distinguished by prefix and lifetime.
func (s *UserService) issueTokens(ctx context.Context, userID string) (*TokenPair, error) {
	access := accessTokenPrefix + randomToken()
	refresh := refreshTokenPrefix + randomToken()
	accessExpiry := time.Now().Add(accessTokenTTL)

	if err := s.client.RefreshToken.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetTokenHash(hashToken(access)).
		SetExpiresAt(accessExpiry).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store access token: %w", err)
	}

	if err := s.client.RefreshToken.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetTokenHash(hashToken(refresh)).
		SetExpiresAt(time.Now().Add(refreshTokenTTL)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: accessExpiry}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func randomToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to serve.
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}
