// Package authprovider manages credential accounts and opaque access tokens.
// It plays the role the managed auth provider played for the original
// frontend: account creation, password verification and token-to-user
// resolution. Tokens live in process memory only, matching the browser-local
// session storage of the original system.
package authprovider

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"digilib/internal/models"
	"digilib/internal/repositories"
)

var (
	// ErrEmailTaken is returned when signing up with an email that
	// already has an account.
	ErrEmailTaken = errors.New("a user with this email address has already been registered")

	// ErrInvalidCredentials is returned on unknown email or wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrInvalidToken is returned when a token is unknown or revoked.
	ErrInvalidToken = errors.New("invalid access token")
)

type Provider struct {
	accounts repositories.AccountRepository
	logger   *zap.Logger

	mu     sync.RWMutex
	tokens map[string]uuid.UUID
}

func New(accounts repositories.AccountRepository, logger *zap.Logger) *Provider {
	return &Provider{
		accounts: accounts,
		logger:   logger,
		tokens:   make(map[string]uuid.UUID),
	}
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (p *Provider) CreateUser(ctx context.Context, name, email, password string) (*models.Account, error) {
	exists, err := p.accounts.EmailExists(nil, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := p.accounts.Create(nil, account); err != nil {
		p.logger.Error("failed to create account", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	p.logger.Info("account created", zap.String("email", email), zap.String("user_id", account.ID.String()))
	return account, nil
}

// VerifyPassword checks email/password and returns the matching account.
func (p *Provider) VerifyPassword(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := p.accounts.GetByEmail(nil, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// EmailExists reports whether an account with the email already exists.
func (p *Provider) EmailExists(ctx context.Context, email string) (bool, error) {
	return p.accounts.EmailExists(nil, email)
}

// IssueToken mints a fresh opaque access token for the user.
func (p *Provider) IssueToken(userID uuid.UUID) string {
	token := uuid.NewString()
	p.mu.Lock()
	p.tokens[token] = userID
	p.mu.Unlock()
	return token
}

// UserForToken resolves an access token to its account.
func (p *Provider) UserForToken(ctx context.Context, token string) (*models.Account, error) {
	p.mu.RLock()
	userID, ok := p.tokens[token]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}

	account, err := p.accounts.GetByID(nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return account, nil
}

// RevokeToken invalidates a token. Revoking an unknown token is a no-op.
func (p *Provider) RevokeToken(token string) {
	p.mu.Lock()
	delete(p.tokens, token)
	p.mu.Unlock()
}
