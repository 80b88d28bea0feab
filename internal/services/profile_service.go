package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"digilib/internal/authprovider"
	"digilib/internal/kvstore"
	"digilib/internal/models"
)

// ─── Sentinel Errors ──────────────────────────────────────────────────────────

var (
	// ErrEmailTaken is surfaced on signup with an already-registered email.
	ErrEmailTaken = authprovider.ErrEmailTaken

	// ErrInvalidCredentials is surfaced on sign-in with a bad email/password pair.
	ErrInvalidCredentials = authprovider.ErrInvalidCredentials

	// ErrUnauthorized is returned whenever an access token is absent, unknown
	// or revoked.
	ErrUnauthorized = errors.New("unauthorized")
)

// ─── Demo Accounts ────────────────────────────────────────────────────────────

// DemoAccount is one of the fixed accounts provisioned by SeedDemoAccounts.
type DemoAccount struct {
	Name      string
	Email     string
	Password  string
	Role      models.Role
	BooksRead int
}

// DemoAccounts returns the two fixed demo identities (one admin, one reader).
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{
			Name:      "Admin Demo",
			Email:     "admin@perpustakaandigital.com",
			Password:  "Demo123!Admin",
			Role:      models.RoleAdmin,
			BooksRead: 50,
		},
		{
			Name:      "Pembaca Demo",
			Email:     "pembaca@perpustakaandigital.com",
			Password:  "Demo123!Pembaca",
			Role:      models.RoleReader,
			BooksRead: 15,
		},
	}
}

// SeedResult reports the outcome of provisioning one demo account.
type SeedResult struct {
	Email   string      `json:"email"`
	Status  string      `json:"status"` // created | already_exists | error
	Role    models.Role `json:"role,omitempty"`
	UserID  string      `json:"userId,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

const (
	SeedStatusCreated       = "created"
	SeedStatusAlreadyExists = "already_exists"
	SeedStatusError         = "error"
)

// ─── Service Interface ────────────────────────────────────────────────────────

// ProfileUpdate carries a partial profile edit. Nil fields are left
// untouched. Role is deliberately absent: it is assigned at seed time and
// immutable through this API.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	Avatar    *string `json:"avatar"`
	BooksRead *int    `json:"booksRead"`
}

// SignupUser is the public identity slice returned by Signup and SignIn.
type SignupUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileService defines the auth and profile operations of the service.
type ProfileService interface {
	Signup(ctx context.Context, name, email, password string) (*SignupUser, error)
	SignIn(ctx context.Context, email, password string) (string, *SignupUser, error)
	SignOut(ctx context.Context, token string) error

	Profile(ctx context.Context, token string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*models.UserProfile, error)

	SeedDemoAccounts(ctx context.Context) []SeedResult
}

// ─── Implementation ───────────────────────────────────────────────────────────

type profileService struct {
	provider *authprovider.Provider
	kv       kvstore.Store
	logger   *zap.Logger
}

// NewProfileService wires the auth provider and key-value store into a
// ProfileService.
func NewProfileService(provider *authprovider.Provider, kv kvstore.Store, logger *zap.Logger) ProfileService {
	return &profileService{provider: provider, kv: kv, logger: logger}
}

func profileKey(userID string) string {
	return "user:" + userID
}

// ─── Signup / Session ─────────────────────────────────────────────────────────

// Signup creates an account and writes its initial profile document.
func (s *profileService) Signup(ctx context.Context, name, email, password string) (*SignupUser, error) {
	account, err := s.provider.CreateUser(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		Name:        name,
		Email:       email,
		MemberSince: time.Now().UTC().Format(time.RFC3339),
		BooksRead:   0,
		Avatar:      "",
		Role:        models.RoleReader,
	}
	if err := s.writeProfile(ctx, account.ID.String(), profile); err != nil {
		s.logger.Error("signup: failed to store profile", zap.String("user_id", account.ID.String()), zap.Error(err))
		return nil, err
	}

	return &SignupUser{ID: account.ID.String(), Email: account.Email, Name: account.Name}, nil
}

// SignIn verifies credentials and issues an access token.
func (s *profileService) SignIn(ctx context.Context, email, password string) (string, *SignupUser, error) {
	account, err := s.provider.VerifyPassword(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token := s.provider.IssueToken(account.ID)
	s.logger.Info("sign-in", zap.String("email", email))
	return token, &SignupUser{ID: account.ID.String(), Email: account.Email, Name: account.Name}, nil
}

// SignOut revokes the token. Unknown tokens are rejected.
func (s *profileService) SignOut(ctx context.Context, token string) error {
	if _, err := s.provider.UserForToken(ctx, token); err != nil {
		if errors.Is(err, authprovider.ErrInvalidToken) {
			return ErrUnauthorized
		}
		return err
	}
	s.provider.RevokeToken(token)
	return nil
}

// ─── Profile ──────────────────────────────────────────────────────────────────

// Profile returns the stored profile document for the token's user. If no
// document exists yet, a default one is synthesized from the account (name
// falls back to the email local-part) and persisted before returning.
func (s *profileService) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	account, err := s.provider.UserForToken(ctx, token)
	if err != nil {
		if errors.Is(err, authprovider.ErrInvalidToken) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	raw, err := s.kv.Get(ctx, profileKey(account.ID.String()))
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			return nil, err
		}
		name := account.Name
		if name == "" {
			name = emailLocalPart(account.Email)
		}
		profile := models.UserProfile{
			Name:        name,
			Email:       account.Email,
			MemberSince: time.Now().UTC().Format(time.RFC3339),
			BooksRead:   0,
			Avatar:      "",
			Role:        models.RoleReader,
		}
		if err := s.writeProfile(ctx, account.ID.String(), profile); err != nil {
			return nil, err
		}
		return &profile, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("corrupt profile document for %s: %w", account.ID, err)
	}
	return &profile, nil
}

// UpdateProfile merges a partial edit into the stored document and returns
// the merged result. Last write wins; role is never touched.
func (s *profileService) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.Profile(ctx, token)
	if err != nil {
		return nil, err
	}
	account, err := s.provider.UserForToken(ctx, token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Avatar != nil {
		profile.Avatar = *update.Avatar
	}
	if update.BooksRead != nil {
		profile.BooksRead = *update.BooksRead
	}

	if err := s.writeProfile(ctx, account.ID.String(), *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ─── Demo Seeding ─────────────────────────────────────────────────────────────

// SeedDemoAccounts idempotently provisions the fixed demo accounts. Each
// account is handled independently; a failure on one does not abort the
// others.
func (s *profileService) SeedDemoAccounts(ctx context.Context) []SeedResult {
	results := make([]SeedResult, 0, 2)

	for _, demo := range DemoAccounts() {
		exists, err := s.provider.EmailExists(ctx, demo.Email)
		if err != nil {
			results = append(results, SeedResult{Email: demo.Email, Status: SeedStatusError, Error: err.Error()})
			continue
		}
		if exists {
			results = append(results, SeedResult{
				Email:   demo.Email,
				Status:  SeedStatusAlreadyExists,
				Message: "User already exists",
			})
			continue
		}

		account, err := s.provider.CreateUser(ctx, demo.Name, demo.Email, demo.Password)
		if err != nil {
			s.logger.Error("seed: failed to create demo account", zap.String("email", demo.Email), zap.Error(err))
			results = append(results, SeedResult{Email: demo.Email, Status: SeedStatusError, Error: err.Error()})
			continue
		}

		profile := models.UserProfile{
			Name:        demo.Name,
			Email:       demo.Email,
			MemberSince: time.Now().UTC().Format(time.RFC3339),
			BooksRead:   demo.BooksRead,
			Avatar:      "",
			Role:        demo.Role,
		}
		if err := s.writeProfile(ctx, account.ID.String(), profile); err != nil {
			results = append(results, SeedResult{Email: demo.Email, Status: SeedStatusError, Error: err.Error()})
			continue
		}

		s.logger.Info("seed: demo account created", zap.String("email", demo.Email), zap.String("role", string(demo.Role)))
		results = append(results, SeedResult{
			Email:   demo.Email,
			Status:  SeedStatusCreated,
			Role:    demo.Role,
			UserID:  account.ID.String(),
			Message: "Demo account created successfully",
		})
	}
	return results
}

// ─── Internal Helpers ─────────────────────────────────────────────────────────

func (s *profileService) writeProfile(ctx context.Context, userID string, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, profileKey(userID), string(raw))
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	if email == "" {
		return "User"
	}
	return email
}
