// Package authclient is the client-side wrapper over the auth/profile HTTP
// service: sign-in, signup, sign-out, session restore, profile updates and
// auth-state-change notifications. Callers get a Result value rather than an
// error; transport failures are folded into generic network-error messages.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"digilib/internal/models"
	"digilib/internal/services"
)

const (
	// seedSignInAttempts bounds the post-seed sign-in retry loop.
	seedSignInAttempts = 3
	seedSignInDelay    = time.Second
)

// Result mirrors the response shape of every auth operation.
type Result struct {
	Success     bool
	User        *models.UserProfile
	AccessToken string
	Error       string
}

// Client talks to one auth/profile service instance and holds the current
// session. Listener callbacks registered via OnAuthStateChange observe
// session transitions.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger

	mu        sync.Mutex
	token     string
	user      *models.UserProfile
	listeners map[int]func(*models.UserProfile)
	nextID    int
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		httpc:     &http.Client{},
		logger:    logger,
		listeners: make(map[int]func(*models.UserProfile)),
	}
}

// OnAuthStateChange registers a callback invoked with the current profile
// (nil after sign-out) whenever the session changes. The returned function
// unsubscribes.
func (c *Client) OnAuthStateChange(cb func(*models.UserProfile)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = cb
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Client) notify(user *models.UserProfile) {
	c.mu.Lock()
	cbs := make([]func(*models.UserProfile), 0, len(c.listeners))
	for _, cb := range c.listeners {
		cbs = append(cbs, cb)
	}
	c.mu.Unlock()

	for _, cb := range cbs {
		cb(user)
	}
}

// SignIn authenticates, fetches the profile and stores the session.
func (c *Client) SignIn(ctx context.Context, email, password string) Result {
	var resp struct {
		Success     bool   `json:"success"`
		AccessToken string `json:"accessToken"`
		Error       string `json:"error"`
	}
	status, err := c.postJSON(ctx, "/signin", map[string]string{"email": email, "password": password}, "", &resp)
	if err != nil {
		c.logger.Warn("sign-in transport failure", zap.Error(err))
		return Result{Error: "Network error during sign in"}
	}
	if status != http.StatusOK {
		msg := resp.Error
		if msg == "" {
			msg = "Sign in failed"
		}
		return Result{Error: msg}
	}

	profile, err := c.fetchProfile(ctx, resp.AccessToken)
	if err != nil {
		c.logger.Warn("profile fetch after sign-in failed", zap.Error(err))
		return Result{Error: "Failed to get user profile"}
	}

	c.mu.Lock()
	c.token = resp.AccessToken
	c.user = profile
	c.mu.Unlock()
	c.notify(profile)

	return Result{Success: true, User: profile, AccessToken: resp.AccessToken}
}

// Signup creates the account and then signs in with the same credentials.
func (c *Client) Signup(ctx context.Context, name, email, password string) Result {
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	status, err := c.postJSON(ctx, "/signup", map[string]string{
		"name": name, "email": email, "password": password,
	}, "", &resp)
	if err != nil {
		c.logger.Warn("signup transport failure", zap.Error(err))
		return Result{Error: "Network error during signup"}
	}
	if status != http.StatusOK {
		msg := resp.Error
		if msg == "" {
			msg = "Signup failed"
		}
		return Result{Error: msg}
	}
	return c.SignIn(ctx, email, password)
}

// SignOut revokes the token server-side, clears the session and notifies
// listeners with nil.
func (c *Client) SignOut(ctx context.Context) Result {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token != "" {
		var resp struct {
			Error string `json:"error"`
		}
		if _, err := c.postJSON(ctx, "/signout", nil, token, &resp); err != nil {
			c.logger.Warn("sign-out transport failure", zap.Error(err))
			return Result{Error: "Network error during sign out"}
		}
	}

	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
	c.notify(nil)

	return Result{Success: true}
}

// GetSession restores the session from the held token by re-fetching the
// profile. With no token it reports an absent session, not an error.
func (c *Client) GetSession(ctx context.Context) Result {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		return Result{}
	}

	profile, err := c.fetchProfile(ctx, token)
	if err != nil {
		return Result{Error: "Failed to get user profile"}
	}

	c.mu.Lock()
	c.user = profile
	c.mu.Unlock()

	return Result{Success: true, User: profile, AccessToken: token}
}

// UpdateUserProfile applies a partial profile edit under the given token.
func (c *Client) UpdateUserProfile(ctx context.Context, token string, update services.ProfileUpdate) Result {
	body, err := json.Marshal(update)
	if err != nil {
		return Result{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/user/profile", bytes.NewReader(body))
	if err != nil {
		return Result{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("profile update transport failure", zap.Error(err))
		return Result{Error: "Network error updating profile"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = "Update failed"
		}
		return Result{Error: payload.Error}
	}
	return Result{Success: true}
}

// SeedDemoAccounts asks the service to provision the fixed demo accounts.
func (c *Client) SeedDemoAccounts(ctx context.Context) ([]services.SeedResult, error) {
	var resp struct {
		Success bool                  `json:"success"`
		Results []services.SeedResult `json:"results"`
		Error   string                `json:"error"`
	}
	status, err := c.postJSON(ctx, "/seed-demo-accounts", nil, "", &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("seeding failed: %s", resp.Error)
	}
	return resp.Results, nil
}

// SignInDemo seeds the demo accounts and then signs in, retrying a bounded
// number of times with a fixed delay. The final failure is surfaced to the
// caller; there is no automatic recovery beyond the retry budget.
func (c *Client) SignInDemo(ctx context.Context, email, password string) Result {
	if _, err := c.SeedDemoAccounts(ctx); err != nil {
		c.logger.Warn("demo account seeding failed", zap.Error(err))
		return Result{Error: "Network error during sign in"}
	}

	var last Result
	for attempt := 1; attempt <= seedSignInAttempts; attempt++ {
		last = c.SignIn(ctx, email, password)
		if last.Success {
			return last
		}
		if attempt < seedSignInAttempts {
			select {
			case <-time.After(seedSignInDelay):
			case <-ctx.Done():
				return Result{Error: "Network error during sign in"}
			}
		}
	}
	return last
}

// ─── HTTP plumbing ────────────────────────────────────────────────────────────

func (c *Client) postJSON(ctx context.Context, path string, payload any, token string, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) fetchProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user/profile", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile request returned status %d", resp.StatusCode)
	}

	var profile models.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
