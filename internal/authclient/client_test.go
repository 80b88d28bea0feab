package authclient

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"digilib/internal/authprovider"
	"digilib/internal/catalog"
	"digilib/internal/handlers"
	"digilib/internal/kvstore"
	"digilib/internal/models"
	"digilib/internal/repositories"
	"digilib/internal/services"
)

// startTestServer runs the real handler stack over an in-memory database so
// client behaviour is exercised end to end.
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Account{}, &models.KVEntry{}))

	provider := authprovider.New(repositories.NewAccountRepository(db), zap.NewNop())
	svc := services.NewProfileService(provider, kvstore.NewGormStore(db), zap.NewNop())

	router := gin.New()
	handlers.RegisterRoutes(router, catalog.NewGenerated(42), svc)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestSignupSignsInAndNotifiesListeners(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())
	ctx := context.Background()

	var observed []*models.UserProfile
	unsubscribe := client.OnAuthStateChange(func(u *models.UserProfile) {
		observed = append(observed, u)
	})
	defer unsubscribe()

	result := client.Signup(ctx, "Budi", "budi@example.com", "rahasia123")
	require.True(t, result.Success, result.Error)
	require.NotNil(t, result.User)
	assert.Equal(t, "Budi", result.User.Name)
	assert.NotEmpty(t, result.AccessToken)

	require.Len(t, observed, 1)
	assert.Equal(t, "budi@example.com", observed[0].Email)
}

func TestSignInFailureSurfacesServerMessage(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())

	result := client.SignIn(context.Background(), "nobody@example.com", "x")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid login credentials", result.Error)
}

func TestGetSessionRestoresProfile(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())
	ctx := context.Background()

	// No session yet: absent, not an error.
	session := client.GetSession(ctx)
	assert.False(t, session.Success)
	assert.Empty(t, session.Error)

	result := client.Signup(ctx, "Budi", "budi@example.com", "rahasia123")
	require.True(t, result.Success, result.Error)

	session = client.GetSession(ctx)
	require.True(t, session.Success)
	assert.Equal(t, "Budi", session.User.Name)
	assert.Equal(t, result.AccessToken, session.AccessToken)
}

func TestSignOutClearsSessionAndNotifiesNil(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())
	ctx := context.Background()

	result := client.Signup(ctx, "Budi", "budi@example.com", "rahasia123")
	require.True(t, result.Success, result.Error)

	var last *models.UserProfile
	var calls int
	unsubscribe := client.OnAuthStateChange(func(u *models.UserProfile) {
		last = u
		calls++
	})
	defer unsubscribe()

	out := client.SignOut(ctx)
	require.True(t, out.Success)
	assert.Equal(t, 1, calls)
	assert.Nil(t, last)

	session := client.GetSession(ctx)
	assert.False(t, session.Success)
}

func TestUpdateUserProfile(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())
	ctx := context.Background()

	result := client.Signup(ctx, "Budi", "budi@example.com", "rahasia123")
	require.True(t, result.Success, result.Error)

	newName := "Budi Santoso"
	booksRead := 12
	out := client.UpdateUserProfile(ctx, result.AccessToken, services.ProfileUpdate{
		Name:      &newName,
		BooksRead: &booksRead,
	})
	require.True(t, out.Success, out.Error)

	session := client.GetSession(ctx)
	require.True(t, session.Success)
	assert.Equal(t, "Budi Santoso", session.User.Name)
	assert.Equal(t, 12, session.User.BooksRead)

	// Stale token is rejected.
	bad := client.UpdateUserProfile(ctx, "stale-token", services.ProfileUpdate{Name: &newName})
	assert.False(t, bad.Success)
}

func TestSignInDemoSeedsAndSignsIn(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())
	ctx := context.Background()

	demo := services.DemoAccounts()[0]
	result := client.SignInDemo(ctx, demo.Email, demo.Password)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.Equal(t, 50, result.User.BooksRead)

	// Seeding again is harmless.
	results, err := client.SeedDemoAccounts(ctx)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, services.SeedStatusAlreadyExists, r.Status)
	}
}

func TestUnsubscribedListenerIsNotCalled(t *testing.T) {
	server := startTestServer(t)
	client := New(server.URL, zap.NewNop())
	ctx := context.Background()

	var calls int
	unsubscribe := client.OnAuthStateChange(func(*models.UserProfile) { calls++ })
	unsubscribe()

	result := client.Signup(ctx, "Budi", "budi@example.com", "rahasia123")
	require.True(t, result.Success, result.Error)
	assert.Zero(t, calls)
}

func TestNetworkFailureYieldsGenericError(t *testing.T) {
	// Point the client at a server that is already gone.
	server := startTestServer(t)
	url := server.URL
	server.Close()

	client := New(url, zap.NewNop())
	result := client.SignIn(context.Background(), "budi@example.com", "rahasia123")
	assert.False(t, result.Success)
	assert.Equal(t, "Network error during sign in", result.Error)
}
