package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"digilib/internal/catalog"
	"digilib/internal/services"
)

type APIHandler struct {
	catalog *catalog.Catalog
	svc     services.ProfileService
}

func RegisterRoutes(r *gin.Engine, cat *catalog.Catalog, svc services.ProfileService) {
	h := &APIHandler{catalog: cat, svc: svc}

	r.Use(corsMiddleware())

	r.GET("/health", h.health)

	// Auth / profile endpoints
	r.POST("/signup", h.signup)
	r.POST("/signin", h.signin)
	r.POST("/signout", h.signout)
	r.GET("/user/profile", h.getProfile)
	r.PUT("/user/profile", h.updateProfile)
	r.POST("/seed-demo-accounts", h.seedDemoAccounts)

	// Catalog endpoints
	r.GET("/books", h.listBooks)
	r.GET("/books/search", h.searchBooks)
	r.GET("/books/trending", h.trendingBooks)
	r.GET("/books/popular", h.popularBooks)
	r.GET("/books/:id", h.getBook)
	r.GET("/statistics", h.statistics)
}

// corsMiddleware mirrors the permissive CORS policy the original serverless
// function exposed to its browser frontend.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Empty string means no usable token.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func (h *APIHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ─── Auth / Profile ───────────────────────────────────────────────────────────

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *APIHandler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during signup"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *APIHandler) signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, user, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during sign in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "accessToken": token, "user": user})
}

func (h *APIHandler) signout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No token provided"})
		return
	}
	if err := h.svc.SignOut(c.Request.Context(), token); err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Invalid token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *APIHandler) getProfile(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No token provided"})
		return
	}

	profile, err := h.svc.Profile(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Invalid token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error while getting profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *APIHandler) updateProfile(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - No token provided"})
		return
	}

	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), token, update)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized - Invalid token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error while updating profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

func (h *APIHandler) seedDemoAccounts(c *gin.Context) {
	results := h.svc.SeedDemoAccounts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"message": "Demo account seeding completed",
	})
}

// ─── Catalog ──────────────────────────────────────────────────────────────────

func (h *APIHandler) listBooks(c *gin.Context) {
	filter := catalog.ParseCategoryFilter(c.Query("category"))
	c.JSON(http.StatusOK, h.catalog.ByCategory(filter))
}

func (h *APIHandler) searchBooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Search(c.Query("q")))
}

func (h *APIHandler) trendingBooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Trending())
}

func (h *APIHandler) popularBooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Popular())
}

func (h *APIHandler) getBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}
	book, ok := h.catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *APIHandler) statistics(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Statistics())
}
