package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

type stubAccounts map[string]*domain.Account

func (s stubAccounts) GetCurrentUser(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := s[id]; ok {
		return a, nil
	}
	return nil, apperror.Unauthorized("User not found")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newGate() *gin.Engine {
	tokens := stubVerifier{
		"student":  "s1",
		"pending":  "e1",
		"employer": "e2",
		"blocked":  "s2",
		"ghost":    "gone",
	}
	accounts := stubAccounts{
		"s1": {ID: "s1", Role: domain.RoleStudent, IsApproved: true},
		"e1": {ID: "e1", Role: domain.RoleEmployer},
		"e2": {ID: "e2", Role: domain.RoleEmployer, IsApproved: true},
		"s2": {ID: "s2", Role: domain.RoleStudent, IsApproved: true, IsBlocked: true},
	}

	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens, accounts))
	r.GET("/student", middleware.Authorize(domain.OpApplyToJob), func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(domain.KeyUserID).(string)
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(string(domain.KeyUserID)), "ctx": ctxID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newGate()

	cases := []struct {
		name    string
		setup   func(*http.Request)
		code    int
		message string
	}{
		{"missing credential", func(*http.Request) {}, http.StatusUnauthorized, "Please login to access this resource"},
		{"invalid token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, "Invalid or expired token"},
		{"deleted account", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ghost") }, http.StatusUnauthorized, "User not found"},
		{"blocked account", func(r *http.Request) { r.Header.Set("Authorization", "Bearer blocked") }, http.StatusForbidden, "Your account has been blocked"},
		{"unapproved employer", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: "pending"})
		}, http.StatusForbidden, "Your account is pending approval from admin"},
		{"wrong role", func(r *http.Request) { r.Header.Set("Authorization", "Bearer employer") }, http.StatusForbidden, "Role (employer) is not allowed to access this resource"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/student", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			body := decode(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tc.message, body.Message)
		})
	}

	t.Run("cookie grants access and populates the request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/student", nil)
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: "student"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "s1", body["id"])
		assert.Equal(t, "s1", body["ctx"])
	})
}

func TestErrorHandler(t *testing.T) {
	build := func(production bool) *gin.Engine {
		r := gin.New()
		r.Use(middleware.RequestID(), middleware.ErrorHandler(production))
		r.GET("/bad", func(c *gin.Context) { c.Error(apperror.BadRequest("Invalid status")) })
		r.GET("/boom", func(c *gin.Context) { c.Error(apperror.Internal(errors.New("connection reset"))) })
		r.GET("/raw", func(c *gin.Context) { c.Error(errors.New("plain failure")) })
		return r
	}

	t.Run("application errors keep their status and message", func(t *testing.T) {
		w := httptest.NewRecorder()
		build(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Invalid status", body.Message)
		assert.NotEmpty(t, body.RequestID)
		assert.Empty(t, body.Stack)
	})

	t.Run("production hides the cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		build(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Internal Server Error", body.Message)
		assert.Empty(t, body.Stack)
	})

	t.Run("development exposes the cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		build(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, "connection reset", decode(t, w).Stack)
	})

	t.Run("unknown errors become 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		build(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { response.Success(c, http.StatusOK, "ok", nil) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", decode(t, w).RequestID)
}

func TestRateLimitInMemory(t *testing.T) {
	cfg := middleware.LoginRateLimitConfig(2, time.Minute)
	cfg.KeyPrefix = "rl:test:" + t.Name() + ":"

	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(cfg))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware("https://portal.example.com", true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portal.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
