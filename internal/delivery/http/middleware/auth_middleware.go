package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the httpOnly cookie carrying the session token.
const TokenCookieName = "token"

// TokenVerifier resolves a session token to an account id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AccountLoader re-reads the account behind a token.
type AccountLoader interface {
	GetCurrentUser(ctx context.Context, id string) (*domain.Account, error)
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// AuthMiddleware authenticates the caller. The account is loaded on every request
// so blocking or approval changes apply immediately.
func AuthMiddleware(tokens TokenVerifier, accounts AccountLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Please login to access this resource", nil)
			c.Abort()
			return
		}

		accountID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		account, err := accounts.GetCurrentUser(c.Request.Context(), accountID)
		if err != nil || account == nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		if account.IsBlocked {
			response.Error(c, http.StatusForbidden, "Your account has been blocked", nil)
			c.Abort()
			return
		}
		if account.Role == domain.RoleEmployer && !account.IsApproved {
			response.Error(c, http.StatusForbidden, "Your account is pending approval from admin", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), account.ID)
		c.Set(string(domain.KeyUserEmail), account.Email)
		c.Set(string(domain.KeyUserRole), string(account.Role))

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, account.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, string(account.Role))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Authorize admits the request only when the caller's role may perform op.
func Authorize(op domain.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !domain.CanPerform(domain.Role(role), op) {
			response.Error(c, http.StatusForbidden, fmt.Sprintf("Role (%s) is not allowed to access this resource", role), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
