package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// CookieConfig controls the session cookie written on login and registration.
type CookieConfig struct {
	MaxAge time.Duration
	Secure bool
}

type AuthHandler struct {
	authUC  domain.AuthUsecase
	tracker *security.LoginTracker
	cookie  CookieConfig
}

func NewAuthHandler(
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	authUC domain.AuthUsecase,
	tracker *security.LoginTracker,
	cookie CookieConfig,
	loginLimiter gin.HandlerFunc,
) {
	handler := &AuthHandler{
		authUC:  authUC,
		tracker: tracker,
		cookie:  cookie,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/logout", handler.Logout)
		protectedAuth.GET("/profile", handler.Profile)
	}
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", h.cookie.Secure, true)
}

// Register godoc
// @Summary      Register
// @Description  Create a student or employer account. Employers must be approved by an admin before they can sign in to protected routes.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	account, token, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setTokenCookie(c, token, int(h.cookie.MaxAge.Seconds()))
	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  account,
		"token": token,
	})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email and password. Sets the httpOnly token cookie and also returns the token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	ip := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")
	requestID := c.GetString("RequestID")

	blocked, err := h.tracker.IsBlocked(ctx, req.Email, ip)
	if err != nil {
		logger.Log.Warn("Login block check failed", "error", err)
	}
	if blocked {
		security.DefaultLogger().LogLoginBlocked(ctx, req.Email, ip, userAgent, requestID)
		c.Error(apperror.TooManyRequests("Too many failed login attempts. Please try again later."))
		return
	}

	account, token, err := h.authUC.Login(ctx, req.Email, req.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			if _, _, trackErr := h.tracker.RecordFailedAttempt(ctx, req.Email, ip, userAgent, requestID); trackErr != nil {
				logger.Log.Warn("Failed to record login attempt", "error", trackErr)
			}
		}
		c.Error(err)
		return
	}

	if err := h.tracker.ClearAttempts(ctx, req.Email, ip); err != nil {
		logger.Log.Warn("Failed to clear login attempts", "error", err)
	}
	security.DefaultLogger().Log(ctx, security.SecurityEvent{
		Event:        security.EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: account.ID,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
	})

	h.setTokenCookie(c, token, int(h.cookie.MaxAge.Seconds()))
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":  account,
		"token": token,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Expire the token cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [get]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Profile godoc
// @Summary      Current user
// @Description  Return the caller's account together with its role specific profile, if one exists.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.authUC.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// ForgotPassword godoc
// @Summary      Request a password reset code
// @Description  Email a six digit code valid for ten minutes.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ForgotPasswordRequest  true  "Account email"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("OTP sent to %s", req.Email), nil)
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Set a new password using the emailed code.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ResetPasswordRequest  true  "Email, code and new password"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.authUC.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password reset successful", nil)
}
