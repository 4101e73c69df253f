package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/metrics"
	"go-jobportal-backend/pkg/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// ResetOTPValidity is how long a password reset code stays usable.
	ResetOTPValidity  = 10 * time.Minute
	minPasswordLength = 6
)

type authUsecase struct {
	accountRepo  domain.AccountRepository
	studentRepo  domain.StudentProfileRepository
	employerRepo domain.EmployerProfileRepository
	tokens       domain.TokenIssuer
	mailer       domain.Mailer
}

func NewAuthUsecase(
	accountRepo domain.AccountRepository,
	studentRepo domain.StudentProfileRepository,
	employerRepo domain.EmployerProfileRepository,
	tokens domain.TokenIssuer,
	mailer domain.Mailer,
) domain.AuthUsecase {
	return &authUsecase{
		accountRepo:  accountRepo,
		studentRepo:  studentRepo,
		employerRepo: employerRepo,
		tokens:       tokens,
		mailer:       mailer,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, string, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" || input.Role == "" {
		return nil, "", apperror.BadRequest("Please provide all required fields")
	}
	if !input.Role.SelfRegistrable() {
		return nil, "", apperror.BadRequest("Invalid role")
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters")
	}

	existing, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}
	if existing != nil {
		return nil, "", apperror.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsApproved:   !input.Role.RequiresApproval(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, "", err
	}
	metrics.RecordRegistration(string(account.Role))

	token, err := u.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return account, token, nil
}

// Login verifies credentials. Unknown email and wrong password produce the same error.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperror.BadRequest("Please provide email and password")
	}

	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		return nil, "", apperror.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}
	if account.IsBlocked {
		return nil, "", apperror.Forbidden("Your account has been blocked")
	}

	token, err := u.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return account, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return account, nil
}

// GetProfile returns the account with its role specific profile. A missing profile is not an error.
func (u *authUsecase) GetProfile(ctx context.Context, id string) (*domain.AccountProfile, error) {
	account, err := u.GetCurrentUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return loadAccountProfile(ctx, account, u.studentRepo, u.employerRepo)
}

func loadAccountProfile(
	ctx context.Context,
	account *domain.Account,
	studentRepo domain.StudentProfileRepository,
	employerRepo domain.EmployerProfileRepository,
) (*domain.AccountProfile, error) {
	result := &domain.AccountProfile{Account: account}
	switch account.Role {
	case domain.RoleStudent:
		p, err := studentRepo.GetByAccountID(ctx, account.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		result.StudentProfile = p
	case domain.RoleEmployer:
		p, err := employerRepo.GetByAccountID(ctx, account.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		result.EmployerProfile = p
	}
	return result, nil
}

// ForgotPassword stores a fresh six digit code and emails it. The code is withdrawn if the mail fails.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperror.BadRequest("Please provide email")
	}

	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found with this email")
		}
		return apperror.Internal(err)
	}

	otp, err := generateOTP()
	if err != nil {
		return apperror.Internal(err)
	}
	expires := time.Now().Add(ResetOTPValidity)
	if err := u.accountRepo.SetResetOTP(ctx, account.ID, &otp, &expires); err != nil {
		return apperror.Internal(err)
	}

	if err := u.mailer.SendPasswordResetOTP(ctx, account.Email, otp, ResetOTPValidity); err != nil {
		logger.Log.Error("Failed to send password reset email", "error", err, "account_id", account.ID)
		if clearErr := u.accountRepo.SetResetOTP(ctx, account.ID, nil, nil); clearErr != nil {
			logger.Log.Error("Failed to clear reset code", "error", clearErr, "account_id", account.ID)
		}
		return apperror.InternalMessage("Email could not be sent", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	email = normalizeEmail(email)
	if email == "" || otp == "" || newPassword == "" {
		return apperror.BadRequest("Please provide all required fields")
	}
	if len(newPassword) < minPasswordLength {
		return apperror.BadRequest("Password must be at least 6 characters")
	}

	invalid := apperror.BadRequest("Invalid or expired OTP")
	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invalid
		}
		return apperror.Internal(err)
	}
	if account.ResetOTP == nil || account.ResetOTPExpires == nil ||
		*account.ResetOTP != otp || !time.Now().Before(*account.ResetOTPExpires) {
		return invalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.accountRepo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		return apperror.Internal(err)
	}

	security.DefaultLogger().Log(ctx, security.SecurityEvent{
		Event:        security.EventPasswordReset,
		SubjectType:  "user_id",
		SubjectValue: account.ID,
	})
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
