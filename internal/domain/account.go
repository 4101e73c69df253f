package domain

import (
	"context"
	"time"
)

type Account struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Role            Role       `json:"role"`
	IsApproved      bool       `json:"is_approved"`
	IsBlocked       bool       `json:"is_blocked"`
	ResetOTP        *string    `json:"-"`
	ResetOTPExpires *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AccountFilter narrows admin user listings. Nil fields are not applied.
type AccountFilter struct {
	Role       *Role
	IsApproved *bool
	IsBlocked  *bool
}

// AccountProfile is an account together with its role specific profile, if any.
type AccountProfile struct {
	Account         *Account         `json:"user"`
	StudentProfile  *StudentProfile  `json:"student_profile,omitempty"`
	EmployerProfile *EmployerProfile `json:"employer_profile,omitempty"`
}

type RegisterInput struct {
	Email    string
	Password string
	Role     Role
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, filter AccountFilter) ([]Account, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
	SetResetOTP(ctx context.Context, id string, otp *string, expires *time.Time) error
	// UpdatePassword stores a new hash and clears any pending reset code.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	// Delete removes the account and everything it owns in a single transaction.
	Delete(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*Account, string, error)
	Login(ctx context.Context, email, password string) (*Account, string, error)
	GetCurrentUser(ctx context.Context, id string) (*Account, error)
	GetProfile(ctx context.Context, id string) (*AccountProfile, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// TokenIssuer mints session credentials for an authenticated account.
type TokenIssuer interface {
	Issue(accountID string) (string, error)
}

type Mailer interface {
	SendPasswordResetOTP(ctx context.Context, to, otp string, validFor time.Duration) error
}
