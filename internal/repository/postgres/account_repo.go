package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

const accountColumns = `id, email, password_hash, role, is_approved, is_blocked, reset_otp, reset_otp_expires, created_at, updated_at`

type accountRepo struct {
	db DB
}

func NewAccountRepository(db DB) domain.AccountRepository {
	return &accountRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.IsApproved, &a.IsBlocked,
		&a.ResetOTP, &a.ResetOTPExpires, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (id, email, password_hash, role, is_approved, is_blocked, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Email, account.PasswordHash, account.Role,
		account.IsApproved, account.IsBlocked, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "accounts_email_key") {
			return apperror.Conflict("User with this email already exists")
		}
		return err
	}
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	a, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// List returns accounts newest first.
func (r *accountRepo) List(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	var where whereBuilder
	if filter.Role != nil {
		where.add("role = ?", *filter.Role)
	}
	if filter.IsApproved != nil {
		where.add("is_approved = ?", *filter.IsApproved)
	}
	if filter.IsBlocked != nil {
		where.add("is_blocked = ?", *filter.IsBlocked)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts` + where.String() + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *accountRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET is_approved = $2, updated_at = NOW() WHERE id = $1`, id, approved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE accounts SET is_blocked = $2, updated_at = NOW() WHERE id = $1`, id, blocked)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepo) SetResetOTP(ctx context.Context, id string, otp *string, expires *time.Time) error {
	query := `UPDATE accounts SET reset_otp = $2, reset_otp_expires = $3, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, otp, expires)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	query := `UPDATE accounts
              SET password_hash = $2, reset_otp = NULL, reset_otp_expires = NULL, updated_at = NOW()
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the account's ledger rows, postings and profile before the account itself.
func (r *accountRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM applications WHERE student_id = $1 OR employer_id = $1`,
		`DELETE FROM jobs WHERE posted_by = $1`,
		`DELETE FROM student_profiles WHERE account_id = $1`,
		`DELETE FROM employer_profiles WHERE account_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}
