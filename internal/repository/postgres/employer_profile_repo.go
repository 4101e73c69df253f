package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type employerProfileRepo struct {
	db DB
}

// NewEmployerProfileRepository creates a new employer profile repository
func NewEmployerProfileRepository(db DB) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

func (r *employerProfileRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (
			account_id, company_name, contact_person, phone, company_description, website,
			address, industry, company_size, established_year, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		profile.AccountID, profile.CompanyName, profile.ContactPerson, profile.Phone,
		profile.CompanyDescription, profile.Website, profile.Address, profile.Industry,
		profile.CompanySize, profile.EstablishedYear, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperror.Conflict("Profile already exists. Use update instead")
		}
		return err
	}
	return nil
}

// GetByAccountID retrieves an employer profile by the employer's account ID
func (r *employerProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, account_id, company_name, contact_person, phone, company_description, website,
		       address, industry, company_size, established_year, logo_key, logo_url,
		       created_at, updated_at
		FROM employer_profiles
		WHERE account_id = $1`

	var (
		p                domain.EmployerProfile
		logoKey, logoURL *string
	)
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&p.ID, &p.AccountID, &p.CompanyName, &p.ContactPerson, &p.Phone,
		&p.CompanyDescription, &p.Website, &p.Address, &p.Industry, &p.CompanySize,
		&p.EstablishedYear, &logoKey, &logoURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if logoKey != nil {
		p.CompanyLogo = &domain.FileRef{Key: *logoKey, URL: deref(logoURL)}
	}
	return &p, nil
}

func (r *employerProfileRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		UPDATE employer_profiles
		SET company_name = $2, contact_person = $3, phone = $4, company_description = $5,
		    website = $6, address = $7, industry = $8, company_size = $9,
		    established_year = $10, updated_at = $11
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.ContactPerson, profile.Phone,
		profile.CompanyDescription, profile.Website, profile.Address, profile.Industry,
		profile.CompanySize, profile.EstablishedYear, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employerProfileRepo) UpdateLogo(ctx context.Context, profileID int64, logo *domain.FileRef) error {
	query := `UPDATE employer_profiles SET logo_key = $2, logo_url = $3, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, profileID, logo.Key, logo.URL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
