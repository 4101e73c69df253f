package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type employerUsecase struct {
	profileRepo domain.EmployerProfileRepository
	jobRepo     domain.JobRepository
	store       domain.FileStorage
}

func NewEmployerUsecase(profileRepo domain.EmployerProfileRepository, jobRepo domain.JobRepository, store domain.FileStorage) domain.EmployerUsecase {
	return &employerUsecase{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		store:       store,
	}
}

func (u *employerUsecase) CreateProfile(ctx context.Context, accountID string, profile *domain.EmployerProfile) error {
	profile.AccountID = accountID
	profile.CompanyLogo = nil
	if profile.Address.Country == "" {
		profile.Address.Country = domain.DefaultCountry
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return internalErr(err)
	}
	return nil
}

func (u *employerUsecase) UpdateProfile(ctx context.Context, accountID string, changes *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, lookupErr(err, "Profile not found. Create profile first")
	}

	profile.CompanyName = changes.CompanyName
	profile.ContactPerson = changes.ContactPerson
	profile.Phone = changes.Phone
	profile.CompanyDescription = changes.CompanyDescription
	profile.Website = changes.Website
	profile.Address = changes.Address
	if profile.Address.Country == "" {
		profile.Address.Country = domain.DefaultCountry
	}
	profile.Industry = changes.Industry
	profile.CompanySize = changes.CompanySize
	profile.EstablishedYear = changes.EstablishedYear
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, lookupErr(err, "Profile not found. Create profile first")
	}
	return profile, nil
}

func (u *employerUsecase) GetMyProfile(ctx context.Context, accountID string) (*domain.EmployerProfile, error) {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *employerUsecase) UploadLogo(ctx context.Context, accountID string, file domain.UploadedFile) (*domain.FileRef, error) {
	if len(file.Data) == 0 {
		return nil, apperror.BadRequest("Please upload a file")
	}
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, lookupErr(err, "Please create your profile first")
	}
	data, err := prepareImage(ctx, "company_logo", accountID, file)
	if err != nil {
		return nil, err
	}

	return replaceFile(ctx, u.store, "company_logo", "company-logos", "logo", ".jpg",
		data, "image/jpeg", file.Filename, profile.CompanyLogo,
		func(ref *domain.FileRef) error {
			return u.profileRepo.UpdateLogo(ctx, profile.ID, ref)
		},
	)
}

func (u *employerUsecase) DashboardStats(ctx context.Context, accountID string) (*domain.EmployerStats, error) {
	stats, err := u.jobRepo.EmployerStats(ctx, accountID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
