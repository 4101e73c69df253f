package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type studentUsecase struct {
	profileRepo domain.StudentProfileRepository
	jobRepo     domain.JobRepository
	store       domain.FileStorage
}

func NewStudentUsecase(profileRepo domain.StudentProfileRepository, jobRepo domain.JobRepository, store domain.FileStorage) domain.StudentUsecase {
	return &studentUsecase{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		store:       store,
	}
}

func (u *studentUsecase) CreateProfile(ctx context.Context, accountID string, profile *domain.StudentProfile) error {
	profile.AccountID = accountID
	if profile.Address.Country == "" {
		profile.Address.Country = domain.DefaultCountry
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile.Resume = nil
	profile.ProfilePicture = nil
	profile.SavedJobs = []int64{}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return internalErr(err)
	}
	return nil
}

// UpdateProfile replaces the editable fields. Uploads and saved jobs are kept.
func (u *studentUsecase) UpdateProfile(ctx context.Context, accountID string, changes *domain.StudentProfile) (*domain.StudentProfile, error) {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, lookupErr(err, "Profile not found. Create profile first")
	}

	profile.FullName = changes.FullName
	profile.Phone = changes.Phone
	profile.DateOfBirth = changes.DateOfBirth
	profile.Address = changes.Address
	if profile.Address.Country == "" {
		profile.Address.Country = domain.DefaultCountry
	}
	profile.Education = changes.Education
	profile.Skills = changes.Skills
	profile.Bio = changes.Bio
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, lookupErr(err, "Profile not found. Create profile first")
	}
	return profile, nil
}

func (u *studentUsecase) GetMyProfile(ctx context.Context, accountID string) (*domain.StudentProfile, error) {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *studentUsecase) UploadResume(ctx context.Context, accountID string, file domain.UploadedFile) (*domain.FileRef, error) {
	if len(file.Data) == 0 {
		return nil, apperror.BadRequest("Please upload a file")
	}
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, lookupErr(err, "Please create profile first")
	}
	if err := prepareResume(ctx, accountID, file); err != nil {
		return nil, err
	}

	return replaceFile(ctx, u.store, "resume", "resumes", "resume", ".pdf",
		file.Data, "application/pdf", file.Filename, profile.Resume,
		func(ref *domain.FileRef) error {
			return u.profileRepo.UpdateResume(ctx, profile.ID, ref)
		},
	)
}

func (u *studentUsecase) UploadProfilePicture(ctx context.Context, accountID string, file domain.UploadedFile) (*domain.FileRef, error) {
	if len(file.Data) == 0 {
		return nil, apperror.BadRequest("Please upload a file")
	}
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, lookupErr(err, "Please create profile first")
	}
	data, err := prepareImage(ctx, "profile_picture", accountID, file)
	if err != nil {
		return nil, err
	}

	return replaceFile(ctx, u.store, "profile_picture", "profile-pictures", "student", ".jpg",
		data, "image/jpeg", file.Filename, profile.ProfilePicture,
		func(ref *domain.FileRef) error {
			return u.profileRepo.UpdatePicture(ctx, profile.ID, ref)
		},
	)
}

func (u *studentUsecase) SaveJob(ctx context.Context, accountID string, jobID int64) error {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return lookupErr(err, "Please create profile first")
	}
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return lookupErr(err, "Job not found")
	}
	if err := u.profileRepo.SaveJob(ctx, profile.ID, jobID); err != nil {
		return internalErr(err)
	}
	return nil
}

func (u *studentUsecase) RemoveSavedJob(ctx context.Context, accountID string, jobID int64) error {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return lookupErr(err, "Profile not found")
	}
	if err := u.profileRepo.RemoveSavedJob(ctx, profile.ID, jobID); err != nil {
		return internalErr(err)
	}
	return nil
}

func (u *studentUsecase) ListSavedJobs(ctx context.Context, accountID string) ([]domain.Job, error) {
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, lookupErr(err, "Profile not found")
	}
	jobs, err := u.profileRepo.ListSavedJobs(ctx, profile.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return jobs, nil
}
