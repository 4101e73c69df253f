package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/metrics"
)

const (
	maxCoverLetterLength = 1000
	maxNotesLength       = 500
)

type applicationUsecase struct {
	appRepo     domain.ApplicationRepository
	jobRepo     domain.JobRepository
	profileRepo domain.StudentProfileRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, profileRepo domain.StudentProfileRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// Submit files a Pending application. Eligibility is decided against the clock,
// never against the job's stored status alone.
func (u *applicationUsecase) Submit(ctx context.Context, studentID string, jobID int64, coverLetter string) (*domain.Application, error) {
	if utf8.RuneCountInString(coverLetter) > maxCoverLetterLength {
		return nil, apperror.BadRequest("Cover letter cannot exceed 1000 characters")
	}

	profile, err := u.profileRepo.GetByAccountID(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Please create your profile first")
		}
		return nil, apperror.Internal(err)
	}
	if !profile.HasResume() {
		return nil, apperror.BadRequest("Please upload your resume first")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This job is no longer active")
	}
	now := time.Now()
	if job.DeadlinePassed(now) {
		return nil, apperror.BadRequest("Application deadline has passed")
	}

	app := &domain.Application{
		JobID:            job.ID,
		StudentID:        studentID,
		StudentProfileID: profile.ID,
		EmployerID:       job.PostedBy,
		CoverLetter:      coverLetter,
		Status:           domain.ApplicationStatusPending,
	}
	if err := u.appRepo.Submit(ctx, app, now); err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	metrics.RecordApplicationEvent("submitted")
	return app, nil
}

func (u *applicationUsecase) ListMine(ctx context.Context, studentID string) ([]domain.Application, error) {
	apps, err := u.appRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListApplicants(ctx context.Context, employerID string, jobID int64) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	if job.PostedBy != employerID {
		return nil, apperror.Forbidden("Not authorized to view applicants")
	}

	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// Decide moves a Pending application to Approved or Rejected. Decided applications are final.
// Ownership is checked against the job's poster.
func (u *applicationUsecase) Decide(ctx context.Context, employerID string, applicationID int64, status domain.ApplicationStatus, notes *string) (*domain.Application, error) {
	if !status.IsDecision() {
		return nil, apperror.BadRequest("Invalid status")
	}
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotesLength {
		return nil, apperror.BadRequest("Employer notes cannot exceed 500 characters")
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}
	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	if job.PostedBy != employerID {
		return nil, apperror.Forbidden("Not authorized")
	}
	if app.Status.IsTerminal() {
		return nil, alreadyDecided(app.Status)
	}

	now := time.Now()
	app.Status = status
	app.StatusUpdatedAt = &now
	if notes != nil {
		app.EmployerNotes = *notes
	}

	if err := u.appRepo.Decide(ctx, app); err != nil {
		if errors.Is(err, domain.ErrStaleState) {
			current, getErr := u.appRepo.GetByID(ctx, applicationID)
			if getErr != nil {
				return nil, lookupErr(getErr, "Application not found")
			}
			return nil, alreadyDecided(current.Status)
		}
		return nil, apperror.Internal(err)
	}

	metrics.RecordApplicationEvent(strings.ToLower(string(status)))
	return app, nil
}

func alreadyDecided(status domain.ApplicationStatus) error {
	return apperror.BadRequest(fmt.Sprintf("Application has already been %s", strings.ToLower(string(status))))
}
