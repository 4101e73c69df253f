package usecase

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerProfileRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerProfileRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

// applyJobDefaults fills optional fields and checks the cross-field rules binding tags cannot express.
func applyJobDefaults(job *domain.Job) error {
	if job.JobType == "" {
		job.JobType = domain.DefaultJobType
	}
	if job.WorkingHours == "" {
		job.WorkingHours = domain.DefaultWorkingHrs
	}
	if job.Location.Country == "" {
		job.Location.Country = domain.DefaultCountry
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = domain.DefaultCurrency
	}
	if job.Salary.Period == "" {
		job.Salary.Period = domain.DefaultPeriod
	}
	if job.Vacancies == 0 {
		job.Vacancies = 1
	}

	if job.Title == "" {
		return apperror.BadRequest("Job title is required")
	}
	if job.Location.City == "" {
		return apperror.BadRequest("City is required")
	}
	if job.ApplicationDeadline.IsZero() {
		return apperror.BadRequest("Application deadline is required")
	}
	if !domain.IsJobCategory(job.Category) {
		return apperror.BadRequest("Invalid job category")
	}
	if !domain.IsJobType(job.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if !domain.IsWorkingHours(job.WorkingHours) {
		return apperror.BadRequest("Invalid working hours")
	}
	if !domain.IsSalaryPeriod(job.Salary.Period) {
		return apperror.BadRequest("Invalid salary period")
	}
	if job.Salary.Max < job.Salary.Min {
		return apperror.BadRequest("Maximum salary must be greater than or equal to minimum salary")
	}
	if job.Vacancies < 1 {
		return apperror.BadRequest("Vacancies must be at least 1")
	}
	return nil
}

func (u *jobUsecase) PostJob(ctx context.Context, employerID string, job *domain.Job) error {
	profile, err := u.employerRepo.GetByAccountID(ctx, employerID)
	if err != nil {
		return lookupErr(err, "Please create your profile first")
	}

	if err := applyJobDefaults(job); err != nil {
		return err
	}
	now := time.Now()
	job.PostedBy = employerID
	job.CompanyName = profile.CompanyName
	job.Status = domain.JobStatusActive
	job.ApplicationsCount = 0
	job.CreatedAt = now
	job.UpdatedAt = now
	job.RefreshStatus(now)

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return internalErr(err)
	}
	return nil
}

// ownedJob loads a job and checks that employerID posted it.
func (u *jobUsecase) ownedJob(ctx context.Context, employerID string, id int64, deniedMsg string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	if job.PostedBy != employerID {
		return nil, apperror.Forbidden(deniedMsg)
	}
	return job, nil
}

// UpdateJob replaces the editable fields. Status may be set to active or closed;
// lazy expiry then runs so a past deadline always persists as expired.
func (u *jobUsecase) UpdateJob(ctx context.Context, employerID string, id int64, changes *domain.Job) (*domain.Job, error) {
	job, err := u.ownedJob(ctx, employerID, id, "Not authorized to update this job")
	if err != nil {
		return nil, err
	}

	job.Title = changes.Title
	job.Description = changes.Description
	job.Category = changes.Category
	job.JobType = changes.JobType
	job.WorkingHours = changes.WorkingHours
	job.Location = changes.Location
	job.Salary = changes.Salary
	job.Requirements = changes.Requirements
	job.Responsibilities = changes.Responsibilities
	job.Skills = changes.Skills
	job.Vacancies = changes.Vacancies
	job.ApplicationDeadline = changes.ApplicationDeadline
	switch changes.Status {
	case "":
	case domain.JobStatusActive, domain.JobStatusClosed:
		job.Status = changes.Status
	default:
		return nil, apperror.BadRequest("Status must be active or closed")
	}

	if err := applyJobDefaults(job); err != nil {
		return nil, err
	}
	now := time.Now()
	job.UpdatedAt = now
	job.RefreshStatus(now)

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, employerID string, id int64) error {
	if _, err := u.ownedJob(ctx, employerID, id, "Not authorized to delete this job"); err != nil {
		return err
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "Job not found")
	}
	return nil
}

func (u *jobUsecase) GetEmployerJob(ctx context.Context, employerID string, id int64) (*domain.Job, error) {
	return u.ownedJob(ctx, employerID, id, "Not authorized to view this job")
}

func (u *jobUsecase) ListEmployerJobs(ctx context.Context, employerID string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.List(ctx, domain.JobFilter{PostedBy: employerID})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// ListPublicJobs lists active jobs for anonymous visitors. Status is forced regardless of filter.
func (u *jobUsecase) ListPublicJobs(ctx context.Context, filter domain.JobFilter) ([]domain.PublicJob, error) {
	filter.Status = domain.JobStatusActive
	filter.PostedBy = ""
	filter.OpenAt = nil
	filter.SearchCompany = false

	jobs, err := u.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	public := make([]domain.PublicJob, 0, len(jobs))
	for _, j := range jobs {
		public = append(public, j.Public())
	}
	return public, nil
}

func (u *jobUsecase) GetPublicJob(ctx context.Context, id int64) (*domain.PublicJob, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	public := job.Public()
	return &public, nil
}

// ListOpenJobs lists jobs a student can still apply to: active and not past the deadline.
func (u *jobUsecase) ListOpenJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	now := time.Now()
	filter.Status = domain.JobStatusActive
	filter.PostedBy = ""
	filter.OpenAt = &now
	filter.SearchCompany = true

	jobs, err := u.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	return job, nil
}
