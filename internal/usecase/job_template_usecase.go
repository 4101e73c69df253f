package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
)

type jobTemplateUsecase struct {
	templateRepo domain.JobTemplateRepository
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerProfileRepository
}

func NewJobTemplateUsecase(
	templateRepo domain.JobTemplateRepository,
	jobRepo domain.JobRepository,
	employerRepo domain.EmployerProfileRepository,
) domain.JobTemplateUsecase {
	return &jobTemplateUsecase{
		templateRepo: templateRepo,
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

func (u *jobTemplateUsecase) ListActive(ctx context.Context, filter domain.TemplateFilter) ([]domain.JobTemplate, error) {
	filter.ActiveOnly = true
	templates, err := u.templateRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return templates, nil
}

// Activate instantiates a job owned by employerID from the template. The job keeps no link to the template.
func (u *jobTemplateUsecase) Activate(ctx context.Context, employerID string, templateID int64, input domain.ActivateTemplateInput) (*domain.Job, error) {
	profile, err := u.employerRepo.GetByAccountID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Please create your profile first")
		}
		return nil, apperror.Internal(err)
	}

	tmpl, err := u.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, lookupErr(err, "Job template not found")
	}
	if !tmpl.IsActive {
		return nil, apperror.BadRequest("This job template is no longer available")
	}

	now := time.Now()
	job := &domain.Job{
		Title:               tmpl.Title,
		Description:         tmpl.Description,
		Category:            tmpl.Category,
		JobType:             tmpl.JobType,
		WorkingHours:        tmpl.WorkingHours,
		Location:            domain.Location{City: "Not specified", Country: domain.DefaultCountry},
		Salary:              tmpl.SuggestedSalary,
		Requirements:        tmpl.Requirements,
		Responsibilities:    tmpl.Responsibilities,
		Skills:              tmpl.Skills,
		Vacancies:           1,
		ApplicationDeadline: now.Add(domain.DefaultTemplateDeadline),
		PostedBy:            employerID,
		CompanyName:         profile.CompanyName,
		Status:              domain.JobStatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.Vacancies != nil {
		job.Vacancies = *input.Vacancies
	}
	if input.ApplicationDeadline != nil {
		job.ApplicationDeadline = *input.ApplicationDeadline
	}
	// templates may suggest a daily rate, which jobs cannot carry
	if !domain.IsSalaryPeriod(job.Salary.Period) {
		job.Salary.Period = domain.DefaultPeriod
	}

	if err := applyJobDefaults(job); err != nil {
		return nil, err
	}
	job.RefreshStatus(now)

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, internalErr(err)
	}
	if err := u.templateRepo.IncrementActivations(ctx, tmpl.ID); err != nil {
		logger.Log.Warn("Failed to count template activation", "template_id", tmpl.ID, "error", err)
	}
	return job, nil
}

func (u *jobTemplateUsecase) ListAll(ctx context.Context, filter domain.TemplateFilter) ([]domain.JobTemplate, error) {
	templates, err := u.templateRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return templates, nil
}

func validateTemplate(tmpl *domain.JobTemplate) error {
	if tmpl.JobType == "" {
		tmpl.JobType = "Remote"
	}
	if tmpl.WorkingHours == "" {
		tmpl.WorkingHours = domain.DefaultWorkingHrs
	}
	if tmpl.SuggestedSalary.Currency == "" {
		tmpl.SuggestedSalary.Currency = domain.DefaultCurrency
	}
	if tmpl.SuggestedSalary.Period == "" {
		tmpl.SuggestedSalary.Period = domain.DefaultPeriod
	}

	if tmpl.Title == "" || tmpl.Description == "" {
		return apperror.BadRequest("Title and description are required")
	}
	if !domain.IsJobCategory(tmpl.Category) {
		return apperror.BadRequest("Invalid job category")
	}
	if !domain.IsJobType(tmpl.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if !domain.IsWorkingHours(tmpl.WorkingHours) {
		return apperror.BadRequest("Invalid working hours")
	}
	valid := false
	for _, p := range domain.TemplatePeriods {
		if p == tmpl.SuggestedSalary.Period {
			valid = true
		}
	}
	if !valid {
		return apperror.BadRequest("Invalid salary period")
	}
	if tmpl.SuggestedSalary.Max < tmpl.SuggestedSalary.Min {
		return apperror.BadRequest("Maximum salary must be greater than or equal to minimum salary")
	}
	return nil
}

func (u *jobTemplateUsecase) Create(ctx context.Context, tmpl *domain.JobTemplate) error {
	if err := validateTemplate(tmpl); err != nil {
		return err
	}
	now := time.Now()
	tmpl.IsActive = true
	tmpl.TimesActivated = 0
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	if err := u.templateRepo.Create(ctx, tmpl); err != nil {
		return internalErr(err)
	}
	return nil
}

// Update replaces the template content. Activation state and counters are left alone.
func (u *jobTemplateUsecase) Update(ctx context.Context, id int64, changes *domain.JobTemplate) (*domain.JobTemplate, error) {
	tmpl, err := u.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Job template not found")
	}

	tmpl.Title = changes.Title
	tmpl.Description = changes.Description
	tmpl.Category = changes.Category
	tmpl.JobType = changes.JobType
	tmpl.WorkingHours = changes.WorkingHours
	tmpl.SuggestedSalary = changes.SuggestedSalary
	tmpl.Requirements = changes.Requirements
	tmpl.Responsibilities = changes.Responsibilities
	tmpl.Skills = changes.Skills
	if err := validateTemplate(tmpl); err != nil {
		return nil, err
	}
	tmpl.UpdatedAt = time.Now()

	if err := u.templateRepo.Update(ctx, tmpl); err != nil {
		return nil, lookupErr(err, "Job template not found")
	}
	return tmpl, nil
}

func (u *jobTemplateUsecase) SetActive(ctx context.Context, id int64, active bool) error {
	if err := u.templateRepo.SetActive(ctx, id, active); err != nil {
		return lookupErr(err, "Job template not found")
	}
	return nil
}
