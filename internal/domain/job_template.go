package domain

import (
	"context"
	"time"
)

// DefaultTemplateDeadline is how long a job activated from a template stays open by default.
const DefaultTemplateDeadline = 30 * 24 * time.Hour

type JobTemplate struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	JobType          string    `json:"job_type"`
	WorkingHours     string    `json:"working_hours"`
	SuggestedSalary  Salary    `json:"suggested_salary"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Skills           []string  `json:"skills"`
	IsActive         bool      `json:"is_active"`
	TimesActivated   int       `json:"times_activated"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TemplateFilter struct {
	Category     string
	WorkingHours string
	JobType      string
	Search       string
	ActiveOnly   bool
}

// ActivateTemplateInput carries the employer's overrides. Nil fields fall back to defaults.
type ActivateTemplateInput struct {
	Location            *Location
	Salary              *Salary
	Vacancies           *int
	ApplicationDeadline *time.Time
}

type JobTemplateRepository interface {
	Create(ctx context.Context, tmpl *JobTemplate) error
	GetByID(ctx context.Context, id int64) (*JobTemplate, error)
	Update(ctx context.Context, tmpl *JobTemplate) error
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context, filter TemplateFilter) ([]JobTemplate, error)
	IncrementActivations(ctx context.Context, id int64) error
}

type JobTemplateUsecase interface {
	ListActive(ctx context.Context, filter TemplateFilter) ([]JobTemplate, error)
	Activate(ctx context.Context, employerID string, templateID int64, input ActivateTemplateInput) (*Job, error)
	ListAll(ctx context.Context, filter TemplateFilter) ([]JobTemplate, error)
	Create(ctx context.Context, tmpl *JobTemplate) error
	Update(ctx context.Context, id int64, tmpl *JobTemplate) (*JobTemplate, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
