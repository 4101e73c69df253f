package domain

import (
	"context"
	"time"
)

type JobStatus string

const (
	JobStatusActive  JobStatus = "active"
	JobStatusExpired JobStatus = "expired"
	JobStatusClosed  JobStatus = "closed"
)

type Location struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
}

type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
	Period   string  `json:"period"`
}

type Job struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	JobType             string    `json:"job_type"`
	WorkingHours        string    `json:"working_hours"`
	Location            Location  `json:"location"`
	Salary              Salary    `json:"salary"`
	Requirements        []string  `json:"requirements"`
	Responsibilities    []string  `json:"responsibilities"`
	Skills              []string  `json:"skills"`
	Vacancies           int       `json:"vacancies"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	PostedBy            string    `json:"posted_by"`
	CompanyName         string    `json:"company_name"`
	Status              JobStatus `json:"status"`
	ApplicationsCount   int       `json:"applications_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Joined data for admin listings
	PosterEmail *string `json:"poster_email,omitempty"`
}

// RefreshStatus applies lazy expiry: an active job whose deadline has passed becomes
// expired. It never moves a job back to active. Reports whether the status changed.
func (j *Job) RefreshStatus(now time.Time) bool {
	if j.Status == JobStatusActive && j.DeadlinePassed(now) {
		j.Status = JobStatusExpired
		return true
	}
	return false
}

// DeadlinePassed compares against the clock, never against the stored status.
// A job is open strictly before its deadline.
func (j *Job) DeadlinePassed(now time.Time) bool {
	return !now.Before(j.ApplicationDeadline)
}

// PublicJob is the anonymous view of a job. The shadowing fields stay nil so they are omitted.
type PublicJob struct {
	Job
	ApplicationsCount *int    `json:"applications_count,omitempty"`
	PosterEmail       *string `json:"poster_email,omitempty"`
}

func (j Job) Public() PublicJob {
	return PublicJob{Job: j}
}

// JobFilter narrows catalog listings. Zero values are not applied.
type JobFilter struct {
	Search       string
	Category     string
	City         string
	JobType      string
	WorkingHours string
	MinSalary    *float64
	MaxSalary    *float64
	Status       JobStatus
	PostedBy     string
	// OpenAt keeps only jobs whose deadline is after the given time.
	OpenAt *time.Time
	// SearchCompany extends Search to the company name.
	SearchCompany bool
}

type EmployerStats struct {
	TotalJobs           int64 `json:"total_jobs"`
	ActiveJobs          int64 `json:"active_jobs"`
	TotalApplications   int64 `json:"total_applications"`
	PendingApplications int64 `json:"pending_applications"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Update(ctx context.Context, job *Job) error
	// Delete removes the job with its applications and saved references.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter JobFilter) ([]Job, error)
	EmployerStats(ctx context.Context, employerID string) (*EmployerStats, error)
}

type JobUsecase interface {
	PostJob(ctx context.Context, employerID string, job *Job) error
	UpdateJob(ctx context.Context, employerID string, id int64, changes *Job) (*Job, error)
	DeleteJob(ctx context.Context, employerID string, id int64) error
	GetEmployerJob(ctx context.Context, employerID string, id int64) (*Job, error)
	ListEmployerJobs(ctx context.Context, employerID string) ([]Job, error)
	ListPublicJobs(ctx context.Context, filter JobFilter) ([]PublicJob, error)
	GetPublicJob(ctx context.Context, id int64) (*PublicJob, error)
	ListOpenJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
}
