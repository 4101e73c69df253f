package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

// Application status constants
const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusApproved ApplicationStatus = "Approved"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

// IsDecision reports whether s is a status an employer may set.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s.IsDecision()
}

// Application is one student's submission to one job: Pending -> Approved | Rejected.
type Application struct {
	ID               int64             `json:"id"`
	JobID            int64             `json:"job_id"`
	StudentID        string            `json:"student_id"`
	StudentProfileID int64             `json:"student_profile_id"`
	EmployerID       string            `json:"employer_id"`
	CoverLetter      string            `json:"cover_letter"`
	Status           ApplicationStatus `json:"status"`
	EmployerNotes    string            `json:"employer_notes,omitempty"`
	AppliedAt        time.Time         `json:"applied_at"`
	StatusUpdatedAt  *time.Time        `json:"status_updated_at,omitempty"`

	// Joined data for list responses
	Job            *JobSummary     `json:"job,omitempty"`
	StudentEmail   *string         `json:"student_email,omitempty"`
	StudentProfile *StudentProfile `json:"student_profile,omitempty"`
}

type JobSummary struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	CompanyName         string    `json:"company_name"`
	Category            string    `json:"category"`
	JobType             string    `json:"job_type"`
	Location            Location  `json:"location"`
	Salary              Salary    `json:"salary"`
	Status              JobStatus `json:"status"`
	ApplicationDeadline time.Time `json:"application_deadline"`
}

type ApplicationFilter struct {
	Status     ApplicationStatus
	JobID      int64
	StudentID  string
	EmployerID string
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	// Submit inserts the application and bumps the job's counter in one transaction.
	// A second submission for the same (job, student) pair fails with a conflict.
	Submit(ctx context.Context, app *Application, now time.Time) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	// Decide moves a Pending application to a terminal status; ErrStaleState if it is no longer Pending.
	Decide(ctx context.Context, app *Application) error
	ListByStudent(ctx context.Context, studentID string) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Student operations
	Submit(ctx context.Context, studentID string, jobID int64, coverLetter string) (*Application, error)
	ListMine(ctx context.Context, studentID string) ([]Application, error)

	// Employer operations
	ListApplicants(ctx context.Context, employerID string, jobID int64) ([]Application, error)
	Decide(ctx context.Context, employerID string, applicationID int64, status ApplicationStatus, notes *string) (*Application, error)
}
