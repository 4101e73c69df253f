package domain

import "context"

type UserStats struct {
	Total            int64 `json:"total"`
	Students         int64 `json:"students"`
	Employers        int64 `json:"employers"`
	PendingEmployers int64 `json:"pending_employers"`
}

type JobStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type ApplicationStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

type DashboardStats struct {
	Users        UserStats        `json:"users"`
	Jobs         JobStats         `json:"jobs"`
	Applications ApplicationStats `json:"applications"`
}

// ExportFile is a generated download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type AdminRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type AdminUsecase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context, filter AccountFilter) ([]Account, error)
	GetUser(ctx context.Context, id string) (*AccountProfile, error)
	ApproveEmployer(ctx context.Context, id string) (*Account, error)
	SetBlocked(ctx context.Context, id string, blocked bool) (*Account, error)
	DeleteUser(ctx context.Context, id string) error
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
	DeleteJob(ctx context.Context, id int64) error
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	// ExportApplications renders the filtered ledger as "xlsx" (default) or "csv".
	ExportApplications(ctx context.Context, filter ApplicationFilter, format string) (*ExportFile, error)
}
