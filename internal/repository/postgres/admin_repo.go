package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"
)

type adminRepo struct {
	db DB
}

func NewAdminRepository(db DB) domain.AdminRepository {
	return &adminRepo{db: db}
}

// DashboardStats fetches platform wide counters
func (r *adminRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	// Users by role
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE role = 'student'),
			COUNT(*) FILTER (WHERE role = 'employer'),
			COUNT(*) FILTER (WHERE role = 'employer' AND NOT is_approved)
		FROM accounts`,
	).Scan(&stats.Users.Total, &stats.Users.Students, &stats.Users.Employers, &stats.Users.PendingEmployers)
	if err != nil {
		return nil, err
	}

	// Jobs
	err = r.db.QueryRow(ctx, `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active') FROM jobs`).
		Scan(&stats.Jobs.Total, &stats.Jobs.Active)
	if err != nil {
		return nil, err
	}

	// Applications
	err = r.db.QueryRow(ctx, `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Pending') FROM applications`).
		Scan(&stats.Applications.Total, &stats.Applications.Pending)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
