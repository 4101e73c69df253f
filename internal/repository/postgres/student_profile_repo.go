package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

const studentProfileColumns = `
	sp.id, sp.account_id, sp.full_name, sp.phone, sp.date_of_birth, sp.address, sp.education,
	sp.skills, sp.bio, sp.resume_key, sp.resume_url, sp.resume_original_name, sp.resume_uploaded_at,
	sp.picture_key, sp.picture_url, sp.created_at, sp.updated_at,
	ARRAY(SELECT sj.job_id FROM saved_jobs sj WHERE sj.student_profile_id = sp.id ORDER BY sj.saved_at)`

type studentProfileRepo struct {
	db DB
}

// NewStudentProfileRepository creates a new student profile repository
func NewStudentProfileRepository(db DB) domain.StudentProfileRepository {
	return &studentProfileRepo{db: db}
}

func scanStudentProfile(row rowScanner) (*domain.StudentProfile, error) {
	var (
		p                                domain.StudentProfile
		resumeKey, resumeURL, resumeName *string
		resumeUploadedAt                 *time.Time
		pictureKey, pictureURL           *string
	)
	err := row.Scan(
		&p.ID, &p.AccountID, &p.FullName, &p.Phone, &p.DateOfBirth, &p.Address, &p.Education,
		&p.Skills, &p.Bio, &resumeKey, &resumeURL, &resumeName, &resumeUploadedAt,
		&pictureKey, &pictureURL, &p.CreatedAt, &p.UpdatedAt,
		&p.SavedJobs,
	)
	if err != nil {
		return nil, err
	}
	if resumeKey != nil {
		p.Resume = &domain.FileRef{Key: *resumeKey, URL: deref(resumeURL), OriginalName: deref(resumeName), UploadedAt: resumeUploadedAt}
	}
	if pictureKey != nil {
		p.ProfilePicture = &domain.FileRef{Key: *pictureKey, URL: deref(pictureURL)}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.SavedJobs == nil {
		p.SavedJobs = []int64{}
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *studentProfileRepo) Create(ctx context.Context, profile *domain.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (account_id, full_name, phone, date_of_birth, address, education, skills, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		profile.AccountID, profile.FullName, profile.Phone, profile.DateOfBirth,
		profile.Address, profile.Education, nonNilStrings(profile.Skills), profile.Bio,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperror.Conflict("Profile already exists. Use update instead")
		}
		return err
	}
	return nil
}

// GetByAccountID retrieves a student profile by the owner's account ID
func (r *studentProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.StudentProfile, error) {
	query := `SELECT ` + studentProfileColumns + ` FROM student_profiles sp WHERE sp.account_id = $1`
	p, err := scanStudentProfile(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *studentProfileRepo) Update(ctx context.Context, profile *domain.StudentProfile) error {
	query := `
		UPDATE student_profiles
		SET full_name = $2, phone = $3, date_of_birth = $4, address = $5, education = $6,
		    skills = $7, bio = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Phone, profile.DateOfBirth, profile.Address,
		profile.Education, nonNilStrings(profile.Skills), profile.Bio, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentProfileRepo) UpdateResume(ctx context.Context, profileID int64, resume *domain.FileRef) error {
	query := `
		UPDATE student_profiles
		SET resume_key = $2, resume_url = $3, resume_original_name = $4, resume_uploaded_at = $5, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, profileID, resume.Key, resume.URL, resume.OriginalName, resume.UploadedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentProfileRepo) UpdatePicture(ctx context.Context, profileID int64, picture *domain.FileRef) error {
	query := `UPDATE student_profiles SET picture_key = $2, picture_url = $3, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, profileID, picture.Key, picture.URL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *studentProfileRepo) SaveJob(ctx context.Context, profileID, jobID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO saved_jobs (student_profile_id, job_id) VALUES ($1, $2)`, profileID, jobID)
	if err != nil {
		if isUniqueViolation(err, "saved_jobs_pkey") {
			return apperror.Conflict("Job already saved")
		}
		return err
	}
	return nil
}

// RemoveSavedJob is idempotent: removing a job that is not saved is not an error.
func (r *studentProfileRepo) RemoveSavedJob(ctx context.Context, profileID, jobID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE student_profile_id = $1 AND job_id = $2`, profileID, jobID)
	return err
}

// ListSavedJobs returns the saved jobs in the order they were saved.
func (r *studentProfileRepo) ListSavedJobs(ctx context.Context, profileID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM saved_jobs sj
		JOIN jobs j ON j.id = sj.job_id` + jobPosterJoin + `
		WHERE sj.student_profile_id = $1
		ORDER BY sj.saved_at`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
