package domain

import (
	"context"
	"time"
)

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type Education struct {
	Institution    string `json:"institution,omitempty"`
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	GraduationYear int    `json:"graduation_year,omitempty"`
	CurrentYear    int    `json:"current_year,omitempty"`
}

// FileRef points at an object held by FileStorage.
type FileRef struct {
	Key          string     `json:"key"`
	URL          string     `json:"url"`
	OriginalName string     `json:"original_name,omitempty"`
	UploadedAt   *time.Time `json:"uploaded_at,omitempty"`
}

type StudentProfile struct {
	ID             int64      `json:"id"`
	AccountID      string     `json:"user_id"`
	FullName       string     `json:"full_name"`
	Phone          string     `json:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Address        Address    `json:"address"`
	Education      Education  `json:"education"`
	Skills         []string   `json:"skills"`
	Bio            string     `json:"bio"`
	Resume         *FileRef   `json:"resume,omitempty"`
	ProfilePicture *FileRef   `json:"profile_picture,omitempty"`
	SavedJobs      []int64    `json:"saved_jobs"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasResume reports whether a resume has been uploaded.
func (p *StudentProfile) HasResume() bool {
	return p.Resume != nil && p.Resume.Key != ""
}

type EmployerProfile struct {
	ID                 int64     `json:"id"`
	AccountID          string    `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	ContactPerson      string    `json:"contact_person"`
	Phone              string    `json:"phone"`
	CompanyDescription string    `json:"company_description"`
	Website            string    `json:"website,omitempty"`
	CompanyLogo        *FileRef  `json:"company_logo,omitempty"`
	Address            Address   `json:"address"`
	Industry           string    `json:"industry"`
	CompanySize        string    `json:"company_size,omitempty"`
	EstablishedYear    *int      `json:"established_year,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UploadedFile is a fully buffered multipart upload.
type UploadedFile struct {
	Filename string
	Data     []byte
}

type StudentProfileRepository interface {
	Create(ctx context.Context, profile *StudentProfile) error
	GetByAccountID(ctx context.Context, accountID string) (*StudentProfile, error)
	Update(ctx context.Context, profile *StudentProfile) error
	UpdateResume(ctx context.Context, profileID int64, resume *FileRef) error
	UpdatePicture(ctx context.Context, profileID int64, picture *FileRef) error
	SaveJob(ctx context.Context, profileID, jobID int64) error
	RemoveSavedJob(ctx context.Context, profileID, jobID int64) error
	ListSavedJobs(ctx context.Context, profileID int64) ([]Job, error)
}

type EmployerProfileRepository interface {
	Create(ctx context.Context, profile *EmployerProfile) error
	GetByAccountID(ctx context.Context, accountID string) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
	UpdateLogo(ctx context.Context, profileID int64, logo *FileRef) error
}

type StudentUsecase interface {
	CreateProfile(ctx context.Context, accountID string, profile *StudentProfile) error
	UpdateProfile(ctx context.Context, accountID string, profile *StudentProfile) (*StudentProfile, error)
	// GetMyProfile returns nil without error when no profile exists yet.
	GetMyProfile(ctx context.Context, accountID string) (*StudentProfile, error)
	UploadResume(ctx context.Context, accountID string, file UploadedFile) (*FileRef, error)
	UploadProfilePicture(ctx context.Context, accountID string, file UploadedFile) (*FileRef, error)
	SaveJob(ctx context.Context, accountID string, jobID int64) error
	RemoveSavedJob(ctx context.Context, accountID string, jobID int64) error
	ListSavedJobs(ctx context.Context, accountID string) ([]Job, error)
}

type EmployerUsecase interface {
	CreateProfile(ctx context.Context, accountID string, profile *EmployerProfile) error
	UpdateProfile(ctx context.Context, accountID string, profile *EmployerProfile) (*EmployerProfile, error)
	GetMyProfile(ctx context.Context, accountID string) (*EmployerProfile, error)
	UploadLogo(ctx context.Context, accountID string, file UploadedFile) (*FileRef, error)
	DashboardStats(ctx context.Context, accountID string) (*EmployerStats, error)
}

// FileStorage persists uploaded blobs and returns their public URL.
type FileStorage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
