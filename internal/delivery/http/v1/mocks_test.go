package v1_test

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUC struct{ mock.Mock }

func (m *MockAuthUC) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.String(1), args.Error(2)
}

func (m *MockAuthUC) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.String(1), args.Error(2)
}

func (m *MockAuthUC) GetCurrentUser(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAuthUC) GetProfile(ctx context.Context, id string) (*domain.AccountProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountProfile), args.Error(1)
}

func (m *MockAuthUC) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthUC) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return m.Called(ctx, email, otp, newPassword).Error(0)
}

type MockStudentUC struct{ mock.Mock }

func (m *MockStudentUC) CreateProfile(ctx context.Context, accountID string, profile *domain.StudentProfile) error {
	return m.Called(ctx, accountID, profile).Error(0)
}

func (m *MockStudentUC) UpdateProfile(ctx context.Context, accountID string, profile *domain.StudentProfile) (*domain.StudentProfile, error) {
	args := m.Called(ctx, accountID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentProfile), args.Error(1)
}

func (m *MockStudentUC) GetMyProfile(ctx context.Context, accountID string) (*domain.StudentProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentProfile), args.Error(1)
}

func (m *MockStudentUC) UploadResume(ctx context.Context, accountID string, file domain.UploadedFile) (*domain.FileRef, error) {
	args := m.Called(ctx, accountID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileRef), args.Error(1)
}

func (m *MockStudentUC) UploadProfilePicture(ctx context.Context, accountID string, file domain.UploadedFile) (*domain.FileRef, error) {
	args := m.Called(ctx, accountID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileRef), args.Error(1)
}

func (m *MockStudentUC) SaveJob(ctx context.Context, accountID string, jobID int64) error {
	return m.Called(ctx, accountID, jobID).Error(0)
}

func (m *MockStudentUC) RemoveSavedJob(ctx context.Context, accountID string, jobID int64) error {
	return m.Called(ctx, accountID, jobID).Error(0)
}

func (m *MockStudentUC) ListSavedJobs(ctx context.Context, accountID string) ([]domain.Job, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockEmployerUC struct{ mock.Mock }

func (m *MockEmployerUC) CreateProfile(ctx context.Context, accountID string, profile *domain.EmployerProfile) error {
	return m.Called(ctx, accountID, profile).Error(0)
}

func (m *MockEmployerUC) UpdateProfile(ctx context.Context, accountID string, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, accountID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerUC) GetMyProfile(ctx context.Context, accountID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerUC) UploadLogo(ctx context.Context, accountID string, file domain.UploadedFile) (*domain.FileRef, error) {
	args := m.Called(ctx, accountID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileRef), args.Error(1)
}

func (m *MockEmployerUC) DashboardStats(ctx context.Context, accountID string) (*domain.EmployerStats, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerStats), args.Error(1)
}

type MockJobUC struct{ mock.Mock }

func (m *MockJobUC) PostJob(ctx context.Context, employerID string, job *domain.Job) error {
	return m.Called(ctx, employerID, job).Error(0)
}

func (m *MockJobUC) UpdateJob(ctx context.Context, employerID string, id int64, changes *domain.Job) (*domain.Job, error) {
	args := m.Called(ctx, employerID, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) DeleteJob(ctx context.Context, employerID string, id int64) error {
	return m.Called(ctx, employerID, id).Error(0)
}

func (m *MockJobUC) GetEmployerJob(ctx context.Context, employerID string, id int64) (*domain.Job, error) {
	args := m.Called(ctx, employerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobUC) ListEmployerJobs(ctx context.Context, employerID string) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobUC) ListPublicJobs(ctx context.Context, filter domain.JobFilter) ([]domain.PublicJob, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.PublicJob), args.Error(1)
}

func (m *MockJobUC) GetPublicJob(ctx context.Context, id int64) (*domain.PublicJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicJob), args.Error(1)
}

func (m *MockJobUC) ListOpenJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobUC) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type MockTemplateUC struct{ mock.Mock }

func (m *MockTemplateUC) ListActive(ctx context.Context, filter domain.TemplateFilter) ([]domain.JobTemplate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.JobTemplate), args.Error(1)
}

func (m *MockTemplateUC) Activate(ctx context.Context, employerID string, templateID int64, input domain.ActivateTemplateInput) (*domain.Job, error) {
	args := m.Called(ctx, employerID, templateID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockTemplateUC) ListAll(ctx context.Context, filter domain.TemplateFilter) ([]domain.JobTemplate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.JobTemplate), args.Error(1)
}

func (m *MockTemplateUC) Create(ctx context.Context, tmpl *domain.JobTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}

func (m *MockTemplateUC) Update(ctx context.Context, id int64, tmpl *domain.JobTemplate) (*domain.JobTemplate, error) {
	args := m.Called(ctx, id, tmpl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobTemplate), args.Error(1)
}

func (m *MockTemplateUC) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

type MockApplicationUC struct{ mock.Mock }

func (m *MockApplicationUC) Submit(ctx context.Context, studentID string, jobID int64, coverLetter string) (*domain.Application, error) {
	args := m.Called(ctx, studentID, jobID, coverLetter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListMine(ctx context.Context, studentID string) ([]domain.Application, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) ListApplicants(ctx context.Context, employerID string, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, employerID, jobID)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUC) Decide(ctx context.Context, employerID string, applicationID int64, status domain.ApplicationStatus, notes *string) (*domain.Application, error) {
	args := m.Called(ctx, employerID, applicationID, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

type MockAdminUC struct{ mock.Mock }

func (m *MockAdminUC) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockAdminUC) ListUsers(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAdminUC) GetUser(ctx context.Context, id string) (*domain.AccountProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountProfile), args.Error(1)
}

func (m *MockAdminUC) ApproveEmployer(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAdminUC) SetBlocked(ctx context.Context, id string, blocked bool) (*domain.Account, error) {
	args := m.Called(ctx, id, blocked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAdminUC) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminUC) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockAdminUC) DeleteJob(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminUC) ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockAdminUC) ExportApplications(ctx context.Context, filter domain.ApplicationFilter, format string) (*domain.ExportFile, error) {
	args := m.Called(ctx, filter, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}
