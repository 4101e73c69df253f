package usecase_test

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) List(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	return m.Called(ctx, id, approved).Error(0)
}
func (m *MockAccountRepo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	return m.Called(ctx, id, blocked).Error(0)
}
func (m *MockAccountRepo) SetResetOTP(ctx context.Context, id string, otp *string, expires *time.Time) error {
	return m.Called(ctx, id, otp, expires).Error(0)
}
func (m *MockAccountRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockAccountRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockStudentProfileRepo struct {
	mock.Mock
}

func (m *MockStudentProfileRepo) Create(ctx context.Context, profile *domain.StudentProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockStudentProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.StudentProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentProfile), args.Error(1)
}
func (m *MockStudentProfileRepo) Update(ctx context.Context, profile *domain.StudentProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockStudentProfileRepo) UpdateResume(ctx context.Context, profileID int64, resume *domain.FileRef) error {
	return m.Called(ctx, profileID, resume).Error(0)
}
func (m *MockStudentProfileRepo) UpdatePicture(ctx context.Context, profileID int64, picture *domain.FileRef) error {
	return m.Called(ctx, profileID, picture).Error(0)
}
func (m *MockStudentProfileRepo) SaveJob(ctx context.Context, profileID, jobID int64) error {
	return m.Called(ctx, profileID, jobID).Error(0)
}
func (m *MockStudentProfileRepo) RemoveSavedJob(ctx context.Context, profileID, jobID int64) error {
	return m.Called(ctx, profileID, jobID).Error(0)
}
func (m *MockStudentProfileRepo) ListSavedJobs(ctx context.Context, profileID int64) ([]domain.Job, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockEmployerProfileRepo struct {
	mock.Mock
}

func (m *MockEmployerProfileRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockEmployerProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerProfileRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockEmployerProfileRepo) UpdateLogo(ctx context.Context, profileID int64, logo *domain.FileRef) error {
	return m.Called(ctx, profileID, logo).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) EmployerStats(ctx context.Context, employerID string) (*domain.EmployerStats, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerStats), args.Error(1)
}

type MockJobTemplateRepo struct {
	mock.Mock
}

func (m *MockJobTemplateRepo) Create(ctx context.Context, tmpl *domain.JobTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}
func (m *MockJobTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.JobTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobTemplate), args.Error(1)
}
func (m *MockJobTemplateRepo) Update(ctx context.Context, tmpl *domain.JobTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}
func (m *MockJobTemplateRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockJobTemplateRepo) List(ctx context.Context, filter domain.TemplateFilter) ([]domain.JobTemplate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.JobTemplate), args.Error(1)
}
func (m *MockJobTemplateRepo) IncrementActivations(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Submit(ctx context.Context, app *domain.Application, now time.Time) error {
	return m.Called(ctx, app, now).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Decide(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Application, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// Mock collaborators
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(accountID string) (string, error) {
	args := m.Called(accountID)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordResetOTP(ctx context.Context, to, otp string, validFor time.Duration) error {
	return m.Called(ctx, to, otp, validFor).Error(0)
}
