package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %v", err)
	return appErr.Code
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Employer starts unapproved and student starts approved", func(t *testing.T) {
		for role, approved := range map[domain.Role]bool{domain.RoleEmployer: false, domain.RoleStudent: true} {
			accounts := new(MockAccountRepo)
			tokens := new(MockTokenIssuer)
			uc := usecase.NewAuthUsecase(accounts, nil, nil, tokens, nil)

			accounts.On("GetByEmail", ctx, "new@example.com").Return(nil, domain.ErrNotFound)
			accounts.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(nil)
			tokens.On("Issue", mock.AnythingOfType("string")).Return("signed", nil)

			account, token, err := uc.Register(ctx, domain.RegisterInput{
				Email:    "  New@Example.com ",
				Password: "secret1",
				Role:     role,
			})
			require.NoError(t, err)
			assert.Equal(t, "signed", token)
			assert.Equal(t, "new@example.com", account.Email)
			assert.Equal(t, approved, account.IsApproved, "role %s", role)
			assert.False(t, account.IsBlocked)
			assert.NotEqual(t, "secret1", account.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret1")))
		}
	})

	t.Run("Should reject admin self registration", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockAccountRepo), nil, nil, nil, nil)
		_, _, err := uc.Register(ctx, domain.RegisterInput{Email: "a@b.com", Password: "secret1", Role: domain.RoleAdmin})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "Invalid role")
	})

	t.Run("Should reject short password", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockAccountRepo), nil, nil, nil, nil)
		_, _, err := uc.Register(ctx, domain.RegisterInput{Email: "a@b.com", Password: "123", Role: domain.RoleStudent})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Should reject duplicate email", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, nil, nil)
		accounts.On("GetByEmail", ctx, "taken@example.com").Return(&domain.Account{ID: "u1"}, nil)

		_, _, err := uc.Register(ctx, domain.RegisterInput{Email: "taken@example.com", Password: "secret1", Role: domain.RoleStudent})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "Email already registered")
		accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)

	t.Run("Wrong password and unknown email look the same", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, new(MockTokenIssuer), nil)
		accounts.On("GetByEmail", ctx, "known@example.com").Return(&domain.Account{ID: "u1", PasswordHash: string(hash)}, nil)
		accounts.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, errWrong := uc.Login(ctx, "known@example.com", "nope")
		_, _, errGhost := uc.Login(ctx, "ghost@example.com", "secret1")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, errWrong))
		assert.Equal(t, errWrong.Error(), errGhost.Error())
	})

	t.Run("Blocked account cannot log in", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		tokens := new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, tokens, nil)
		accounts.On("GetByEmail", ctx, "blocked@example.com").
			Return(&domain.Account{ID: "u2", PasswordHash: string(hash), IsBlocked: true}, nil)

		_, _, err := uc.Login(ctx, "blocked@example.com", "secret1")
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		assert.Contains(t, err.Error(), "blocked")
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Mail failure withdraws the code", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, nil, mailer)

		accounts.On("GetByEmail", ctx, "s@example.com").Return(&domain.Account{ID: "u1", Email: "s@example.com"}, nil)
		accounts.On("SetResetOTP", ctx, "u1", mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time")).
			Return(nil).Run(func(args mock.Arguments) {
			if otp := args.Get(2).(*string); otp != nil {
				assert.Len(t, *otp, 6)
			}
		})
		mailer.On("SendPasswordResetOTP", ctx, "s@example.com", mock.AnythingOfType("string"), usecase.ResetOTPValidity).
			Return(errors.New("smtp down"))

		err := uc.ForgotPassword(ctx, "s@example.com")
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.Contains(t, err.Error(), "Email could not be sent")

		var cleared bool
		for _, call := range accounts.Calls {
			if call.Method == "SetResetOTP" && call.Arguments.Get(2).(*string) == nil {
				cleared = true
			}
		}
		assert.True(t, cleared, "reset code should be cleared after mail failure")
	})

	t.Run("Unknown email is reported", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, nil, nil)
		accounts.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		err := uc.ForgotPassword(ctx, "ghost@example.com")
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Expired code is rejected", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, nil, nil)
		otp := "123456"
		expired := time.Now().Add(-time.Minute)
		accounts.On("GetByEmail", ctx, "s@example.com").
			Return(&domain.Account{ID: "u1", ResetOTP: &otp, ResetOTPExpires: &expired}, nil)

		err := uc.ResetPassword(ctx, "s@example.com", "123456", "newpass")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "Invalid or expired OTP")
		accounts.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Valid code sets the new password", func(t *testing.T) {
		accounts := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(accounts, nil, nil, nil, nil)
		otp := "654321"
		expires := time.Now().Add(5 * time.Minute)
		accounts.On("GetByEmail", ctx, "s@example.com").
			Return(&domain.Account{ID: "u1", ResetOTP: &otp, ResetOTPExpires: &expires}, nil)
		accounts.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil).Run(func(args mock.Arguments) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(args.String(2)), []byte("newpass")))
		})

		require.NoError(t, uc.ResetPassword(ctx, "s@example.com", "654321", "newpass"))
		accounts.AssertExpectations(t)
	})
}

func openJob(deadline time.Time) *domain.Job {
	return &domain.Job{
		ID:                  7,
		Title:               "Barista",
		PostedBy:            "employer-1",
		Status:              domain.JobStatusActive,
		ApplicationDeadline: deadline,
	}
}

func studentWithResume() *domain.StudentProfile {
	return &domain.StudentProfile{
		ID:        3,
		AccountID: "student-1",
		Resume:    &domain.FileRef{Key: "resumes/resume-1.pdf", URL: "/uploads/resumes/resume-1.pdf"},
	}
}

func TestSubmitApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a pending application", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)

		profiles.On("GetByAccountID", ctx, "student-1").Return(studentWithResume(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(48*time.Hour)), nil)
		apps.On("Submit", ctx, mock.AnythingOfType("*domain.Application"), mock.AnythingOfType("time.Time")).Return(nil)

		app, err := uc.Submit(ctx, "student-1", 7, "Hello")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "employer-1", app.EmployerID)
		assert.Equal(t, int64(3), app.StudentProfileID)
		apps.AssertNumberOfCalls(t, "Submit", 1)
	})

	t.Run("Should fail without a resume", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		profiles.On("GetByAccountID", ctx, "student-1").Return(&domain.StudentProfile{ID: 3, AccountID: "student-1"}, nil)

		_, err := uc.Submit(ctx, "student-1", 7, "")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "upload your resume")
		apps.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail without a profile", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		profiles.On("GetByAccountID", ctx, "student-1").Return(nil, domain.ErrNotFound)

		_, err := uc.Submit(ctx, "student-1", 7, "")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "create your profile")
	})

	t.Run("Past deadline fails even when the job is still marked active", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		profiles.On("GetByAccountID", ctx, "student-1").Return(studentWithResume(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(-time.Hour)), nil)

		_, err := uc.Submit(ctx, "student-1", 7, "")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "deadline has passed")
		apps.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Closed job is rejected", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		job := openJob(time.Now().Add(time.Hour))
		job.Status = domain.JobStatusClosed
		profiles.On("GetByAccountID", ctx, "student-1").Return(studentWithResume(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(job, nil)

		_, err := uc.Submit(ctx, "student-1", 7, "")
		assert.Contains(t, err.Error(), "no longer active")
	})

	t.Run("Duplicate submission surfaces the conflict", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		profiles.On("GetByAccountID", ctx, "student-1").Return(studentWithResume(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)
		apps.On("Submit", ctx, mock.Anything, mock.Anything).
			Return(apperror.Conflict("You have already applied for this job"))

		_, err := uc.Submit(ctx, "student-1", 7, "")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Contains(t, err.Error(), "already applied")
		jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Cover letter length is capped", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(nil, nil, nil)
		_, err := uc.Submit(ctx, "student-1", 7, strings.Repeat("a", 1001))
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Cover letter cap counts characters, not bytes", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		profiles.On("GetByAccountID", ctx, "student-1").Return(studentWithResume(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)
		apps.On("Submit", ctx, mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Submit(ctx, "student-1", 7, strings.Repeat("é", 600))
		require.NoError(t, err)

		_, err = uc.Submit(ctx, "student-1", 7, strings.Repeat("é", 1001))
		assert.Equal(t, "Cover letter cannot exceed 1000 characters", err.Error())
	})

	t.Run("Job deleted before insert is not found", func(t *testing.T) {
		apps, jobs, profiles := new(MockApplicationRepo), new(MockJobRepo), new(MockStudentProfileRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, profiles)
		profiles.On("GetByAccountID", ctx, "student-1").Return(studentWithResume(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)
		apps.On("Submit", ctx, mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		_, err := uc.Submit(ctx, "student-1", 7, "")
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Equal(t, "Job not found", err.Error())
	})
}

func pendingApplication() *domain.Application {
	return &domain.Application{
		ID:         11,
		JobID:      7,
		StudentID:  "student-1",
		EmployerID: "employer-1",
		Status:     domain.ApplicationStatusPending,
	}
}

func TestDecideApplication(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockApplicationRepo, *MockJobRepo, domain.ApplicationUsecase) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)
		return apps, jobs, usecase.NewApplicationUsecase(apps, jobs, nil)
	}

	t.Run("Owner approves with notes", func(t *testing.T) {
		apps, jobs, uc := setup()
		apps.On("GetByID", ctx, int64(11)).Return(pendingApplication(), nil)
		apps.On("Decide", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		notes := "Good fit"
		app, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusApproved, &notes)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
		assert.Equal(t, "Good fit", app.EmployerNotes)
		assert.NotNil(t, app.StatusUpdatedAt)
		jobs.AssertCalled(t, "GetByID", ctx, int64(7))
	})

	t.Run("Another employer cannot decide", func(t *testing.T) {
		apps, _, uc := setup()
		apps.On("GetByID", ctx, int64(11)).Return(pendingApplication(), nil)

		_, err := uc.Decide(ctx, "employer-2", 11, domain.ApplicationStatusRejected, nil)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		apps.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything)
	})

	t.Run("Ownership follows the job poster, not the stored employer", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, nil)
		job := openJob(time.Now().Add(time.Hour))
		job.PostedBy = "employer-2"
		jobs.On("GetByID", ctx, int64(7)).Return(job, nil)
		apps.On("GetByID", ctx, int64(11)).Return(pendingApplication(), nil)
		apps.On("Decide", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		_, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusApproved, nil)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		apps.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything)

		app, err := uc.Decide(ctx, "employer-2", 11, domain.ApplicationStatusApproved, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
	})

	t.Run("Missing job is reported", func(t *testing.T) {
		apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(apps, jobs, nil)
		apps.On("GetByID", ctx, int64(11)).Return(pendingApplication(), nil)
		jobs.On("GetByID", ctx, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusApproved, nil)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Decided application cannot be decided again", func(t *testing.T) {
		apps, _, uc := setup()
		decided := pendingApplication()
		decided.Status = domain.ApplicationStatusApproved
		apps.On("GetByID", ctx, int64(11)).Return(decided, nil)

		_, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusRejected, nil)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, "Application has already been approved", err.Error())
	})

	t.Run("Concurrent decision loses cleanly", func(t *testing.T) {
		apps, _, uc := setup()
		rejected := pendingApplication()
		rejected.Status = domain.ApplicationStatusRejected
		apps.On("GetByID", ctx, int64(11)).Return(pendingApplication(), nil).Once()
		apps.On("GetByID", ctx, int64(11)).Return(rejected, nil).Once()
		apps.On("Decide", ctx, mock.Anything).Return(domain.ErrStaleState)

		_, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusApproved, nil)
		assert.Equal(t, "Application has already been rejected", err.Error())
	})

	t.Run("Notes are capped by characters", func(t *testing.T) {
		apps, _, uc := setup()
		apps.On("GetByID", ctx, int64(11)).Return(pendingApplication(), nil)
		apps.On("Decide", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		accented := strings.Repeat("é", 500)
		_, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusApproved, &accented)
		require.NoError(t, err)

		tooLong := strings.Repeat("é", 501)
		_, err = uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusApproved, &tooLong)
		assert.Equal(t, "Employer notes cannot exceed 500 characters", err.Error())
	})

	t.Run("Pending is not a decision", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), nil, nil)
		_, err := uc.Decide(ctx, "employer-1", 11, domain.ApplicationStatusPending, nil)
		assert.Equal(t, "Invalid status", err.Error())
	})
}

func TestListApplicants(t *testing.T) {
	ctx := context.Background()
	apps, jobs := new(MockApplicationRepo), new(MockJobRepo)
	uc := usecase.NewApplicationUsecase(apps, jobs, nil)
	jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now()), nil)
	apps.On("ListByJob", ctx, int64(7)).Return([]domain.Application{*pendingApplication()}, nil)

	_, err := uc.ListApplicants(ctx, "employer-2", 7)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	list, err := uc.ListApplicants(ctx, "employer-1", 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func validJob(deadline time.Time) *domain.Job {
	return &domain.Job{
		Title:               "Tutor",
		Description:         "Evening maths tutoring",
		Category:            "Education",
		Location:            domain.Location{City: "Pune"},
		Salary:              domain.Salary{Min: 100, Max: 200},
		ApplicationDeadline: deadline,
	}
}

func TestJobUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Post fills defaults from the employer profile", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobs, employers)
		employers.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme"}, nil)
		jobs.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job := validJob(time.Now().Add(24 * time.Hour))
		require.NoError(t, uc.PostJob(ctx, "employer-1", job))
		assert.Equal(t, "Acme", job.CompanyName)
		assert.Equal(t, "employer-1", job.PostedBy)
		assert.Equal(t, domain.JobStatusActive, job.Status)
		assert.Equal(t, 1, job.Vacancies)
		assert.Equal(t, domain.DefaultCountry, job.Location.Country)
	})

	t.Run("Post with a past deadline persists as expired", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobs, employers)
		employers.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme"}, nil)
		jobs.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job := validJob(time.Now().Add(-time.Hour))
		require.NoError(t, uc.PostJob(ctx, "employer-1", job))
		assert.Equal(t, domain.JobStatusExpired, job.Status)
	})

	t.Run("Post without a profile fails", func(t *testing.T) {
		employers := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(new(MockJobRepo), employers)
		employers.On("GetByAccountID", ctx, "employer-1").Return(nil, domain.ErrNotFound)

		err := uc.PostJob(ctx, "employer-1", validJob(time.Now().Add(time.Hour)))
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Salary range must be ordered", func(t *testing.T) {
		jobs, employers := new(MockJobRepo), new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobs, employers)
		employers.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1}, nil)

		job := validJob(time.Now().Add(time.Hour))
		job.Salary = domain.Salary{Min: 500, Max: 100}
		err := uc.PostJob(ctx, "employer-1", job)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Only the poster may update or delete", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobs, nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)

		_, err := uc.UpdateJob(ctx, "employer-2", 7, validJob(time.Now().Add(time.Hour)))
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		err = uc.DeleteJob(ctx, "employer-2", 7)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
		jobs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Update cannot set expired directly", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobs, nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)

		changes := validJob(time.Now().Add(time.Hour))
		changes.Status = domain.JobStatusExpired
		_, err := uc.UpdateJob(ctx, "employer-1", 7, changes)
		assert.Equal(t, "Status must be active or closed", err.Error())
	})

	t.Run("Closing a job sticks", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobs, nil)
		jobs.On("GetByID", ctx, int64(7)).Return(openJob(time.Now().Add(time.Hour)), nil)
		jobs.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		changes := validJob(time.Now().Add(time.Hour))
		changes.Status = domain.JobStatusClosed
		job, err := uc.UpdateJob(ctx, "employer-1", 7, changes)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusClosed, job.Status)
	})

	t.Run("Public listing forces active status", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobs, nil)
		jobs.On("List", ctx, mock.MatchedBy(func(f domain.JobFilter) bool {
			return f.Status == domain.JobStatusActive && f.PostedBy == "" && f.OpenAt == nil
		})).Return([]domain.Job{*openJob(time.Now())}, nil)

		list, err := uc.ListPublicJobs(ctx, domain.JobFilter{Status: domain.JobStatusClosed, PostedBy: "x"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Nil(t, list[0].ApplicationsCount)
	})

	t.Run("Open listing filters by deadline", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobs, nil)
		jobs.On("List", ctx, mock.MatchedBy(func(f domain.JobFilter) bool {
			return f.Status == domain.JobStatusActive && f.OpenAt != nil && f.SearchCompany
		})).Return([]domain.Job{}, nil)

		_, err := uc.ListOpenJobs(ctx, domain.JobFilter{Search: "tutor"})
		require.NoError(t, err)
		jobs.AssertExpectations(t)
	})
}

func TestJobTemplateActivate(t *testing.T) {
	ctx := context.Background()
	tmpl := &domain.JobTemplate{
		ID:              5,
		Title:           "Delivery Rider",
		Description:     "Deliver orders",
		Category:        "Delivery",
		JobType:         "Onsite",
		WorkingHours:    "Flexible",
		SuggestedSalary: domain.Salary{Min: 10, Max: 20, Currency: "INR", Period: "daily"},
		IsActive:        true,
	}

	t.Run("Creates an independent job with defaults", func(t *testing.T) {
		templates, jobs, employers := new(MockJobTemplateRepo), new(MockJobRepo), new(MockEmployerProfileRepo)
		uc := usecase.NewJobTemplateUsecase(templates, jobs, employers)
		employers.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1, CompanyName: "Acme"}, nil)
		copyTmpl := *tmpl
		templates.On("GetByID", ctx, int64(5)).Return(&copyTmpl, nil)
		jobs.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		templates.On("IncrementActivations", ctx, int64(5)).Return(nil)

		job, err := uc.Activate(ctx, "employer-1", 5, domain.ActivateTemplateInput{})
		require.NoError(t, err)
		assert.Equal(t, "Delivery Rider", job.Title)
		assert.Equal(t, "Acme", job.CompanyName)
		assert.Equal(t, "Not specified", job.Location.City)
		assert.Equal(t, 1, job.Vacancies)
		assert.Equal(t, domain.DefaultPeriod, job.Salary.Period)
		assert.WithinDuration(t, time.Now().Add(domain.DefaultTemplateDeadline), job.ApplicationDeadline, time.Minute)
		templates.AssertCalled(t, "IncrementActivations", ctx, int64(5))
	})

	t.Run("Inactive template is rejected", func(t *testing.T) {
		templates, employers := new(MockJobTemplateRepo), new(MockEmployerProfileRepo)
		uc := usecase.NewJobTemplateUsecase(templates, new(MockJobRepo), employers)
		inactive := *tmpl
		inactive.IsActive = false
		employers.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1}, nil)
		templates.On("GetByID", ctx, int64(5)).Return(&inactive, nil)

		_, err := uc.Activate(ctx, "employer-1", 5, domain.ActivateTemplateInput{})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Counter failure does not fail activation", func(t *testing.T) {
		templates, jobs, employers := new(MockJobTemplateRepo), new(MockJobRepo), new(MockEmployerProfileRepo)
		uc := usecase.NewJobTemplateUsecase(templates, jobs, employers)
		copyTmpl := *tmpl
		employers.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1}, nil)
		templates.On("GetByID", ctx, int64(5)).Return(&copyTmpl, nil)
		jobs.On("Create", ctx, mock.Anything).Return(nil)
		templates.On("IncrementActivations", ctx, int64(5)).Return(errors.New("db gone"))

		_, err := uc.Activate(ctx, "employer-1", 5, domain.ActivateTemplateInput{})
		assert.NoError(t, err)
	})
}

func TestAdminModeration(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "admin-1")

	newAdmin := func() (domain.AdminUsecase, *MockAccountRepo, *MockStudentProfileRepo, *MockEmployerProfileRepo, *MockStorage) {
		accounts, students, employers, store := new(MockAccountRepo), new(MockStudentProfileRepo), new(MockEmployerProfileRepo), new(MockStorage)
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), accounts, students, employers, new(MockJobRepo), new(MockApplicationRepo), store)
		return uc, accounts, students, employers, store
	}

	t.Run("Admin accounts cannot be blocked or deleted", func(t *testing.T) {
		uc, accounts, _, _, _ := newAdmin()
		accounts.On("GetByID", ctx, "admin-2").Return(&domain.Account{ID: "admin-2", Role: domain.RoleAdmin}, nil)

		_, err := uc.SetBlocked(ctx, "admin-2", true)
		assert.Equal(t, "Cannot block admin user", err.Error())
		err = uc.DeleteUser(ctx, "admin-2")
		assert.Equal(t, "Cannot delete admin user", err.Error())
		accounts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Only employers can be approved", func(t *testing.T) {
		uc, accounts, _, _, _ := newAdmin()
		accounts.On("GetByID", ctx, "student-1").Return(&domain.Account{ID: "student-1", Role: domain.RoleStudent}, nil)

		_, err := uc.ApproveEmployer(ctx, "student-1")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Approve sets the flag", func(t *testing.T) {
		uc, accounts, _, _, _ := newAdmin()
		accounts.On("GetByID", ctx, "employer-1").Return(&domain.Account{ID: "employer-1", Role: domain.RoleEmployer}, nil)
		accounts.On("SetApproved", ctx, "employer-1", true).Return(nil)

		account, err := uc.ApproveEmployer(ctx, "employer-1")
		require.NoError(t, err)
		assert.True(t, account.IsApproved)
	})

	t.Run("Delete student removes account then uploads", func(t *testing.T) {
		uc, accounts, students, _, store := newAdmin()
		accounts.On("GetByID", ctx, "student-1").Return(&domain.Account{ID: "student-1", Role: domain.RoleStudent}, nil)
		students.On("GetByAccountID", ctx, "student-1").Return(&domain.StudentProfile{
			ID:             3,
			Resume:         &domain.FileRef{Key: "resumes/r.pdf"},
			ProfilePicture: &domain.FileRef{Key: "profile-pictures/p.jpg"},
		}, nil)
		accounts.On("Delete", ctx, "student-1").Return(nil)
		store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

		require.NoError(t, uc.DeleteUser(ctx, "student-1"))
		accounts.AssertCalled(t, "Delete", ctx, "student-1")
		store.AssertCalled(t, "Delete", ctx, "resumes/r.pdf")
		store.AssertCalled(t, "Delete", ctx, "profile-pictures/p.jpg")
	})

	t.Run("Unknown user is not found", func(t *testing.T) {
		uc, accounts, _, _, _ := newAdmin()
		accounts.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		err := uc.DeleteUser(ctx, "ghost")
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestExportApplications(t *testing.T) {
	ctx := context.Background()
	apps := new(MockApplicationRepo)
	uc := usecase.NewAdminUsecase(nil, nil, nil, nil, nil, apps, nil)
	email := "s@example.com"
	apps.On("List", ctx, domain.ApplicationFilter{}).Return([]domain.Application{{
		ID:           1,
		Status:       domain.ApplicationStatusPending,
		AppliedAt:    time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		StudentEmail: &email,
		Job:          &domain.JobSummary{Title: "Tutor", CompanyName: "Acme"},
	}}, nil)

	t.Run("CSV", func(t *testing.T) {
		file, err := uc.ExportApplications(ctx, domain.ApplicationFilter{}, "csv")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
		lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "APPLICATION ID,STATUS"))
		assert.Contains(t, lines[1], "s@example.com")
		assert.Contains(t, lines[1], "Tutor")
	})

	t.Run("Excel", func(t *testing.T) {
		file, err := uc.ExportApplications(ctx, domain.ApplicationFilter{}, "")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
		// xlsx is a zip archive
		assert.True(t, bytes.HasPrefix(file.Data, []byte("PK")))
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := uc.ExportApplications(ctx, domain.ApplicationFilter{}, "pdf")
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestUploadLogoReplacesOldFile(t *testing.T) {
	ctx := context.Background()
	profiles, store := new(MockEmployerProfileRepo), new(MockStorage)
	uc := usecase.NewEmployerUsecase(profiles, nil, store)

	old := &domain.FileRef{Key: "company-logos/logo-old.jpg"}
	profiles.On("GetByAccountID", ctx, "employer-1").Return(&domain.EmployerProfile{ID: 1, CompanyLogo: old}, nil)

	var order []string
	store.On("Save", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "company-logos/logo-") && strings.HasSuffix(key, ".jpg")
	}), mock.Anything, "image/jpeg").Return("/uploads/new.jpg", nil).Run(func(mock.Arguments) { order = append(order, "save") })
	profiles.On("UpdateLogo", ctx, int64(1), mock.AnythingOfType("*domain.FileRef")).
		Return(nil).Run(func(mock.Arguments) { order = append(order, "persist") })
	store.On("Delete", ctx, "company-logos/logo-old.jpg").
		Return(nil).Run(func(mock.Arguments) { order = append(order, "delete-old") })

	ref, err := uc.UploadLogo(ctx, "employer-1", domain.UploadedFile{Filename: "logo.png", Data: pngBytes(t, 64, 32)})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new.jpg", ref.URL)
	assert.Equal(t, []string{"save", "persist", "delete-old"}, order)
}

func TestUploadRejectsWrongType(t *testing.T) {
	ctx := context.Background()
	profiles, store := new(MockStudentProfileRepo), new(MockStorage)
	uc := usecase.NewStudentUsecase(profiles, nil, store)
	profiles.On("GetByAccountID", ctx, "student-1").Return(&domain.StudentProfile{ID: 3}, nil)

	_, err := uc.UploadResume(ctx, "student-1", domain.UploadedFile{Filename: "cv.png", Data: pngBytes(t, 8, 8)})
	assert.Equal(t, "Only PDF files are allowed", err.Error())
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveJob(t *testing.T) {
	ctx := context.Background()
	profiles, jobs := new(MockStudentProfileRepo), new(MockJobRepo)
	uc := usecase.NewStudentUsecase(profiles, jobs, nil)
	profiles.On("GetByAccountID", ctx, "student-1").Return(&domain.StudentProfile{ID: 3}, nil)
	jobs.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

	err := uc.SaveJob(ctx, "student-1", 99)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "Job not found", err.Error())
}

func TestHealthCheck(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("refused") },
	})

	result, healthy := uc.Check(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "ok", result["database"])
	assert.Equal(t, "unavailable", result["redis"])
}
