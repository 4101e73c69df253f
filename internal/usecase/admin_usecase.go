package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/security"

	"github.com/xuri/excelize/v2"
)

type adminUsecase struct {
	adminRepo    domain.AdminRepository
	accountRepo  domain.AccountRepository
	studentRepo  domain.StudentProfileRepository
	employerRepo domain.EmployerProfileRepository
	jobRepo      domain.JobRepository
	appRepo      domain.ApplicationRepository
	store        domain.FileStorage
}

func NewAdminUsecase(
	adminRepo domain.AdminRepository,
	accountRepo domain.AccountRepository,
	studentRepo domain.StudentProfileRepository,
	employerRepo domain.EmployerProfileRepository,
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	store domain.FileStorage,
) domain.AdminUsecase {
	return &adminUsecase{
		adminRepo:    adminRepo,
		accountRepo:  accountRepo,
		studentRepo:  studentRepo,
		employerRepo: employerRepo,
		jobRepo:      jobRepo,
		appRepo:      appRepo,
		store:        store,
	}
}

func actorID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyUserID).(string)
	return id
}

func (u *adminUsecase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := u.adminRepo.DashboardStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	accounts, err := u.accountRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return accounts, nil
}

func (u *adminUsecase) GetUser(ctx context.Context, id string) (*domain.AccountProfile, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	return loadAccountProfile(ctx, account, u.studentRepo, u.employerRepo)
}

func (u *adminUsecase) ApproveEmployer(ctx context.Context, id string) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	if account.Role != domain.RoleEmployer {
		return nil, apperror.BadRequest("User is not an employer")
	}

	if err := u.accountRepo.SetApproved(ctx, id, true); err != nil {
		return nil, lookupErr(err, "User not found")
	}
	account.IsApproved = true
	account.UpdatedAt = time.Now()

	security.DefaultLogger().LogModeration(ctx, security.EventAccountApproved, actorID(ctx), "user_id", id)
	return account, nil
}

func (u *adminUsecase) SetBlocked(ctx context.Context, id string, blocked bool) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	if account.Role == domain.RoleAdmin {
		return nil, apperror.BadRequest("Cannot block admin user")
	}

	if err := u.accountRepo.SetBlocked(ctx, id, blocked); err != nil {
		return nil, lookupErr(err, "User not found")
	}
	account.IsBlocked = blocked
	account.UpdatedAt = time.Now()

	event := security.EventAccountUnblocked
	if blocked {
		event = security.EventAccountBlocked
	}
	security.DefaultLogger().LogModeration(ctx, event, actorID(ctx), "user_id", id)
	return account, nil
}

// DeleteUser removes the account with its profile, postings and ledger rows,
// then drops the account's uploaded files.
func (u *adminUsecase) DeleteUser(ctx context.Context, id string) error {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err, "User not found")
	}
	if account.Role == domain.RoleAdmin {
		return apperror.BadRequest("Cannot delete admin user")
	}

	profile, err := loadAccountProfile(ctx, account, u.studentRepo, u.employerRepo)
	if err != nil {
		return err
	}

	if err := u.accountRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "User not found")
	}
	security.DefaultLogger().LogModeration(ctx, security.EventAccountDeleted, actorID(ctx), "user_id", id)

	for _, ref := range ownedFiles(profile) {
		if err := u.store.Delete(ctx, ref.Key); err != nil {
			logger.Log.Warn("Failed to delete upload of removed account", "key", ref.Key, "error", err)
		}
	}
	return nil
}

func ownedFiles(p *domain.AccountProfile) []*domain.FileRef {
	var refs []*domain.FileRef
	if sp := p.StudentProfile; sp != nil {
		if sp.Resume != nil {
			refs = append(refs, sp.Resume)
		}
		if sp.ProfilePicture != nil {
			refs = append(refs, sp.ProfilePicture)
		}
	}
	if ep := p.EmployerProfile; ep != nil && ep.CompanyLogo != nil {
		refs = append(refs, ep.CompanyLogo)
	}
	return refs
}

func (u *adminUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := u.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *adminUsecase) DeleteJob(ctx context.Context, id int64) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "Job not found")
	}
	security.DefaultLogger().LogModeration(ctx, security.EventJobRemoved, actorID(ctx), "job_id", fmt.Sprint(id))
	return nil
}

func (u *adminUsecase) ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	apps, err := u.appRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

var exportColumns = []string{
	"APPLICATION ID", "STATUS", "APPLIED AT", "STATUS UPDATED AT", "STUDENT EMAIL",
	"JOB TITLE", "COMPANY", "CATEGORY", "CITY", "COVER LETTER", "EMPLOYER NOTES",
}

func exportRow(app domain.Application) []interface{} {
	var title, company, category, city, email, decided string
	if app.Job != nil {
		title, company, category, city = app.Job.Title, app.Job.CompanyName, app.Job.Category, app.Job.Location.City
	}
	if app.StudentEmail != nil {
		email = *app.StudentEmail
	}
	if app.StatusUpdatedAt != nil {
		decided = app.StatusUpdatedAt.Format(time.RFC3339)
	}
	return []interface{}{
		app.ID, string(app.Status), app.AppliedAt.Format(time.RFC3339), decided, email,
		title, company, category, city, app.CoverLetter, app.EmployerNotes,
	}
}

func (u *adminUsecase) ExportApplications(ctx context.Context, filter domain.ApplicationFilter, format string) (*domain.ExportFile, error) {
	apps, err := u.appRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case "xlsx", "":
		data, err := exportExcel(apps)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("applications_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case "csv":
		data, err := exportCSV(apps)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("applications_%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	default:
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", format))
	}
}

// exportExcel generates an Excel workbook with one row per application
func exportExcel(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4F46E5"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, value := range exportRow(app) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(apps []domain.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, app := range apps {
		row := exportRow(app)
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
