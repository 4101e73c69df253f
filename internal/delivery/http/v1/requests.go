package v1

import (
	"encoding/json"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom tags used by the request types below.
func RegisterValidators(v *validator.Validate) {
	validation.RegisterValidators(v)
	validation.RegisterEnum(v, "job_category", domain.JobCategories)
	validation.RegisterEnum(v, "job_type", domain.JobTypes)
	validation.RegisterEnum(v, "working_hours", domain.WorkingHours)
	validation.RegisterEnum(v, "salary_period", domain.SalaryPeriods)
	validation.RegisterEnum(v, "template_period", domain.TemplatePeriods)
	validation.RegisterEnum(v, "company_size", domain.CompanySizes)
}

// Auth

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Profiles

type AddressRequest struct {
	Street  string `json:"street" binding:"max=200"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zip_code" binding:"max=20"`
	Country string `json:"country" binding:"max=100"`
}

func (r AddressRequest) toDomain() domain.Address {
	return domain.Address{Street: r.Street, City: r.City, State: r.State, ZipCode: r.ZipCode, Country: r.Country}
}

type EducationRequest struct {
	Institution    string `json:"institution" binding:"max=200"`
	Degree         string `json:"degree" binding:"max=100"`
	FieldOfStudy   string `json:"field_of_study" binding:"max=100"`
	GraduationYear int    `json:"graduation_year" binding:"omitempty,min=1950,max=2100"`
	CurrentYear    int    `json:"current_year" binding:"omitempty,min=1,max=10"`
}

type StudentProfileRequest struct {
	FullName    string           `json:"full_name" binding:"required,max=100,valid_name"`
	Phone       string           `json:"phone" binding:"required,phone10"`
	DateOfBirth *time.Time       `json:"date_of_birth"`
	Address     AddressRequest   `json:"address"`
	Education   EducationRequest `json:"education"`
	Skills      []string         `json:"skills" binding:"max=50,dive,max=50"`
	Bio         string           `json:"bio" binding:"max=500,no_emoji"`
}

func (r StudentProfileRequest) toDomain() *domain.StudentProfile {
	return &domain.StudentProfile{
		FullName:    r.FullName,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address.toDomain(),
		Education: domain.Education{
			Institution:    r.Education.Institution,
			Degree:         r.Education.Degree,
			FieldOfStudy:   r.Education.FieldOfStudy,
			GraduationYear: r.Education.GraduationYear,
			CurrentYear:    r.Education.CurrentYear,
		},
		Skills: nonNil(r.Skills),
		Bio:    r.Bio,
	}
}

type EmployerProfileRequest struct {
	CompanyName        string         `json:"company_name" binding:"required,max=200,valid_name"`
	ContactPerson      string         `json:"contact_person" binding:"required,max=100,valid_name"`
	Phone              string         `json:"phone" binding:"required,phone10"`
	CompanyDescription string         `json:"company_description" binding:"required,max=1000"`
	Website            string         `json:"website" binding:"omitempty,url"`
	Address            AddressRequest `json:"address"`
	Industry           string         `json:"industry" binding:"required,max=100"`
	CompanySize        string         `json:"company_size" binding:"company_size"`
	EstablishedYear    *int           `json:"established_year" binding:"omitempty,min=1900,max_current_year"`
}

func (r EmployerProfileRequest) toDomain() *domain.EmployerProfile {
	return &domain.EmployerProfile{
		CompanyName:        r.CompanyName,
		ContactPerson:      r.ContactPerson,
		Phone:              r.Phone,
		CompanyDescription: r.CompanyDescription,
		Website:            r.Website,
		Address:            r.Address.toDomain(),
		Industry:           r.Industry,
		CompanySize:        r.CompanySize,
		EstablishedYear:    r.EstablishedYear,
	}
}

// Jobs

type LocationRequest struct {
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"max=100"`
	Country string `json:"country" binding:"max=100"`
}

func (r LocationRequest) toDomain() domain.Location {
	return domain.Location{City: r.City, State: r.State, Country: r.Country}
}

type SalaryRequest struct {
	Min      float64 `json:"min" binding:"min=0"`
	Max      float64 `json:"max" binding:"min=0"`
	Currency string  `json:"currency" binding:"max=10"`
	Period   string  `json:"period" binding:"salary_period"`
}

func (r SalaryRequest) toDomain() domain.Salary {
	return domain.Salary{Min: r.Min, Max: r.Max, Currency: r.Currency, Period: r.Period}
}

type JobRequest struct {
	Title               string          `json:"title" binding:"required,max=100"`
	Description         string          `json:"description" binding:"required,max=2000"`
	Category            string          `json:"category" binding:"required,job_category"`
	JobType             string          `json:"job_type" binding:"job_type"`
	WorkingHours        string          `json:"working_hours" binding:"working_hours"`
	Location            LocationRequest `json:"location"`
	Salary              SalaryRequest   `json:"salary"`
	Requirements        []string        `json:"requirements" binding:"max=30"`
	Responsibilities    []string        `json:"responsibilities" binding:"max=30"`
	Skills              []string        `json:"skills" binding:"max=30"`
	Vacancies           int             `json:"vacancies" binding:"omitempty,min=1"`
	ApplicationDeadline time.Time       `json:"application_deadline" binding:"required"`
	Status              string          `json:"status" binding:"omitempty,oneof=active closed"`
}

func (r JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:               r.Title,
		Description:         r.Description,
		Category:            r.Category,
		JobType:             r.JobType,
		WorkingHours:        r.WorkingHours,
		Location:            r.Location.toDomain(),
		Salary:              r.Salary.toDomain(),
		Requirements:        nonNil(r.Requirements),
		Responsibilities:    nonNil(r.Responsibilities),
		Skills:              nonNil(r.Skills),
		Vacancies:           r.Vacancies,
		ApplicationDeadline: r.ApplicationDeadline,
		Status:              domain.JobStatus(r.Status),
	}
}

// Templates

type TemplateSalaryRequest struct {
	Min      float64 `json:"min" binding:"min=0"`
	Max      float64 `json:"max" binding:"min=0"`
	Currency string  `json:"currency" binding:"max=10"`
	Period   string  `json:"period" binding:"template_period"`
}

type JobTemplateRequest struct {
	Title            string                `json:"title" binding:"required,max=100"`
	Description      string                `json:"description" binding:"required,max=2000"`
	Category         string                `json:"category" binding:"required,job_category"`
	JobType          string                `json:"job_type" binding:"job_type"`
	WorkingHours     string                `json:"working_hours" binding:"working_hours"`
	SuggestedSalary  TemplateSalaryRequest `json:"suggested_salary"`
	Requirements     []string              `json:"requirements"`
	Responsibilities []string              `json:"responsibilities"`
	Skills           []string              `json:"skills"`
}

func (r JobTemplateRequest) toDomain() *domain.JobTemplate {
	return &domain.JobTemplate{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		JobType:      r.JobType,
		WorkingHours: r.WorkingHours,
		SuggestedSalary: domain.Salary{
			Min:      r.SuggestedSalary.Min,
			Max:      r.SuggestedSalary.Max,
			Currency: r.SuggestedSalary.Currency,
			Period:   r.SuggestedSalary.Period,
		},
		Requirements:     nonNil(r.Requirements),
		Responsibilities: nonNil(r.Responsibilities),
		Skills:           nonNil(r.Skills),
	}
}

type TemplateActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type ActivateTemplateRequest struct {
	Location            *LocationRequest `json:"location"`
	Salary              *SalaryRequest   `json:"salary"`
	Vacancies           *int             `json:"vacancies" binding:"omitempty,min=1"`
	ApplicationDeadline *time.Time       `json:"application_deadline"`
}

func (r ActivateTemplateRequest) toDomain() domain.ActivateTemplateInput {
	input := domain.ActivateTemplateInput{
		Vacancies:           r.Vacancies,
		ApplicationDeadline: r.ApplicationDeadline,
	}
	if r.Location != nil {
		loc := r.Location.toDomain()
		input.Location = &loc
	}
	if r.Salary != nil {
		salary := r.Salary.toDomain()
		input.Salary = &salary
	}
	return input
}

// Applications
//
// The ledger and moderation bodies also accept the camelCase keys older clients send.

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"max=1000"`
}

func (r *ApplyRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Snake *string `json:"cover_letter"`
		Camel *string `json:"coverLetter"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v := firstNonNil(raw.Snake, raw.Camel); v != nil {
		r.CoverLetter = *v
	}
	return nil
}

type DecisionRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"employer_notes" binding:"omitempty,max=500"`
}

func (r *DecisionRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status string  `json:"status"`
		Snake  *string `json:"employer_notes"`
		Camel  *string `json:"employerNotes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Status = raw.Status
	r.Notes = firstNonNil(raw.Snake, raw.Camel)
	return nil
}

type BlockUserRequest struct {
	IsBlocked *bool `json:"is_blocked" binding:"required"`
}

func (r *BlockUserRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Snake *bool `json:"is_blocked"`
		Camel *bool `json:"isBlocked"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.IsBlocked = firstNonNil(raw.Snake, raw.Camel)
	return nil
}

func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
