package v1

import (
	"fmt"
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC    domain.EmployerUsecase
	jobUC         domain.JobUsecase
	templateUC    domain.JobTemplateUsecase
	applicationUC domain.ApplicationUsecase
}

func NewEmployerHandler(
	protected *gin.RouterGroup,
	employerUC domain.EmployerUsecase,
	jobUC domain.JobUsecase,
	templateUC domain.JobTemplateUsecase,
	applicationUC domain.ApplicationUsecase,
) {
	handler := &EmployerHandler{
		employerUC:    employerUC,
		jobUC:         jobUC,
		templateUC:    templateUC,
		applicationUC: applicationUC,
	}

	employer := protected.Group("/employer")
	{
		profile := middleware.Authorize(domain.OpManageEmployerProfile)
		employer.POST("/profile", profile, handler.CreateProfile)
		employer.PUT("/profile", profile, handler.UpdateProfile)
		employer.GET("/my-profile", profile, handler.GetMyProfile)
		employer.POST("/upload-logo", profile, handler.UploadLogo)

		jobs := middleware.Authorize(domain.OpManageOwnJobs)
		employer.POST("/jobs", jobs, handler.PostJob)
		employer.GET("/my-jobs", jobs, handler.MyJobs)
		employer.GET("/jobs/:id", jobs, handler.GetJob)
		employer.PUT("/jobs/:id", jobs, handler.UpdateJob)
		employer.DELETE("/jobs/:id", jobs, handler.DeleteJob)

		review := middleware.Authorize(domain.OpReviewApplicants)
		employer.GET("/jobs/:id/applicants", review, handler.Applicants)
		employer.PUT("/applications/:applicationId", review, handler.Decide)

		employer.GET("/dashboard-stats", middleware.Authorize(domain.OpViewEmployerStats), handler.DashboardStats)

		templates := middleware.Authorize(domain.OpActivateTemplate)
		employer.GET("/job-templates", templates, handler.Templates)
		employer.POST("/activate-job/:templateId", templates, handler.ActivateTemplate)
	}
}

// CreateProfile godoc
// @Summary      Create company profile
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        profile  body      EmployerProfileRequest  true  "Company profile"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /employer/profile [post]
// @Security     BearerAuth
func (h *EmployerHandler) CreateProfile(c *gin.Context) {
	var req EmployerProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile := req.toDomain()
	if err := h.employerUC.CreateProfile(c.Request.Context(), currentUserID(c), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created successfully", profile)
}

// UpdateProfile godoc
// @Summary      Replace company profile
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        profile  body      EmployerProfileRequest  true  "Company profile"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /employer/profile [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req EmployerProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.employerUC.UpdateProfile(c.Request.Context(), currentUserID(c), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// GetMyProfile godoc
// @Summary      Get own company profile
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employer/my-profile [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.employerUC.GetMyProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	if profile == nil {
		response.Success(c, http.StatusOK, "Profile not created yet", nil)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// UploadLogo godoc
// @Summary      Upload company logo
// @Tags         employer
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Logo"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /employer/upload-logo [post]
// @Security     BearerAuth
func (h *EmployerHandler) UploadLogo(c *gin.Context) {
	file, ok := readUpload(c, "logo", security.ImagePolicy.MaxBytes)
	if !ok {
		return
	}
	ref, err := h.employerUC.UploadLogo(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo uploaded successfully", ref)
}

// PostJob godoc
// @Summary      Post a job
// @Description  Requires a company profile. A deadline already in the past stores the job as expired.
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/jobs [post]
// @Security     BearerAuth
func (h *EmployerHandler) PostJob(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}
	job := req.toDomain()
	if err := h.jobUC.PostJob(c.Request.Context(), currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// MyJobs godoc
// @Summary      List own jobs
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employer/my-jobs [get]
// @Security     BearerAuth
func (h *EmployerHandler) MyJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListEmployerJobs(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", listPayload("jobs", jobs, len(jobs)))
}

// GetJob godoc
// @Summary      Get own job
// @Tags         employer
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/jobs/{id} [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetEmployerJob(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// UpdateJob godoc
// @Summary      Update own job
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs/{id} [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobUC.UpdateJob(c.Request.Context(), currentUserID(c), id, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// DeleteJob godoc
// @Summary      Delete own job
// @Description  Also removes its applications and saved references.
// @Tags         employer
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs/{id} [delete]
// @Security     BearerAuth
func (h *EmployerHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// Applicants godoc
// @Summary      List applicants of an own job
// @Tags         employer
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *EmployerHandler) Applicants(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}
	apps, err := h.applicationUC.ListApplicants(c.Request.Context(), currentUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicants", listPayload("applications", apps, len(apps)))
}

// Decide godoc
// @Summary      Approve or reject an application
// @Description  Only Pending applications can be decided, and only once.
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        applicationId  path      int              true  "Application ID"
// @Param        body           body      DecisionRequest  true  "Decision"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      403            {object}  response.Response
// @Router       /employer/applications/{applicationId} [put]
// @Security     BearerAuth
func (h *EmployerHandler) Decide(c *gin.Context) {
	appID, ok := pathID(c, "applicationId")
	if !ok {
		return
	}
	var req DecisionRequest
	if !bindJSON(c, &req) {
		return
	}
	status := domain.ApplicationStatus(req.Status)
	app, err := h.applicationUC.Decide(c.Request.Context(), currentUserID(c), appID, status, req.Notes)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("Application %s successfully", strings.ToLower(string(app.Status))), app)
}

// DashboardStats godoc
// @Summary      Employer dashboard counters
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /employer/dashboard-stats [get]
// @Security     BearerAuth
func (h *EmployerHandler) DashboardStats(c *gin.Context) {
	stats, err := h.employerUC.DashboardStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// Templates godoc
// @Summary      List active job templates
// @Tags         employer
// @Produce      json
// @Param        category       query     string  false  "Category"
// @Param        job_type       query     string  false  "Job type"
// @Param        working_hours  query     string  false  "Working hours"
// @Param        search         query     string  false  "Title or description"
// @Success      200            {object}  response.Response
// @Router       /employer/job-templates [get]
// @Security     BearerAuth
func (h *EmployerHandler) Templates(c *gin.Context) {
	templates, err := h.templateUC.ListActive(c.Request.Context(), templateFilterFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job templates", listPayload("templates", templates, len(templates)))
}

// ActivateTemplate godoc
// @Summary      Post a job from a template
// @Description  Template content is copied. Location, salary, vacancies and deadline may be overridden.
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        templateId  path      int                      true   "Template ID"
// @Param        body        body      ActivateTemplateRequest  false  "Overrides"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /employer/activate-job/{templateId} [post]
// @Security     BearerAuth
func (h *EmployerHandler) ActivateTemplate(c *gin.Context) {
	templateID, ok := pathID(c, "templateId")
	if !ok {
		return
	}
	var req ActivateTemplateRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	job, err := h.templateUC.Activate(c.Request.Context(), currentUserID(c), templateID, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job activated successfully", job)
}
