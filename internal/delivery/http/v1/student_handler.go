package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentUC     domain.StudentUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewStudentHandler(
	protected *gin.RouterGroup,
	studentUC domain.StudentUsecase,
	jobUC domain.JobUsecase,
	applicationUC domain.ApplicationUsecase,
) {
	handler := &StudentHandler{
		studentUC:     studentUC,
		jobUC:         jobUC,
		applicationUC: applicationUC,
	}

	student := protected.Group("/student")
	{
		profile := middleware.Authorize(domain.OpManageStudentProfile)
		student.POST("/profile", profile, handler.CreateProfile)
		student.PUT("/profile", profile, handler.UpdateProfile)
		student.GET("/my-profile", profile, handler.GetMyProfile)
		student.POST("/upload-resume", profile, handler.UploadResume)
		student.POST("/upload-photo", profile, handler.UploadPhoto)

		browse := middleware.Authorize(domain.OpBrowseOpenJobs)
		student.GET("/jobs", browse, handler.ListJobs)
		student.GET("/jobs/:id", browse, handler.GetJob)

		student.POST("/apply/:jobId", middleware.Authorize(domain.OpApplyToJob), handler.Apply)
		student.GET("/my-applications", middleware.Authorize(domain.OpViewOwnApplications), handler.MyApplications)

		saved := middleware.Authorize(domain.OpManageSavedJobs)
		student.POST("/save-job/:jobId", saved, handler.SaveJob)
		student.DELETE("/save-job/:jobId", saved, handler.RemoveSavedJob)
		student.GET("/saved-jobs", saved, handler.SavedJobs)
	}
}

// CreateProfile godoc
// @Summary      Create student profile
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        profile  body      StudentProfileRequest  true  "Profile"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /student/profile [post]
// @Security     BearerAuth
func (h *StudentHandler) CreateProfile(c *gin.Context) {
	var req StudentProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile := req.toDomain()
	if err := h.studentUC.CreateProfile(c.Request.Context(), currentUserID(c), profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile created successfully", profile)
}

// UpdateProfile godoc
// @Summary      Replace student profile
// @Description  All editable fields are replaced. Resume and photo are kept.
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        profile  body      StudentProfileRequest  true  "Profile"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /student/profile [put]
// @Security     BearerAuth
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	var req StudentProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.studentUC.UpdateProfile(c.Request.Context(), currentUserID(c), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}

// GetMyProfile godoc
// @Summary      Get own student profile
// @Description  Returns a null profile when none has been created yet.
// @Tags         student
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /student/my-profile [get]
// @Security     BearerAuth
func (h *StudentHandler) GetMyProfile(c *gin.Context) {
	profile, err := h.studentUC.GetMyProfile(c.Request.Context(), currentUserID(c))
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

// UploadResume godoc
// @Summary      Upload resume
// @Description  PDF up to 5MB. Replaces any previous resume.
// @Tags         student
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /student/upload-resume [post]
// @Security     BearerAuth
func (h *StudentHandler) UploadResume(c *gin.Context) {
	file, ok := readUpload(c, "resume", security.ResumePolicy.MaxBytes)
	if !ok {
		return
	}
	ref, err := h.studentUC.UploadResume(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume uploaded successfully", ref)
}

// UploadPhoto godoc
// @Summary      Upload profile picture
// @Description  JPEG or PNG up to 2MB, downscaled to fit 512px.
// @Tags         student
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Photo"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /student/upload-photo [post]
// @Security     BearerAuth
func (h *StudentHandler) UploadPhoto(c *gin.Context) {
	file, ok := readUpload(c, "photo", security.ImagePolicy.MaxBytes)
	if !ok {
		return
	}
	ref, err := h.studentUC.UploadProfilePicture(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile picture uploaded successfully", ref)
}

// ListJobs godoc
// @Summary      Browse open jobs
// @Description  Active jobs whose deadline has not passed. Search also matches the company name.
// @Tags         student
// @Produce      json
// @Param        search         query     string  false  "Title, description or company"
// @Param        category       query     string  false  "Category"
// @Param        location       query     string  false  "City substring"
// @Param        job_type       query     string  false  "Job type"
// @Param        working_hours  query     string  false  "Working hours"
// @Param        min_salary     query     number  false  "Minimum of salary max"
// @Param        max_salary     query     number  false  "Maximum of salary min"
// @Success      200            {object}  response.Response
// @Router       /student/jobs [get]
// @Security     BearerAuth
func (h *StudentHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListOpenJobs(c.Request.Context(), jobFilterFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", listPayload("jobs", jobs, len(jobs)))
}

// GetJob godoc
// @Summary      Job details
// @Tags         student
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /student/jobs/{id} [get]
// @Security     BearerAuth
func (h *StudentHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Requires a profile with a resume. One application per job.
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        jobId  path      int           true   "Job ID"
// @Param        body   body      ApplyRequest  false  "Cover letter"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /student/apply/{jobId} [post]
// @Security     BearerAuth
func (h *StudentHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	var req ApplyRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), currentUserID(c), jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// MyApplications godoc
// @Summary      List own applications
// @Tags         student
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /student/my-applications [get]
// @Security     BearerAuth
func (h *StudentHandler) MyApplications(c *gin.Context) {
	apps, err := h.applicationUC.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", listPayload("applications", apps, len(apps)))
}

// SaveJob godoc
// @Summary      Save a job
// @Tags         student
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /student/save-job/{jobId} [post]
// @Security     BearerAuth
func (h *StudentHandler) SaveJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	if err := h.studentUC.SaveJob(c.Request.Context(), currentUserID(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job saved successfully", nil)
}

// RemoveSavedJob godoc
// @Summary      Remove a saved job
// @Tags         student
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Router       /student/save-job/{jobId} [delete]
// @Security     BearerAuth
func (h *StudentHandler) RemoveSavedJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	if err := h.studentUC.RemoveSavedJob(c.Request.Context(), currentUserID(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved list", nil)
}

// SavedJobs godoc
// @Summary      List saved jobs
// @Tags         student
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /student/saved-jobs [get]
// @Security     BearerAuth
func (h *StudentHandler) SavedJobs(c *gin.Context) {
	jobs, err := h.studentUC.ListSavedJobs(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", listPayload("jobs", jobs, len(jobs)))
}
