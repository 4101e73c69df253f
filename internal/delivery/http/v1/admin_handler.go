package v1

import (
	"fmt"
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC    domain.AdminUsecase
	templateUC domain.JobTemplateUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, templateUC domain.JobTemplateUsecase) {
	handler := &AdminHandler{adminUC: adminUC, templateUC: templateUC}

	admin := protected.Group("/admin", middleware.Authorize(domain.OpModerate))
	{
		// Dashboard stats
		admin.GET("/dashboard-stats", handler.DashboardStats)

		// User moderation
		admin.GET("/users", handler.ListUsers)
		admin.GET("/users/:id", handler.GetUser)
		admin.PUT("/approve-employer/:id", handler.ApproveEmployer)
		admin.PUT("/block-user/:id", handler.BlockUser)
		admin.DELETE("/users/:id", handler.DeleteUser)

		// Job moderation
		admin.GET("/jobs", handler.ListJobs)
		admin.DELETE("/jobs/:id", handler.DeleteJob)

		// Application ledger
		admin.GET("/applications", handler.ListApplications)
		admin.GET("/applications/export", handler.ExportApplications)
	}

	templates := protected.Group("/admin/job-templates", middleware.Authorize(domain.OpManageTemplates))
	{
		templates.GET("", handler.ListTemplates)
		templates.POST("", handler.CreateTemplate)
		templates.PUT("/:id", handler.UpdateTemplate)
		templates.PATCH("/:id/active", handler.SetTemplateActive)
	}
}

// DashboardStats godoc
// @Summary      Get admin dashboard statistics
// @Description  Returns counts for users, jobs, and applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/dashboard-stats [get]
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminUC.DashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}

// ListUsers godoc
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role         query     string  false  "student, employer or admin"
// @Param        is_approved  query     bool    false  "Approval flag"
// @Param        is_blocked   query     bool    false  "Blocked flag"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter := domain.AccountFilter{
		IsApproved: queryBool(c, "is_approved", "isApproved"),
		IsBlocked:  queryBool(c, "is_blocked", "isBlocked"),
	}
	if raw := c.Query("role"); raw != "" {
		role := domain.Role(raw)
		if !role.Valid() {
			c.Error(apperror.BadRequest("Invalid role"))
			return
		}
		filter.Role = &role
	}

	users, err := h.adminUC.ListUsers(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users", listPayload("users", users, len(users)))
}

// GetUser godoc
// @Summary      Get an account with its profile
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.adminUC.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", user)
}

// ApproveEmployer godoc
// @Summary      Approve an employer account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/approve-employer/{id} [put]
func (h *AdminHandler) ApproveEmployer(c *gin.Context) {
	user, err := h.adminUC.ApproveEmployer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer approved successfully", user)
}

// BlockUser godoc
// @Summary      Block or unblock an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Account ID"
// @Param        body  body      BlockUserRequest  true  "Blocked flag"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /admin/block-user/{id} [put]
func (h *AdminHandler) BlockUser(c *gin.Context) {
	var req BlockUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.adminUC.SetBlocked(c.Request.Context(), c.Param("id"), *req.IsBlocked)
	if err != nil {
		c.Error(err)
		return
	}
	verb := "unblocked"
	if *req.IsBlocked {
		verb = "blocked"
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("User %s successfully", verb), user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Description  Removes the account, its profile and everything it owns.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

// ListJobs godoc
// @Summary      List all jobs
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "active, closed or expired"
// @Success      200     {object}  response.Response
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminUC.ListJobs(c.Request.Context(), domain.JobFilter{Status: domain.JobStatus(c.Query("status"))})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", listPayload("jobs", jobs, len(jobs)))
}

// DeleteJob godoc
// @Summary      Delete any job
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.adminUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// ListApplications godoc
// @Summary      List all applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Pending, Approved or Rejected"
// @Success      200     {object}  response.Response
// @Router       /admin/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.adminUC.ListApplications(c.Request.Context(), domain.ApplicationFilter{
		Status: domain.ApplicationStatus(c.Query("status")),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", listPayload("applications", apps, len(apps)))
}

// ExportApplications godoc
// @Summary      Export applications
// @Description  Downloads the filtered ledger as an Excel workbook (default) or CSV.
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        status  query     string  false  "Pending, Approved or Rejected"
// @Param        format  query     string  false  "xlsx or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /admin/applications/export [get]
func (h *AdminHandler) ExportApplications(c *gin.Context) {
	filter := domain.ApplicationFilter{Status: domain.ApplicationStatus(c.Query("status"))}
	file, err := h.adminUC.ExportApplications(c.Request.Context(), filter, c.DefaultQuery("format", "xlsx"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// ListTemplates godoc
// @Summary      List all job templates
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/job-templates [get]
func (h *AdminHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateUC.ListAll(c.Request.Context(), templateFilterFromQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job templates", listPayload("templates", templates, len(templates)))
}

// CreateTemplate godoc
// @Summary      Create a job template
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        template  body      JobTemplateRequest  true  "Template"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /admin/job-templates [post]
func (h *AdminHandler) CreateTemplate(c *gin.Context) {
	var req JobTemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	tmpl := req.toDomain()
	if err := h.templateUC.Create(c.Request.Context(), tmpl); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Template created successfully", tmpl)
}

// UpdateTemplate godoc
// @Summary      Update a job template
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int                 true  "Template ID"
// @Param        template  body      JobTemplateRequest  true  "Template"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /admin/job-templates/{id} [put]
func (h *AdminHandler) UpdateTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req JobTemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	tmpl, err := h.templateUC.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Template updated successfully", tmpl)
}

// SetTemplateActive godoc
// @Summary      Activate or deactivate a job template
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Template ID"
// @Param        body  body      TemplateActiveRequest  true  "Active flag"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/job-templates/{id}/active [patch]
func (h *AdminHandler) SetTemplateActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req TemplateActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.templateUC.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Template updated successfully", gin.H{"id": id, "is_active": *req.IsActive})
}
