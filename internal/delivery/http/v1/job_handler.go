package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// JobHandler serves the anonymous job catalog.
type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
	}
}

// List godoc
// @Summary      List active jobs (public)
// @Description  Active jobs, newest first. Application counts are hidden.
// @Tags         jobs
// @Produce      json
// @Param        search         query     string  false  "Matches title or description"
// @Param        category       query     string  false  "Category"
// @Param        location       query     string  false  "City substring"
// @Param        job_type       query     string  false  "Remote, Onsite or Hybrid"
// @Param        working_hours  query     string  false  "Working hours"
// @Success      200            {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := jobFilterFromQuery(c)
	filter.MinSalary, filter.MaxSalary = nil, nil

	jobs, err := h.jobUC.ListPublicJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", listPayload("jobs", jobs, len(jobs)))
}

// Get godoc
// @Summary      Job details (public)
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetPublicJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}
