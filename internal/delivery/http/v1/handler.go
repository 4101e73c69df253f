package v1

import (
	"io"
	"strconv"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body, reporting a 400 with readable messages on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return false
	}
	return true
}

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// readUpload buffers one multipart file. Reading stops one byte past maxBytes so
// oversized files are still detected without being loaded whole.
func readUpload(c *gin.Context, field string, maxBytes int64) (domain.UploadedFile, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		c.Error(apperror.BadRequest("Please upload a file"))
		return domain.UploadedFile{}, false
	}
	f, err := header.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return domain.UploadedFile{}, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return domain.UploadedFile{}, false
	}
	return domain.UploadedFile{Filename: header.Filename, Data: data}, true
}

// query returns the first non-empty value among the given parameter names.
func query(c *gin.Context, names ...string) string {
	for _, n := range names {
		if v := c.Query(n); v != "" {
			return v
		}
	}
	return ""
}

func queryFloat(c *gin.Context, names ...string) *float64 {
	v := query(c, names...)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBool(c *gin.Context, names ...string) *bool {
	v := query(c, names...)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func jobFilterFromQuery(c *gin.Context) domain.JobFilter {
	return domain.JobFilter{
		Search:       query(c, "search"),
		Category:     query(c, "category"),
		City:         query(c, "location", "city"),
		JobType:      query(c, "job_type", "jobType"),
		WorkingHours: query(c, "working_hours", "workingHours"),
		MinSalary:    queryFloat(c, "min_salary", "minSalary"),
		MaxSalary:    queryFloat(c, "max_salary", "maxSalary"),
	}
}

func templateFilterFromQuery(c *gin.Context) domain.TemplateFilter {
	return domain.TemplateFilter{
		Search:       query(c, "search"),
		Category:     query(c, "category"),
		JobType:      query(c, "job_type", "jobType"),
		WorkingHours: query(c, "working_hours", "workingHours"),
	}
}

func listPayload(key string, items interface{}, count int) gin.H {
	return gin.H{"count": count, key: items}
}
