package v1

import (
	"errors"
	"io"
	"net/http"

	"go-internship-gateway/internal/delivery/http/middleware"
	"go-internship-gateway/internal/delivery/http/response"
	"go-internship-gateway/internal/domain"
	"go-internship-gateway/internal/usecase"
	"go-internship-gateway/pkg/apperror"
	"go-internship-gateway/pkg/resumecheck"

	"github.com/gin-gonic/gin"
)

// maxResumeRequestBytes caps the upload request body. Headroom above the
// resume limit so an oversized file is rejected with its proper reason
// instead of a truncated request.
const maxResumeRequestBytes = 8 * 1024 * 1024

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application intake routes (public, no
// auth). submitLimiter is the stricter rate-limit bucket for submissions.
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, submitLimiter gin.HandlerFunc) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.POST("", submitLimiter, handler.SubmitApplication)
		applications.POST("/resume-check", handler.CheckResume)
		applications.GET("/options", handler.GetOptions)
	}
}

// SubmitApplication godoc
// @Summary      Submit an internship application
// @Description  Validate the application and forward it to the application backend. The full record is re-validated on every attempt.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ApplicationRecord  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.SubmitResult}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var record domain.ApplicationRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		middleware.RecordSubmission("invalid")
		c.Error(apperror.BadRequest("Request body must be a valid application record"))
		return
	}

	result, err := h.applicationUC.Submit(c.Request.Context(), &record)
	if err != nil {
		middleware.RecordSubmission(submitOutcome(err))
		c.Error(err)
		return
	}

	middleware.RecordSubmission("accepted")
	response.Success(c, http.StatusCreated, result.Message, result)
}

// submitOutcome buckets a failed submission for metrics.
func submitOutcome(err error) string {
	var invalid *usecase.InvalidRecordError
	if errors.As(err, &invalid) {
		return "invalid"
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case http.StatusConflict:
			return "suppressed"
		case http.StatusUnprocessableEntity:
			return "rejected"
		case http.StatusBadGateway:
			return "upstream_error"
		}
	}
	return "error"
}

// CheckResume godoc
// @Summary      Pre-check a resume file
// @Description  Validates type and size of a resume (PDF or Word, max 2MB). The file is checked only; it is never stored or attached to the submitted application.
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  false  "Resume file"
// @Success      200     {object}  response.Response{data=resumecheck.Result}
// @Failure      422     {object}  response.Response
// @Router       /applications/resume-check [post]
func (h *ApplicationHandler) CheckResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeRequestBytes)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			// Absent is a valid state: the form submits without a resume.
			response.Success(c, http.StatusOK, "No resume supplied", resumecheck.Absent())
			return
		}
		c.Error(apperror.BadRequest("Could not read the uploaded file"))
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		c.Error(apperror.Internal(err))
		return
	}

	result := resumecheck.Check(header.Filename, header.Size, header.Header.Get("Content-Type"), head[:n])
	if result.Status == resumecheck.StatusRejected {
		response.Error(c, http.StatusUnprocessableEntity, result.Reason, result)
		return
	}

	response.Success(c, http.StatusOK, "Resume accepted. It is kept for display only and not attached to the application.", result)
}

// GetOptions godoc
// @Summary      List form option sets
// @Description  Returns the internship programs and durations currently offered, so pages render the same option lists the schema enforces.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/options [get]
func (h *ApplicationHandler) GetOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Options retrieved", gin.H{
		"internshipPrograms": domain.InternshipPrograms,
		"durations":          domain.InternshipDurations,
	})
}
