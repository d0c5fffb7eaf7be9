package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"go-internship-gateway/internal/delivery/http/middleware"
	v1 "go-internship-gateway/internal/delivery/http/v1"
	"go-internship-gateway/internal/domain"
	"go-internship-gateway/internal/usecase"
	"go-internship-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApplicationUC struct {
	submitFn func(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error)
}

func (s *stubApplicationUC) Validate(record *domain.ApplicationRecord) *domain.Verdict {
	return &domain.Verdict{Valid: true, Fields: map[string]string{}}
}

func (s *stubApplicationUC) Submit(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error) {
	return s.submitFn(ctx, record)
}

type stubProgramUC struct {
	detailsFn func(ctx context.Context) (*domain.ProgramDetails, error)
}

func (s *stubProgramUC) GetProgramDetails(ctx context.Context) (*domain.ProgramDetails, error) {
	return s.detailsFn(ctx)
}

func noLimit(c *gin.Context) { c.Next() }

func setupRouter(appUC domain.ApplicationUsecase, progUC domain.ProgramUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	group := r.Group("/v1")
	v1.NewApplicationHandler(group, appUC, noLimit)
	v1.NewProgramHandler(group, progUC)
	return r
}

type envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Error     map[string]string `json:"error"`
	RequestID string            `json:"request_id"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestSubmitApplicationCreated(t *testing.T) {
	appUC := &stubApplicationUC{
		submitFn: func(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error) {
			assert.Equal(t, "jane.doe@example.com", record.Email)
			return &domain.SubmitResult{Submitted: true, Message: "Application submitted successfully!"}, nil
		},
	}
	r := setupRouter(appUC, &stubProgramUC{})

	rec, env := doJSON(t, r, http.MethodPost, "/v1/applications", `{"email":"jane.doe@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Application submitted successfully!", env.Message)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), env.RequestID)
}

func TestSubmitApplicationValidationFailure(t *testing.T) {
	appUC := &stubApplicationUC{
		submitFn: func(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error) {
			return nil, &usecase.InvalidRecordError{Verdict: &domain.Verdict{
				Valid: false,
				Fields: map[string]string{
					"email":  "Please enter a valid email address.",
					"gender": "Please select your gender.",
				},
			}}
		},
	}
	r := setupRouter(appUC, &stubProgramUC{})

	rec, env := doJSON(t, r, http.MethodPost, "/v1/applications", `{"email":"broken"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Application failed validation", env.Message)
	assert.Equal(t, "Please enter a valid email address.", env.Error["email"])
	assert.Equal(t, "Please select your gender.", env.Error["gender"])
}

func TestSubmitApplicationBackendRejection(t *testing.T) {
	appUC := &stubApplicationUC{
		submitFn: func(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error) {
			return nil, apperror.UnprocessableEntity("Duplicate application")
		},
	}
	r := setupRouter(appUC, &stubProgramUC{})

	rec, env := doJSON(t, r, http.MethodPost, "/v1/applications", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Duplicate application", env.Message)
}

func TestSubmitApplicationSuppressedWhileInFlight(t *testing.T) {
	appUC := &stubApplicationUC{
		submitFn: func(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error) {
			return nil, apperror.Conflict("A submission is already in progress")
		},
	}
	r := setupRouter(appUC, &stubProgramUC{})

	rec, env := doJSON(t, r, http.MethodPost, "/v1/applications", `{}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A submission is already in progress", env.Message)
}

func TestSubmitApplicationMalformedBody(t *testing.T) {
	r := setupRouter(&stubApplicationUC{}, &stubProgramUC{})

	rec, env := doJSON(t, r, http.MethodPost, "/v1/applications", `{"email": 42`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func multipartResume(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="resume"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCheckResumeAccepted(t *testing.T) {
	r := setupRouter(&stubApplicationUC{}, &stubProgramUC{})

	body, contentType := multipartResume(t, "resume.pdf", "application/pdf", []byte("%PDF-1.7 content"))
	req := httptest.NewRequest(http.MethodPost, "/v1/applications/resume-check", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "resume.pdf")
}

func TestCheckResumeRejectedType(t *testing.T) {
	r := setupRouter(&stubApplicationUC{}, &stubProgramUC{})

	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	body, contentType := multipartResume(t, "photo.png", "image/png", png)
	req := httptest.NewRequest(http.MethodPost, "/v1/applications/resume-check", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "File must be PDF or Word document", env.Message)
}

func TestCheckResumeAbsentFile(t *testing.T) {
	r := setupRouter(&stubApplicationUC{}, &stubProgramUC{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("note", "no file attached"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/applications/resume-check", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	// A missing resume is a valid state, not an error
	assert.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "absent")
}

func TestGetOptions(t *testing.T) {
	r := setupRouter(&stubApplicationUC{}, &stubProgramUC{})

	rec, env := doJSON(t, r, http.MethodGet, "/v1/applications/options", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "Web Development")
	assert.Contains(t, string(env.Data), "3 Months")
}

func TestGetProgram(t *testing.T) {
	progUC := &stubProgramUC{
		detailsFn: func(ctx context.Context) (*domain.ProgramDetails, error) {
			return &domain.ProgramDetails{
				Program: domain.ProgramInfo{StartDate: "01/01/2024", Stipend: "5000"},
				OfferWindow: domain.OfferWindow{
					First:  "January 6, 2024",
					Second: "January 11, 2024",
				},
			}, nil
		},
	}
	r := setupRouter(&stubApplicationUC{}, progUC)

	rec, env := doJSON(t, r, http.MethodGet, "/v1/program", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "January 6, 2024")
	assert.Contains(t, string(env.Data), "January 11, 2024")
}

func TestGetProgramBackendUnavailable(t *testing.T) {
	progUC := &stubProgramUC{
		detailsFn: func(ctx context.Context) (*domain.ProgramDetails, error) {
			return nil, apperror.BadGateway("Could not load program details. Please try again.", nil)
		},
	}
	r := setupRouter(&stubApplicationUC{}, progUC)

	rec, env := doJSON(t, r, http.MethodGet, "/v1/program", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Could not load program details. Please try again.", env.Message)
}
