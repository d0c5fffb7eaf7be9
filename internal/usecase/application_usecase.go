package usecase

import (
	"context"
	"sync/atomic"

	"go-internship-gateway/internal/domain"
	"go-internship-gateway/pkg/apperror"
	"go-internship-gateway/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// InvalidRecordError carries the per-field verdict for a record that failed
// schema validation at submit time.
type InvalidRecordError struct {
	Verdict *domain.Verdict
}

func (e *InvalidRecordError) Error() string {
	return "application failed validation"
}

type applicationUsecase struct {
	backend  domain.BackendClient
	validate *validator.Validate
	inFlight atomic.Bool
}

// NewApplicationUsecase creates a new application usecase. Each instance
// owns its own in-flight flag, so isolated instances can be constructed for
// testing without shared state.
func NewApplicationUsecase(backend domain.BackendClient, validate *validator.Validate) domain.ApplicationUsecase {
	validation.RegisterEnum(validate, "internship_program", domain.InternshipPrograms)
	validation.RegisterEnum(validate, "internship_duration", domain.InternshipDurations)
	return &applicationUsecase{
		backend:  backend,
		validate: validate,
	}
}

// Validate evaluates every field of the record and returns a fresh verdict.
// Verdicts are never cached; every call re-runs the full rule set.
func (uc *applicationUsecase) Validate(record *domain.ApplicationRecord) *domain.Verdict {
	if err := uc.validate.Struct(record); err != nil {
		return &domain.Verdict{Valid: false, Fields: validation.FieldErrors(err)}
	}
	return &domain.Verdict{Valid: true}
}

// Submit re-validates the record atomically, then forwards it upstream.
// Only one submission per usecase instance may be in flight; a concurrent
// second call is rejected without producing a network request. The flag is
// released on every path so a transport failure can never leave the form
// permanently disabled.
func (uc *applicationUsecase) Submit(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResult, error) {
	// 1. Gate on the schema regardless of any earlier verdict
	if verdict := uc.Validate(record); !verdict.Valid {
		return nil, &InvalidRecordError{Verdict: verdict}
	}

	// 2. Single-flight: suppress concurrent submits from the same instance
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, apperror.Conflict("A submission is already in progress")
	}
	defer uc.inFlight.Store(false)

	// 3. Forward the full record; resubmissions always re-send everything
	resp, err := uc.backend.SubmitApplication(ctx, record)
	if err != nil {
		return nil, apperror.BadGateway("Could not reach the application service. Please try again.", err)
	}

	// 4. A well-formed rejection carries the backend's message verbatim
	if !resp.Success {
		return nil, apperror.UnprocessableEntity(resp.Message)
	}

	return &domain.SubmitResult{
		Submitted: true,
		Message:   "Application submitted successfully!",
	}, nil
}
