package usecase

import (
	"context"
	"errors"

	"go-internship-gateway/internal/domain"
	"go-internship-gateway/internal/upstream"
	"go-internship-gateway/pkg/apperror"
	"go-internship-gateway/pkg/dates"
)

type programUsecase struct {
	backend domain.BackendClient
}

// NewProgramUsecase creates a new program usecase
func NewProgramUsecase(backend domain.BackendClient) domain.ProgramUsecase {
	return &programUsecase{backend: backend}
}

// GetProgramDetails fetches program metadata from the backend and derives
// the offer-letter window from the published start date. Nothing is cached;
// the confirmation view fetches once per mount.
func (uc *programUsecase) GetProgramDetails(ctx context.Context) (*domain.ProgramDetails, error) {
	info, err := uc.backend.FetchProgramInfo(ctx)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			// Backend answered with a rejection; its message is shown to
			// the applicant as-is.
			return nil, apperror.BadGateway(apiErr.Message, err)
		}
		return nil, apperror.BadGateway("Could not load program details. Please try again.", err)
	}

	details := &domain.ProgramDetails{Program: *info}
	if info.StartDate != "" {
		first, second := dates.DeriveWindow(info.StartDate, dates.DefaultOfferOffsetDays)
		details.OfferWindow = domain.OfferWindow{First: first, Second: second}
	}
	return details, nil
}
