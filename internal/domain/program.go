package domain

import "context"

// ProgramInfo is the read-only program metadata served by the upstream
// backend. Dates are DD/MM/YYYY strings; GroupLink may be absent.
type ProgramInfo struct {
	LastDate  string `json:"lastdate"`
	StartDate string `json:"startdate"`
	ExamDate  string `json:"examdate"`
	Stipend   string `json:"stipend"`
	GroupLink string `json:"grplink,omitempty"`
}

// OfferWindow is the derived period in which offer letters go out:
// start date + 5 days through start date + 10 days, pre-formatted for
// display ("January 6, 2024"). First carries an invalid-format marker when
// the upstream start date cannot be parsed.
type OfferWindow struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// ProgramDetails is everything the confirmation page renders.
type ProgramDetails struct {
	Program     ProgramInfo `json:"program"`
	OfferWindow OfferWindow `json:"offerWindow"`
}

// ProgramUsecase defines business logic for the confirmation view
type ProgramUsecase interface {
	GetProgramDetails(ctx context.Context) (*ProgramDetails, error)
}
