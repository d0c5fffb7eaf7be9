package domain

import (
	"context"
)

// Internship programs currently open for applications
var InternshipPrograms = []string{
	"Web Development",
	"Python Development",
	"Data Science & Machine Learning",
	"Cyber Security",
	"UI/UX Design",
	"Data Analytics",
}

// Internship durations offered
var InternshipDurations = []string{
	"1 Month",
	"2 Months",
	"3 Months",
}

// ApplicationRecord is a single internship application as submitted by an
// applicant. JSON field names are the wire format expected by the upstream
// backend and must not change independently of it.
type ApplicationRecord struct {
	Email              string `json:"email" validate:"required,email"`
	FullName           string `json:"fullName" validate:"required,min=2"`
	Gender             string `json:"gender" validate:"required,oneof=male female other prefer-not-to-say"`
	Qualification      string `json:"qualification" validate:"required,oneof=high-school bachelors masters phd diploma other"`
	CurrentYear        string `json:"currentYear" validate:"required,oneof=1 2 3 4 5"`
	College            string `json:"college" validate:"required,min=2"`
	InternshipProgram  string `json:"internshipProgram" validate:"required,internship_program"`
	Duration           string `json:"duration" validate:"required,internship_duration"`
	Country            string `json:"country" validate:"required,oneof=india usa uk canada australia other"`
	SkillLevel         string `json:"skillLevel" validate:"required,oneof=beginner intermediate advanced"`
	ContactNumber      string `json:"contactNumber" validate:"required,min=10"`
	WhatsappNumber     string `json:"whatsappNumber"`
	PortfolioLink      string `json:"portfolioLink"`
	Source             string `json:"source" validate:"required,oneof=linkedin instagram facebook twitter friend search college other"`
	JobInterest        bool   `json:"jobInterest"`
	LinkedinConnected  bool   `json:"linkedinConnected"`
	InstagramConnected bool   `json:"instagramConnected"`
	TwitterConnected   bool   `json:"twitterConnected"`
	FacebookConnected  bool   `json:"facebookConnected"`
	AdditionalInfo     string `json:"additionalInfo"`
}

// Verdict is the validation result for a candidate record: an overall flag
// plus one message per offending field, keyed by JSON field name.
type Verdict struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SubmitResult is the terminal outcome of a successful submission.
type SubmitResult struct {
	Submitted bool   `json:"submitted"`
	Message   string `json:"message"`
}

// SubmitResponse is the upstream backend's answer to a submission.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BackendClient talks to the upstream application backend. The backend is an
// external collaborator; this service never stores applications itself.
type BackendClient interface {
	SubmitApplication(ctx context.Context, record *ApplicationRecord) (*SubmitResponse, error)
	FetchProgramInfo(ctx context.Context) (*ProgramInfo, error)
}

// ApplicationUsecase defines business logic for application intake
type ApplicationUsecase interface {
	// Validate evaluates the record against the schema. Pure; safe to call
	// on every edit, never caches verdicts.
	Validate(record *ApplicationRecord) *Verdict

	// Submit validates and forwards the record upstream. At most one
	// submission per usecase instance may be in flight at a time.
	Submit(ctx context.Context, record *ApplicationRecord) (*SubmitResult, error)
}
