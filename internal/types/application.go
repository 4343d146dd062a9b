package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ApplicationStatus is the lifecycle state of a submitted application.
// Only the job's poster moves an application out of Pending.
type ApplicationStatus string

// Application statuses as stored by the server.
const (
	StatusPending     ApplicationStatus = "Pending"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusAccepted    ApplicationStatus = "Accepted"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application represents a job-seeker's submission for a job.
// Job is populated on reads where the server embeds the posting; JobID is
// what the client sends on create.
type Application struct {
	ID          string            `json:"_id,omitempty"`
	JobID       string            `json:"jobId,omitempty"`
	Job         *Job              `json:"job,omitempty"`
	ApplicantID string            `json:"applicant,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	CVID        string            `json:"cvId,omitempty"`
	Status      ApplicationStatus `json:"status,omitempty"`
	AppliedDate *time.Time        `json:"appliedDate,omitempty"`
}

// ApplyRequest is the body for POST /api/applications.
type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	CVID        string `json:"cvId" validate:"required"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// UpdateStatusRequest is the body for PUT /api/applications/{id}/status.
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate checks required fields and that the status is a known value.
func (r *UpdateStatusRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Status.Valid() {
		return &InvalidStatusError{Status: string(r.Status)}
	}
	return nil
}

// InvalidStatusError reports an application status outside the known set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return "invalid application status: " + e.Status
}
