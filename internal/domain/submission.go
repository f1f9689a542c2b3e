package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidTransition is returned when a status update names a status
// equal to the current one or outside the known set.
var ErrInvalidTransition = errors.New("invalid status transition")

// MissingFieldsError rejects a submission whose required fields were left
// blank. FieldIDs lists every failing field so the form can surface all
// of them at once.
type MissingFieldsError struct {
	FieldIDs []string
}

func (e *MissingFieldsError) Error() string {
	return "required fields missing: " + strings.Join(e.FieldIDs, ", ")
}

// Unwrap makes MissingFieldsError match ErrInvalidInput in errors.Is checks.
func (e *MissingFieldsError) Unwrap() error { return ErrInvalidInput }

// SubmissionStatus is the triage state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// ParseSubmissionStatus validates a raw status string.
func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	switch SubmissionStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return SubmissionStatus(s), nil
	}
	return "", ErrInvalidInput
}

// Label returns the status display label for the given language.
func (s SubmissionStatus) Label(lang Lang) string {
	switch s {
	case StatusPending:
		return Localized(lang, "قيد المراجعة", "Pending")
	case StatusApproved:
		return Localized(lang, "مقبول", "Approved")
	case StatusRejected:
		return Localized(lang, "مرفوض", "Rejected")
	}
	return string(s)
}

// Priority orders statuses for triage sorting: pending < approved < rejected.
func (s SubmissionStatus) Priority() int {
	switch s {
	case StatusPending:
		return 0
	case StatusApproved:
		return 1
	default:
		return 2
	}
}

// CanTransition reports whether a record may move from one status to
// another. Any status may move to either other status; there is no
// terminal state. A no-op transition (from == to) is rejected.
func CanTransition(from, to SubmissionStatus) bool {
	if from == to {
		return false
	}
	switch to {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// OwnerKind identifies which kind of entity a submission belongs to.
type OwnerKind string

const (
	OwnerEventSection OwnerKind = "event_section"
	OwnerSector       OwnerKind = "sector"
	OwnerOpportunity  OwnerKind = "opportunity"
)

// ValidOwnerKind reports whether k is a known owner kind.
func ValidOwnerKind(k OwnerKind) bool {
	switch k {
	case OwnerEventSection, OwnerSector, OwnerOpportunity:
		return true
	}
	return false
}

// OwnerRef points at the entity a submission was collected for. Section
// is set only for event-section owners.
type OwnerRef struct {
	Kind    OwnerKind   `json:"kind"`
	OwnerID string      `json:"owner_id"`
	Section SectionSlug `json:"section,omitempty"`
}

// Submission is one collected form response. Data is immutable after
// creation; only Status may change, and only through a triage transition.
// swagger:model Submission
type Submission struct {
	ID        string                `json:"id"`
	Owner     OwnerRef              `json:"owner"`
	Data      map[string]FieldValue `json:"data"`
	Status    SubmissionStatus      `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewSubmission returns a pending submission for the given owner. ID is
// assigned by the caller (the service generates a UUID before insert so
// the notification email can reference it).
func NewSubmission(owner OwnerRef, data map[string]FieldValue, createdAt time.Time) *Submission {
	return &Submission{
		Owner:     owner,
		Data:      data,
		Status:    StatusPending,
		CreatedAt: createdAt,
	}
}

// SubmissionFilter narrows a submission list query. Zero values mean "no
// filter" for that dimension.
type SubmissionFilter struct {
	Kind    OwnerKind
	OwnerID string
	Section SectionSlug
	Status  SubmissionStatus
}

// SubmissionRepository defines storage for submissions. There is no
// delete: submissions are removed only by their owner's cascade.
type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]*Submission, error)
	UpdateStatus(ctx context.Context, id string, status SubmissionStatus) error
}
