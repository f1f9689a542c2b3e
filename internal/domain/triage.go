package domain

import (
	"context"
	"io"
)

// TriageSortField selects the active sort column of the triage view.
type TriageSortField string

const (
	SortByPrimaryValue TriageSortField = "primary"
	SortByCreatedAt    TriageSortField = "created_at"
	SortByStatus       TriageSortField = "status"
	SortBySection      TriageSortField = "section"
	SortByEventTitle   TriageSortField = "event"
)

// ValidTriageSortField reports whether f is a supported sort field.
func ValidTriageSortField(f TriageSortField) bool {
	switch f {
	case SortByPrimaryValue, SortByCreatedAt, SortByStatus, SortBySection, SortByEventTitle:
		return true
	}
	return false
}

// SortDir is the sort direction of the triage view.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// TriagePageSize is the fixed page size of the triage view.
const TriagePageSize = 25

// TriageItem is one submission enriched with everything the triage view
// needs to render it: the resolved form for label lookup, the localized
// section/category label, and the parent event title (empty for sectors
// and opportunities without a parent event).
type TriageItem struct {
	Submission   *Submission    `json:"submission"`
	Form         FormDefinition `json:"form"`
	SectionLabel string         `json:"section_label"`
	EventTitle   string         `json:"event_title"`
}

// TriageOptions narrows, orders, and pages the triage list. All filters
// combine with AND; zero values mean "no filter". Page is clamped to
// [1, totalPages] by the engine.
type TriageOptions struct {
	Section   SectionSlug
	Status    SubmissionStatus
	EventID   string
	Search    string
	SortField TriageSortField
	SortDir   SortDir
	Page      int
}

// TriageResult is one page of the filtered, sorted triage list.
type TriageResult struct {
	Items      []*TriageItem `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}

// SubmissionService defines the public collection flow and the
// administrative triage workflow.
type SubmissionService interface {
	// Submit validates a raw payload against the owner's resolved form,
	// coerces values, and stores a pending submission.
	Submit(ctx context.Context, owner OwnerRef, payload map[string]any) (*Submission, error)
	GetByID(ctx context.Context, id string) (*Submission, error)
	// UpdateStatus performs one triage transition. The stored record is
	// the source of truth: callers must not reflect the new status until
	// this returns nil.
	UpdateStatus(ctx context.Context, id string, status SubmissionStatus) (*Submission, error)
	// Triage lists submissions for one owner scope, filtered, sorted,
	// and paged per opts, with labels resolved for lang.
	Triage(ctx context.Context, kind OwnerKind, lang Lang, opts TriageOptions) (*TriageResult, error)
	// ExportCSV writes the currently filtered (unpaged) triage set as CSV.
	ExportCSV(ctx context.Context, w io.Writer, kind OwnerKind, lang Lang, opts TriageOptions) error
	// Contacts extracts deduplicated phone/email chips from one record.
	Contacts(ctx context.Context, id string) (*ContactInfo, error)
}
