package domain

import (
	"context"
	"time"
)

// SessionCategory distinguishes program item kinds.
type SessionCategory string

const (
	CategorySession  SessionCategory = "session"
	CategoryWorkshop SessionCategory = "workshop"
)

// ValidSessionCategory reports whether c is a known category.
func ValidSessionCategory(c SessionCategory) bool {
	return c == CategorySession || c == CategoryWorkshop
}

// SessionItem is one entry of an event's program. Date is a calendar date
// string (YYYY-MM-DD, may be blank); StartTime and EndTime are zero-padded
// 24h HH:MM strings, so lexicographic order equals chronological order.
// swagger:model SessionItem
type SessionItem struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	Date          string          `json:"date"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	TitleAr       string          `json:"title_ar"`
	TitleEn       string          `json:"title_en"`
	SpeakerAr     string          `json:"speaker_ar"`
	SpeakerEn     string          `json:"speaker_en"`
	LocationAr    string          `json:"location_ar"`
	LocationEn    string          `json:"location_en"`
	Category      SessionCategory `json:"category"`
	DescriptionAr string          `json:"description_ar"`
	DescriptionEn string          `json:"description_en"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Title returns the session's display title for the given language.
func (s *SessionItem) Title(lang Lang) string {
	return Localized(lang, s.TitleAr, s.TitleEn)
}

// NoDateKey is the bucket key for sessions without a calendar date.
const NoDateKey = "no-date"

// ProgramDay is one day tab of the program timeline: a date key and the
// day's sessions sorted by start time.
type ProgramDay struct {
	Date     string         `json:"date"`
	Sessions []*SessionItem `json:"sessions"`
}

// SessionRepository defines storage for program sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *SessionItem) error
	GetByID(ctx context.Context, id string) (*SessionItem, error)
	ListByEventID(ctx context.Context, eventID string) ([]*SessionItem, error)
	Update(ctx context.Context, s *SessionItem) error
	Delete(ctx context.Context, id string) error
}

// ProgramService defines session management and the grouped program
// timeline.
type ProgramService interface {
	CreateSession(ctx context.Context, s *SessionItem) error
	UpdateSession(ctx context.Context, s *SessionItem) error
	DeleteSession(ctx context.Context, id string) error
	// GetProgram returns the event's sessions grouped by day, sorted by
	// start time within each day, day keys ascending.
	GetProgram(ctx context.Context, eventID string) ([]*ProgramDay, error)
}
