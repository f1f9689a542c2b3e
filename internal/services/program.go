package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"multaqa/internal/domain"
)

type programService struct {
	sessionRepo domain.SessionRepository
	eventRepo   domain.EventRepository
}

// NewProgramService creates a ProgramService with the given repositories.
func NewProgramService(sessionRepo domain.SessionRepository, eventRepo domain.EventRepository) domain.ProgramService {
	return &programService{
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
	}
}

func (s *programService) CreateSession(ctx context.Context, item *domain.SessionItem) error {
	if !domain.ValidSessionCategory(item.Category) {
		return domain.ErrInvalidInput
	}
	if _, err := s.eventRepo.GetByID(ctx, item.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.sessionRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *programService) UpdateSession(ctx context.Context, item *domain.SessionItem) error {
	if !domain.ValidSessionCategory(item.Category) {
		return domain.ErrInvalidInput
	}
	if err := s.sessionRepo.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (s *programService) DeleteSession(ctx context.Context, id string) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *programService) GetProgram(ctx context.Context, eventID string) ([]*domain.ProgramDay, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	sessions, err := s.sessionRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return GroupSessions(sessions), nil
}

// GroupSessions buckets sessions by date and sorts each bucket by start
// time ascending. Sessions with a blank date collapse into one "no-date"
// bucket. Day keys are ordered ascending; the date format (YYYY-MM-DD)
// and the zero-padded HH:MM times make lexicographic order chronological.
// The transformation is deterministic and idempotent.
func GroupSessions(sessions []*domain.SessionItem) []*domain.ProgramDay {
	buckets := make(map[string][]*domain.SessionItem)
	for _, item := range sessions {
		key := item.Date
		if key == "" {
			key = domain.NoDateKey
		}
		buckets[key] = append(buckets[key], item)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	days := make([]*domain.ProgramDay, 0, len(keys))
	for _, key := range keys {
		group := buckets[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime < group[j].StartTime
		})
		days = append(days, &domain.ProgramDay{Date: key, Sessions: group})
	}
	return days
}
