package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"multaqa/internal/domain"
)

type opportunityService struct {
	opportunityRepo domain.OpportunityRepository
}

// NewOpportunityService creates an OpportunityService.
func NewOpportunityService(opportunityRepo domain.OpportunityRepository) domain.OpportunityService {
	return &opportunityService{opportunityRepo: opportunityRepo}
}

func (s *opportunityService) Create(ctx context.Context, o *domain.Opportunity) error {
	if o.TitleAr == "" && o.TitleEn == "" {
		return domain.ErrInvalidInput
	}
	if err := o.Fields.Validate(); err != nil {
		return err
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	if err := s.opportunityRepo.Create(ctx, o); err != nil {
		return fmt.Errorf("create opportunity: %w", err)
	}
	return nil
}

func (s *opportunityService) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	o, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return o, nil
}

func (s *opportunityService) List(ctx context.Context) ([]*domain.Opportunity, error) {
	opportunities, err := s.opportunityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	if opportunities == nil {
		opportunities = []*domain.Opportunity{}
	}
	return opportunities, nil
}

func (s *opportunityService) Update(ctx context.Context, o *domain.Opportunity) error {
	if err := o.Fields.Validate(); err != nil {
		return err
	}
	o.UpdatedAt = time.Now()
	if err := s.opportunityRepo.Update(ctx, o); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update opportunity: %w", err)
	}
	return nil
}

func (s *opportunityService) Delete(ctx context.Context, id string) error {
	if err := s.opportunityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete opportunity: %w", err)
	}
	return nil
}
