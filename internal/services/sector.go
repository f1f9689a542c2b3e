package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"multaqa/internal/domain"
)

type sectorService struct {
	sectorRepo domain.SectorRepository
}

// NewSectorService creates a SectorService.
func NewSectorService(sectorRepo domain.SectorRepository) domain.SectorService {
	return &sectorService{sectorRepo: sectorRepo}
}

func (s *sectorService) Create(ctx context.Context, sector *domain.Sector) error {
	if sector.NameAr == "" && sector.NameEn == "" {
		return domain.ErrInvalidInput
	}
	if err := sector.Fields.Validate(); err != nil {
		return err
	}
	now := time.Now()
	sector.CreatedAt = now
	sector.UpdatedAt = now
	if err := s.sectorRepo.Create(ctx, sector); err != nil {
		return fmt.Errorf("create sector: %w", err)
	}
	return nil
}

func (s *sectorService) GetByID(ctx context.Context, id string) (*domain.Sector, error) {
	sector, err := s.sectorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	return sector, nil
}

func (s *sectorService) List(ctx context.Context) ([]*domain.Sector, error) {
	sectors, err := s.sectorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	if sectors == nil {
		sectors = []*domain.Sector{}
	}
	return sectors, nil
}

func (s *sectorService) Update(ctx context.Context, sector *domain.Sector) error {
	if err := sector.Fields.Validate(); err != nil {
		return err
	}
	sector.UpdatedAt = time.Now()
	if err := s.sectorRepo.Update(ctx, sector); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update sector: %w", err)
	}
	return nil
}

func (s *sectorService) Delete(ctx context.Context, id string) error {
	if err := s.sectorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete sector: %w", err)
	}
	return nil
}
