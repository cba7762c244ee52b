package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/events"
	"github.com/gartstein/workforce/internal/workforce/models"
	"github.com/gartstein/workforce/internal/workforce/validation"
	"go.uber.org/zap"
)

// ProvinceService manages the province reference list.
type ProvinceService struct {
	repo      ProvinceRepository
	producer  EventProducer
	validator *validation.Validator
	logger    *zap.Logger
}

// NewProvinceService constructs a ProvinceService.
func NewProvinceService(repo ProvinceRepository, producer EventProducer, validator *validation.Validator, logger *zap.Logger) *ProvinceService {
	return &ProvinceService{
		repo:      repo,
		producer:  producer,
		validator: validator,
		logger:    logger.Named("province_service"),
	}
}

// CreateProvince validates and stores a new province.
func (s *ProvinceService) CreateProvince(ctx context.Context, province *models.Province) (*models.Province, error) {
	violations, err := validate(s.validator, province)
	if err != nil {
		return nil, err
	}
	if err := e.NewValidationError(violations); err != nil {
		return nil, err
	}

	province.ID = 0
	if err := s.repo.CreateProvince(ctx, province); err != nil {
		return nil, fmt.Errorf("failed to create province: %w", err)
	}
	s.producer.Produce(events.ProvinceCreated, province.ID, province)
	return province, nil
}

// GetProvince retrieves a Province by ID, returning an error if not found.
func (s *ProvinceService) GetProvince(ctx context.Context, id uint) (*models.Province, error) {
	province, err := s.repo.GetProvince(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get province: %w", err)
	}
	return province, nil
}

// ListProvinces returns one page of provinces matching filter.
func (s *ProvinceService) ListProvinces(ctx context.Context, filter models.ProvinceFilter) (*models.Page[*models.Province], error) {
	page, err := s.repo.ListProvinces(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list provinces: %w", err)
	}
	return page, nil
}

// UpdateProvince merges update into the stored province and validates the result.
func (s *ProvinceService) UpdateProvince(ctx context.Context, update *models.ProvinceUpdate) (*models.Province, error) {
	if update.ID == 0 {
		return nil, fmt.Errorf("%w: invalid province ID", e.ErrInvalidInput)
	}

	province, err := s.GetProvince(ctx, update.ID)
	if err != nil {
		return nil, err
	}
	update.Apply(province)

	violations, err := validate(s.validator, province)
	if err != nil {
		return nil, err
	}
	if err := e.NewValidationError(violations); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProvince(ctx, province); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update province: %w", err)
	}
	s.producer.Produce(events.ProvinceUpdated, province.ID, province)
	return province, nil
}

// DeleteProvince removes a province no employee or work center references.
func (s *ProvinceService) DeleteProvince(ctx context.Context, id uint) error {
	province, err := s.GetProvince(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.repo.ProvinceInUse(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check province references: %w", err)
	}
	if inUse {
		return fmt.Errorf("%w: province %d is still referenced", e.ErrConflict, id)
	}

	if err := s.repo.DeleteProvince(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete province: %w", err)
	}
	s.producer.Produce(events.ProvinceDeleted, id, province)
	return nil
}
