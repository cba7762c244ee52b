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

// WorkCenterService manages work centers and, from their side, the
// employees assigned to them.
type WorkCenterService struct {
	repo      WorkCenterRepository
	producer  EventProducer
	validator *validation.Validator
	logger    *zap.Logger
}

// NewWorkCenterService constructs a WorkCenterService.
func NewWorkCenterService(repo WorkCenterRepository, producer EventProducer, validator *validation.Validator, logger *zap.Logger) *WorkCenterService {
	return &WorkCenterService{
		repo:      repo,
		producer:  producer,
		validator: validator,
		logger:    logger.Named("work_center_service"),
	}
}

// CreateWorkCenter validates center, resolves its employees and stores it.
func (s *WorkCenterService) CreateWorkCenter(ctx context.Context, center *models.WorkCenter, employeeIDs []uint) (*models.WorkCenter, error) {
	violations, employees, err := s.check(ctx, center, employeeIDs)
	if err != nil {
		return nil, err
	}
	if err := e.NewValidationError(violations); err != nil {
		return nil, err
	}

	center.ID = 0
	center.Employees = nil
	center.SyncEmployees(employees)

	if err := s.repo.CreateWorkCenter(ctx, center); err != nil {
		return nil, fmt.Errorf("failed to create work center: %w", err)
	}
	s.logger.Debug("work center created", zap.Uint("work_center_id", center.ID), zap.Int("employees", len(employees)))
	s.producer.Produce(events.WorkCenterCreated, center.ID, events.NewWorkCenterPayload(center))
	return center, nil
}

func (s *WorkCenterService) GetWorkCenter(ctx context.Context, id uint) (*models.WorkCenter, error) {
	center, err := s.repo.GetWorkCenter(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get work center: %w", err)
	}
	return center, nil
}

func (s *WorkCenterService) ListWorkCenters(ctx context.Context, filter models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error) {
	page, err := s.repo.ListWorkCenters(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list work centers: %w", err)
	}
	return page, nil
}

// UpdateWorkCenter merges update into the stored work center. A non-nil
// EmployeeIDs replaces the set of assigned employees.
func (s *WorkCenterService) UpdateWorkCenter(ctx context.Context, update *models.WorkCenterUpdate) (*models.WorkCenter, error) {
	if update.ID == 0 {
		return nil, fmt.Errorf("%w: invalid work center ID", e.ErrInvalidInput)
	}

	center, err := s.GetWorkCenter(ctx, update.ID)
	if err != nil {
		return nil, err
	}
	update.Apply(center)

	var employeeIDs []uint
	if update.EmployeeIDs != nil {
		employeeIDs = *update.EmployeeIDs
	}
	violations, employees, err := s.check(ctx, center, employeeIDs)
	if err != nil {
		return nil, err
	}
	if err := e.NewValidationError(violations); err != nil {
		return nil, err
	}

	if update.EmployeeIDs != nil {
		center.SyncEmployees(employees)
	}

	if err := s.repo.UpdateWorkCenter(ctx, center); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update work center: %w", err)
	}
	s.producer.Produce(events.WorkCenterUpdated, center.ID, events.NewWorkCenterPayload(center))
	return center, nil
}

func (s *WorkCenterService) DeleteWorkCenter(ctx context.Context, id uint) error {
	center, err := s.GetWorkCenter(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteWorkCenter(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete work center: %w", err)
	}
	s.producer.Produce(events.WorkCenterDeleted, id, events.NewWorkCenterPayload(center))
	return nil
}

// ListEmployees returns the employees assigned to the work center.
func (s *WorkCenterService) ListEmployees(ctx context.Context, centerID uint) ([]*models.Employee, error) {
	center, err := s.GetWorkCenter(ctx, centerID)
	if err != nil {
		return nil, err
	}
	return center.Employees, nil
}

// LinkEmployee assigns an employee to the work center. The result is the
// same as linking from the employee side.
func (s *WorkCenterService) LinkEmployee(ctx context.Context, centerID, employeeID uint) (*Assignment, error) {
	return assign(ctx, s.repo, s.producer, employeeID, centerID, true,
		func(emp *models.Employee, center *models.WorkCenter) bool { return center.AddEmployee(emp) })
}

func (s *WorkCenterService) UnlinkEmployee(ctx context.Context, centerID, employeeID uint) (*Assignment, error) {
	return assign(ctx, s.repo, s.producer, employeeID, centerID, false,
		func(emp *models.Employee, center *models.WorkCenter) bool { return center.RemoveEmployee(emp) })
}

func (s *WorkCenterService) check(ctx context.Context, center *models.WorkCenter, employeeIDs []uint) ([]e.Violation, []*models.Employee, error) {
	violations, err := validate(s.validator, center)
	if err != nil {
		return nil, nil, err
	}

	province, missing, err := checkProvince(ctx, s.repo, center.ProvinceID)
	if err != nil {
		return nil, nil, err
	}
	if missing != nil {
		violations = append(violations, *missing)
	}
	center.Province = province

	employeeIDs = dedupe(employeeIDs)
	employees, err := s.repo.FindEmployees(ctx, employeeIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find employees: %w", err)
	}
	found := make([]uint, 0, len(employees))
	for _, emp := range employees {
		found = append(found, emp.ID)
	}
	violations = append(violations, idViolations("employees", missingIDs(employeeIDs, found), validation.MsgEmployeeNotFound)...)

	return violations, employees, nil
}
