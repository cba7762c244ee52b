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

// EmployeeService manages employees and their work center assignments.
type EmployeeService struct {
	repo      EmployeeRepository
	producer  EventProducer
	validator *validation.Validator
	logger    *zap.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(repo EmployeeRepository, producer EventProducer, validator *validation.Validator, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		producer:  producer,
		validator: validator,
		logger:    logger.Named("employee_service"),
	}
}

// CreateEmployee validates emp, resolves its work centers and stores it.
// Every failing field and every unknown reference is reported together.
func (s *EmployeeService) CreateEmployee(ctx context.Context, emp *models.Employee, workCenterIDs []uint) (*models.Employee, error) {
	violations, centers, err := s.check(ctx, emp, workCenterIDs)
	if err != nil {
		return nil, err
	}
	if err := e.NewValidationError(violations); err != nil {
		return nil, err
	}

	emp.ID = 0
	emp.WorkCenters = nil
	emp.SyncWorkCenters(centers)

	if err := s.repo.CreateEmployee(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	s.logger.Debug("employee created", zap.Uint("employee_id", emp.ID), zap.Int("work_centers", len(centers)))
	s.producer.Produce(events.EmployeeCreated, emp.ID, events.NewEmployeePayload(emp))
	return emp, nil
}

// GetEmployee retrieves an Employee by ID together with its work centers.
func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	emp, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, filter models.EmployeeFilter) (*models.Page[*models.Employee], error) {
	page, err := s.repo.ListEmployees(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return page, nil
}

// UpdateEmployee merges update into the stored employee. A non-nil
// WorkCenterIDs replaces the association; both sides are kept in sync.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error) {
	if update.ID == 0 {
		return nil, fmt.Errorf("%w: invalid employee ID", e.ErrInvalidInput)
	}

	emp, err := s.GetEmployee(ctx, update.ID)
	if err != nil {
		return nil, err
	}
	update.Apply(emp)

	var centerIDs []uint
	if update.WorkCenterIDs != nil {
		centerIDs = *update.WorkCenterIDs
	}
	violations, centers, err := s.check(ctx, emp, centerIDs)
	if err != nil {
		return nil, err
	}
	if err := e.NewValidationError(violations); err != nil {
		return nil, err
	}

	if update.WorkCenterIDs != nil {
		emp.SyncWorkCenters(centers)
	}

	if err := s.repo.UpdateEmployee(ctx, emp); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	s.producer.Produce(events.EmployeeUpdated, emp.ID, events.NewEmployeePayload(emp))
	return emp, nil
}

// DeleteEmployee removes an employee and its assignments.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.producer.Produce(events.EmployeeDeleted, id, events.NewEmployeePayload(emp))
	return nil
}

// ListWorkCenters returns the work centers the employee is assigned to.
func (s *EmployeeService) ListWorkCenters(ctx context.Context, employeeID uint) ([]*models.WorkCenter, error) {
	emp, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return emp.WorkCenters, nil
}

// LinkWorkCenter assigns the employee to a work center. Linking an
// existing pair succeeds without writing anything.
func (s *EmployeeService) LinkWorkCenter(ctx context.Context, employeeID, centerID uint) (*Assignment, error) {
	return assign(ctx, s.repo, s.producer, employeeID, centerID, true,
		func(emp *models.Employee, center *models.WorkCenter) bool { return emp.AddWorkCenter(center) })
}

// UnlinkWorkCenter removes the assignment of the employee to a work center.
func (s *EmployeeService) UnlinkWorkCenter(ctx context.Context, employeeID, centerID uint) (*Assignment, error) {
	return assign(ctx, s.repo, s.producer, employeeID, centerID, false,
		func(emp *models.Employee, center *models.WorkCenter) bool { return emp.RemoveWorkCenter(center) })
}

// check collects the field violations of emp plus one violation per
// unknown province or work center reference.
func (s *EmployeeService) check(ctx context.Context, emp *models.Employee, centerIDs []uint) ([]e.Violation, []*models.WorkCenter, error) {
	violations, err := validate(s.validator, emp)
	if err != nil {
		return nil, nil, err
	}

	province, missing, err := checkProvince(ctx, s.repo, emp.ProvinceID)
	if err != nil {
		return nil, nil, err
	}
	if missing != nil {
		violations = append(violations, *missing)
	}
	emp.Province = province

	centerIDs = dedupe(centerIDs)
	centers, err := s.repo.FindWorkCenters(ctx, centerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find work centers: %w", err)
	}
	found := make([]uint, 0, len(centers))
	for _, c := range centers {
		found = append(found, c.ID)
	}
	violations = append(violations, idViolations("workCenters", missingIDs(centerIDs, found), validation.MsgWorkCenterNotFound)...)

	return violations, centers, nil
}

// assign applies mutate to one employee/work center pair. Both entities are
// loaded with their associations so the symmetric mutators see the full
// state. Only the join row of this pair is written.
func assign(
	ctx context.Context,
	repo AssignmentRepository,
	producer EventProducer,
	employeeID, centerID uint,
	link bool,
	mutate func(*models.Employee, *models.WorkCenter) bool,
) (*Assignment, error) {
	emp, err := repo.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("employee %d: %w", employeeID, err)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	center, err := repo.GetWorkCenter(ctx, centerID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("work center %d: %w", centerID, err)
		}
		return nil, fmt.Errorf("failed to get work center: %w", err)
	}

	changed := mutate(emp, center)
	result := &Assignment{Employee: emp, WorkCenter: center, Changed: changed}
	if !changed {
		return result, nil
	}

	write, eventType := repo.UnlinkEmployeeWorkCenter, events.AssignmentUnlinked
	if link {
		write, eventType = repo.LinkEmployeeWorkCenter, events.AssignmentLinked
	}
	if err := write(ctx, emp.ID, center.ID); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	producer.Produce(eventType, emp.ID, events.AssignmentPayload{EmployeeID: emp.ID, WorkCenterID: center.ID})
	return result, nil
}
