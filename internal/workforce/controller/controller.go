// Package controller implements the core business logic (service layer)
// for managing provinces, employees and work centers: it validates
// submitted entities, checks their references, keeps the employee/work
// center association symmetric, orchestrates repository operations and
// sends change events.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/events"
	"github.com/gartstein/workforce/internal/workforce/models"
	"github.com/gartstein/workforce/internal/workforce/validation"
)

type EventProducer interface {
	Produce(eventType events.EventType, id uint, payload any)
}

// ProvinceRepository defines the storage interface for Province objects.
type ProvinceRepository interface {
	CreateProvince(ctx context.Context, province *models.Province) error
	GetProvince(ctx context.Context, id uint) (*models.Province, error)
	ListProvinces(ctx context.Context, filter models.ProvinceFilter) (*models.Page[*models.Province], error)
	UpdateProvince(ctx context.Context, province *models.Province) error
	DeleteProvince(ctx context.Context, id uint) error
	ProvinceInUse(ctx context.Context, id uint) (bool, error)
}

// AssignmentRepository is the storage shared by both sides of the
// employee/work center association. Join rows are always written from the
// employee side, one pair at a time, so concurrent links of the same
// employee do not overwrite each other.
type AssignmentRepository interface {
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	GetWorkCenter(ctx context.Context, id uint) (*models.WorkCenter, error)
	FindEmployees(ctx context.Context, ids []uint) ([]*models.Employee, error)
	FindWorkCenters(ctx context.Context, ids []uint) ([]*models.WorkCenter, error)
	LinkEmployeeWorkCenter(ctx context.Context, employeeID, centerID uint) error
	UnlinkEmployeeWorkCenter(ctx context.Context, employeeID, centerID uint) error
	GetProvince(ctx context.Context, id uint) (*models.Province, error)
}

// EmployeeRepository defines the storage interface for Employee objects.
type EmployeeRepository interface {
	AssignmentRepository
	CreateEmployee(ctx context.Context, emp *models.Employee) error
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) (*models.Page[*models.Employee], error)
	UpdateEmployee(ctx context.Context, emp *models.Employee) error
	DeleteEmployee(ctx context.Context, id uint) error
}

// WorkCenterRepository defines the storage interface for WorkCenter objects.
type WorkCenterRepository interface {
	AssignmentRepository
	CreateWorkCenter(ctx context.Context, center *models.WorkCenter) error
	ListWorkCenters(ctx context.Context, filter models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error)
	UpdateWorkCenter(ctx context.Context, center *models.WorkCenter) error
	DeleteWorkCenter(ctx context.Context, id uint) error
}

// Assignment is the outcome of a link or unlink request.
type Assignment struct {
	Employee   *models.Employee
	WorkCenter *models.WorkCenter
	// Changed is false when the pair was already in the requested state.
	Changed bool
}

func validate(v *validation.Validator, entity any) ([]e.Violation, error) {
	violations, err := v.Struct(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to validate: %w", err)
	}
	return violations, nil
}

// checkProvince loads the referenced province, or returns a violation when
// a set reference points at nothing. An unset reference is already reported
// by the field rules.
func checkProvince(ctx context.Context, repo interface {
	GetProvince(ctx context.Context, id uint) (*models.Province, error)
}, id uint) (*models.Province, *e.Violation, error) {
	if id == 0 {
		return nil, nil, nil
	}
	province, err := repo.GetProvince(ctx, id)
	if err == nil {
		return province, nil, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to check province existence: %w", err)
	}
	v := validation.MissingReference("province", strconv.FormatUint(uint64(id), 10), validation.MsgProvinceNotFound)
	return nil, &v, nil
}

// missingIDs returns the requested IDs that are not among found.
func missingIDs(requested []uint, found []uint) []uint {
	seen := make(map[uint]struct{}, len(found))
	for _, id := range found {
		seen[id] = struct{}{}
	}
	var missing []uint
	for _, id := range requested {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func idViolations(field string, ids []uint, message string) []e.Violation {
	out := make([]e.Violation, 0, len(ids))
	for _, id := range ids {
		out = append(out, validation.MissingReference(field, strconv.FormatUint(uint64(id), 10), message))
	}
	return out
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
