package controller

import (
	"context"
	"fmt"
	"sync"

	e "github.com/gartstein/workforce/internal/workforce/errors"
	"github.com/gartstein/workforce/internal/workforce/events"
	"github.com/gartstein/workforce/internal/workforce/models"
)

// MockRepository implements every repository interface of the package.
// Unset funcs panic when called, which flags unexpected storage access.
type MockRepository struct {
	createProvince           func(context.Context, *models.Province) error
	getProvince              func(context.Context, uint) (*models.Province, error)
	listProvinces            func(context.Context, models.ProvinceFilter) (*models.Page[*models.Province], error)
	updateProvince           func(context.Context, *models.Province) error
	deleteProvince           func(context.Context, uint) error
	provinceInUse            func(context.Context, uint) (bool, error)
	createEmployee           func(context.Context, *models.Employee) error
	getEmployee              func(context.Context, uint) (*models.Employee, error)
	listEmployees            func(context.Context, models.EmployeeFilter) (*models.Page[*models.Employee], error)
	updateEmployee           func(context.Context, *models.Employee) error
	deleteEmployee           func(context.Context, uint) error
	findEmployees            func(context.Context, []uint) ([]*models.Employee, error)
	createWorkCenter         func(context.Context, *models.WorkCenter) error
	getWorkCenter            func(context.Context, uint) (*models.WorkCenter, error)
	listWorkCenters          func(context.Context, models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error)
	updateWorkCenter         func(context.Context, *models.WorkCenter) error
	deleteWorkCenter         func(context.Context, uint) error
	findWorkCenters          func(context.Context, []uint) ([]*models.WorkCenter, error)
	linkEmployeeWorkCenter   func(context.Context, uint, uint) error
	unlinkEmployeeWorkCenter func(context.Context, uint, uint) error
}

func (m *MockRepository) CreateProvince(ctx context.Context, p *models.Province) error {
	return m.createProvince(ctx, p)
}

func (m *MockRepository) GetProvince(ctx context.Context, id uint) (*models.Province, error) {
	return m.getProvince(ctx, id)
}

func (m *MockRepository) ListProvinces(ctx context.Context, f models.ProvinceFilter) (*models.Page[*models.Province], error) {
	return m.listProvinces(ctx, f)
}

func (m *MockRepository) UpdateProvince(ctx context.Context, p *models.Province) error {
	return m.updateProvince(ctx, p)
}

func (m *MockRepository) DeleteProvince(ctx context.Context, id uint) error {
	return m.deleteProvince(ctx, id)
}

func (m *MockRepository) ProvinceInUse(ctx context.Context, id uint) (bool, error) {
	return m.provinceInUse(ctx, id)
}

func (m *MockRepository) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	return m.createEmployee(ctx, emp)
}

func (m *MockRepository) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	return m.getEmployee(ctx, id)
}

func (m *MockRepository) ListEmployees(ctx context.Context, f models.EmployeeFilter) (*models.Page[*models.Employee], error) {
	return m.listEmployees(ctx, f)
}

func (m *MockRepository) UpdateEmployee(ctx context.Context, emp *models.Employee) error {
	return m.updateEmployee(ctx, emp)
}

func (m *MockRepository) DeleteEmployee(ctx context.Context, id uint) error {
	return m.deleteEmployee(ctx, id)
}

func (m *MockRepository) FindEmployees(ctx context.Context, ids []uint) ([]*models.Employee, error) {
	if m.findEmployees == nil && len(ids) == 0 {
		return nil, nil
	}
	return m.findEmployees(ctx, ids)
}

func (m *MockRepository) CreateWorkCenter(ctx context.Context, c *models.WorkCenter) error {
	return m.createWorkCenter(ctx, c)
}

func (m *MockRepository) GetWorkCenter(ctx context.Context, id uint) (*models.WorkCenter, error) {
	return m.getWorkCenter(ctx, id)
}

func (m *MockRepository) ListWorkCenters(ctx context.Context, f models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error) {
	return m.listWorkCenters(ctx, f)
}

func (m *MockRepository) UpdateWorkCenter(ctx context.Context, c *models.WorkCenter) error {
	return m.updateWorkCenter(ctx, c)
}

func (m *MockRepository) DeleteWorkCenter(ctx context.Context, id uint) error {
	return m.deleteWorkCenter(ctx, id)
}

func (m *MockRepository) FindWorkCenters(ctx context.Context, ids []uint) ([]*models.WorkCenter, error) {
	if m.findWorkCenters == nil && len(ids) == 0 {
		return nil, nil
	}
	return m.findWorkCenters(ctx, ids)
}

func (m *MockRepository) LinkEmployeeWorkCenter(ctx context.Context, employeeID, centerID uint) error {
	return m.linkEmployeeWorkCenter(ctx, employeeID, centerID)
}

func (m *MockRepository) UnlinkEmployeeWorkCenter(ctx context.Context, employeeID, centerID uint) error {
	return m.unlinkEmployeeWorkCenter(ctx, employeeID, centerID)
}

type producedEvent struct {
	Type    events.EventType
	ID      uint
	Payload any
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []producedEvent
}

// Produce records the event.
func (m *MockProducer) Produce(eventType events.EventType, id uint, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producedEvents = append(m.producedEvents, producedEvent{eventType, id, payload})
}

func (m *MockProducer) types() []events.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.EventType, 0, len(m.producedEvents))
	for _, ev := range m.producedEvents {
		out = append(out, ev.Type)
	}
	return out
}

// provinces serves the provinces with the given IDs, named "Provincia <id>".
func provinces(ids ...uint) func(context.Context, uint) (*models.Province, error) {
	return func(_ context.Context, id uint) (*models.Province, error) {
		for _, known := range ids {
			if known == id {
				return &models.Province{ID: id, Name: fmt.Sprintf("Provincia %d", id)}, nil
			}
		}
		return nil, e.ErrNotFound
	}
}

func validEmployee() *models.Employee {
	return &models.Employee{
		Name:         "Ana",
		FirstSurname: "Garcia",
		NationalID:   "12345678Z",
		Address:      "Calle Mayor 1",
		City:         "Madrid",
		PostalCode:   "28001",
		ProvinceID:   1,
	}
}

func validWorkCenter() *models.WorkCenter {
	return &models.WorkCenter{
		Name:       "Sede Central",
		Address:    "Gran Via 2",
		City:       "Madrid",
		PostalCode: "28013",
		Phone:      "+34912345678",
		ProvinceID: 1,
	}
}
