package handlers

import (
	"context"

	"github.com/gartstein/workforce/internal/workforce/controller"
	"github.com/gartstein/workforce/internal/workforce/models"
)

type mockProvinceController struct {
	createFunc func(ctx context.Context, p *models.Province) (*models.Province, error)
	getFunc    func(ctx context.Context, id uint) (*models.Province, error)
	listFunc   func(ctx context.Context, f models.ProvinceFilter) (*models.Page[*models.Province], error)
	updateFunc func(ctx context.Context, u *models.ProvinceUpdate) (*models.Province, error)
	deleteFunc func(ctx context.Context, id uint) error
}

func (m *mockProvinceController) CreateProvince(ctx context.Context, p *models.Province) (*models.Province, error) {
	return m.createFunc(ctx, p)
}

func (m *mockProvinceController) GetProvince(ctx context.Context, id uint) (*models.Province, error) {
	return m.getFunc(ctx, id)
}

func (m *mockProvinceController) ListProvinces(ctx context.Context, f models.ProvinceFilter) (*models.Page[*models.Province], error) {
	return m.listFunc(ctx, f)
}

func (m *mockProvinceController) UpdateProvince(ctx context.Context, u *models.ProvinceUpdate) (*models.Province, error) {
	return m.updateFunc(ctx, u)
}

func (m *mockProvinceController) DeleteProvince(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

type mockEmployeeController struct {
	createFunc  func(ctx context.Context, emp *models.Employee, ids []uint) (*models.Employee, error)
	getFunc     func(ctx context.Context, id uint) (*models.Employee, error)
	listFunc    func(ctx context.Context, f models.EmployeeFilter) (*models.Page[*models.Employee], error)
	updateFunc  func(ctx context.Context, u *models.EmployeeUpdate) (*models.Employee, error)
	deleteFunc  func(ctx context.Context, id uint) error
	centersFunc func(ctx context.Context, id uint) ([]*models.WorkCenter, error)
	linkFunc    func(ctx context.Context, id, centerID uint) (*controller.Assignment, error)
	unlinkFunc  func(ctx context.Context, id, centerID uint) (*controller.Assignment, error)
}

func (m *mockEmployeeController) CreateEmployee(ctx context.Context, emp *models.Employee, ids []uint) (*models.Employee, error) {
	return m.createFunc(ctx, emp, ids)
}

func (m *mockEmployeeController) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	return m.getFunc(ctx, id)
}

func (m *mockEmployeeController) ListEmployees(ctx context.Context, f models.EmployeeFilter) (*models.Page[*models.Employee], error) {
	return m.listFunc(ctx, f)
}

func (m *mockEmployeeController) UpdateEmployee(ctx context.Context, u *models.EmployeeUpdate) (*models.Employee, error) {
	return m.updateFunc(ctx, u)
}

func (m *mockEmployeeController) DeleteEmployee(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockEmployeeController) ListWorkCenters(ctx context.Context, id uint) ([]*models.WorkCenter, error) {
	return m.centersFunc(ctx, id)
}

func (m *mockEmployeeController) LinkWorkCenter(ctx context.Context, id, centerID uint) (*controller.Assignment, error) {
	return m.linkFunc(ctx, id, centerID)
}

func (m *mockEmployeeController) UnlinkWorkCenter(ctx context.Context, id, centerID uint) (*controller.Assignment, error) {
	return m.unlinkFunc(ctx, id, centerID)
}

type mockWorkCenterController struct {
	createFunc    func(ctx context.Context, c *models.WorkCenter, ids []uint) (*models.WorkCenter, error)
	getFunc       func(ctx context.Context, id uint) (*models.WorkCenter, error)
	listFunc      func(ctx context.Context, f models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error)
	updateFunc    func(ctx context.Context, u *models.WorkCenterUpdate) (*models.WorkCenter, error)
	deleteFunc    func(ctx context.Context, id uint) error
	employeesFunc func(ctx context.Context, id uint) ([]*models.Employee, error)
	linkFunc      func(ctx context.Context, id, employeeID uint) (*controller.Assignment, error)
	unlinkFunc    func(ctx context.Context, id, employeeID uint) (*controller.Assignment, error)
}

func (m *mockWorkCenterController) CreateWorkCenter(ctx context.Context, c *models.WorkCenter, ids []uint) (*models.WorkCenter, error) {
	return m.createFunc(ctx, c, ids)
}

func (m *mockWorkCenterController) GetWorkCenter(ctx context.Context, id uint) (*models.WorkCenter, error) {
	return m.getFunc(ctx, id)
}

func (m *mockWorkCenterController) ListWorkCenters(ctx context.Context, f models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error) {
	return m.listFunc(ctx, f)
}

func (m *mockWorkCenterController) UpdateWorkCenter(ctx context.Context, u *models.WorkCenterUpdate) (*models.WorkCenter, error) {
	return m.updateFunc(ctx, u)
}

func (m *mockWorkCenterController) DeleteWorkCenter(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockWorkCenterController) ListEmployees(ctx context.Context, id uint) ([]*models.Employee, error) {
	return m.employeesFunc(ctx, id)
}

func (m *mockWorkCenterController) LinkEmployee(ctx context.Context, id, employeeID uint) (*controller.Assignment, error) {
	return m.linkFunc(ctx, id, employeeID)
}

func (m *mockWorkCenterController) UnlinkEmployee(ctx context.Context, id, employeeID uint) (*controller.Assignment, error) {
	return m.unlinkFunc(ctx, id, employeeID)
}
