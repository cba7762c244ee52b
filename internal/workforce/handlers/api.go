package handlers

import (
	"context"
	"net/http"

	"github.com/gartstein/workforce/internal/workforce/controller"
	"github.com/gartstein/workforce/internal/workforce/metrics"
	"github.com/gartstein/workforce/internal/workforce/models"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// ProvinceController is the business logic the province routes invoke.
type ProvinceController interface {
	CreateProvince(ctx context.Context, province *models.Province) (*models.Province, error)
	GetProvince(ctx context.Context, id uint) (*models.Province, error)
	ListProvinces(ctx context.Context, filter models.ProvinceFilter) (*models.Page[*models.Province], error)
	UpdateProvince(ctx context.Context, update *models.ProvinceUpdate) (*models.Province, error)
	DeleteProvince(ctx context.Context, id uint) error
}

// EmployeeController is the business logic the employee routes invoke.
type EmployeeController interface {
	CreateEmployee(ctx context.Context, emp *models.Employee, workCenterIDs []uint) (*models.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) (*models.Page[*models.Employee], error)
	UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id uint) error
	ListWorkCenters(ctx context.Context, employeeID uint) ([]*models.WorkCenter, error)
	LinkWorkCenter(ctx context.Context, employeeID, centerID uint) (*controller.Assignment, error)
	UnlinkWorkCenter(ctx context.Context, employeeID, centerID uint) (*controller.Assignment, error)
}

// WorkCenterController is the business logic the work center routes invoke.
type WorkCenterController interface {
	CreateWorkCenter(ctx context.Context, center *models.WorkCenter, employeeIDs []uint) (*models.WorkCenter, error)
	GetWorkCenter(ctx context.Context, id uint) (*models.WorkCenter, error)
	ListWorkCenters(ctx context.Context, filter models.WorkCenterFilter) (*models.Page[*models.WorkCenter], error)
	UpdateWorkCenter(ctx context.Context, update *models.WorkCenterUpdate) (*models.WorkCenter, error)
	DeleteWorkCenter(ctx context.Context, id uint) error
	ListEmployees(ctx context.Context, centerID uint) ([]*models.Employee, error)
	LinkEmployee(ctx context.Context, centerID, employeeID uint) (*controller.Assignment, error)
	UnlinkEmployee(ctx context.Context, centerID, employeeID uint) (*controller.Assignment, error)
}

// API maps the REST routes to the controllers.
type API struct {
	provinces   ProvinceController
	employees   EmployeeController
	workCenters WorkCenterController
	logger      *zap.Logger
}

// NewAPI constructs an API with the given controllers and logger.
func NewAPI(provinces ProvinceController, employees EmployeeController, workCenters WorkCenterController, logger *zap.Logger) *API {
	return &API{
		provinces:   provinces,
		employees:   employees,
		workCenters: workCenters,
		logger:      logger.Named("http_handler"),
	}
}

type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

// Register adds every API route to mux.
func (a *API) Register(mux *runtime.ServeMux) error {
	routes := []route{
		{http.MethodGet, "/api/provinces", a.listProvinces},
		{http.MethodPost, "/api/provinces", a.createProvince},
		{http.MethodGet, "/api/provinces/{id}", a.getProvince},
		{http.MethodPut, "/api/provinces/{id}", a.updateProvince},
		{http.MethodDelete, "/api/provinces/{id}", a.deleteProvince},

		{http.MethodGet, "/api/employees", a.listEmployees},
		{http.MethodPost, "/api/employees", a.createEmployee},
		{http.MethodGet, "/api/employees/{id}", a.getEmployee},
		{http.MethodPut, "/api/employees/{id}", a.updateEmployee},
		{http.MethodDelete, "/api/employees/{id}", a.deleteEmployee},
		{http.MethodGet, "/api/employees/{id}/work_centers", a.listEmployeeWorkCenters},
		{http.MethodPut, "/api/employees/{id}/work_centers/{center_id}", a.linkEmployeeWorkCenter},
		{http.MethodDelete, "/api/employees/{id}/work_centers/{center_id}", a.unlinkEmployeeWorkCenter},

		{http.MethodGet, "/api/work_centers", a.listWorkCenters},
		{http.MethodPost, "/api/work_centers", a.createWorkCenter},
		{http.MethodGet, "/api/work_centers/{id}", a.getWorkCenter},
		{http.MethodPut, "/api/work_centers/{id}", a.updateWorkCenter},
		{http.MethodDelete, "/api/work_centers/{id}", a.deleteWorkCenter},
		{http.MethodGet, "/api/work_centers/{id}/employees", a.listWorkCenterEmployees},
		{http.MethodPut, "/api/work_centers/{id}/employees/{employee_id}", a.linkWorkCenterEmployee},
		{http.MethodDelete, "/api/work_centers/{id}/employees/{employee_id}", a.unlinkWorkCenterEmployee},
	}

	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
		metrics.RegisterRoute(r.pattern)
	}
	return nil
}
