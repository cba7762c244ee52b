package events

import "github.com/gartstein/workforce/internal/workforce/models"

// EmployeePayload is the published form of an employee. The association
// is flattened to work center IDs.
type EmployeePayload struct {
	*models.Employee
	WorkCenters []uint `json:"workCenters"`
}

// WorkCenterPayload is the published form of a work center.
type WorkCenterPayload struct {
	*models.WorkCenter
	Employees []uint `json:"employees"`
}

type AssignmentPayload struct {
	EmployeeID   uint `json:"employee"`
	WorkCenterID uint `json:"workCenter"`
}

func NewEmployeePayload(emp *models.Employee) EmployeePayload {
	return EmployeePayload{Employee: emp, WorkCenters: emp.WorkCenterIDs()}
}

func NewWorkCenterPayload(center *models.WorkCenter) WorkCenterPayload {
	return WorkCenterPayload{WorkCenter: center, Employees: center.EmployeeIDs()}
}
