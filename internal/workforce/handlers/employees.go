package handlers

import (
	"net/http"

	"github.com/gartstein/workforce/internal/workforce/metrics"
	"go.uber.org/zap"
)

func (a *API) listEmployees(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	filter, err := employeeFilter(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	page, err := a.employees.ListEmployees(r.Context(), filter)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, listResponse(page, employeeResponse))
}

func (a *API) createEmployee(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req EmployeeRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	emp, centerIDs, err := req.toModel()
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	created, err := a.employees.CreateEmployee(r.Context(), emp, centerIDs)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, employeeResponse(created))
}

func (a *API) getEmployee(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	emp, err := a.employees.GetEmployee(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, employeeResponse(emp))
}

func (a *API) updateEmployee(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req EmployeeRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	update, err := req.toUpdate(id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	updated, err := a.employees.UpdateEmployee(r.Context(), update)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, employeeResponse(updated))
}

func (a *API) deleteEmployee(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.employees.DeleteEmployee(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listEmployeeWorkCenters(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	centers, err := a.employees.ListWorkCenters(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, workCenterRefs(centers))
}

func (a *API) linkEmployeeWorkCenter(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	centerID, err := pathID(params, "center_id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	result, err := a.employees.LinkWorkCenter(r.Context(), id, centerID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	metrics.ObserveAssignment("link", result.Changed)
	a.logger.Debug("work center linked",
		zap.Uint("employee_id", id),
		zap.Uint("work_center_id", centerID),
		zap.Bool("changed", result.Changed),
		zap.String("user", subject(r)),
	)
	a.writeJSON(w, http.StatusOK, employeeResponse(result.Employee))
}

func (a *API) unlinkEmployeeWorkCenter(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	centerID, err := pathID(params, "center_id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	result, err := a.employees.UnlinkWorkCenter(r.Context(), id, centerID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	metrics.ObserveAssignment("unlink", result.Changed)
	w.WriteHeader(http.StatusNoContent)
}
