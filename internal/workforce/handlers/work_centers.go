package handlers

import (
	"net/http"

	"github.com/gartstein/workforce/internal/workforce/metrics"
	"go.uber.org/zap"
)

func (a *API) listWorkCenters(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	filter, err := workCenterFilter(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	page, err := a.workCenters.ListWorkCenters(r.Context(), filter)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, listResponse(page, workCenterResponse))
}

func (a *API) createWorkCenter(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req WorkCenterRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	center, employeeIDs := req.toModel()
	created, err := a.workCenters.CreateWorkCenter(r.Context(), center, employeeIDs)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, workCenterResponse(created))
}

func (a *API) getWorkCenter(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	center, err := a.workCenters.GetWorkCenter(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, workCenterResponse(center))
}

func (a *API) updateWorkCenter(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req WorkCenterRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	updated, err := a.workCenters.UpdateWorkCenter(r.Context(), req.toUpdate(id))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, workCenterResponse(updated))
}

func (a *API) deleteWorkCenter(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.workCenters.DeleteWorkCenter(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listWorkCenterEmployees(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	employees, err := a.workCenters.ListEmployees(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, employeeRefs(employees))
}

func (a *API) linkWorkCenterEmployee(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	employeeID, err := pathID(params, "employee_id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	result, err := a.workCenters.LinkEmployee(r.Context(), id, employeeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	metrics.ObserveAssignment("link", result.Changed)
	a.logger.Debug("employee linked",
		zap.Uint("work_center_id", id),
		zap.Uint("employee_id", employeeID),
		zap.Bool("changed", result.Changed),
		zap.String("user", subject(r)),
	)
	a.writeJSON(w, http.StatusOK, workCenterResponse(result.WorkCenter))
}

func (a *API) unlinkWorkCenterEmployee(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	employeeID, err := pathID(params, "employee_id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	result, err := a.workCenters.UnlinkEmployee(r.Context(), id, employeeID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	metrics.ObserveAssignment("unlink", result.Changed)
	w.WriteHeader(http.StatusNoContent)
}
