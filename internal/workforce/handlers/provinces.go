package handlers

import (
	"net/http"
)

func (a *API) listProvinces(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	filter, err := provinceFilter(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	page, err := a.provinces.ListProvinces(r.Context(), filter)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, listResponse(page, provinceResponse))
}

func (a *API) createProvince(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req ProvinceRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	created, err := a.provinces.CreateProvince(r.Context(), req.toModel())
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, provinceResponse(created))
}

func (a *API) getProvince(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	province, err := a.provinces.GetProvince(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, provinceResponse(province))
}

func (a *API) updateProvince(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req ProvinceRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	updated, err := a.provinces.UpdateProvince(r.Context(), req.toUpdate(id))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, provinceResponse(updated))
}

func (a *API) deleteProvince(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := pathID(params, "id")
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := a.provinces.DeleteProvince(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
