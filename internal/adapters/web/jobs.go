package web

import (
	"net/http"
	"strconv"

	"jobboard/internal/core"
)

// listJobs handles GET /jobs.
// Query: title?, minSalary?, hasEquity?
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	var filter core.JobFilter
	var ok bool
	if title := r.URL.Query().Get("title"); title != "" {
		filter.Title = &title
	}
	if filter.MinSalary, ok = queryInt(w, r, "minSalary"); !ok {
		return
	}
	if raw := r.URL.Query().Get("hasEquity"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "hasEquity must be a boolean")
			return
		}
		filter.HasEquity = b
	}

	jobs, err := h.jobs.FindAll(r.Context(), filter)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []core.Job{}
	}

	type response struct {
		Jobs []core.Job `json:"jobs"`
	}
	writeJSON(w, http.StatusOK, response{Jobs: jobs})
}

// getJob handles GET /jobs/{id}.
func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Job *core.Job `json:"job"`
	}
	writeJSON(w, http.StatusOK, response{Job: job})
}

// createJob handles POST /jobs (admin).
// Body: { title, salary?, equity?, companyHandle }
func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var input core.JobInput
	if !decodeJSON(w, r, &input) {
		return
	}

	var missing []string
	if input.Title == "" {
		missing = append(missing, "title is required")
	}
	if input.CompanyHandle == "" {
		missing = append(missing, "companyHandle is required")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, missing)
		return
	}

	job, err := h.jobs.Create(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Job *core.Job `json:"job"`
	}
	writeJSON(w, http.StatusCreated, response{Job: job})
}

// updateJob handles PATCH /jobs/{id} (admin).
// Body: any subset of { title, salary, equity }
func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	var patch core.JobUpdate
	if !decodeJSON(w, r, &patch) {
		return
	}

	job, err := h.jobs.Update(r.Context(), id, patch)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Job *core.Job `json:"job"`
	}
	writeJSON(w, http.StatusOK, response{Job: job})
}

// deleteJob handles DELETE /jobs/{id} (admin).
func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	if err := h.jobs.Remove(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Deleted int `json:"deleted"`
	}
	writeJSON(w, http.StatusOK, response{Deleted: id})
}
