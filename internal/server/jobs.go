package server

import (
	"net/http"
	"time"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type jobRequest struct {
	Registration  string `json:"registration"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date,omitempty"` // YYYY-MM-DD; empty means a week out
}

func (s *Server) handleAddJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var scheduled time.Time
	if req.ScheduledDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			writeError(w, common.InvalidArgumentError("scheduled_date must be YYYY-MM-DD"))
			return
		}
		scheduled = parsed
	}

	job, err := s.jobs.Add(entity.Job{
		Registration: req.Registration,
		Description:  req.Description,
		ScheduledAt:  scheduled,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if registration := r.URL.Query().Get("registration"); registration != "" {
		writeJSON(w, http.StatusOK, s.jobs.ListForVehicle(registration))
		return
	}
	writeJSON(w, http.StatusOK, s.jobs.List())
}
