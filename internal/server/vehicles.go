package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type lookupRequest struct {
	Plate      string `json:"plate"`
	State      string `json:"state"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	owner := entity.OwnerDetails{Name: req.OwnerName, Phone: req.OwnerPhone}
	vehicle, err := s.vehicles.LookupAndMerge(r.Context(), req.Plate, req.State, owner)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicle == nil {
		writeError(w, common.NotFoundError("no vehicle details returned for this plate and state"))
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleListVehicles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.vehicles.List())
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	registration := chi.URLParam(r, "registration")
	vehicle, ok := s.vehicles.Get(registration)
	if !ok {
		writeError(w, common.NotFoundError("vehicle not found: "+registration))
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleSaveVehicle(w http.ResponseWriter, r *http.Request) {
	var v entity.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, err)
		return
	}

	saved, err := s.vehicles.Save(r.Context(), v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleExportVehicles(w http.ResponseWriter, _ *http.Request) {
	data, err := s.exports.ExportVehiclesXLSX(s.vehicles.List())
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("vehicles-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
