package server

import (
	"net/http"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

func (s *Server) handleListCustomers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.customers.List())
}

func (s *Server) handleSaveCustomer(w http.ResponseWriter, r *http.Request) {
	var c entity.Customer
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, err)
		return
	}

	saved, err := s.customers.Upsert(c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
