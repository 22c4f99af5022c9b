package server

import (
	"net/http"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type invoiceRequest struct {
	CustomerEmail string               `json:"customer_email"`
	Registration  string               `json:"registration"`
	Lines         []entity.InvoiceLine `json:"lines"`
}

type invoiceResponse struct {
	Path string `json:"path"`
}

func (s *Server) handleGenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	path, err := s.invoicing.Generate(r.Context(), req.CustomerEmail, req.Registration, req.Lines)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoiceResponse{Path: path})
}

func (s *Server) handleEmailInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	path, err := s.invoicing.Email(r.Context(), req.CustomerEmail, req.Registration, req.Lines)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, invoiceResponse{Path: path})
}
