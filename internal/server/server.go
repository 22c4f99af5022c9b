// Package server is the thin HTTP layer. Handlers delegate to domain services
// and keep transport concerns (decoding, status mapping) to themselves.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ozgarage/workshop-tracker/internal/export"
	"github.com/ozgarage/workshop-tracker/internal/inspection"
	"github.com/ozgarage/workshop-tracker/internal/services/customers"
	"github.com/ozgarage/workshop-tracker/internal/services/invoicing"
	"github.com/ozgarage/workshop-tracker/internal/services/jobs"
	"github.com/ozgarage/workshop-tracker/internal/services/vehicles"
	"github.com/ozgarage/workshop-tracker/internal/sms"
)

type Server struct {
	vehicles  *vehicles.Service
	customers *customers.Service
	invoicing *invoicing.Service
	jobs      *jobs.Service
	exports   *export.Service
	smsSvc    *sms.Service
	printer   *inspection.Printer
	logger    *slog.Logger
}

func New(
	veh *vehicles.Service,
	cust *customers.Service,
	inv *invoicing.Service,
	jobSvc *jobs.Service,
	exports *export.Service,
	smsSvc *sms.Service,
	printer *inspection.Printer,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		vehicles:  veh,
		customers: cust,
		invoicing: inv,
		jobs:      jobSvc,
		exports:   exports,
		smsSvc:    smsSvc,
		printer:   printer,
		logger:    logger,
	}
}

// Router wires all endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(s.logger))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/lookup", s.handleLookup)

		r.Get("/vehicles", s.handleListVehicles)
		r.Post("/vehicles", s.handleSaveVehicle)
		r.Get("/vehicles/export", s.handleExportVehicles)
		r.Get("/vehicles/{registration}", s.handleGetVehicle)

		r.Get("/customers", s.handleListCustomers)
		r.Post("/customers", s.handleSaveCustomer)

		r.Post("/invoices", s.handleGenerateInvoice)
		r.Post("/invoices/email", s.handleEmailInvoice)

		r.Get("/jobs", s.handleListJobs)
		r.Post("/jobs", s.handleAddJob)

		r.Post("/inspections/print", s.handlePrintChecklist)
		r.Post("/sms", s.handleSendSMS)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
