package server

import (
	"net/http"

	"github.com/ozgarage/workshop-tracker/constants"
	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
	"github.com/ozgarage/workshop-tracker/internal/inspection"
	"github.com/ozgarage/workshop-tracker/internal/sms"
)

type printRequest struct {
	Registration string `json:"registration"`
	Items        []struct {
		Item      string `json:"item"`
		Completed bool   `json:"completed"`
		Issue     string `json:"issue"`
	} `json:"items"`
}

type printResponse struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

// handlePrintChecklist renders the inspection checklist PDF. With no items in
// the request it prints the blank default checklist.
func (s *Server) handlePrintChecklist(w http.ResponseWriter, r *http.Request) {
	var req printRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	items := inspection.DefaultChecklist()
	if len(req.Items) > 0 {
		items = make([]entity.InspectionItem, 0, len(req.Items))
		for _, it := range req.Items {
			code, ok := constants.CanonicalizeIssue(it.Issue)
			if !ok {
				writeError(w, common.InvalidArgumentError("unknown issue code: "+it.Issue))
				return
			}
			items = append(items, entity.InspectionItem{
				Item:      it.Item,
				Completed: it.Completed,
				Issue:     code,
			})
		}
	}

	path, pages, err := s.printer.PrintChecklist(req.Registration, items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, printResponse{Path: path, Pages: pages})
}

type smsRequest struct {
	Registration string `json:"registration"`
	Template     string `json:"template"`
}

type smsResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleSendSMS(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	vehicle, ok := s.vehicles.Get(req.Registration)
	if !ok {
		writeError(w, common.NotFoundError("vehicle not found: "+req.Registration))
		return
	}

	message, err := s.smsSvc.Notify(r.Context(), vehicle, sms.Template(req.Template))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, smsResponse{Message: message})
}
