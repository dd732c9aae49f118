package api

import (
	"encoding/json"
	"net/http"

	"estacioneai/internal/db"
	"estacioneai/internal/errors"
	"estacioneai/internal/service"
)

type ContactHandler struct {
	Service *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func (h *ContactHandler) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Validation("invalid contact data"))
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		writeError(w, errors.Validation("name, email, subject and message are required"))
		return
	}

	msg, err := h.Service.CreateContactMessage(db.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *ContactHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.ListContactMessages())
}
