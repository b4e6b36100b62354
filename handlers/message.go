package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// MessageHandler, iletişim formu mesajları.
type MessageHandler struct {
	messageService services.MessageService
}

// NewMessageHandler, constructor.
func NewMessageHandler(messageService services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit godoc
// POST /api/messages
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := h.messageService.Submit(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, msg)
}

// List godoc
// GET /api/admin/messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messageService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, msgs)
}

// Delete godoc
// DELETE /api/admin/messages/{id}
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}
