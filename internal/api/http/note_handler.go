package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentacar-crm/internal/service"
)

// NoteHandler exposes the notes sub-resource. Every operation answers with
// the whole updated booking.
type NoteHandler struct {
	noteSvc service.NoteService
}

func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

type noteRequest struct {
	Text      string `json:"text"`
	AgentID   string `json:"agentId,omitempty"`
	AgentName string `json:"agentName,omitempty"`
}

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]
	var req noteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.noteSvc.AddNote(r.Context(), bookingID, req.Text, req.AgentID, req.AgentName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"booking": booking})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req noteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.noteSvc.UpdateNote(r.Context(), vars["id"], vars["noteId"], req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": booking})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	booking, err := h.noteSvc.DeleteNote(r.Context(), vars["id"], vars["noteId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": booking})
}
