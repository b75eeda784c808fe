package note

import (
	"errors"
	"net/http"

	"github.com/hmondejar/notekit/internal/auth"
	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/pkg/web"
)

type Handler struct {
	svc NoteService
}

func NewHandler(svc NoteService) *Handler {
	return &Handler{svc: svc}
}

type NoteRequest struct {
	Name    string `json:"name,omitempty" validate:"required,max=50"`
	Content string `json:"content,omitempty" validate:"required,max=5000"`
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter Filter
	if name := query.Get("name"); name != "" {
		filter.Name = &name
	}
	if userID := query.Get("user"); userID != "" {
		filter.UserID = &userID
	}

	notes, err := h.svc.ListNotes(r.Context(), filter)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondList(w, len(notes), notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	req, err := web.ParamsFromContext[NoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.CreateNote(r.Context(), CreateNoteParams(req), ownerID)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			web.RespondBadRequest(w, err, message.NoteNameTaken, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	web.RespondCreated(w, created)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	callerID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	noteID := r.PathValue("id")
	req, err := web.ParamsFromContext[NoteRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.UpdateNote(r.Context(), noteID, UpdateNoteParams(req), callerID)
	if err != nil {
		h.failNoteWrite(w, err)
		return
	}

	web.RespondOK(w, updated)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	callerID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidToken, nil)
		return
	}

	noteID := r.PathValue("id")
	if err := h.svc.DeleteNote(r.Context(), noteID, callerID); err != nil {
		h.failNoteWrite(w, err)
		return
	}

	web.RespondOK(w, struct{}{})
}

// failNoteWrite maps mutation errors to the API taxonomy. A non-owner write
// answers 401, matching the original behavior of this API.
func (h *Handler) failNoteWrite(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, message.NoteNotFound, nil)
	case errors.Is(err, ErrNotOwner):
		web.RespondUnauthorized(w, err, message.NoteNotOwner, nil)
	case errors.Is(err, ErrDuplicateName):
		web.RespondBadRequest(w, err, message.NoteNameTaken, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
