package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aghadi/aghadi-api/pkg/cl/logger"
	"github.com/aghadi/aghadi-api/pkg/cl/validation"
	"github.com/go-chi/chi/v5"
)

const (
	contactPath        = "/api/contact"
	maxBodyBytes       = 1 << 20
	serverErrorMessage = "Server error"
)

// Handler exposes the contact service over HTTP.
type Handler struct {
	service Service
	log     logger.Logger
}

// NewHandler creates a new contact handler.
func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Start initializes the handler.
func (h *Handler) Start(ctx context.Context) error {
	h.log.Info("Contact handler started")
	return nil
}

// RegisterRoutes registers the contact routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	h.log.Info("Registering contact routes")

	r.Post(contactPath, h.HandleCreate)
	r.Get(contactPath, h.HandleList)
}

// HandleCreate stores a submission and echoes what was sent.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// An unreadable body is handled like an empty one and fails validation.
	body, _ := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	in := ParseSubmissionInput(body)

	id, err := h.service.CreateSubmission(r.Context(), in)
	if err != nil {
		var verrs validation.ValidationErrors
		if errors.As(err, &verrs) {
			h.log.Debugf("Rejected contact submission: %v", verrs)
			h.jsonResponse(w, http.StatusBadRequest, response{Message: requiredFieldsMessage})
			return
		}
		h.log.Errorf("POST %s error: %v", contactPath, err)
		h.jsonResponse(w, http.StatusInternalServerError, response{Message: serverErrorMessage})
		return
	}

	h.log.Infof("Contact submission %d received", id)
	h.jsonResponse(w, http.StatusOK, response{Success: true, Data: in.Echo(id)})
}

// HandleList returns every submission, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.ListSubmissions(r.Context())
	if err != nil {
		h.log.Errorf("GET %s error: %v", contactPath, err)
		h.jsonResponse(w, http.StatusInternalServerError, response{Message: serverErrorMessage})
		return
	}

	h.jsonResponse(w, http.StatusOK, response{Success: true, Data: subs})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Errorf("Cannot encode response: %v", err)
	}
}
