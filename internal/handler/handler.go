package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"named-colors-backend/internal/domain"
)

// maxRequestBody begrenzt die POST-Body-Größe auf 1 MegaByte
const maxRequestBody = 1 << 20

// ColorService definiert den Vertrag, den der Handler von der Service-Schicht erwartet.
type ColorService interface {
	GetAll(ctx context.Context) ([]domain.NamedColor, error)
	GetByName(ctx context.Context, name string) (domain.Color, error)
	Add(ctx context.Context, color domain.NamedColor) (domain.NamedColor, error)
}

// ColorHandler stellt Farb-Endpunkte über HTTP bereit.
type ColorHandler struct {
	service ColorService
	logger  *zap.Logger
}

// NewColorHandler erstellt einen neuen ColorHandler.
func NewColorHandler(svc ColorService, logger *zap.Logger) *ColorHandler {
	return &ColorHandler{service: svc, logger: logger}
}

// GetAll gibt alle bekannten Farben zurück.
func (h *ColorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("alle farben abrufen", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{"interner serverfehler"})
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// GetByName löst einen einzelnen Farbnamen zu seinem RGB-Wert auf.
func (h *ColorHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	c, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody{err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorBody{err.Error()})
		default:
			h.logger.Error("farbe nach name abrufen", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody{"interner serverfehler"})
		}
		return
	}
	writeJSON(w, http.StatusOK, domain.NamedColor{Name: strings.ToLower(name), Color: c})
}

// Create fügt eine neue Farbe hinzu.
// Der Request-Body wird auf maxRequestBody begrenzt.
func (h *ColorHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var nc domain.NamedColor
	if err := json.NewDecoder(r.Body).Decode(&nc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{"ungültiger anfrage-body"})
		return
	}

	created, err := h.service.Add(r.Context(), nc)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrColorExists):
			writeJSON(w, http.StatusConflict, errorBody{err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorBody{err.Error()})
		default:
			h.logger.Error("farbe erstellen", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody{"interner serverfehler"})
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// errorBody ist die einheitliche Fehlerantwort-Struktur.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON setzt den Content-Type-Header und schreibt v als JSON in w.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
