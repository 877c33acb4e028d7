package automobile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ferdiebergado/autokit/internal/pkg/message"
	"github.com/ferdiebergado/autokit/internal/pkg/web"
	"github.com/ferdiebergado/autokit/internal/platform/broker"
)

// Service is the interface consumed by the HTTP layer.
type Service interface {
	Create(ctx context.Context, req Request) (uuid.UUID, error)
	ListActive(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id uuid.UUID) (Response, error)
	FindByName(ctx context.Context, name string) ([]Response, error)
	FindByColor(ctx context.Context, color string) ([]Response, error)
	FindByNameAndColor(ctx context.Context, name, color string) ([]Response, error)
	FindByColorPrefix(ctx context.Context, prefix string, page, size int) ([]Response, error)
	Update(ctx context.Context, id uuid.UUID, req Request) (Response, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateResponse struct {
	ID uuid.UUID `json:"id"`
}

func (h *Handler) CreateAutomobile(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := &CreateResponse{ID: id}
	web.OK(w, http.StatusCreated, nil, payload)
}

// ListAutomobiles dispatches on the query string: an exact name and/or
// color filter, a paged color-prefix search, or the plain active
// listing when no filter is present.
func (h *Handler) ListAutomobiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name, color, prefix := query.Get("name"), query.Get("color"), query.Get("colorStartsWith")

	var (
		automobiles []Response
		err         error
	)

	switch {
	case prefix != "":
		page, size, perr := parsePaging(query.Get("page"), query.Get("size"))
		if perr != nil {
			web.RespondBadRequest(w, perr, message.InvalidInput, nil)
			return
		}
		automobiles, err = h.svc.FindByColorPrefix(r.Context(), prefix, page, size)
	case name != "" && color != "":
		automobiles, err = h.svc.FindByNameAndColor(r.Context(), name, color)
	case name != "":
		automobiles, err = h.svc.FindByName(r.Context(), name)
	case color != "":
		automobiles, err = h.svc.FindByColor(r.Context(), color)
	default:
		automobiles, err = h.svc.ListActive(r.Context())
	}

	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &automobiles)
}

func (h *Handler) GetAutomobile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &a)
}

func (h *Handler) UpdateAutomobile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	a, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &a)
}

func (h *Handler) DeleteAutomobile(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAllAutomobiles(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAll(r.Context()); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id: %w", err)
	}
	return id, nil
}

func parsePaging(pageStr, sizeStr string) (page, size int, err error) {
	page, err = strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		return 0, 0, fmt.Errorf("page must be a non-negative integer: %q", pageStr)
	}

	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return 0, 0, fmt.Errorf("size must be a positive integer: %q", sizeStr)
	}

	return page, size, nil
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, message.AutomobileMissing, nil)
	case errors.Is(err, ErrConstraintViolation):
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
	case errors.Is(err, broker.ErrPublishFailed):
		web.RespondInternalServerError(w, err)
	default:
		web.RespondInternalServerError(w, err)
	}
}
