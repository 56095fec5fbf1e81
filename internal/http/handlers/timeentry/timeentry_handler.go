package timeentry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clockinout/internal/http/api"
	"clockinout/internal/http/handlers"
	"clockinout/internal/lib/sl"
	repo "clockinout/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type entryService interface {
	GetAll(ctx context.Context) ([]api.TimeEntrySchema, error)
	GetByID(ctx context.Context, id int) (*api.TimeEntrySchema, error)
	GetByUserID(ctx context.Context, userID int) ([]api.TimeEntrySchema, error)
	Add(ctx context.Context, input api.TimeEntryWrite) (*api.TimeEntrySchema, error)
	Update(ctx context.Context, id int, input api.TimeEntryWrite) (*api.TimeEntrySchema, error)
	Delete(ctx context.Context, id int) error
}

type TimeEntryHandler struct {
	log     *slog.Logger
	service entryService
}

func NewTimeEntryHandler(log *slog.Logger, s entryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		log:     log,
		service: s,
	}
}

func (h *TimeEntryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.timeentry.GetAll"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entries, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error("error while retrieving time entries", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, entries)
}

func (h *TimeEntryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.timeentry.GetByID"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("time entry not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving time entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, entry)
}

func (h *TimeEntryHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.timeentry.GetByUserID"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	entries, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		log.Error("error while retrieving user time entries", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, entries)
}

func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.timeentry.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	input, ok := decodeEntry(w, r, log)
	if !ok {
		return
	}

	entry, err := h.service.Add(r.Context(), input)
	if err != nil {
		log.Error("error while saving time entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("time entry created", slog.Int("id", entry.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, entry)
}

func (h *TimeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.timeentry.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	input, ok := decodeEntry(w, r, log)
	if !ok {
		return
	}

	entry, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("time entry not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while updating time entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, entry)
}

func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.timeentry.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("time entry not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while deleting time entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.NoContent(w, r)
}

// decodeEntry parses and validates the write payload, answering the request
// itself on failure.
func decodeEntry(w http.ResponseWriter, r *http.Request, log *slog.Logger) (api.TimeEntryWrite, bool) {
	var input api.TimeEntryWrite

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return input, false
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)
		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return input, false
	}

	if input.ClockOutTime != nil && input.ClockOutTime.Before(input.ClockInTime) {
		log.Error("clock-out precedes clock-in")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrValidationErr, "clock-out time must be after clock-in time"))
		return input, false
	}

	return input, true
}

