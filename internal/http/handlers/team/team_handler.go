package team

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

type teamService interface {
	Create(ctx context.Context, name string) (*api.TeamSchema, error)
	GetAll(ctx context.Context) ([]api.TeamSchema, error)
	GetByID(ctx context.Context, id int) (*api.TeamDetailsSchema, error)
	Update(ctx context.Context, id int, name string) (*api.TeamSchema, error)
	Delete(ctx context.Context, id int) error
	AddMember(ctx context.Context, teamID, userID int) error
	RemoveMember(ctx context.Context, teamID, userID int) error
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

func (h *TeamHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.GetAll"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	teams, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error("error while retrieving teams", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, teams)
}

func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.GetByID"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	team, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving team", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, team)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	input, ok := decodeTeam(w, r, log)
	if !ok {
		return
	}

	team, err := h.service.Create(r.Context(), input.Name)
	if err != nil {
		log.Error("error while saving team", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("team created", slog.Int("id", team.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, team)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	input, ok := decodeTeam(w, r, log)
	if !ok {
		return
	}

	team, err := h.service.Update(r.Context(), id, input.Name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while updating team", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, team)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Delete"
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
			log.Info("team not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while deleting team", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.NoContent(w, r)
}

func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.AddMember"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	teamID, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.service.AddMember(r.Context(), teamID, userID); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("team not found", slog.Int("id", teamID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, repo.ErrMemberExists):
			log.Info("duplicate membership", slog.Int("team_id", teamID), slog.Int("user_id", userID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeMemberExists, err.Error()))
		default:
			log.Error("error while adding team member", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("member added", slog.Int("team_id", teamID), slog.Int("user_id", userID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"status": "added"})
}

func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.RemoveMember"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	teamID, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(r.Context(), teamID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("team or membership not found", slog.Int("team_id", teamID), slog.Int("user_id", userID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while removing team member", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.NoContent(w, r)
}

func decodeTeam(w http.ResponseWriter, r *http.Request, log *slog.Logger) (api.TeamWrite, bool) {
	var input api.TeamWrite

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

	return input, true
}
