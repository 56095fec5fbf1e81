package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"clockinout/internal/http/api"
	"clockinout/internal/http/handlers"
	"clockinout/internal/lib/sl"
	repo "clockinout/internal/repository"
	usersvc "clockinout/internal/service/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type userService interface {
	Register(ctx context.Context, input api.UserRegister) (*api.UserSchema, error)
	Login(ctx context.Context, input api.UserLogin) (string, error)
	GetAll(ctx context.Context) ([]api.UserSchema, error)
	GetByID(ctx context.Context, id int) (*api.UserSchema, error)
	GetByUsername(ctx context.Context, username string) (*api.UserSchema, error)
	Update(ctx context.Context, id int, input api.UserUpdate) (*api.UserSchema, error)
	Delete(ctx context.Context, id int) error
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.GetAll"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.GetAll(r.Context())
	if err != nil {
		log.Error("error while retrieving users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, users)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.GetByID"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, user)
}

func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.GetByUsername"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")
	if username == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "username is required"))
		return
	}

	user, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found", slog.String("username", username))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, user)
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.UserRegister
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)
		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	user, err := h.service.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			log.Info("duplicate registration", slog.String("username", input.Username))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeUserExists, err.Error()))
			return
		}
		log.Error("error while registering user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("user registered", slog.Int("id", user.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input api.UserLogin
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)
		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	token, err := h.service.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, usersvc.ErrInvalidCredentials) {
			log.Info("login rejected", slog.String("username", input.Username))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, err.Error()))
			return
		}
		log.Error("error while logging in", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.LoginResponse{Token: token})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	var input api.UserUpdate
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)
		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	user, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			log.Info("user not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
		case errors.Is(err, repo.ErrUserExists):
			log.Info("username or email taken", slog.Int("id", id))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeUserExists, err.Error()))
		default:
			log.Error("error while updating user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	render.JSON(w, r, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Delete"
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
			log.Info("user not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while deleting user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.NoContent(w, r)
}
