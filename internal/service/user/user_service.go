package user

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"clockinout/internal/cache"
	"clockinout/internal/http/api"
	"clockinout/internal/models"
	"clockinout/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so login failures do not reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (int, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int) error
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type UserService struct {
	users UserProvider
	trm   service.TransactionManager
	store cache.Store
	log   *slog.Logger
	keys  cache.Keys
	ttl   time.Duration
	token TokenConfig
}

func NewUserService(
	log *slog.Logger,
	trm service.TransactionManager,
	users UserProvider,
	store cache.Store,
	ttl time.Duration,
	token TokenConfig,
) *UserService {
	return &UserService{
		users: users,
		trm:   trm,
		store: store,
		log:   log,
		keys:  cache.NewKeys("users"),
		ttl:   ttl,
		token: token,
	}
}

// Register hashes the password and persists the user. The hash never leaves
// this layer: responses carry the profile fields only.
func (s *UserService) Register(ctx context.Context, input api.UserRegister) (*api.UserSchema, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		id, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, s.store, s.log, s.keys.All())

	return toSchema(user), nil
}

// Login verifies the credentials and issues a signed bearer token.
func (s *UserService) Login(ctx context.Context, input api.UserLogin) (string, error) {
	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.Itoa(user.ID),
		"username": user.Username,
		"exp":      time.Now().Add(s.token.TTL).Unix(),
	})

	signed, err := t.SignedString([]byte(s.token.Secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]api.UserSchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.All(), s.ttl,
		func(ctx context.Context) ([]api.UserSchema, error) {
			users, err := s.users.GetAll(ctx)
			if err != nil {
				return nil, err
			}

			schemas := make([]api.UserSchema, 0, len(users))
			for _, u := range users {
				schemas = append(schemas, *toSchema(u))
			}
			return schemas, nil
		})
}

func (s *UserService) GetByID(ctx context.Context, id int) (*api.UserSchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.ByID(id), s.ttl,
		func(ctx context.Context) (*api.UserSchema, error) {
			user, err := s.users.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return toSchema(user), nil
		})
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*api.UserSchema, error) {
	return cache.GetOrFetch(ctx, s.store, s.log, s.keys.ByField("username", username), s.ttl,
		func(ctx context.Context) (*api.UserSchema, error) {
			user, err := s.users.GetByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			return toSchema(user), nil
		})
}

func (s *UserService) Update(ctx context.Context, id int, input api.UserUpdate) (*api.UserSchema, error) {
	user := &models.User{
		ID:        id,
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	var prevUsername string
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		prevUsername = existing.Username

		return s.users.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	keys := []string{
		s.keys.ByID(id),
		s.keys.All(),
		s.keys.ByField("username", user.Username),
	}
	if prevUsername != user.Username {
		keys = append(keys, s.keys.ByField("username", prevUsername))
	}
	cache.Invalidate(ctx, s.store, s.log, keys...)

	return toSchema(user), nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	var username string
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		existing, err := s.users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		username = existing.Username

		return s.users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	cache.Invalidate(ctx, s.store, s.log,
		s.keys.ByID(id),
		s.keys.All(),
		s.keys.ByField("username", username),
	)

	return nil
}

func toSchema(user *models.User) *api.UserSchema {
	return &api.UserSchema{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
