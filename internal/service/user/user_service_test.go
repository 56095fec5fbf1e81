package user_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"clockinout/internal/cache"
	"clockinout/internal/http/api"
	"clockinout/internal/lib/sl"
	"clockinout/internal/models"
	repo "clockinout/internal/repository"
	"clockinout/internal/service/mocks"
	"clockinout/internal/service/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test_secret_key"

func newService(t *testing.T, store cache.Store) (*user.UserService, *mocks.UserProvider) {
	users := mocks.NewUserProvider(t)
	svc := user.NewUserService(sl.NewDiscardLogger(), mocks.StubManager{}, users, store, time.Minute,
		user.TokenConfig{Secret: testSecret, TTL: time.Hour})
	return svc, users
}

func seed(t *testing.T, store *cache.MemoryStore, key string, value any) {
	data, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), key, data, time.Minute))
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	seed(t, store, "users:all", []api.UserSchema{})

	var saved *models.User
	users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.User)
		}).
		Return(1, nil).Once()

	got, err := svc.Register(ctx, api.UserRegister{
		Username:  "alice",
		Password:  "S3cret!pw",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "alice", got.Username)

	require.NotNil(t, saved)
	assert.NotEqual(t, "S3cret!pw", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("S3cret!pw")))

	assert.False(t, store.Contains("users:all"))
}

func TestUserService_Register_DuplicateLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	seed(t, store, "users:all", []api.UserSchema{})

	users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(0, repo.ErrUserExists).Once()

	_, err := svc.Register(ctx, api.UserRegister{
		Username:  "alice",
		Password:  "S3cret!pw",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	})

	assert.ErrorIs(t, err, repo.ErrUserExists)
	assert.True(t, store.Contains("users:all"))
}

func TestUserService_Login_Success(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	hash, err := bcrypt.GenerateFromPassword([]byte("S3cret!pw"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByUsername", mock.Anything, "alice").
		Return(&models.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil).Once()

	token, err := svc.Login(ctx, api.UserLogin{Username: "alice", Password: "S3cret!pw"})

	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, "alice", claims["username"])
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	hash, err := bcrypt.GenerateFromPassword([]byte("S3cret!pw"), bcrypt.MinCost)
	require.NoError(t, err)

	users.On("GetByUsername", mock.Anything, "alice").
		Return(&models.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil).Once()

	_, err = svc.Login(ctx, api.UserLogin{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, repo.ErrNotFound).Once()

	_, err := svc.Login(ctx, api.UserLogin{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_GetByID_CacheHitSkipsRepository(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, _ := newService(t, store)

	cached := api.UserSchema{ID: 1, Username: "alice", Email: "alice@example.com"}
	seed(t, store, "users:1", cached)

	got, err := svc.GetByID(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, cached, *got)
}

func TestUserService_GetByUsername_ResponseOmitsHash(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	users.On("GetByUsername", mock.Anything, "alice").
		Return(&models.User{ID: 1, Username: "alice", PasswordHash: "$2a$10$abc", Email: "alice@example.com"}, nil).Once()

	got, err := svc.GetByUsername(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	// The cached bytes must not carry the hash either.
	data, err := store.Get(ctx, "users:username:alice")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "$2a$10$abc")
}

func TestUserService_Update_InvalidatesOldAndNewUsernameKeys(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	seed(t, store, "users:1", api.UserSchema{})
	seed(t, store, "users:all", []api.UserSchema{})
	seed(t, store, "users:username:alice", api.UserSchema{})
	seed(t, store, "users:username:alicia", api.UserSchema{})

	users.On("GetByID", mock.Anything, 1).
		Return(&models.User{ID: 1, Username: "alice"}, nil).Once()
	users.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	_, err := svc.Update(ctx, 1, api.UserUpdate{
		Username:  "alicia",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	})

	require.NoError(t, err)
	assert.False(t, store.Contains("users:1"))
	assert.False(t, store.Contains("users:all"))
	assert.False(t, store.Contains("users:username:alice"))
	assert.False(t, store.Contains("users:username:alicia"))
}

func TestUserService_Delete_InvalidatesDerivedKeys(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	svc, users := newService(t, store)

	seed(t, store, "users:1", api.UserSchema{})
	seed(t, store, "users:all", []api.UserSchema{})
	seed(t, store, "users:username:alice", api.UserSchema{})

	users.On("GetByID", mock.Anything, 1).
		Return(&models.User{ID: 1, Username: "alice"}, nil).Once()
	users.On("Delete", mock.Anything, 1).Return(nil).Once()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.False(t, store.Contains("users:1"))
	assert.False(t, store.Contains("users:all"))
	assert.False(t, store.Contains("users:username:alice"))
}
