package timeentry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clockinout/internal/http/api"
	"clockinout/internal/http/handlers"
	"clockinout/internal/http/handlers/mocks"
	"clockinout/internal/http/handlers/timeentry"
	repo "clockinout/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// GetAll

func TestTimeEntryHandler_GetAll_Success(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/timeentries", nil)
	w := httptest.NewRecorder()

	expected := []api.TimeEntrySchema{
		{ID: 1, UserID: 7, ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
		{ID: 2, UserID: 8, ClockInTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	mockService.On("GetAll", mock.Anything).Return(expected, nil)

	h.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.TimeEntrySchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
}

func TestTimeEntryHandler_GetAll_InternalError(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/timeentries", nil)
	w := httptest.NewRecorder()

	mockService.On("GetAll", mock.Anything).Return(nil, errors.New("db error"))

	h.GetAll(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// GetByID

func TestTimeEntryHandler_GetByID_Success(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/timeentries/5", nil)
	req = withURLParams(req, map[string]string{"id": "5"})
	w := httptest.NewRecorder()

	expected := &api.TimeEntrySchema{ID: 5, UserID: 7, ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	mockService.On("GetByID", mock.Anything, 5).Return(expected, nil)

	h.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.TimeEntrySchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestTimeEntryHandler_GetByID_BadID(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/timeentries/abc", nil)
	req = withURLParams(req, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestTimeEntryHandler_GetByID_NotFound(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/timeentries/5", nil)
	req = withURLParams(req, map[string]string{"id": "5"})
	w := httptest.NewRecorder()

	mockService.On("GetByID", mock.Anything, 5).Return(nil, repo.ErrNotFound)

	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// GetByUserID

func TestTimeEntryHandler_GetByUserID_Success(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/timeentries/user/7", nil)
	req = withURLParams(req, map[string]string{"userId": "7"})
	w := httptest.NewRecorder()

	expected := []api.TimeEntrySchema{
		{ID: 1, UserID: 7, ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	mockService.On("GetByUserID", mock.Anything, 7).Return(expected, nil)

	h.GetByUserID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.TimeEntrySchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
}

// Create

func TestTimeEntryHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	input := api.TimeEntryWrite{
		UserID:      7,
		ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/timeentries", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.TimeEntrySchema{ID: 1, UserID: 7, ClockInTime: input.ClockInTime}
	mockService.On("Add", mock.Anything, input).Return(expected, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.TimeEntrySchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestTimeEntryHandler_Create_BadJSON(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/timeentries", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestTimeEntryHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	// missing user_id and clock_in_time
	req := httptest.NewRequest(http.MethodPost, "/timeentries", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestTimeEntryHandler_Create_ClockOutBeforeClockIn(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	clockIn := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(-8 * time.Hour)
	input := api.TimeEntryWrite{
		UserID:       7,
		ClockInTime:  clockIn,
		ClockOutTime: &clockOut,
	}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/timeentries", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	mockService.AssertNotCalled(t, "Add")
}

func TestTimeEntryHandler_Create_InternalError(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	input := api.TimeEntryWrite{
		UserID:      7,
		ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/timeentries", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Add", mock.Anything, input).Return(nil, errors.New("db error"))

	h.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Update

func TestTimeEntryHandler_Update_Success(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	input := api.TimeEntryWrite{
		UserID:      8,
		ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPut, "/timeentries/5", bytes.NewReader(body))
	req = withURLParams(req, map[string]string{"id": "5"})
	w := httptest.NewRecorder()

	expected := &api.TimeEntrySchema{ID: 5, UserID: 8, ClockInTime: input.ClockInTime}
	mockService.On("Update", mock.Anything, 5, input).Return(expected, nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.TimeEntrySchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestTimeEntryHandler_Update_NotFound(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	input := api.TimeEntryWrite{
		UserID:      7,
		ClockInTime: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPut, "/timeentries/99", bytes.NewReader(body))
	req = withURLParams(req, map[string]string{"id": "99"})
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, 99, input).Return(nil, repo.ErrNotFound)

	h.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// Delete

func TestTimeEntryHandler_Delete_Success(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodDelete, "/timeentries/5", nil)
	req = withURLParams(req, map[string]string{"id": "5"})
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, 5).Return(nil)

	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTimeEntryHandler_Delete_NotFound(t *testing.T) {
	mockService := mocks.NewMockTimeEntryService(t)
	h := timeentry.NewTimeEntryHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodDelete, "/timeentries/99", nil)
	req = withURLParams(req, map[string]string{"id": "99"})
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, 99).Return(repo.ErrNotFound)

	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}
