package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilitae/FAC-AmenityService/internal/domain"
	getAvailableSlots "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func timeParse(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

func serve(useCase GetAvailableSlotsUseCase, url string) *httptest.ResponseRecorder {
	handler := NewHandler(useCase, stubLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/amenities/{amenityId}/available-slots", handler.Handle).Methods(http.MethodGet)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))
	return recorder
}

func TestHandle_Success(t *testing.T) {
	useCase := &stubUseCase{
		resp: &getAvailableSlots.Response{
			AmenityID: "pool",
			Mode:      domain.ModeCustomer,
			Slots: []domain.TimeSlot{
				{Time: "06:00", Status: domain.SlotUnavailable},
				{Time: "08:00", Status: domain.SlotAvailable},
			},
		},
	}
	useCase.resp.Date, _ = timeParse("2026-09-07")

	recorder := serve(useCase, "/api/v1/amenities/pool/available-slots?date=2026-09-07")
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "pool", resp.AmenityID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "customer", resp.Mode)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, AvailableSlot{Time: "06:00", Status: "unavailable"}, resp.Slots[0])
	assert.Equal(t, AvailableSlot{Time: "08:00", Status: "available"}, resp.Slots[1])

	// Mode defaults to customer when omitted
	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, domain.ModeCustomer, useCase.lastReq.Mode)
}

func TestHandle_ModeForwarded(t *testing.T) {
	useCase := &stubUseCase{resp: &getAvailableSlots.Response{Mode: domain.ModeFacilityAdmin}}
	useCase.resp.Date, _ = timeParse("2026-09-07")

	recorder := serve(useCase, "/api/v1/amenities/pool/available-slots?date=2026-09-07&mode=facility-admin")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.ModeFacilityAdmin, useCase.lastReq.Mode)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing date", "/api/v1/amenities/pool/available-slots"},
		{"malformed date", "/api/v1/amenities/pool/available-slots?date=07-09-2026"},
		{"unknown mode", "/api/v1/amenities/pool/available-slots?date=2026-09-07&mode=robot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(&stubUseCase{}, tt.url)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestHandle_NotFound(t *testing.T) {
	recorder := serve(&stubUseCase{err: getAvailableSlots.ErrAmenityNotFound},
		"/api/v1/amenities/ghost/available-slots?date=2026-09-07")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandle_InternalError(t *testing.T) {
	recorder := serve(&stubUseCase{err: getAvailableSlots.ErrInternal},
		"/api/v1/amenities/pool/available-slots?date=2026-09-07")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
