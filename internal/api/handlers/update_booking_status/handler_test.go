package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housnkuh/booking-service/internal/api/middleware"
	"github.com/housnkuh/booking-service/internal/service/bookings"
	"github.com/housnkuh/booking-service/internal/service/bookings/models"
)

type stubService struct {
	err     error
	lastID  int64
	lastReq *models.UpdateStatusRequest
}

func (s *stubService) UpdateStatus(_ context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.lastID = bookingID
	s.lastReq = req
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(t *testing.T, bookingID, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", strings.NewReader(body))
	req.Header.Set("X-User-ID", "7")
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	return req
}

func serve(svc *stubService, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler := NewHandler(svc, nopLogger{})
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("valid transition returns no content", func(t *testing.T) {
		svc := &stubService{}

		rec := serve(svc, newRequest(t, "5", `{"status":"confirmed","assignedUnitIds":["regal-s-01"]}`))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, int64(5), svc.lastID)
		require.NotNil(t, svc.lastReq)
		assert.Equal(t, int64(7), svc.lastReq.UserID)
		assert.Equal(t, "confirmed", svc.lastReq.Status)
		assert.Equal(t, []string{"regal-s-01"}, svc.lastReq.AssignedUnitIDs)
	})

	t.Run("invalid booking id", func(t *testing.T) {
		rec := serve(&stubService{}, newRequest(t, "abc", `{"status":"confirmed"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(&stubService{}, newRequest(t, "5", `{"status":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing booking maps to 404", func(t *testing.T) {
		svc := &stubService{err: bookings.ErrBookingNotFound}

		rec := serve(svc, newRequest(t, "5", `{"status":"confirmed"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unrecognized status maps to 400", func(t *testing.T) {
		svc := &stubService{err: bookings.ErrInvalidStatus}

		rec := serve(svc, newRequest(t, "5", `{"status":"archived"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("disallowed transition maps to 409", func(t *testing.T) {
		svc := &stubService{err: bookings.ErrInvalidTransition}

		rec := serve(svc, newRequest(t, "5", `{"status":"pending"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		svc := &stubService{err: bookings.ErrInternal}

		rec := serve(svc, newRequest(t, "5", `{"status":"confirmed"}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
