package update_room

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

type stubService struct {
	result *models.UpdateRoomResult
	err    error
	got    *models.UpdateRoomRequest
}

func (s *stubService) Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.UpdateRoomResult, error) {
	s.got = req
	return s.result, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *stubService, body string) handlers.StatusResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/rooms/update", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Maintenance(t *testing.T) {
	svc := &stubService{result: &models.UpdateRoomResult{MaintenanceApplied: true, CancelledBookings: 2}}

	resp := doRequest(t, svc, `{"room_id":1,"status":"Maintenance"}`)

	assert.Equal(t, handlers.StatusSuccess, resp.Status)
	assert.Equal(t, "Đã chuyển sang bảo trì và hủy tất cả lịch đặt của phòng này!", resp.Message)
	require.NotNil(t, svc.got.Status)
	assert.Nil(t, svc.got.Name)
}

func TestHandler_PlainUpdate(t *testing.T) {
	svc := &stubService{result: &models.UpdateRoomResult{}}

	resp := doRequest(t, svc, `{"room_id":1,"capacity":50}`)

	assert.Equal(t, "Cập nhật thông tin phòng thành công!", resp.Message)
	assert.Nil(t, svc.got.Status)
	assert.Equal(t, 50, *svc.got.Capacity)
}

func TestHandler_NotFound(t *testing.T) {
	resp := doRequest(t, &stubService{err: rooms.ErrRoomNotFound}, `{"room_id":9}`)

	assert.Equal(t, handlers.StatusError, resp.Status)
	assert.Equal(t, "Không tìm thấy phòng!", resp.Message)
}
