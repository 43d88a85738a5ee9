package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/notifyd/internal/mocks/api/handlers/stats"
	"github.com/aliskhannn/notifyd/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	return NewHandler(mockService), mockService
}

func TestHandler_GetStats(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().Stats().Return(3, uint32(7))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.Count)
	assert.Equal(t, uint32(7), resp.Data.NextID)
}

func TestHandler_GetAll(t *testing.T) {
	handler, mockService := setupHandler(t)

	notifications := []model.Notification{
		{ID: 1, AppName: "Mail", Summary: "New message", Body: "You have mail", ExpireTimeout: -1},
		{ID: 2, AppName: "Chat", Summary: "ping", ExpireTimeout: 0},
	}
	mockService.EXPECT().ListNotifications().Return(notifications)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    []model.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, notifications, resp.Data)
}

func TestHandler_GetAll_Empty(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().ListNotifications().Return([]model.Notification{})

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
