package handler

import (
	apperrors "RobloxHelper_Service/internal/prc-gateway/errors"
	mockservice "RobloxHelper_Service/internal/prc-gateway/mocks/service"
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/pkg/prc"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestLinkHandler_LinkServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	linked := model.ServerKey{ServerID: 42, Key: "secret-key", CreatedAt: time.Now(), UpdatedAt: time.Now()}

	testCases := []struct {
		name           string
		body           any
		setupMocks     func(mockService *mockservice.MockLinkService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Server Linked",
			body: map[string]string{"key": "secret-key"},
			setupMocks: func(mockService *mockservice.MockLinkService) {
				mockService.EXPECT().LinkServer(gomock.Any(), int64(42), "secret-key").Return(linked, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"server_id":42`,
		},
		{
			name:           "Error Validation Failed",
			body:           map[string]string{"key": ""},
			setupMocks:     func(mockService *mockservice.MockLinkService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Key field is required"`,
		},
		{
			name: "Error Server Already Linked",
			body: map[string]string{"key": "secret-key"},
			setupMocks: func(mockService *mockservice.MockLinkService) {
				mockService.EXPECT().LinkServer(gomock.Any(), int64(42), "secret-key").Return(model.ServerKey{}, apperrors.ErrServerAlreadyLinked)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Server already linked"`,
		},
		{
			name: "Error Internal Server Error",
			body: map[string]string{"key": "secret-key"},
			setupMocks: func(mockService *mockservice.MockLinkService) {
				mockService.EXPECT().LinkServer(gomock.Any(), int64(42), "secret-key").Return(model.ServerKey{}, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal Server Error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockLinkService(ctrl)
			tc.setupMocks(mockService)

			handler := NewLinkHandler(mockService, NewLogger(zap.NewNop()))
			w, c := setupTestContext(t, http.MethodPost, "/servers/42/link", jsonBody(tc.body), "42")

			handler.LinkServer()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
			assert.NotContains(t, w.Body.String(), "secret-key")
		})
	}
}

func TestLinkHandler_RelinkServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockLinkService(ctrl)
	mockService.EXPECT().RelinkServer(gomock.Any(), int64(42), "rotated").Return(model.ServerKey{ServerID: 42, Key: "rotated"}, nil)

	handler := NewLinkHandler(mockService, NewLogger(zap.NewNop()))
	w, c := setupTestContext(t, http.MethodPut, "/servers/42/link", jsonBody(map[string]string{"key": "rotated"}), "42")

	handler.RelinkServer()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"server_id":42`)
}

func TestLinkHandler_UnlinkServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		serverID       string
		setupMocks     func(mockService *mockservice.MockLinkService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			serverID: "42",
			setupMocks: func(mockService *mockservice.MockLinkService) {
				mockService.EXPECT().UnlinkServer(gomock.Any(), int64(42)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Server unlinked"`,
		},
		{
			name:     "Error Not Linked",
			serverID: "42",
			setupMocks: func(mockService *mockservice.MockLinkService) {
				mockService.EXPECT().UnlinkServer(gomock.Any(), int64(42)).Return(prc.ErrServerLinkNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"API Key not found"`,
		},
		{
			name:           "Error Invalid server id",
			serverID:       "0",
			setupMocks:     func(mockService *mockservice.MockLinkService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid server id"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mockservice.NewMockLinkService(ctrl)
			tc.setupMocks(mockService)

			handler := NewLinkHandler(mockService, NewLogger(zap.NewNop()))
			w, c := setupTestContext(t, http.MethodDelete, "/servers/"+tc.serverID+"/link", nil, tc.serverID)

			handler.UnlinkServer()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
