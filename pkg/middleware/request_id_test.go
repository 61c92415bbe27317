package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	existing := uuid.NewString()
	testCases := []struct {
		name        string
		headerValue string
		keep        bool
	}{
		{name: "Generated when missing"},
		{name: "Kept when valid", headerValue: existing, keep: true},
		{name: "Replaced when not a uuid", headerValue: "abc"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			var seen string
			router.GET("/test", RequestID(), func(ctx *gin.Context) {
				seen = ctx.GetString(ContextRequestID)
				ctx.Status(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.headerValue != "" {
				req.Header.Set(HeaderRequestID, tc.headerValue)
			}
			router.ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, seen, got)
			if tc.keep {
				assert.Equal(t, tc.headerValue, got)
			} else {
				assert.NotEqual(t, tc.headerValue, got)
			}
		})
	}
}
