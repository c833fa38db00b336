package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestCORS_EmptyAllowlistOpensToAnyOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/v1/health", nil)
	c.Request.Header.Set("Origin", "http://example.com")

	CORS(nil)(c)

	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.False(t, c.IsAborted())
}

func TestCORS_AllowlistEchoesKnownOriginOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := CORS([]string{"http://ui.local"})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/v1/health", nil)
	c.Request.Header.Set("Origin", "http://ui.local")
	handler(c)
	require.Equal(t, "http://ui.local", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Origin", rec.Header().Get("Vary"))

	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/v1/health", nil)
	c.Request.Header.Set("Origin", "http://evil.local")
	handler(c)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodOptions, "/api/v1/chat/ask", nil)

	CORS(nil)(c)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusNoContent, rec.Code)
}
