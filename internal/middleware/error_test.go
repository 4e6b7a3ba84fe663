package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", handler)
	return r
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestErrorHandlerRendersAttachedError(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		c.Status(http.StatusBadGateway)
		c.Error(errors.New("upstream unavailable"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"upstream unavailable"}`, w.Body.String())
}

func TestErrorHandlerDefaultsTo500(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		c.Error(errors.New("something broke"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"something broke"}`, w.Body.String())
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	r := newTestRouter(func(c *gin.Context) {
		c.Error(errors.New("ignored"))
		c.JSON(http.StatusConflict, gin.H{"error": "already handled"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"already handled"}`, w.Body.String())
}
