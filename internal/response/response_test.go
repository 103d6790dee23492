package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	return r
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	r := newEngine()
	r.GET("/ok", func(c *gin.Context) { Success(c, http.StatusOK, gin.H{"status": "ok"}) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.Metadata.RequestID)
	assert.Nil(t, body.Error)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := newEngine()
	r.GET("/ok", func(c *gin.Context) { Success(c, http.StatusOK, nil) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestFailWithFields(t *testing.T) {
	r := newEngine()
	r.POST("/validate", func(c *gin.Context) {
		FailWithFields(c, http.StatusUnprocessableEntity, ErrValidation,
			map[string][]string{"age": {"is required"}}, gin.H{"accepted": false})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/validate", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Data  map[string]bool `json:"data"`
		Error ErrorBody       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrValidation, body.Error.Code)
	assert.Equal(t, GetMessage(ErrValidation), body.Error.Message)
	assert.Equal(t, []string{"is required"}, body.Error.Fields["age"])
	assert.Equal(t, map[string]bool{"accepted": false}, body.Data)
}

func TestGetMessage_Unknown(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred.", GetMessage("NOPE"))
}
