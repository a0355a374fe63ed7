package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequest(t *testing.T, inboundID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if inboundID != "" {
		c.Request.Header.Set(Header, inboundID)
	}
	Middleware()(c)
	return c, rec
}

func TestMiddlewareKeepsInboundID(t *testing.T) {
	c, rec := runRequest(t, "client-supplied-id")

	assert.Equal(t, "client-supplied-id", Value(c))
	assert.Equal(t, "client-supplied-id", rec.Header().Get(Header))
}

func TestMiddlewareMintsUUIDWhenAbsent(t *testing.T) {
	c, rec := runRequest(t, "")

	id := Value(c)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, rec.Header().Get(Header))
}

func TestValueWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, Value(c))
}
