package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,pwd"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func TestToDetails(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, ToDetails(nil))
	})

	t.Run("invalid json", func(t *testing.T) {
		err := bindSample(t, `{"email": `)
		require.Error(t, err)
		assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	})

	t.Run("field errors use json tag names", func(t *testing.T) {
		err := bindSample(t, `{"email":"bad","username":"ab","password":"short"}`)
		require.Error(t, err)

		details := ToDetails(err)
		assert.Equal(t, "must be a valid email", details["email"])
		assert.Equal(t, "must be at least 3 characters long", details["username"])
		assert.Equal(t, "min length 8", details["password"])
	})

	t.Run("valid payload has no details", func(t *testing.T) {
		err := bindSample(t, `{"email":"a@b.co","username":"user1","password":"longenough"}`)
		assert.NoError(t, err)
	})
}
