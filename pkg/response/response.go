package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope for every JSON endpoint.
// RequestID is propagated from the request-id middleware so clients
// can correlate a response with server logs.
type APIResponse[T any] struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      T         `json:"data,omitempty"`
	Meta      any       `json:"meta,omitempty"`
	Error     any       `json:"error,omitempty"`
}

// Send writes the envelope with its own status code.
func (r APIResponse[T]) Send(ctx *gin.Context) {
	ctx.JSON(r.Status, r)
}

func base[T any](ctx *gin.Context, status int, ok bool, message string) APIResponse[T] {
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   ok,
		Message:   message,
	}
}

// Success builds a successful envelope. A zero status defaults to 200.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta any) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	r := base[T](ctx, status, true, message)
	r.Data = data
	r.Meta = meta
	return r
}

// Error builds a failed envelope. err carries machine-readable details
// (typically a map[field]message from validation). A zero status
// defaults to 400.
func Error[T any](ctx *gin.Context, status int, message string, err any) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	r := base[T](ctx, status, false, message)
	r.Error = err
	return r
}
