package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/pkg/response"
)

// writeError translates domain/use-case errors into HTTP responses.
// Unknown errors are reported as 500 without leaking details.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrInputTooLarge):
		response.HTTPError(c, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, task.ErrCalendarNotConfigured):
		response.HTTPError(c, http.StatusServiceUnavailable, err)
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyFile),
		errors.Is(err, task.ErrUnsupportedFile):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// writeRequestError reports a request that could not be read or bound.
func (h *handler) writeRequestError(c *gin.Context, err error) {
	if errors.Is(err, task.ErrInputTooLarge) {
		response.HTTPError(c, http.StatusRequestEntityTooLarge, err)
		return
	}
	response.Error(c, err, nil)
}
