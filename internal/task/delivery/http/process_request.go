package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-task-scheduler/internal/model"
	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/pkg/log"
)

// jsonEnvelopeBytes is the room left for the JSON object around the text.
const jsonEnvelopeBytes = 4 << 10

// bindJSON binds the body, reading at most twice the text limit (escaping)
// plus the envelope. An oversized body is task.ErrInputTooLarge.
func (h *handler) bindJSON(c *gin.Context, obj any) error {
	if h.maxFileBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 2*h.maxFileBytes+jsonEnvelopeBytes)
	}

	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return task.ErrInputTooLarge
		}
		return err
	}
	return nil
}

// processExtractReq binds and validates the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := h.bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := h.bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFileReq reads the uploaded .txt file from the "file" form field.
func (h *handler) processFileReq(c *gin.Context) (extractReq, error) {
	var req extractReq

	fh, err := c.FormFile("file")
	if err != nil {
		return req, err
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".txt") {
		return req, task.ErrUnsupportedFile
	}
	if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
		return req, task.ErrInputTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return req, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return req, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return req, task.ErrEmptyFile
	}

	req.Text = string(data)
	return req, req.validate()
}

// scope builds the request scope from the gin context.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		RequestID: log.RequestID(c.Request.Context()),
		Source:    model.SourceHTTP,
	}
}
