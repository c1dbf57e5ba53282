package http

import (
	"github.com/gin-gonic/gin"

	"calendar-task-scheduler/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from text
// @Description Splits the text into sentences and returns every task-like sentence with a resolvable due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body     extractReq true "Free-form text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Input too large"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ExtractFile godoc
// @Summary     Extract tasks from a text file
// @Description Same as Extract, reading the text from an uploaded .txt file.
// @Tags        Tasks
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file     true "Task list (.txt)"
// @Success     200  {object}  extractResp
// @Failure     400  {object}  response.Resp "Bad Request"
// @Failure     413  {object}  response.Resp "Input too large"
// @Failure     500  {object}  response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/extract/file [POST]
func (h *handler) ExtractFile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFileReq(c)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Schedule godoc
// @Summary     Schedule tasks in Google Calendar
// @Description Extracts tasks and creates one calendar event per task at the configured hour on its due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body     scheduleReq true "Free-form text and optional calendar id"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Input too large"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
