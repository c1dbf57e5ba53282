package http

import (
	"github.com/gin-gonic/gin"

	"calendar-task-scheduler/internal/task"
	"calendar-task-scheduler/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	ExtractFile(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           task.UseCase
	maxFileBytes int64
}

// New creates a new HTTP handler for the task domain.
// maxFileBytes bounds uploaded text files, 0 means unbounded.
func New(l log.Logger, uc task.UseCase, maxFileBytes int64) Handler {
	return &handler{
		l:            l,
		uc:           uc,
		maxFileBytes: maxFileBytes,
	}
}
