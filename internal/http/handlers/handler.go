package handlers

import (
	"errors"
	"net/http"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/http/api"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/logger"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/repository"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Tasks *service.TaskService
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Tasks: service.NewTaskService(repository.NewTaskRepository(db)),
	}
}

// taskError maps service and store failures to the envelope. Anything not
// recognized is a storage problem: logged here, reported only as internal.
func taskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		api.Fail(c, http.StatusNotFound, api.KindNotFound, "task not found")
	case errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrDescriptionTooLong):
		api.Fail(c, http.StatusBadRequest, api.KindValidation, err.Error())
	default:
		logger.Error("task operation failed", "path", c.FullPath(), "error", err)
		api.Fail(c, http.StatusInternalServerError, api.KindInternal, "internal error")
	}
}
