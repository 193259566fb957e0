package handlers

import (
	"net/http"
	"strconv"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/domain"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/http/api"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type taskListData struct {
	Tasks []*domain.Task `json:"tasks"`
}

type messageData struct {
	Message string `json:"message"`
}

// Ownership is already settled when these handlers run: RequireAuth and
// RequireOwner guard the whole group, so the :user_id segment equals the
// authenticated identity. Request bodies never supply the owner.

func (h *Handler) ListTasks(c *gin.Context) {
	status, ok := domain.ParseStatusFilter(c.Query("status"))
	if !ok {
		api.Fail(c, http.StatusBadRequest, api.KindValidation, "status must be one of: all, pending, completed")
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), c.Param("user_id"), status)
	if err != nil {
		taskError(c, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	api.OK(c, http.StatusOK, taskListData{Tasks: tasks})
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, api.KindValidation, "invalid request body")
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), c.Param("user_id"), req.Title, req.Description)
	if err != nil {
		taskError(c, err)
		return
	}

	api.OK(c, http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), c.Param("user_id"), id)
	if err != nil {
		taskError(c, err)
		return
	}

	api.OK(c, http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req domain.TaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, api.KindValidation, "invalid request body")
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), c.Param("user_id"), id, req)
	if err != nil {
		taskError(c, err)
		return
	}

	api.OK(c, http.StatusOK, task)
}

func (h *Handler) ToggleTaskComplete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.ToggleComplete(c.Request.Context(), c.Param("user_id"), id)
	if err != nil {
		taskError(c, err)
		return
	}

	api.OK(c, http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), c.Param("user_id"), id); err != nil {
		taskError(c, err)
		return
	}

	api.OK(c, http.StatusOK, messageData{Message: "Task deleted successfully"})
}

// taskID parses the :id segment. A non-numeric id cannot match any record,
// so it reports not_found rather than a validation error.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		api.Fail(c, http.StatusNotFound, api.KindNotFound, "task not found")
		return 0, false
	}
	return id, true
}
