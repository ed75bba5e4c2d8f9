package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/utils"
)

// TaskHandler defines the interface for the employee task endpoints
type TaskHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type taskHandler struct {
	taskService tasks.TaskService
	now         func() time.Time
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService tasks.TaskService) TaskHandler {
	return &taskHandler{taskService: taskService, now: time.Now}
}

// canManage reports whether the principal may act on tasks of employeeID
func canManage(p *accounts.Principal, employeeID string) bool {
	return p.ID == employeeID || p.HasRole(accounts.RoleCEO, accounts.RoleManager)
}

// Create handles the POST request adding a task. Only ceo and manager may assign
// tasks to someone else.
func (handler *taskHandler) Create(ctx *gin.Context) {
	var request CreateTaskRequest
	if !bindJSON(ctx, &request) {
		return
	}

	principal := principalFrom(ctx)
	employeeID := request.EmployeeID
	if employeeID == "" {
		employeeID = principal.ID
	}
	if !canManage(principal, employeeID) {
		respondError(ctx, "error creating task", accounts.ErrForbidden)
		return
	}

	task, err := handler.taskService.Create(ctx, tasks.CreateRequest{
		EmployeeID:  employeeID,
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
	})
	if err != nil {
		respondError(ctx, "error creating task", err)
		return
	}
	ctx.JSON(http.StatusCreated, newTaskResponse(task, handler.now()))
}

// List handles the GET request listing tasks. Employees below manager only see their own.
func (handler *taskHandler) List(ctx *gin.Context) {
	principal := principalFrom(ctx)
	query := tasks.NewQuery()

	if employeeID := ctx.Query("employeeId"); len(employeeID) > 0 {
		query.EmployeeID = employeeID
	}
	if !principal.HasRole(accounts.RoleCEO, accounts.RoleManager) {
		query.EmployeeID = principal.ID
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondInvalid(ctx, "validation failed", err)
		return
	}

	list, err := handler.taskService.List(ctx, query)
	if err != nil {
		respondError(ctx, "error listing tasks", err)
		return
	}

	now := handler.now()
	listResponse := []TaskResponse{}
	for _, t := range list {
		listResponse = append(listResponse, newTaskResponse(t, now))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// load fetches a task the caller may act on
func (handler *taskHandler) load(ctx *gin.Context, action string) (*tasks.Task, bool) {
	task, err := handler.taskService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, action, err)
		return nil, false
	}
	if !canManage(principalFrom(ctx), task.EmployeeID) {
		respondError(ctx, action, accounts.ErrForbidden)
		return nil, false
	}
	return task, true
}

// GetByID handles the GET request for one task
func (handler *taskHandler) GetByID(ctx *gin.Context) {
	task, ok := handler.load(ctx, "error loading task")
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newTaskResponse(task, handler.now()))
}

// UpdateStatus handles the PATCH request moving a task
func (handler *taskHandler) UpdateStatus(ctx *gin.Context) {
	var request UpdateTaskStatusRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if _, ok := handler.load(ctx, "error updating task"); !ok {
		return
	}

	task, err := handler.taskService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, "error updating task", err)
		return
	}
	ctx.JSON(http.StatusOK, newTaskResponse(task, handler.now()))
}

// DeleteByID handles the DELETE request removing a task
func (handler *taskHandler) DeleteByID(ctx *gin.Context) {
	if _, ok := handler.load(ctx, "error deleting task"); !ok {
		return
	}
	if err := handler.taskService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, "error deleting task", err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
