package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"

	"github.com/bellanote/backend/internal/httputil"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/types"
)

type TaskResponse struct {
	Data  *models.Task `json:"data"`
	Error *string      `json:"error"`
}

type TaskListResponse struct {
	Data  []models.Task `json:"data"`
	Error *string       `json:"error"`
}

// TaskEditable are the fields of a task that can be set from requests.
// An empty status defaults to "todo", an empty priority to "medium".
type TaskEditable struct {
	Title       string              `json:"title" binding:"required" example:"Provar o cardápio do buffet"`
	Description string              `json:"description" example:"Agendar a degustação com antecedência"`
	DueDate     types.Date          `json:"dueDate" example:"2026-11-15"`
	Status      models.TaskStatus   `json:"status" example:"todo"`
	Priority    models.TaskPriority `json:"priority" example:"high"`
	Category    string              `json:"category" example:"Fornecedores"`
}

func (editable TaskEditable) model() models.Task {
	status := editable.Status
	if status == "" {
		status = models.TaskStatusTodo
	}

	priority := editable.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	return models.Task{
		Title:       editable.Title,
		Description: editable.Description,
		DueDate:     editable.DueDate,
		Status:      status,
		Priority:    priority,
		Category:    editable.Category,
	}
}

// validate checks the enum fields.
func (editable TaskEditable) validate() error {
	if editable.Status != "" && !slices.Contains(models.TaskStatuses(), editable.Status) {
		return errTaskStatusInvalid
	}

	if editable.Priority != "" && !slices.Contains(models.TaskPriorities(), editable.Priority) {
		return errTaskPriorityInvalid
	}

	return nil
}

// TaskQueryFilter narrows down the task list.
type TaskQueryFilter struct {
	Title    string `form:"title"` // glob pattern
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Category string `form:"category"`
}

// RegisterTaskRoutes registers the routes for tasks.
func (co Controller) RegisterTaskRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetTasks)
	r.POST("", co.CreateTask)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", co.GetTask)
	r.PATCH("/:id", co.UpdateTask)
	r.DELETE("/:id", co.DeleteTask)
}

// @Summary		List tasks
// @Description	Returns a list of tasks
// @Tags			Tasks
// @Produce		json
// @Success		200	{object}	TaskListResponse
// @Failure		400	{object}	TaskListResponse
// @Param			title		query	string	false	"Filter by title, supports the * wildcard"
// @Param			status		query	string	false	"Filter by status"
// @Param			priority	query	string	false	"Filter by priority"
// @Param			category	query	string	false	"Filter by category"
// @Router			/v1/tasks [get]
func (co Controller) GetTasks(c *gin.Context) {
	var filter TaskQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TaskListResponse{Error: &s})
		return
	}

	data := co.Store.Data()

	tasks := make([]models.Task, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		if filter.Title != "" && !glob.Glob(filter.Title, task.Title) {
			continue
		}
		if filter.Status != "" && task.Status != models.TaskStatus(filter.Status) {
			continue
		}
		if filter.Priority != "" && task.Priority != models.TaskPriority(filter.Priority) {
			continue
		}
		if filter.Category != "" && task.Category != filter.Category {
			continue
		}

		tasks = append(tasks, task)
	}

	c.JSON(http.StatusOK, TaskListResponse{Data: tasks})
}

// @Summary		Create task
// @Description	Creates a new task
// @Tags			Tasks
// @Accept			json
// @Produce		json
// @Success		201	{object}	TaskResponse
// @Failure		400	{object}	TaskResponse
// @Failure		500	{object}	TaskResponse
// @Param			task	body	TaskEditable	true	"Task"
// @Router			/v1/tasks [post]
func (co Controller) CreateTask(c *gin.Context) {
	editable, err := httputil.BindData[TaskEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaskResponse{Error: &s})
		return
	}

	if err := editable.validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), TaskResponse{Error: &s})
		return
	}

	task, err := co.Store.AddTask(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaskResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TaskResponse{Data: &task})
}

// @Summary		Get task
// @Description	Returns a specific task
// @Tags			Tasks
// @Produce		json
// @Success		200	{object}	TaskResponse
// @Failure		400	{object}	TaskResponse
// @Failure		404	{object}	TaskResponse
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/tasks/{id} [get]
func (co Controller) GetTask(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TaskResponse{Error: &s})
		return
	}

	data := co.Store.Data()
	for _, task := range data.Tasks {
		if task.ID == uri.ID.UUID {
			c.JSON(http.StatusOK, TaskResponse{Data: &task})
			return
		}
	}

	err := errNotFound("task")
	s := err.Error()
	c.JSON(status(err), TaskResponse{Error: &s})
}

// @Summary		Update task
// @Description	Replaces the task with the submitted data
// @Tags			Tasks
// @Accept			json
// @Produce		json
// @Success		200	{object}	TaskResponse
// @Failure		400	{object}	TaskResponse
// @Failure		404	{object}	TaskResponse
// @Failure		500	{object}	TaskResponse
// @Param			id		path	string			true	"ID formatted as string"
// @Param			task	body	TaskEditable	true	"Task"
// @Router			/v1/tasks/{id} [patch]
func (co Controller) UpdateTask(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TaskResponse{Error: &s})
		return
	}

	editable, err := httputil.BindData[TaskEditable](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TaskResponse{Error: &s})
		return
	}

	if err := editable.validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), TaskResponse{Error: &s})
		return
	}

	task := editable.model()
	task.ID = uri.ID.UUID

	if err := co.Store.UpdateTask(task); err != nil {
		s := err.Error()
		c.JSON(status(err), TaskResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TaskResponse{Data: &task})
}

// @Summary		Delete task
// @Description	Deletes a task
// @Tags			Tasks
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/tasks/{id} [delete]
func (co Controller) DeleteTask(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DeleteTask(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
