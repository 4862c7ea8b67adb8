package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/math490/ProjetoTarefas-3B/internal/flash"
	"github.com/math490/ProjetoTarefas-3B/internal/middleware"
	"github.com/math490/ProjetoTarefas-3B/internal/models"
	"github.com/math490/ProjetoTarefas-3B/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db          *gorm.DB
	taskService services.TaskService
	log         *logrus.Logger
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService, log: log}
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.ContextUserKey).(*models.User)
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandler) List(c *gin.Context) {
	user := currentUser(c)

	tasks, err := h.taskService.ListByOwner(h.db, user.ID)
	if err != nil {
		h.log.WithError(err).Error("task list failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"User":   user,
		"Tasks":  tasks,
		"Notice": flash.Pop(c),
	})
}

func (h *TaskHandler) ShowAddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_task.html", gin.H{
		"User":   currentUser(c),
		"Notice": flash.Pop(c),
	})
}

func (h *TaskHandler) Add(c *gin.Context) {
	user := currentUser(c)
	title := c.PostForm("title")

	_, err := h.taskService.Create(h.db, title, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			c.HTML(http.StatusOK, "add_task.html", gin.H{
				"User":   user,
				"Notice": &flash.Notice{Category: "danger", Message: "Informe o título da tarefa"},
			})
			return
		}
		h.log.WithError(err).Error("task create failed")
		c.String(http.StatusInternalServerError, "erro interno")
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

// Toggle flips a task between Pendente and Concluída. Only the owner gets a
// mutation; everyone else gets a notice and an untouched task.
func (h *TaskHandler) Toggle(c *gin.Context) {
	user := currentUser(c)
	id, ok := taskID(c)
	if !ok {
		c.String(http.StatusNotFound, "tarefa não encontrada")
		return
	}

	if _, err := h.taskService.ToggleStatus(h.db, id, user.ID); err != nil {
		h.taskError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tasks")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id, ok := taskID(c)
	if !ok {
		c.String(http.StatusNotFound, "tarefa não encontrada")
		return
	}

	if err := h.taskService.Delete(h.db, id, user.ID); err != nil {
		h.taskError(c, err)
		return
	}
	flash.Redirect(c, "/tasks", "success", "Tarefa excluída")
}

func (h *TaskHandler) taskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		c.String(http.StatusNotFound, "tarefa não encontrada")
	case errors.Is(err, services.ErrNotTaskOwner):
		flash.Redirect(c, "/tasks", "danger", "Operação não autorizada")
	default:
		h.log.WithError(err).Error("task operation failed")
		c.String(http.StatusInternalServerError, "erro interno")
	}
}
