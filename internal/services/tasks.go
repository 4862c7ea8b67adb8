package services

import (
	"errors"
	"strings"

	"github.com/math490/ProjetoTarefas-3B/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotTaskOwner = errors.New("task belongs to another user")
	ErrEmptyTitle   = errors.New("task title is required")
)

type TaskService interface {
	ListByOwner(db *gorm.DB, ownerID uint) ([]models.Task, error)
	Create(db *gorm.DB, title string, ownerID uint) (*models.Task, error)
	GetByID(db *gorm.DB, id uint) (*models.Task, error)
	ToggleStatus(db *gorm.DB, id, ownerID uint) (*models.Task, error)
	Delete(db *gorm.DB, id, ownerID uint) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) ListByOwner(db *gorm.DB, ownerID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.Where("user_id = ?", ownerID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts a task for ownerID. Status always starts as Pendente; a
// caller-supplied status is never honored.
func (s *TaskServiceImpl) Create(db *gorm.DB, title string, ownerID uint) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := models.Task{
		Title:  title,
		Status: models.StatusPending,
		UserID: ownerID,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskServiceImpl) GetByID(db *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// ToggleStatus flips the task between Pendente and Concluída. The ownership
// check happens before any write; a mismatched owner mutates nothing.
func (s *TaskServiceImpl) ToggleStatus(db *gorm.DB, id, ownerID uint) (*models.Task, error) {
	task, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}
	if !task.OwnedBy(ownerID) {
		return nil, ErrNotTaskOwner
	}

	task.Status = task.NextStatus()
	if err := db.Model(task).Update("status", task.Status).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) Delete(db *gorm.DB, id, ownerID uint) error {
	task, err := s.GetByID(db, id)
	if err != nil {
		return err
	}
	if !task.OwnedBy(ownerID) {
		return ErrNotTaskOwner
	}
	return db.Delete(task).Error
}
