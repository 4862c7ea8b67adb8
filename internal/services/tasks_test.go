package services_test

import (
	"testing"

	"github.com/math490/ProjetoTarefas-3B/internal/models"
	"github.com/math490/ProjetoTarefas-3B/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskStartsPending(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	task, err := tasks.Create(db, "Comprar leite", 1)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, uint(1), task.UserID)
	assert.Equal(t, "Comprar leite", task.Title)
}

func TestCreateTaskRejectsEmptyTitle(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	_, err := tasks.Create(db, "   ", 1)
	assert.ErrorIs(t, err, services.ErrEmptyTitle)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListByOwnerInsertionOrderAndIsolation(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	first, err := tasks.Create(db, "primeira", 1)
	require.NoError(t, err)
	second, err := tasks.Create(db, "segunda", 1)
	require.NoError(t, err)
	_, err = tasks.Create(db, "de outra pessoa", 2)
	require.NoError(t, err)

	list, err := tasks.ListByOwner(db, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestToggleStatusIsInvolution(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	task, err := tasks.Create(db, "Comprar leite", 1)
	require.NoError(t, err)

	toggled, err := tasks.ToggleStatus(db, task.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, toggled.Status)

	toggled, err = tasks.ToggleStatus(db, task.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, toggled.Status)

	stored, err := tasks.GetByID(db, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestToggleStatusOwnershipGate(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	task, err := tasks.Create(db, "de Alice", 1)
	require.NoError(t, err)

	_, err = tasks.ToggleStatus(db, task.ID, 2)
	assert.ErrorIs(t, err, services.ErrNotTaskOwner)

	stored, err := tasks.GetByID(db, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status, "non-owner toggle must not mutate")
}

func TestDeleteTask(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	task, err := tasks.Create(db, "descartável", 1)
	require.NoError(t, err)

	require.NoError(t, tasks.Delete(db, task.ID, 1))

	_, err = tasks.GetByID(db, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestDeleteTaskOwnershipGate(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	task, err := tasks.Create(db, "de Alice", 1)
	require.NoError(t, err)

	err = tasks.Delete(db, task.ID, 2)
	assert.ErrorIs(t, err, services.ErrNotTaskOwner)

	_, err = tasks.GetByID(db, task.ID)
	assert.NoError(t, err, "non-owner delete must leave the row")
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	tasks := services.NewTaskService()

	_, err := tasks.GetByID(db, 42)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}
