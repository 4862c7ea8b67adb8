package models

import "time"

const (
	StatusPending = "Pendente"
	StatusDone    = "Concluída"
)

type Task struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:150;not null"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'Pendente'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextStatus returns the other side of the Pendente/Concluída toggle.
func (t *Task) NextStatus() string {
	if t.Status == StatusDone {
		return StatusPending
	}
	return StatusDone
}

func (t *Task) Done() bool {
	return t.Status == StatusDone
}

// OwnedBy reports whether userID may read or mutate this task.
func (t *Task) OwnedBy(userID uint) bool {
	return t.UserID == userID
}
