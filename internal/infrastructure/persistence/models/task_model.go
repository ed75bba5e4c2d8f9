package models

import (
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
)

// TaskModel is the GORM database model for tasks
type TaskModel struct {
	ID          string     `gorm:"primaryKey;type:uuid"`
	EmployeeID  string     `gorm:"not null;index;type:uuid"`
	Title       string     `gorm:"not null;type:varchar(200)"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"not null;index;type:varchar(20)"`
	DueDate     *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts GORM model to domain entity
func (m *TaskModel) ToDomain() *tasks.Task {
	return &tasks.Task{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TaskModel) FromDomain(t *tasks.Task) {
	m.ID = t.ID
	m.EmployeeID = t.EmployeeID
	m.Title = t.Title
	m.Description = t.Description
	m.Status = t.Status
	m.DueDate = t.DueDate
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
