package models

import (
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
)

// GameSaveModel is the GORM database model for game saves. The state is stored as JSON.
type GameSaveModel struct {
	UserID    string      `gorm:"primaryKey;type:uuid"`
	Version   int64       `gorm:"not null"`
	State     *game.State `gorm:"not null;serializer:json;type:text"`
	UpdatedAt time.Time   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GameSaveModel) TableName() string {
	return "game_saves"
}

// ToDomain converts GORM model to domain entity
func (m *GameSaveModel) ToDomain() *game.Save {
	return &game.Save{
		UserID:    m.UserID,
		Version:   m.Version,
		State:     m.State,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GameSaveModel) FromDomain(s *game.Save) {
	m.UserID = s.UserID
	m.Version = s.Version
	m.State = s.State
	m.UpdatedAt = s.UpdatedAt
}
