package models

import (
	"sort"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
)

// MailHandleModel is the GORM database model for mail handles
type MailHandleModel struct {
	Handle    string    `gorm:"primaryKey;type:varchar(64)"`
	OwnerID   string    `gorm:"not null;uniqueIndex;type:uuid"`
	OwnerKind string    `gorm:"not null;type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MailHandleModel) TableName() string {
	return "mail_handles"
}

// ToDomain converts GORM model to domain entity
func (m *MailHandleModel) ToDomain() *mail.Handle {
	return &mail.Handle{
		Handle:    m.Handle,
		OwnerID:   m.OwnerID,
		OwnerKind: m.OwnerKind,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MailHandleModel) FromDomain(h *mail.Handle) {
	m.Handle = h.Handle
	m.OwnerID = h.OwnerID
	m.OwnerKind = h.OwnerKind
	m.CreatedAt = h.CreatedAt
}

// ConversationModel is the GORM database model for conversations
type ConversationModel struct {
	ID           string             `gorm:"primaryKey;type:uuid"`
	Subject      string             `gorm:"not null;type:varchar(200)"`
	CreatedAt    time.Time          `gorm:"not null"`
	UpdatedAt    time.Time          `gorm:"not null;index"`
	Participants []ParticipantModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ConversationModel) TableName() string {
	return "mail_conversations"
}

// ToDomain converts GORM model to domain entity
func (m *ConversationModel) ToDomain() *mail.Conversation {
	participants := append([]ParticipantModel(nil), m.Participants...)
	sort.Slice(participants, func(i, j int) bool { return participants[i].Position < participants[j].Position })

	handles := make([]string, len(participants))
	for i, p := range participants {
		handles[i] = p.Handle
	}
	return &mail.Conversation{
		ID:           m.ID,
		Subject:      m.Subject,
		Participants: handles,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ConversationModel) FromDomain(c *mail.Conversation) {
	m.ID = c.ID
	m.Subject = c.Subject
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
	m.Participants = make([]ParticipantModel, len(c.Participants))
	for i, h := range c.Participants {
		m.Participants[i] = ParticipantModel{ConversationID: c.ID, Handle: h, Position: i}
	}
}

// ParticipantModel links a handle to a conversation and tracks its read position
type ParticipantModel struct {
	ConversationID string     `gorm:"primaryKey;type:uuid"`
	Handle         string     `gorm:"primaryKey;index;type:varchar(64)"`
	Position       int        `gorm:"not null"`
	LastReadAt     *time.Time `gorm:""`
}

// TableName specifies the table name for GORM
func (ParticipantModel) TableName() string {
	return "mail_participants"
}

// MessageModel is the GORM database model for messages
type MessageModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	ConversationID string    `gorm:"not null;index;type:uuid"`
	SenderHandle   string    `gorm:"not null;type:varchar(64)"`
	Body           string    `gorm:"not null;type:text"`
	SentAt         time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "mail_messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageModel) ToDomain() *mail.Message {
	return &mail.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderHandle:   m.SenderHandle,
		Body:           m.Body,
		SentAt:         m.SentAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *mail.Message) {
	m.ID = msg.ID
	m.ConversationID = msg.ConversationID
	m.SenderHandle = msg.SenderHandle
	m.Body = msg.Body
	m.SentAt = msg.SentAt
}
