// Package events defines the domain events published to the message broker.
package events

import (
	"context"
	"time"
)

// Routing keys
const (
	AccountRegistered = "account.registered"
	MailSent          = "mail.sent"
	PurchaseCompleted = "purchase.completed"
	PaycheckIssued    = "paycheck.issued"
	GamePrestiged     = "game.prestiged"
)

// Envelope wraps a payload with its routing key and identity
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher delivers domain events. Publishing is best effort: callers log failures
// and never roll back the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// AccountRegisteredPayload is published after a client signs up
type AccountRegisteredPayload struct {
	ClientID string `json:"client_id"`
	Username string `json:"username"`
}

// MailSentPayload is published for every message sent
type MailSentPayload struct {
	ConversationID string   `json:"conversation_id"`
	MessageID      string   `json:"message_id"`
	Sender         string   `json:"sender"`
	Recipients     []string `json:"recipients"`
}

// PurchaseCompletedPayload is published after a successful checkout
type PurchaseCompletedPayload struct {
	PurchaseID string `json:"purchase_id"`
	ClientID   string `json:"client_id"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
}

// PaycheckIssuedPayload is published after payroll runs for an employee
type PaycheckIssuedPayload struct {
	PaycheckID string `json:"paycheck_id"`
	EmployeeID string `json:"employee_id"`
	NetCents   int64  `json:"net_cents"`
}

// GamePrestigedPayload is published when a player prestiges
type GamePrestigedPayload struct {
	UserID        string `json:"user_id"`
	PrestigeCount int64  `json:"prestige_count"`
	TokensGained  int64  `json:"tokens_gained"`
}
