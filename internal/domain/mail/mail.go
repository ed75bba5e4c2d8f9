// Package mail defines the internal messaging system: handles owned by clients and
// employees, conversations between handles and the messages exchanged in them.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// HandleDomain is appended to the local part of every mail handle.
const HandleDomain = "@yates"

// Body and subject limits
const (
	MaxBodyLength    = 5000
	MaxSubjectLength = 200
	MaxRecipients    = 20
)

var (
	// ErrNotFound is returned when a handle or conversation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrHandleTaken is returned when a handle is owned by another account.
	ErrHandleTaken = errors.New("mail handle already taken")

	// ErrHandleAlreadyClaimed is returned when an account already owns a handle.
	ErrHandleAlreadyClaimed = errors.New("account already has a mail handle")

	// ErrNoHandle is returned when a principal without a handle uses mail.
	ErrNoHandle = errors.New("account has no mail handle")

	// ErrNotParticipant is returned when a handle is not part of a conversation.
	ErrNotParticipant = errors.New("handle is not a participant of the conversation")
)

// Handle is a messaging identity bound to one account
type Handle struct {
	Handle    string    `validate:"required,max=64"`
	OwnerID   string    `validate:"required,uuid4"`
	OwnerKind string    `validate:"required,oneof=client employee"`
	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Handle struct
func (h *Handle) Validate() error {
	return validators.Struct(h)
}

// Conversation is a thread between two or more handles
type Conversation struct {
	ID           string    `validate:"required,uuid4"`
	Subject      string    `validate:"required,min=1,max=200"`
	Participants []string  `validate:"required,min=2,dive,required"`
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time `validate:"required"`
}

// Validate for validating Conversation struct
func (c *Conversation) Validate() error {
	return validators.Struct(c)
}

// HasParticipant reports whether handle takes part in the conversation
func (c *Conversation) HasParticipant(handle string) bool {
	for _, p := range c.Participants {
		if p == handle {
			return true
		}
	}
	return false
}

// Message is a single entry in a conversation
type Message struct {
	ID             string    `validate:"required,uuid4"`
	ConversationID string    `validate:"required,uuid4"`
	SenderHandle   string    `validate:"required"`
	Body           string    `validate:"required,min=1,max=5000"`
	SentAt         time.Time `validate:"required"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validators.Struct(m)
}

// ConversationSummary is a conversation as seen in a mailbox listing
type ConversationSummary struct {
	Conversation *Conversation
	LastMessage  *Message
	Unread       int
}

// StartRequest opens a conversation
type StartRequest struct {
	Recipients []string
	Subject    string
	Body       string
}

// FormatHandle turns a local part into a full handle, e.g. "carl" -> "carl@yates".
func FormatHandle(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, HandleDomain) + HandleDomain
}

// ValidateHandleName checks the local part of a handle.
func ValidateHandleName(name string) error {
	local := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), HandleDomain)
	req := struct {
		Name string `validate:"required,mailhandle"`
	}{Name: local}
	if err := validators.Struct(&req); err != nil {
		return fmt.Errorf("invalid mail handle %q: %w", name, err)
	}
	return nil
}

// MailService defines the operations of the messaging system.
type MailService interface {
	// ClaimHandle binds a new handle to the principal's account.
	ClaimHandle(ctx context.Context, principal *accounts.Principal, name string) (*Handle, error)

	// HandleOf returns the handle owned by the principal.
	HandleOf(ctx context.Context, principal *accounts.Principal) (*Handle, error)

	// Start opens a conversation from the principal to the recipients with a first message.
	Start(ctx context.Context, principal *accounts.Principal, req StartRequest) (*Conversation, *Message, error)

	// Reply appends a message to a conversation the principal takes part in.
	Reply(ctx context.Context, principal *accounts.Principal, conversationID, body string) (*Message, error)

	// ListConversations returns the principal's conversations, most recently active first.
	ListConversations(ctx context.Context, principal *accounts.Principal) ([]*ConversationSummary, error)

	// ListMessages returns the messages of a conversation, oldest first.
	ListMessages(ctx context.Context, principal *accounts.Principal, conversationID string) ([]*Message, error)

	// MarkRead records that the principal has read the conversation up to now.
	MarkRead(ctx context.Context, principal *accounts.Principal, conversationID string) error
}

// Repository defines persistence of handles, conversations and messages
type Repository interface {
	CreateHandle(ctx context.Context, handle *Handle) error
	GetHandle(ctx context.Context, handle string) (*Handle, error)
	GetHandleByOwner(ctx context.Context, ownerID string) (*Handle, error)

	CreateConversation(ctx context.Context, conversation *Conversation, first *Message) error
	GetConversation(ctx context.Context, conversationID string) (*Conversation, error)
	ListSummaries(ctx context.Context, handle string) ([]*ConversationSummary, error)

	AddMessage(ctx context.Context, message *Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*Message, error)
	MarkRead(ctx context.Context, conversationID, handle string, at time.Time) error
}
