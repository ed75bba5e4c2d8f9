package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/tracing"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// mailService implements the MailService interface
type mailService struct {
	repo      mail.Repository
	publisher events.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewMailService creates a new instance of MailService
func NewMailService(repo mail.Repository, publisher events.Publisher, logger logger.Logger) (mail.MailService, error) {
	return &mailService{
		repo:      repo,
		publisher: publisher,
		logger:    logger.Named("mail"),
		now:       clock,
	}, nil
}

// ClaimHandle binds name@yates to the principal and records it on the account. An
// account owns at most one handle.
func (s *mailService) ClaimHandle(ctx context.Context, principal *accounts.Principal, name string) (*mail.Handle, error) {
	if err := mail.ValidateHandleName(name); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetHandleByOwner(ctx, principal.ID); err == nil {
		return nil, mail.ErrHandleAlreadyClaimed
	} else if !errors.Is(err, mail.ErrNotFound) {
		return nil, err
	}

	handle := &mail.Handle{
		Handle:    mail.FormatHandle(name),
		OwnerID:   principal.ID,
		OwnerKind: principal.Kind,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateHandle(ctx, handle); err != nil {
		return nil, err
	}

	s.logger.Info("Claimed mail handle ", handle.Handle)
	return handle, nil
}

func (s *mailService) HandleOf(ctx context.Context, principal *accounts.Principal) (*mail.Handle, error) {
	handle, err := s.repo.GetHandleByOwner(ctx, principal.ID)
	if errors.Is(err, mail.ErrNotFound) {
		return nil, mail.ErrNoHandle
	}
	return handle, err
}

// Start opens a conversation. Recipients must exist; duplicates and the sender are folded.
func (s *mailService) Start(ctx context.Context, principal *accounts.Principal, req mail.StartRequest) (conversation *mail.Conversation, message *mail.Message, err error) {
	ctx, span := tracing.Start(ctx, "mail.Start")
	defer func() { tracing.End(span, err) }()

	sender, err := s.HandleOf(ctx, principal)
	if err != nil {
		return nil, nil, err
	}
	if len(req.Recipients) == 0 || len(req.Recipients) > mail.MaxRecipients {
		return nil, nil, fmt.Errorf("%w: between 1 and %d recipients are required", validators.ErrValidation, mail.MaxRecipients)
	}

	participants := []string{sender.Handle}
	seen := map[string]bool{sender.Handle: true}
	for _, r := range req.Recipients {
		handle := mail.FormatHandle(r)
		if seen[handle] {
			continue
		}
		if _, err := s.repo.GetHandle(ctx, handle); err != nil {
			return nil, nil, fmt.Errorf("recipient %s: %w", handle, err)
		}
		seen[handle] = true
		participants = append(participants, handle)
	}

	now := s.now()
	conversation = &mail.Conversation{
		ID:           uuid.NewString(),
		Subject:      strings.TrimSpace(req.Subject),
		Participants: participants,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	message = &mail.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		SenderHandle:   sender.Handle,
		Body:           req.Body,
		SentAt:         now,
	}
	if err := s.repo.CreateConversation(ctx, conversation, message); err != nil {
		return nil, nil, err
	}

	s.notify(ctx, conversation, message)
	s.logger.Info("Started conversation ", conversation.ID, " from ", sender.Handle)
	return conversation, message, nil
}

// Reply appends to a conversation the principal takes part in
func (s *mailService) Reply(ctx context.Context, principal *accounts.Principal, conversationID, body string) (message *mail.Message, err error) {
	ctx, span := tracing.Start(ctx, "mail.Reply")
	defer func() { tracing.End(span, err) }()

	sender, conversation, err := s.participant(ctx, principal, conversationID)
	if err != nil {
		return nil, err
	}

	message = &mail.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		SenderHandle:   sender.Handle,
		Body:           body,
		SentAt:         s.now(),
	}
	if err := s.repo.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	s.notify(ctx, conversation, message)
	s.logger.Info("Reply ", message.ID, " in conversation ", conversation.ID)
	return message, nil
}

func (s *mailService) ListConversations(ctx context.Context, principal *accounts.Principal) ([]*mail.ConversationSummary, error) {
	handle, err := s.HandleOf(ctx, principal)
	if err != nil {
		return nil, err
	}

	return s.repo.ListSummaries(ctx, handle.Handle)
}

func (s *mailService) ListMessages(ctx context.Context, principal *accounts.Principal, conversationID string) ([]*mail.Message, error) {
	if _, _, err := s.participant(ctx, principal, conversationID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conversationID)
}

func (s *mailService) MarkRead(ctx context.Context, principal *accounts.Principal, conversationID string) error {
	handle, err := s.HandleOf(ctx, principal)
	if err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, conversationID, handle.Handle, s.now())
}

// participant resolves the principal's handle and checks it takes part in the conversation
func (s *mailService) participant(ctx context.Context, principal *accounts.Principal, conversationID string) (*mail.Handle, *mail.Conversation, error) {
	handle, err := s.HandleOf(ctx, principal)
	if err != nil {
		return nil, nil, err
	}
	conversation, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	if !conversation.HasParticipant(handle.Handle) {
		return nil, nil, mail.ErrNotParticipant
	}
	return handle, conversation, nil
}

func (s *mailService) notify(ctx context.Context, conversation *mail.Conversation, message *mail.Message) {
	recipients := make([]string, 0, len(conversation.Participants)-1)
	for _, p := range conversation.Participants {
		if p != message.SenderHandle {
			recipients = append(recipients, p)
		}
	}
	payload := events.MailSentPayload{
		ConversationID: conversation.ID,
		MessageID:      message.ID,
		Sender:         message.SenderHandle,
		Recipients:     recipients,
	}
	if err := s.publisher.Publish(ctx, events.MailSent, payload); err != nil {
		s.logger.Warn("Failed to publish ", events.MailSent, ": ", err)
	}
}
