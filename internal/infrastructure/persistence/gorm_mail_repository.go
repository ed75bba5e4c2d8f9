package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence/models"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMailRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMailRepository creates a new GORM-based mail Repository implementation
func NewGormMailRepository(db *gorm.DB, logger logger.Logger) (mail.Repository, error) {
	return &gormMailRepository{
		db:     db,
		logger: logger,
	}, nil
}

// CreateHandle stores the handle and records it on the owning client or employee in
// the same transaction.
func (r *gormMailRepository) CreateHandle(ctx context.Context, handle *mail.Handle) error {
	if err := handle.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MailHandleModel{}
	model.FromDomain(handle)

	var owner any = &models.ClientModel{}
	if handle.OwnerKind == accounts.KindEmployee {
		owner = &models.EmployeeModel{}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%s: %w", handle.Handle, mail.ErrHandleTaken)
			}
			return fmt.Errorf("failed to create mail handle: %w", err)
		}

		result := tx.Model(owner).Where("id = ?", handle.OwnerID).Update("mail_handle", handle.Handle)
		if result.Error != nil {
			return fmt.Errorf("failed to record mail handle on %s: %w", handle.OwnerKind, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%s with ID %s: %w", handle.OwnerKind, handle.OwnerID, accounts.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created mail handle ", handle.Handle)
	return nil
}

func (r *gormMailRepository) GetHandle(ctx context.Context, handle string) (*mail.Handle, error) {
	return r.firstHandle(ctx, "handle = ?", handle)
}

func (r *gormMailRepository) GetHandleByOwner(ctx context.Context, ownerID string) (*mail.Handle, error) {
	return r.firstHandle(ctx, "owner_id = ?", ownerID)
}

func (r *gormMailRepository) firstHandle(ctx context.Context, cond, arg string) (*mail.Handle, error) {
	var model models.MailHandleModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mail handle %s: %w", arg, mail.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch mail handle: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMailRepository) CreateConversation(ctx context.Context, conversation *mail.Conversation, first *mail.Message) error {
	if err := conversation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if err := first.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	convModel := &models.ConversationModel{}
	convModel.FromDomain(conversation)
	msgModel := &models.MessageModel{}
	msgModel.FromDomain(first)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(convModel).Error; err != nil {
			return err
		}
		if err := tx.Create(msgModel).Error; err != nil {
			return err
		}
		// the sender has read their own first message
		return tx.Model(&models.ParticipantModel{}).
			Where("conversation_id = ? AND handle = ?", conversation.ID, first.SenderHandle).
			Update("last_read_at", first.SentAt).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	r.logger.Info("Created conversation with id ", conversation.ID)
	return nil
}

func (r *gormMailRepository) GetConversation(ctx context.Context, conversationID string) (*mail.Conversation, error) {
	var model models.ConversationModel
	err := r.db.WithContext(ctx).Preload("Participants").Where("id = ?", conversationID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conversation with ID %s: %w", conversationID, mail.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return model.ToDomain(), nil
}

type unreadCount struct {
	ConversationID string
	Unread         int64
}

// ListSummaries returns the conversations of handle, most recently active first, with
// their last message and the number of messages handle has not read. Unread counts and
// last messages are each loaded by a single query across all conversations.
func (r *gormMailRepository) ListSummaries(ctx context.Context, handle string) ([]*mail.ConversationSummary, error) {
	var convModels []*models.ConversationModel
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("id IN (?)", r.db.Model(&models.ParticipantModel{}).Select("conversation_id").Where("handle = ?", handle)).
		Order("updated_at desc").
		Find(&convModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}
	if len(convModels) == 0 {
		return []*mail.ConversationSummary{}, nil
	}

	ids := make([]string, len(convModels))
	for i, m := range convModels {
		ids[i] = m.ID
	}

	var counts []unreadCount
	err = r.db.WithContext(ctx).
		Table("mail_messages AS m").
		Select("m.conversation_id AS conversation_id, COUNT(*) AS unread").
		Joins("JOIN mail_participants AS p ON p.conversation_id = m.conversation_id AND p.handle = ?", handle).
		Where("m.sender_handle <> ?", handle).
		Where("(p.last_read_at IS NULL OR m.sent_at > p.last_read_at)").
		Group("m.conversation_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	unread := make(map[string]int, len(counts))
	for _, c := range counts {
		unread[c.ConversationID] = int(c.Unread)
	}

	var lastModels []*models.MessageModel
	err = r.db.WithContext(ctx).
		Where("conversation_id IN ?", ids).
		Where("sent_at = (SELECT MAX(x.sent_at) FROM mail_messages AS x WHERE x.conversation_id = mail_messages.conversation_id)").
		Order("id").
		Find(&lastModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last messages: %w", err)
	}
	last := make(map[string]*mail.Message, len(lastModels))
	for _, m := range lastModels {
		// equal timestamps: keep the first by id
		if _, ok := last[m.ConversationID]; !ok {
			last[m.ConversationID] = m.ToDomain()
		}
	}

	summaries := make([]*mail.ConversationSummary, len(convModels))
	for i, m := range convModels {
		summaries[i] = &mail.ConversationSummary{
			Conversation: m.ToDomain(),
			LastMessage:  last[m.ID],
			Unread:       unread[m.ID],
		}
	}
	return summaries, nil
}

func (r *gormMailRepository) AddMessage(ctx context.Context, message *mail.Message) error {
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MessageModel{}
	model.FromDomain(message)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ParticipantModel{}).
			Where("conversation_id = ? AND handle = ?", message.ConversationID, message.SenderHandle).
			Update("last_read_at", message.SentAt).Error; err != nil {
			return err
		}
		return tx.Model(&models.ConversationModel{}).
			Where("id = ?", message.ConversationID).
			UpdateColumn("updated_at", message.SentAt).Error
	})
	if err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}

	r.logger.Info("Added message with id ", message.ID)
	return nil
}

func (r *gormMailRepository) ListMessages(ctx context.Context, conversationID string) ([]*mail.Message, error) {
	var modelList []*models.MessageModel
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	domainList := make([]*mail.Message, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormMailRepository) MarkRead(ctx context.Context, conversationID, handle string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.ParticipantModel{}).
		Where("conversation_id = ? AND handle = ?", conversationID, handle).
		Update("last_read_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark conversation read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return mail.ErrNotParticipant
	}
	return nil
}
