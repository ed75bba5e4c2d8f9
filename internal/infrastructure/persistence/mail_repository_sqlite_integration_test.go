//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandle(name string) *mail.Handle {
	return &mail.Handle{
		Handle:    mail.FormatHandle(name),
		OwnerID:   uuid.NewString(),
		OwnerKind: accounts.KindClient,
		CreatedAt: time.Now().UTC(),
	}
}

func TestMailSqliteRepository_Handles(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	client := CreateTestClient(t, "carl")
	require.NoError(t, tc.ClientRepo.Create(ctx, client))

	carl := newHandle("carl")
	carl.OwnerID = client.ID
	require.NoError(t, tc.MailRepo.CreateHandle(ctx, carl))
	assert.ErrorIs(t, tc.MailRepo.CreateHandle(ctx, newHandle("carl")), mail.ErrHandleTaken)

	got, err := tc.MailRepo.GetHandleByOwner(ctx, carl.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "carl@yates", got.Handle)

	stored, err := tc.ClientRepo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "carl@yates", stored.MailHandle)

	_, err = tc.MailRepo.GetHandle(ctx, "nobody@yates")
	assert.ErrorIs(t, err, mail.ErrNotFound)
}

func TestMailSqliteRepository_HandleForEmployee(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	employee := CreateTestEmployee(t, "300001", accounts.RoleSales)
	require.NoError(t, tc.EmployeeRepo.Create(ctx, employee))

	handle := newHandle("sales")
	handle.OwnerID = employee.ID
	handle.OwnerKind = accounts.KindEmployee
	require.NoError(t, tc.MailRepo.CreateHandle(ctx, handle))

	stored, err := tc.EmployeeRepo.GetByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, "sales@yates", stored.MailHandle)
}

func TestMailSqliteRepository_HandleWithoutAccountRollsBack(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	orphan := newHandle("ghost")
	err := tc.MailRepo.CreateHandle(ctx, orphan)
	assert.ErrorIs(t, err, accounts.ErrNotFound)

	_, err = tc.MailRepo.GetHandle(ctx, "ghost@yates")
	assert.ErrorIs(t, err, mail.ErrNotFound)
}

func TestMailSqliteRepository_Conversation(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)

	conv := &mail.Conversation{
		ID:           uuid.NewString(),
		Subject:      "Rock shipment",
		Participants: []string{"carl@yates", "ann@yates"},
		CreatedAt:    start,
		UpdatedAt:    start,
	}
	first := &mail.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderHandle:   "carl@yates",
		Body:           "Where are my rocks?",
		SentAt:         start,
	}
	require.NoError(t, tc.MailRepo.CreateConversation(ctx, conv, first))

	assert.Equal(t, 1, summaryOf(t, tc, "ann@yates").Unread)
	assert.Zero(t, summaryOf(t, tc, "carl@yates").Unread)

	reply := &mail.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderHandle:   "ann@yates",
		Body:           "On their way.",
		SentAt:         start.Add(time.Minute),
	}
	require.NoError(t, tc.MailRepo.AddMessage(ctx, reply))

	assert.Zero(t, summaryOf(t, tc, "ann@yates").Unread)
	assert.Equal(t, 1, summaryOf(t, tc, "carl@yates").Unread)

	require.NoError(t, tc.MailRepo.MarkRead(ctx, conv.ID, "carl@yates", start.Add(2*time.Minute)))
	assert.Zero(t, summaryOf(t, tc, "carl@yates").Unread)

	assert.ErrorIs(t, tc.MailRepo.MarkRead(ctx, conv.ID, "eve@yates", start), mail.ErrNotParticipant)

	messages, err := tc.MailRepo.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, first.ID, messages[0].ID)

	summary := summaryOf(t, tc, "ann@yates")
	require.NotNil(t, summary.LastMessage)
	assert.Equal(t, reply.ID, summary.LastMessage.ID)
	assert.Equal(t, conv.ID, summary.Conversation.ID)

	got, err := tc.MailRepo.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.Participants, got.Participants)
	assert.True(t, got.UpdatedAt.Equal(reply.SentAt))

	list, err := tc.MailRepo.ListSummaries(ctx, "eve@yates")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func summaryOf(t *testing.T, tc *TestContext, handle string) *mail.ConversationSummary {
	t.Helper()

	list, err := tc.MailRepo.ListSummaries(context.Background(), handle)
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0]
}

func TestMailSqliteRepository_ListSummariesAcrossConversations(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	start := time.Now().UTC().Truncate(time.Second)

	open := func(subject string, at time.Time, sender string, bodies ...string) *mail.Conversation {
		conv := &mail.Conversation{
			ID:           uuid.NewString(),
			Subject:      subject,
			Participants: []string{"carl@yates", "ann@yates"},
			CreatedAt:    at,
			UpdatedAt:    at,
		}
		first := &mail.Message{ID: uuid.NewString(), ConversationID: conv.ID, SenderHandle: sender, Body: bodies[0], SentAt: at}
		require.NoError(t, tc.MailRepo.CreateConversation(ctx, conv, first))
		for i, body := range bodies[1:] {
			require.NoError(t, tc.MailRepo.AddMessage(ctx, &mail.Message{
				ID:             uuid.NewString(),
				ConversationID: conv.ID,
				SenderHandle:   sender,
				Body:           body,
				SentAt:         at.Add(time.Duration(i+1) * time.Second),
			}))
		}
		return conv
	}

	older := open("Pebbles", start, "carl@yates", "one", "two", "three")
	newer := open("Boulders", start.Add(time.Hour), "ann@yates", "hello")

	list, err := tc.MailRepo.ListSummaries(ctx, "ann@yates")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, newer.ID, list[0].Conversation.ID)
	assert.Zero(t, list[0].Unread)
	assert.Equal(t, "hello", list[0].LastMessage.Body)

	assert.Equal(t, older.ID, list[1].Conversation.ID)
	assert.Equal(t, 3, list[1].Unread)
	assert.Equal(t, "three", list[1].LastMessage.Body)
}
