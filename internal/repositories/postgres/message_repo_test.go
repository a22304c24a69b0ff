package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThread(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepo(db)

	sentAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	cols := []string{"message_id", "sender_id", "receiver_id", "content", "content_sent_at"}
	mock.ExpectQuery(`SELECT \* FROM "messages"`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 1, 2, "hi", sentAt).
			AddRow(2, 2, 1, "hello", sentAt.Add(time.Minute)))

	msgs, err := repo.Thread(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, uint64(2), msgs[1].SenderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversations(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepo(db)

	last := "see you tomorrow"
	cols := []string{"user_id", "name", "last_message"}
	mock.ExpectQuery(`WITH user_conversations AS`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, "Bea", last).
			AddRow(3, "Cal", "ok"))

	convs, err := repo.Conversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, uint64(2), convs[0].UserID)
	assert.Equal(t, "Bea", convs[0].Name)
	assert.Equal(t, last, convs[0].LastMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
