package services

import (
	"context"
	"time"

	"github.com/connectin/connectin/internal/models"
	pgrepo "github.com/connectin/connectin/internal/repositories/postgres"
	"github.com/connectin/connectin/internal/utils"
)

type MessageService interface {
	Conversations(ctx context.Context, userID uint64) ([]models.Conversation, error)
	Thread(ctx context.Context, userID, otherID uint64) ([]models.Message, error)
	Send(ctx context.Context, senderID, receiverID uint64, content string) (*models.Message, error)
}

type messageService struct {
	messages pgrepo.MessageRepository
}

func NewMessageService(messages pgrepo.MessageRepository) MessageService {
	return &messageService{messages: messages}
}

func (s *messageService) Conversations(ctx context.Context, userID uint64) ([]models.Conversation, error) {
	const op = "MessageService.Conversations"

	rows, err := s.messages.Conversations(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list conversations", err)
	}
	return rows, nil
}

func (s *messageService) Thread(ctx context.Context, userID, otherID uint64) ([]models.Message, error) {
	const op = "MessageService.Thread"

	if otherID == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid user id", nil)
	}

	rows, err := s.messages.Thread(ctx, userID, otherID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch messages", err)
	}
	return rows, nil
}

// Send persists the message with a server-assigned timestamp and returns
// the stored row, assigned ID included, for the caller to merge into its
// local state.
func (s *messageService) Send(ctx context.Context, senderID, receiverID uint64, content string) (*models.Message, error) {
	const op = "MessageService.Send"

	if receiverID == 0 || content == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "receiver id and content are required", nil)
	}

	m := &models.Message{
		Content:       content,
		ContentSentAt: time.Now().UTC(),
		SenderID:      senderID,
		ReceiverID:    receiverID,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to send message", err)
	}
	return m, nil
}
