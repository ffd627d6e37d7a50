package services

import (
	"context"
	"strings"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
	"campusfind/internal/common"
)

// MessageService sends claims and replies and loads the inbox.
//
// Contract:
//   - SendClaim: no receiver; the server routes the message to the item's
//     poster.
//   - SendReply: explicit receiver.
//   - Both require non-empty content and short-circuit with
//     common.ErrMissingMessage before any network call.
type MessageService interface {
	Inbox(ctx context.Context) ([]models.Message, error)
	SendClaim(ctx context.Context, itemID int64, content string) (string, error)
	SendReply(ctx context.Context, receiverID string, itemID int64, content string) (string, error)
}

type messageService struct {
	client api.Client
}

func NewMessageService(client api.Client) MessageService {
	return &messageService{client: client}
}

func (s *messageService) Inbox(ctx context.Context) ([]models.Message, error) {
	return s.client.ListMessages(ctx)
}

func (s *messageService) SendClaim(ctx context.Context, itemID int64, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", common.ErrMissingMessage
	}
	return s.client.SendMessage(ctx, api.SendMessageRequest{ItemID: itemID, Content: content})
}

func (s *messageService) SendReply(ctx context.Context, receiverID string, itemID int64, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", common.ErrMissingMessage
	}
	return s.client.SendMessage(ctx, api.SendMessageRequest{
		ItemID:     itemID,
		Content:    content,
		ReceiverID: receiverID,
	})
}
