package services

import (
	"context"
	"strings"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
	"campusfind/internal/common"
)

// ItemDraft collects the post-item form fields.
type ItemDraft struct {
	Name        string
	Type        models.ItemType
	Location    string
	Description string
}

// ItemService is the item CRUD surface. There is no client-side cache:
// callers reload the list after every mutation.
//
// Contract:
//   - Create: name and location required (short-circuits with
//     common.ErrMissingFields); type defaults to Lost.
//   - Mutation methods return the server's message for display.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, draft ItemDraft) (string, error)
	MarkClaimed(ctx context.Context, id int64) (string, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type itemService struct {
	client api.Client
}

func NewItemService(client api.Client) ItemService {
	return &itemService{client: client}
}

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	return s.client.ListItems(ctx)
}

func (s *itemService) Create(ctx context.Context, draft ItemDraft) (string, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Location = strings.TrimSpace(draft.Location)

	if draft.Name == "" || draft.Location == "" {
		return "", common.ErrMissingFields
	}
	if draft.Type == "" {
		draft.Type = models.ItemTypeLost
	}

	return s.client.CreateItem(ctx, api.CreateItemRequest{
		ItemName:    draft.Name,
		ItemType:    draft.Type,
		Location:    draft.Location,
		Description: strings.TrimSpace(draft.Description),
	})
}

func (s *itemService) MarkClaimed(ctx context.Context, id int64) (string, error) {
	return s.client.UpdateItemStatus(ctx, id, models.StatusClaimed)
}

func (s *itemService) Delete(ctx context.Context, id int64) (string, error) {
	return s.client.DeleteItem(ctx, id)
}
