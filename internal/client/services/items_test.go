package services

import (
	"context"
	"testing"

	"campusfind/internal/client/models"
	"campusfind/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCreate_MissingRequiredFields_NeverHitsNetwork(t *testing.T) {
	tests := []struct {
		name  string
		draft ItemDraft
	}{
		{"empty draft", ItemDraft{}},
		{"missing location", ItemDraft{Name: "Backpack"}},
		{"missing name", ItemDraft{Location: "Library"}},
		{"whitespace only", ItemDraft{Name: " ", Location: "\t"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeClient{}
			svc := NewItemService(fake)

			_, err := svc.Create(context.Background(), tc.draft)

			require.ErrorIs(t, err, common.ErrMissingFields)
			assert.Zero(t, fake.CreateItemCalls)
		})
	}
}

func TestItemCreate_DefaultsTypeToLost(t *testing.T) {
	fake := &fakeClient{CreateItemRet: "Item posted securely"}
	svc := NewItemService(fake)

	msg, err := svc.Create(context.Background(), ItemDraft{
		Name:        "Blue Backpack",
		Location:    "Library, 2nd floor",
		Description: "  has a keychain  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Item posted securely", msg)
	assert.Equal(t, models.ItemTypeLost, fake.LastCreateReq.ItemType)
	assert.Equal(t, "has a keychain", fake.LastCreateReq.Description)
}

func TestMarkClaimed_PatchesStatus(t *testing.T) {
	fake := &fakeClient{UpdateStatusRet: "Item status updated to Claimed"}
	svc := NewItemService(fake)

	msg, err := svc.MarkClaimed(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "Item status updated to Claimed", msg)
	assert.Equal(t, int64(42), fake.LastUpdateID)
	assert.Equal(t, models.StatusClaimed, fake.LastUpdateStatus)
}

func TestDelete_PassesID(t *testing.T) {
	fake := &fakeClient{DeleteItemRet: "Item deleted"}
	svc := NewItemService(fake)

	msg, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Item deleted", msg)
	assert.Equal(t, int64(7), fake.LastDeleteID)
}

func TestList_PassesThrough(t *testing.T) {
	fake := &fakeClient{ListItemsRet: []models.Item{{ID: 1, ItemName: "Umbrella"}}}
	svc := NewItemService(fake)

	items, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Umbrella", items[0].ItemName)
}
