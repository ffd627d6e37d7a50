package tui

import (
	"strings"
	"testing"

	"campusfind/internal/client/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderItemList_Empty(t *testing.T) {
	out := renderItemList(nil, 0)
	assert.Contains(t, out, emptyItemsNotice)
}

func TestRenderItemList_OneCardPerItem(t *testing.T) {
	items := []models.Item{
		{ID: 1, ItemName: "Blue Backpack", ItemType: models.ItemTypeLost,
			Location: "Library", PostedByName: "Alice", Status: models.StatusActive},
		{ID: 2, ItemName: "Water Bottle", ItemType: models.ItemTypeFound,
			Location: "Gym", PostedByName: "Bob", Status: models.StatusClaimed},
	}

	out := renderItemList(items, 0)

	assert.NotContains(t, out, emptyItemsNotice)
	assert.Contains(t, out, "Blue Backpack")
	assert.Contains(t, out, "Water Bottle")
	assert.Contains(t, out, "Lost")
	assert.Contains(t, out, "Found")
	// Closed-out items carry a status badge, active ones do not.
	assert.Contains(t, out, "Claimed")
	assert.Equal(t, 1, strings.Count(out, "Claimed"))
}

func TestStatusBadge_ActiveIsBlank(t *testing.T) {
	assert.Empty(t, statusBadge(models.StatusActive))
	assert.Empty(t, statusBadge(""))
	assert.NotEmpty(t, statusBadge(models.StatusResolved))
}

func TestAuthBadge(t *testing.T) {
	assert.Contains(t, authBadge(true), "Authentic Response")
	assert.Contains(t, authBadge(false), "Verification Failed")
}

func TestDetailActionHints(t *testing.T) {
	owner := models.User{Username: "alice", Role: models.RoleStudent}
	other := models.User{Username: "bob", Role: models.RoleStudent}
	admin := models.User{Username: "root", Role: models.RoleAdmin}

	active := models.Item{ID: 1, PostedBy: "alice", Status: models.StatusActive}
	closed := models.Item{ID: 1, PostedBy: "alice", Status: models.StatusClaimed}

	tests := []struct {
		name    string
		user    models.User
		item    models.Item
		want    []string
		notWant []string
	}{
		{"owner active", owner, active,
			[]string{"mark as claimed", "delete post"}, []string{"contact poster"}},
		{"owner closed", owner, closed,
			[]string{"delete post"}, []string{"contact poster", "mark as claimed"}},
		{"other active", other, active,
			[]string{"contact poster"}, []string{"mark as claimed", "delete post"}},
		{"admin active", admin, active,
			[]string{"contact poster", "mark as claimed", "delete post"}, nil},
		{"admin closed", admin, closed,
			[]string{"contact poster", "delete post"}, []string{"mark as claimed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := detailActionHints(tt.user, tt.item)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestRenderItemDetail_NoDescriptionFallback(t *testing.T) {
	it := models.Item{ID: 1, ItemName: "Keys", PostedBy: "alice", Status: models.StatusActive}
	out := renderItemDetail(models.User{Username: "bob"}, it)
	assert.Contains(t, out, "No description provided.")
}

func TestRenderInbox(t *testing.T) {
	assert.Contains(t, renderInbox(nil, 0), emptyInboxNotice)

	msgs := []models.Message{
		{ID: 1, ItemID: 7, SenderID: "alice", Content: "That bag is mine", IsAuthentic: true},
		{ID: 2, ItemID: 7, SenderID: "mallory", Content: "No, mine", IsAuthentic: false},
	}
	out := renderInbox(msgs, 0)
	assert.Contains(t, out, "From: alice")
	assert.Contains(t, out, "Authentic Response")
	assert.Contains(t, out, "Verification Failed")
	assert.Contains(t, out, "item #7")
}

func TestRenderConfirm_FocusedButton(t *testing.T) {
	yes := renderConfirm("Delete post?", "body", true)
	no := renderConfirm("Delete post?", "body", false)

	assert.Contains(t, yes, "Delete")
	assert.Contains(t, yes, "Cancel")
	assert.NotEqual(t, yes, no)
}

func TestNewACMTable_SortedRows(t *testing.T) {
	matrix := models.ACM{
		Role: models.RoleStudent,
		Permissions: map[string][]string{
			"messages": {"send", "read_own"},
			"items":    {"read", "create"},
			"users":    {"read_own"},
		},
	}

	out := renderACM(matrix, newACMTable(matrix))
	assert.Contains(t, out, "Student")
	items := strings.Index(out, "items")
	messages := strings.Index(out, "messages")
	users := strings.Index(out, "users")
	assert.True(t, items < messages && messages < users)
}
