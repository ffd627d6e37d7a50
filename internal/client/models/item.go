package models

// ItemType distinguishes lost reports from found reports.
type ItemType string

const (
	ItemTypeLost  ItemType = "Lost"
	ItemTypeFound ItemType = "Found"
)

// ItemStatus is the lifecycle state of a posting.
type ItemStatus string

const (
	StatusActive   ItemStatus = "Active"
	StatusClaimed  ItemStatus = "Claimed"
	StatusResolved ItemStatus = "Resolved"
)

// Item is a lost-and-found posting as returned by GET /api/items.
// Timestamps stay strings: the client only displays them.
type Item struct {
	ID           int64      `json:"id"`
	ItemName     string     `json:"item_name"`
	ItemType     ItemType   `json:"item_type"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	PostedBy     string     `json:"posted_by"`
	PostedByName string     `json:"posted_by_name"`
	Timestamp    string     `json:"timestamp"`
	Status       ItemStatus `json:"status"`
}

// Active reports whether the posting is still open.
func (i Item) Active() bool { return i.Status == StatusActive }

// ItemActions lists which detail-view actions are offered for an item.
// This gating is a UX convenience only: the server re-checks authorization
// on every mutation, so hiding a button is never a security boundary.
type ItemActions struct {
	Contact     bool // message the poster; hidden from the poster themselves
	MarkClaimed bool // close out the posting; poster or admin, while Active
	Delete      bool // remove the posting; poster or admin
}

// ActionsFor computes the detail-view action set for user u looking at item it.
func ActionsFor(u User, it Item) ItemActions {
	owner := it.PostedBy == u.Username
	admin := u.Role == RoleAdmin

	return ItemActions{
		Contact:     !owner,
		MarkClaimed: (owner || admin) && it.Active(),
		Delete:      owner || admin,
	}
}
