package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionsFor(t *testing.T) {
	poster := User{Username: "CB101", Fullname: "Asha Nair", Role: RoleStudent}
	faculty := User{Username: "FAC007", Fullname: "Prof. Rao", Role: RoleFaculty}
	admin := User{Username: "ADM001", Fullname: "Root", Role: RoleAdmin}

	active := Item{ID: 1, ItemName: "Blue Backpack", PostedBy: "CB101", Status: StatusActive}
	claimed := active
	claimed.Status = StatusClaimed

	tests := []struct {
		name string
		user User
		item Item
		want ItemActions
	}{
		{
			name: "faculty non-poster gets contact only",
			user: faculty,
			item: active,
			want: ItemActions{Contact: true, MarkClaimed: false, Delete: false},
		},
		{
			name: "poster of active item gets claim and delete, no contact",
			user: poster,
			item: active,
			want: ItemActions{Contact: false, MarkClaimed: true, Delete: true},
		},
		{
			name: "admin non-poster of active item gets all three",
			user: admin,
			item: active,
			want: ItemActions{Contact: true, MarkClaimed: true, Delete: true},
		},
		{
			name: "poster of claimed item gets delete only",
			user: poster,
			item: claimed,
			want: ItemActions{Contact: false, MarkClaimed: false, Delete: true},
		},
		{
			name: "admin of claimed item keeps delete, loses claim",
			user: admin,
			item: claimed,
			want: ItemActions{Contact: true, MarkClaimed: false, Delete: true},
		},
		{
			name: "student non-poster gets contact only",
			user: User{Username: "CB555", Role: RoleStudent},
			item: active,
			want: ItemActions{Contact: true, MarkClaimed: false, Delete: false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActionsFor(tc.user, tc.item))
		})
	}
}

func TestItemActive(t *testing.T) {
	assert.True(t, Item{Status: StatusActive}.Active())
	assert.False(t, Item{Status: StatusClaimed}.Active())
	assert.False(t, Item{Status: StatusResolved}.Active())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleFaculty.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("Janitor").Valid())
	assert.False(t, Role("").Valid())
}
