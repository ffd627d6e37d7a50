package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestACMObjects_Sorted(t *testing.T) {
	m := ACM{
		Role: RoleStudent,
		Permissions: map[string][]string{
			"Users":    {"READ_SELF"},
			"Items":    {"READ", "CREATE"},
			"Messages": {"SEND", "READ"},
		},
	}

	assert.Equal(t, []string{"Items", "Messages", "Users"}, m.Objects())
}

func TestACMObjects_Empty(t *testing.T) {
	assert.Empty(t, ACM{}.Objects())
}
