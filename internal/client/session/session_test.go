package session

import (
	"testing"

	"campusfind/internal/client/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsLoggedOut(t *testing.T) {
	s := New()
	assert.Equal(t, StateLoggedOut, s.State())
	assert.False(t, s.LoggedIn())

	_, ok := s.User()
	assert.False(t, ok)
}

func TestBeginMFA_PreservesPendingUser(t *testing.T) {
	s := New()
	s.BeginMFA("CB101")

	assert.Equal(t, StateAwaitingMFA, s.State())
	assert.Equal(t, "CB101", s.PendingUser())
	assert.False(t, s.LoggedIn())
}

func TestEstablish_BindsUser(t *testing.T) {
	s := New()
	s.BeginMFA("CB101")

	u := models.User{Username: "CB101", Fullname: "Asha Nair", Role: models.RoleStudent}
	s.Establish(u)

	require.True(t, s.LoggedIn())
	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, u, got)
	assert.Empty(t, s.PendingUser())
}

func TestBeginMFA_OverwritesPreviousSession(t *testing.T) {
	s := New()
	s.BeginMFA("CB101")
	s.Establish(models.User{Username: "CB101", Role: models.RoleStudent})

	// A second login overwrites, it never merges.
	s.BeginMFA("FAC007")
	assert.Equal(t, StateAwaitingMFA, s.State())
	assert.Equal(t, "FAC007", s.PendingUser())

	_, ok := s.User()
	assert.False(t, ok)
}

func TestClear_ReturnsToLoggedOut(t *testing.T) {
	s := New()
	s.BeginMFA("CB101")
	s.Establish(models.User{Username: "CB101"})

	s.Clear()

	assert.Equal(t, StateLoggedOut, s.State())
	assert.Empty(t, s.PendingUser())
	_, ok := s.User()
	assert.False(t, ok)
}
