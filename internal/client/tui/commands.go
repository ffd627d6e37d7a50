package tui

import (
	"context"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
	"campusfind/internal/client/services"

	tea "github.com/charmbracelet/bubbletea"
)

// Result messages delivered back into Update by the command goroutines.
// One message type per network interaction keeps the in-flight guard
// honest: dispatching a command sets busy, receiving its result clears it.

type loginDoneMsg struct {
	outcome *services.LoginOutcome
	err     error
}

type mfaDoneMsg struct {
	user models.User
	err  error
}

type registerDoneMsg struct {
	message string
	err     error
}

type forgotDoneMsg struct {
	result *api.RecoveryResult
	err    error
}

type itemsLoadedMsg struct {
	items []models.Item
	err   error
}

type itemCreatedMsg struct {
	message string
	err     error
}

type itemClaimedMsg struct {
	message string
	err     error
}

type itemDeletedMsg struct {
	message string
	err     error
}

type inboxLoadedMsg struct {
	messages []models.Message
	err      error
}

type claimSentMsg struct {
	message string
	err     error
}

type replySentMsg struct {
	message string
	err     error
}

type acmLoadedMsg struct {
	matrix models.ACM
	err    error
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.auth.Login(context.Background(), username, password)
		return loginDoneMsg{outcome: outcome, err: err}
	}
}

func (m *Model) mfaCmd(code string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.auth.VerifyMFA(context.Background(), code)
		return mfaDoneMsg{user: user, err: err}
	}
}

func (m *Model) registerCmd(form services.RegistrationForm) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.auth.Register(context.Background(), form)
		return registerDoneMsg{message: msg, err: err}
	}
}

func (m *Model) forgotCmd(email string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.auth.ForgotPassword(context.Background(), email)
		return forgotDoneMsg{result: res, err: err}
	}
}

func (m *Model) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.items.List(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m *Model) createItemCmd(draft services.ItemDraft) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.items.Create(context.Background(), draft)
		return itemCreatedMsg{message: msg, err: err}
	}
}

func (m *Model) markClaimedCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.items.MarkClaimed(context.Background(), id)
		return itemClaimedMsg{message: msg, err: err}
	}
}

func (m *Model) deleteItemCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.items.Delete(context.Background(), id)
		return itemDeletedMsg{message: msg, err: err}
	}
}

func (m *Model) loadInboxCmd() tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.messages.Inbox(context.Background())
		return inboxLoadedMsg{messages: msgs, err: err}
	}
}

func (m *Model) sendClaimCmd(itemID int64, content string) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.messages.SendClaim(context.Background(), itemID, content)
		return claimSentMsg{message: msg, err: err}
	}
}

func (m *Model) sendReplyCmd(receiverID string, itemID int64, content string) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.messages.SendReply(context.Background(), receiverID, itemID, content)
		return replySentMsg{message: msg, err: err}
	}
}

func (m *Model) loadACMCmd() tea.Cmd {
	return func() tea.Msg {
		matrix, err := m.acm.Matrix(context.Background())
		return acmLoadedMsg{matrix: matrix, err: err}
	}
}
