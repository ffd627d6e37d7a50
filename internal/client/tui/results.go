package tui

import (
	"context"
	"errors"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
	"campusfind/internal/common"

	tea "github.com/charmbracelet/bubbletea"
)

// errorText names client-side validation failures the way the portal does;
// the request was never sent, so a server-flavored fallback would mislead.
// Anything else surfaces the server message, or fallback when none arrived.
func errorText(err error, fallback string) string {
	switch {
	case errors.Is(err, common.ErrMissingCredentials):
		return "Credentials required"
	case errors.Is(err, common.ErrMissingFields):
		return "Please fill all fields"
	case errors.Is(err, common.ErrMissingMessage):
		return "Please enter a message"
	}
	return api.ErrorMessage(err, fallback)
}

// handleResult consumes the result messages emitted by the network
// commands. Every branch clears the in-flight guard; the dispatching key
// handler set it.
func (m *Model) handleResult(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Warn(context.Background(), "login failed", "error", msg.err)
			return m, m.showToast(errorText(msg.err, "Login failed."), toastDuration), true
		}
		if !msg.outcome.MFARequired {
			return m, m.showToast(msg.outcome.Message, toastDuration), true
		}
		m.screen = screenMFA
		m.mfaInput.SetValue("")
		m.mfaInput.Focus()
		// The simulated second factor arrives in-band and is surfaced in a
		// long-lived toast, exactly as the web portal does.
		return m, m.showToast("Simulated MFA code: "+msg.outcome.MFACode, toastMFADuration), true

	case mfaDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Warn(context.Background(), "mfa verification failed", "error", msg.err)
			m.mfaInput.SetValue("")
			// Always the same generic line, whatever the server said: the
			// code prompt is not a place to leak verification detail.
			return m, m.showToast("Invalid verification code", toastDuration), true
		}
		m.log.Info(context.Background(), "logged in", "user", msg.user.Username, "role", msg.user.Role)
		m.screen = screenDashboard
		m.section = sectionHome
		return m, m.showToast("Welcome, "+msg.user.Fullname+"!", toastDuration), true

	case registerDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(errorText(msg.err, "Registration failed."), toastDuration), true
		}
		m.screen = screenLogin
		m.resetAuthForms()
		return m, m.showToast(msg.message, toastDuration), true

	case forgotDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(errorText(msg.err, "Recovery failed."), toastDuration), true
		}
		m.screen = screenLogin
		return m, m.showToast(msg.result.Message+" Code: "+msg.result.SimulationCode, toastMFADuration), true

	case itemsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not load items."), toastDuration), true
		}
		m.setItems(msg.items)
		return m, nil, true

	case itemCreatedMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, common.ErrMissingFields) {
				return m, m.showToast("Please fill required fields", toastDuration), true
			}
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not post item."), toastDuration), true
		}
		// The form keeps its values, matching the portal's behavior.
		m.overlay = overlayNone
		m.busy = true
		return m, tea.Batch(m.showToast(msg.message, toastDuration), m.loadItemsCmd()), true

	case itemClaimedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not update item."), toastDuration), true
		}
		m.overlay = overlayNone
		m.busy = true
		return m, tea.Batch(m.showToast(msg.message, toastDuration), m.loadItemsCmd()), true

	case itemDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not delete item."), toastDuration), true
		}
		m.overlay = overlayNone
		m.busy = true
		return m, tea.Batch(m.showToast(msg.message, toastDuration), m.loadItemsCmd()), true

	case inboxLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not load messages."), toastDuration), true
		}
		m.inbox = msg.messages
		if m.msgCursor >= len(m.inbox) {
			m.msgCursor = 0
		}
		return m, nil, true

	case claimSentMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(errorText(msg.err, "Could not send message."), toastDuration), true
		}
		m.claimInput.Reset()
		m.overlay = overlayDetail
		return m, m.showToast(msg.message, toastDuration), true

	case replySentMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, common.ErrMissingMessage) {
				return m, m.showToast("Please enter a reply", toastDuration), true
			}
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not send reply."), toastDuration), true
		}
		m.replyInput.Reset()
		m.overlay = overlayNone
		m.busy = true
		return m, tea.Batch(m.showToast(msg.message, toastDuration), m.loadInboxCmd()), true

	case acmLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, m.showToast(api.ErrorMessage(msg.err, "Could not load permissions."), toastDuration), true
		}
		m.matrix = msg.matrix
		m.acmTable = newACMTable(m.matrix)
		m.acmReady = true
		return m, nil, true
	}

	return m, nil, false
}

// setItems replaces the item list and rebuilds the id index the detail
// view resolves through.
func (m *Model) setItems(items []models.Item) {
	m.itemList = items
	m.itemIndex = make(map[int64]models.Item, len(items))
	for _, it := range items {
		m.itemIndex[it.ID] = it
	}
	if m.itemCursor >= len(items) {
		m.itemCursor = 0
	}
	// A deleted item closes its own detail view.
	if m.overlay == overlayDetail {
		if _, ok := m.itemIndex[m.detailID]; !ok {
			m.overlay = overlayNone
		}
	}
}
