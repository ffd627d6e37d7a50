package tui

import (
	"fmt"
	"strings"

	"campusfind/internal/client/models"
	"campusfind/internal/client/services"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var sectionNames = []string{"Home", "Items", "Messages", "Security"}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "L":
		m.logout()
		return m, nil
	case "1":
		m.section = sectionHome
		return m, nil
	case "2":
		return m, m.enterItems()
	case "3":
		return m, m.enterMessages()
	case "4":
		return m, m.enterSecurity()
	}

	switch m.section {
	case sectionItems:
		return m.updateItems(msg)
	case sectionMessages:
		return m.updateMessages(msg)
	}
	return m, nil
}

// enterItems switches to the items section and reloads the list. The list
// is refetched on every entry: the server owns the data. With a command
// already in flight the load is queued rather than dropped.
func (m *Model) enterItems() tea.Cmd {
	m.section = sectionItems
	if m.busy {
		m.queueLoad(sectionItems)
		return nil
	}
	m.busy = true
	return m.loadItemsCmd()
}

func (m *Model) enterMessages() tea.Cmd {
	m.section = sectionMessages
	if m.busy {
		m.queueLoad(sectionMessages)
		return nil
	}
	m.busy = true
	return m.loadInboxCmd()
}

func (m *Model) enterSecurity() tea.Cmd {
	m.section = sectionSecurity
	if m.acmReady {
		// The matrix is static per role; one load per login is enough.
		return nil
	}
	if m.busy {
		m.queueLoad(sectionSecurity)
		return nil
	}
	m.busy = true
	return m.loadACMCmd()
}

func (m *Model) queueLoad(s section) {
	m.queuedSection = s
	m.loadQueued = true
}

// takeQueuedLoad dispatches a deferred section load once nothing is in
// flight. A load queued for a section the user has since left is dropped.
func (m *Model) takeQueuedLoad() tea.Cmd {
	if !m.loadQueued || m.busy {
		return nil
	}
	m.loadQueued = false
	if m.queuedSection != m.section {
		return nil
	}

	switch m.queuedSection {
	case sectionItems:
		m.busy = true
		return m.loadItemsCmd()
	case sectionMessages:
		m.busy = true
		return m.loadInboxCmd()
	case sectionSecurity:
		if m.acmReady {
			return nil
		}
		m.busy = true
		return m.loadACMCmd()
	}
	return nil
}

func (m *Model) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case "down", "j":
		if m.itemCursor < len(m.itemList)-1 {
			m.itemCursor++
		}
	case "enter":
		if m.itemCursor < len(m.itemList) {
			m.detailID = m.itemList[m.itemCursor].ID
			m.overlay = overlayDetail
		}
	case "n":
		m.overlay = overlayPost
	case "r":
		if !m.busy {
			m.busy = true
			return m, m.loadItemsCmd()
		}
	}
	return m, nil
}

func (m *Model) updateMessages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.msgCursor > 0 {
			m.msgCursor--
		}
	case "down", "j":
		if m.msgCursor < len(m.inbox)-1 {
			m.msgCursor++
		}
	case "enter":
		if m.msgCursor < len(m.inbox) {
			sel := m.inbox[m.msgCursor]
			m.replyTo = sel.SenderID
			m.replyItemID = sel.ItemID
			m.overlay = overlayReply
			m.replyInput.Focus()
		}
	case "r":
		if !m.busy {
			m.busy = true
			return m, m.loadInboxCmd()
		}
	}
	return m, nil
}

func (m *Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayDetail:
		return m.updateDetail(msg)
	case overlayPost:
		return m.updatePost(msg)
	case overlayClaim:
		return m.updateClaim(msg)
	case overlayReply:
		return m.updateReply(msg)
	case overlayConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	it, ok := m.itemIndex[m.detailID]
	if !ok {
		m.overlay = overlayNone
		return m, nil
	}
	actions := models.ActionsFor(m.currentUser(), it)

	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
	case "c":
		if actions.Contact {
			m.claimItemID = it.ID
			m.claimItemName = it.ItemName
			m.overlay = overlayClaim
			m.claimInput.Focus()
		}
	case "m":
		if actions.MarkClaimed && !m.busy {
			m.busy = true
			return m, m.markClaimedCmd(it.ID)
		}
	case "d":
		if actions.Delete {
			m.confirmItemID = it.ID
			m.confirmYes = false
			m.overlay = overlayConfirmDelete
		}
	}
	return m, nil
}

func (m *Model) updatePost(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Row len(postInputs) is the Lost/Found picker.
	total := len(m.postInputs) + 1
	typeRow := len(m.postInputs)
	current := focusIndex(m.postInputs)
	if current == -1 {
		current = typeRow
	}

	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "tab", "down":
		cycleFocus(m.postInputs, current, total, +1)
		return m, nil
	case "shift+tab", "up":
		cycleFocus(m.postInputs, current, total, -1)
		return m, nil
	case "left", "right":
		if current == typeRow {
			if m.postType == models.ItemTypeFound {
				m.postType = models.ItemTypeLost
			} else {
				m.postType = models.ItemTypeFound
			}
			return m, nil
		}
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.createItemCmd(services.ItemDraft{
			Name:        m.postInputs[0].Value(),
			Location:    m.postInputs[1].Value(),
			Description: m.postInputs[2].Value(),
			Type:        m.postType,
		})
	}

	return m, updateInputs(m.postInputs, msg)
}

func (m *Model) updateClaim(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayDetail
		return m, nil
	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.sendClaimCmd(m.claimItemID, m.claimInput.Value())
	}

	var cmd tea.Cmd
	m.claimInput, cmd = m.claimInput.Update(msg)
	return m, cmd
}

func (m *Model) updateReply(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil
	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.sendReplyCmd(m.replyTo, m.replyItemID, m.replyInput.Value())
	}

	var cmd tea.Cmd
	m.replyInput, cmd = m.replyInput.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.overlay = overlayDetail
	case "left", "right", "tab":
		m.confirmYes = !m.confirmYes
	case "y":
		return m, m.dispatchDelete()
	case "enter":
		if m.confirmYes {
			return m, m.dispatchDelete()
		}
		m.overlay = overlayDetail
	}
	return m, nil
}

func (m *Model) dispatchDelete() tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	return m.deleteItemCmd(m.confirmItemID)
}

func (m *Model) viewDashboard() string {
	var body string
	switch m.overlay {
	case overlayDetail:
		if it, ok := m.itemIndex[m.detailID]; ok {
			body = modalStyle.Render(renderItemDetail(m.currentUser(), it))
		}
	case overlayPost:
		body = m.viewPostForm()
	case overlayClaim:
		body = modalStyle.Render(strings.Join([]string{
			titleStyle.Render("Contact poster — " + m.claimItemName),
			m.claimInput.View(),
			helpStyle.Render("ctrl+s: send   esc: back"),
		}, "\n"))
	case overlayReply:
		body = modalStyle.Render(strings.Join([]string{
			titleStyle.Render("Reply to " + m.replyTo),
			m.replyInput.View(),
			helpStyle.Render("ctrl+s: send   esc: back"),
		}, "\n"))
	case overlayConfirmDelete:
		name := ""
		if it, ok := m.itemIndex[m.confirmItemID]; ok {
			name = it.ItemName
		}
		body = renderConfirm("Delete post?",
			fmt.Sprintf("%q will be removed permanently.", name), m.confirmYes)
	default:
		body = m.viewSection()
	}

	return m.frame(m.header() + "\n" + body)
}

func (m *Model) viewSection() string {
	switch m.section {
	case sectionHome:
		return m.viewHome()
	case sectionItems:
		return renderItemList(m.itemList, m.itemCursor) + "\n" +
			helpStyle.Render("↑/↓: select   enter: details   n: new post   r: refresh")
	case sectionMessages:
		return renderInbox(m.inbox, m.msgCursor) + "\n" +
			helpStyle.Render("↑/↓: select   enter: reply   r: refresh")
	case sectionSecurity:
		if !m.acmReady {
			return mutedStyle.Render("Loading permissions…")
		}
		return renderACM(m.matrix, m.acmTable)
	}
	return ""
}

func (m *Model) viewHome() string {
	u := m.currentUser()
	lines := []string{
		"Welcome back, " + u.Fullname + "! " + roleBadge(u.Role),
		"",
		"Browse lost and found items, message posters, and review what",
		"your role is allowed to do.",
		"",
		helpStyle.Render("1-4: sections   L: log out   q: quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) header() string {
	var tabs []string
	for i, name := range sectionNames {
		style := tabInactiveStyle
		if section(i) == m.section {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}

	u := m.currentUser()
	who := mutedStyle.Render(u.Fullname) + " " + roleBadge(u.Role)
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "   " + who
}

func (m *Model) viewPostForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Report an item") + "\n")
	for i := range m.postInputs {
		b.WriteString(m.postInputs[i].View() + "\n")
	}

	lost, found := tabInactiveStyle, tabInactiveStyle
	if m.postType == models.ItemTypeFound {
		found = tabActiveStyle
	} else {
		lost = tabActiveStyle
	}
	b.WriteString("Type: " + lost.Render(string(models.ItemTypeLost)) +
		found.Render(string(models.ItemTypeFound)) + "\n")
	b.WriteString(helpStyle.Render("tab: next field   ←/→: type   enter: post   esc: cancel"))
	return modalStyle.Render(b.String())
}

// frame appends the status line (busy indicator and toast) to every screen.
func (m *Model) frame(body string) string {
	var status []string
	if m.busy {
		status = append(status, mutedStyle.Render("working…"))
	}
	if m.toast.text != "" {
		status = append(status, toastStyle.Render(m.toast.text))
	}
	if len(status) == 0 {
		return body
	}
	return body + "\n\n" + strings.Join(status, " ")
}
