package tui

import (
	"fmt"
	"strings"

	"campusfind/internal/client/models"

	"github.com/charmbracelet/lipgloss"
)

// Pure render helpers: server data in, styled strings out. Kept free of
// Model state so they can be unit-tested without running a program.

const emptyItemsNotice = "No items yet. Be the first to post!"
const emptyInboxNotice = "No messages yet."

func typeBadge(t models.ItemType) string {
	if t == models.ItemTypeFound {
		return badgeFoundStyle.Render(string(models.ItemTypeFound))
	}
	return badgeLostStyle.Render(string(models.ItemTypeLost))
}

func statusBadge(s models.ItemStatus) string {
	// Active is the normal state and gets no badge, as on the web portal.
	if s == models.StatusActive || s == "" {
		return ""
	}
	return badgeStatusStyle.Render(string(s))
}

func authBadge(authentic bool) string {
	if authentic {
		return badgeAuthenticStyle.Render("✔ Authentic Response")
	}
	return badgeForgedStyle.Render("✘ Verification Failed")
}

func roleBadge(r models.Role) string {
	return roleBadgeStyle.Render(string(r))
}

// renderItemCard renders one list entry for an item.
func renderItemCard(it models.Item, selected bool) string {
	badges := typeBadge(it.ItemType)
	if sb := statusBadge(it.Status); sb != "" {
		badges = lipgloss.JoinHorizontal(lipgloss.Top, badges, " ", sb)
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, badges, "  ", mutedStyle.Render(it.Timestamp)),
		lipgloss.NewStyle().Bold(true).Render(it.ItemName),
		"📍 " + it.Location,
		mutedStyle.Render("By: " + it.PostedByName),
	}

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderItemList renders all cards, or the empty-state notice.
func renderItemList(items []models.Item, cursor int) string {
	if len(items) == 0 {
		return mutedStyle.Render(emptyItemsNotice)
	}

	cards := make([]string, 0, len(items))
	for i, it := range items {
		cards = append(cards, renderItemCard(it, i == cursor))
	}
	return strings.Join(cards, "\n")
}

// renderItemDetail renders the detail body plus the action hints permitted
// for user u. Actions the user may not take are not rendered at all.
func renderItemDetail(u models.User, it models.Item) string {
	desc := it.Description
	if desc == "" {
		desc = "No description provided."
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, typeBadge(it.ItemType), " ",
		lipgloss.NewStyle().Bold(true).Render(it.ItemName)))
	if sb := statusBadge(it.Status); sb != "" {
		b.WriteString(" " + sb)
	}
	b.WriteString("\n\n")
	b.WriteString("📍 " + it.Location + "\n")
	b.WriteString("🕒 " + it.Timestamp + "\n\n")
	b.WriteString(desc + "\n\n")
	b.WriteString(mutedStyle.Render("Posted by: "+it.PostedByName) + "\n")

	if hints := detailActionHints(u, it); hints != "" {
		b.WriteString("\n" + hints)
	}
	b.WriteString("\n" + helpStyle.Render("esc: back"))
	return b.String()
}

// detailActionHints renders the key hints for the allowed actions.
func detailActionHints(u models.User, it models.Item) string {
	actions := models.ActionsFor(u, it)

	var hints []string
	if actions.Contact {
		hints = append(hints, "c: contact poster")
	}
	if actions.MarkClaimed {
		hints = append(hints, "m: mark as claimed")
	}
	if actions.Delete {
		hints = append(hints, "d: delete post")
	}
	return strings.Join(hints, "   ")
}

// renderMessageCard renders one inbox entry.
func renderMessageCard(m models.Message, selected bool) string {
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Bold(true).Render("From: "+m.SenderID),
			"  ", mutedStyle.Render(m.Timestamp)),
		m.Content,
		lipgloss.JoinHorizontal(lipgloss.Top, authBadge(m.IsAuthentic), "  ",
			mutedStyle.Render(fmt.Sprintf("item #%d", m.ItemID))),
	}

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderInbox(msgs []models.Message, cursor int) string {
	if len(msgs) == 0 {
		return mutedStyle.Render(emptyInboxNotice)
	}

	cards := make([]string, 0, len(msgs))
	for i, m := range msgs {
		cards = append(cards, renderMessageCard(m, i == cursor))
	}
	return strings.Join(cards, "\n")
}

// renderConfirm renders a yes/no modal with the focused button highlighted.
func renderConfirm(title, body string, confirmFocused bool) string {
	confirm := btnStyle.Render("Delete")
	cancel := btnStyle.Render("Cancel")
	if confirmFocused {
		confirm = btnActiveStyle.Render("Delete")
	} else {
		cancel = btnActiveStyle.Render("Cancel")
	}

	content := strings.Join([]string{
		titleStyle.Render(title),
		body,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel),
		"",
		helpStyle.Render("←/→: focus   enter: select   esc: cancel"),
	}, "\n")
	return modalStyle.Render(content)
}
