package tui

import (
	"strings"

	"campusfind/internal/client/services"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusIndex returns the index of the focused input, or -1.
func focusIndex(inputs []textinput.Model) int {
	for i := range inputs {
		if inputs[i].Focused() {
			return i
		}
	}
	return -1
}

// cycleFocus moves focus forward or backward through inputs, wrapping
// around. total may exceed len(inputs) when the form has extra rows (the
// role picker, the item-type picker); indexes past the inputs leave every
// textinput blurred.
func cycleFocus(inputs []textinput.Model, current, total, dir int) int {
	next := (current + dir + total) % total
	for i := range inputs {
		if i == next {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return next
}

func updateInputs(inputs []textinput.Model, msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		cycleFocus(m.loginInputs, focusIndex(m.loginInputs), len(m.loginInputs), +1)
		return m, nil
	case "shift+tab", "up":
		cycleFocus(m.loginInputs, focusIndex(m.loginInputs), len(m.loginInputs), -1)
		return m, nil
	case "ctrl+r":
		m.screen = screenRegister
		return m, nil
	case "ctrl+f":
		m.screen = screenForgot
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.loginCmd(m.loginInputs[0].Value(), m.loginInputs[1].Value())
	}

	return m, updateInputs(m.loginInputs, msg)
}

func (m *Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CampusFind — Sign In") + "\n")
	for i := range m.loginInputs {
		b.WriteString(m.loginInputs[i].View() + "\n")
	}
	b.WriteString(helpStyle.Render("enter: sign in   ctrl+r: register   ctrl+f: forgot password   ctrl+c: quit"))
	return m.frame(b.String())
}

func (m *Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Row len(registerInputs) is the role picker.
	total := len(m.registerInputs) + 1
	roleRow := len(m.registerInputs)
	current := focusIndex(m.registerInputs)
	if current == -1 {
		current = roleRow
	}

	switch msg.String() {
	case "esc":
		m.screen = screenLogin
		return m, nil
	case "tab", "down":
		cycleFocus(m.registerInputs, current, total, +1)
		return m, nil
	case "shift+tab", "up":
		cycleFocus(m.registerInputs, current, total, -1)
		return m, nil
	case "left":
		if current == roleRow {
			m.registerRole = (m.registerRole + len(roleChoices) - 1) % len(roleChoices)
			return m, nil
		}
	case "right":
		if current == roleRow {
			m.registerRole = (m.registerRole + 1) % len(roleChoices)
			return m, nil
		}
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.registerCmd(services.RegistrationForm{
			Fullname: m.registerInputs[0].Value(),
			Username: m.registerInputs[1].Value(),
			Email:    m.registerInputs[2].Value(),
			Password: m.registerInputs[3].Value(),
			Role:     roleChoices[m.registerRole],
		})
	}

	return m, updateInputs(m.registerInputs, msg)
}

func (m *Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CampusFind — Create Account") + "\n")
	for i := range m.registerInputs {
		b.WriteString(m.registerInputs[i].View() + "\n")
	}

	var roles []string
	for i, r := range roleChoices {
		style := tabInactiveStyle
		if i == m.registerRole {
			style = tabActiveStyle
		}
		roles = append(roles, style.Render(string(r)))
	}
	label := "Role: "
	if focusIndex(m.registerInputs) == -1 {
		label = lipgloss.NewStyle().Bold(true).Render("Role: ")
	}
	b.WriteString(label + lipgloss.JoinHorizontal(lipgloss.Top, roles...) + "\n")
	b.WriteString(helpStyle.Render("tab: next field   ←/→: role   enter: register   esc: back"))
	return m.frame(b.String())
}

func (m *Model) updateForgot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenLogin
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.forgotCmd(m.forgotInput.Value())
	}

	var cmd tea.Cmd
	m.forgotInput, cmd = m.forgotInput.Update(msg)
	return m, cmd
}

func (m *Model) viewForgot() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CampusFind — Account Recovery") + "\n")
	b.WriteString("A recovery code will be sent to your registered email.\n\n")
	b.WriteString(m.forgotInput.View() + "\n")
	b.WriteString(helpStyle.Render("enter: send recovery code   esc: back"))
	return m.frame(b.String())
}

func (m *Model) updateMFA(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Abandoning the second factor drops the pending login entirely.
		m.session.Clear()
		m.mfaInput.SetValue("")
		m.screen = screenLogin
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.mfaCmd(m.mfaInput.Value())
	}

	var cmd tea.Cmd
	m.mfaInput, cmd = m.mfaInput.Update(msg)
	return m, cmd
}

func (m *Model) viewMFA() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CampusFind — Verification") + "\n")
	b.WriteString("Enter the verification code for " + m.session.PendingUser() + ".\n\n")
	b.WriteString(m.mfaInput.View() + "\n")
	b.WriteString(helpStyle.Render("enter: verify   esc: cancel login"))
	return m.frame(b.String())
}
