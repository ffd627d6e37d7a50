package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastDuration = 4 * time.Second
	// The simulated MFA code toast stays up longer, as on the web portal.
	toastMFADuration = 8 * time.Second
)

// toastTickMsg clears the toast whose sequence number it carries. The
// sequence guards against an old timer wiping a newer toast.
type toastTickMsg struct {
	seq int
}

type toast struct {
	text string
	seq  int
}

func (m *Model) showToast(text string, d time.Duration) tea.Cmd {
	m.toast.seq++
	m.toast.text = text
	seq := m.toast.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastTickMsg{seq: seq}
	})
}

func (m *Model) clearToast(msg toastTickMsg) {
	if msg.seq == m.toast.seq {
		m.toast.text = ""
	}
}
