// Package tui is the interactive front end of the Campusfind client: a
// bubbletea program with a login/MFA flow, section navigation, item cards
// with a detail overlay, claim/reply forms, and the ACM viewer.
//
// Every user action triggers at most one network command; results come
// back as typed messages. Each view is reloaded in full after a mutation —
// there is no cache to invalidate.
package tui

import (
	"campusfind/internal/client/models"
	"campusfind/internal/client/services"
	"campusfind/internal/client/session"
	"campusfind/internal/logging"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// screen is the top-level UI state, mirroring the auth flow.
type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenForgot
	screenMFA
	screenDashboard
)

// section is the active dashboard area.
type section int

const (
	sectionHome section = iota
	sectionItems
	sectionMessages
	sectionSecurity
)

// overlay is a modal sitting on top of the items or messages section.
type overlay int

const (
	overlayNone overlay = iota
	overlayDetail
	overlayPost
	overlayClaim
	overlayReply
	overlayConfirmDelete
)

// Deps carries everything the program needs; nothing is global.
type Deps struct {
	Session  *session.Session
	Auth     services.AuthService
	Items    services.ItemService
	Messages services.MessageService
	ACM      services.ACMService
	Log      logging.Logger
}

// Model is the bubbletea model for the whole client.
type Model struct {
	session  *session.Session
	auth     services.AuthService
	items    services.ItemService
	messages services.MessageService
	acm      services.ACMService
	log      logging.Logger

	screen  screen
	section section
	overlay overlay

	// busy guards against duplicate submissions: set when a mutation
	// command is dispatched, cleared when its result message arrives.
	busy bool

	// A section entered while busy defers its data load here; the load
	// dispatches once the in-flight result lands, so the section never
	// sits on stale data waiting for a manual refresh.
	queuedSection section
	loadQueued    bool

	// Auth forms.
	loginInputs    []textinput.Model // username, password
	registerInputs []textinput.Model // fullname, username, email, password
	registerRole   int               // index into roleChoices
	mfaInput       textinput.Model
	forgotInput    textinput.Model

	// Items section. itemIndex is the keyed lookup the detail view
	// resolves through; it is rebuilt on every list load.
	itemList   []models.Item
	itemIndex  map[int64]models.Item
	itemCursor int
	detailID   int64

	// Post form.
	postInputs []textinput.Model // name, location, description
	postType   models.ItemType

	// Claim / reply forms.
	claimInput    textarea.Model
	claimItemID   int64
	claimItemName string
	replyInput    textarea.Model
	replyTo       string
	replyItemID   int64

	// Delete confirmation.
	confirmItemID int64
	confirmYes    bool

	// Messages section.
	inbox     []models.Message
	msgCursor int

	// Security section.
	matrix   models.ACM
	acmTable table.Model
	acmReady bool

	toast toast

	width  int
	height int
}

var roleChoices = []models.Role{models.RoleStudent, models.RoleFaculty, models.RoleAdmin}

// New constructs the program model in the logged-out state.
func New(deps Deps) *Model {
	m := &Model{
		session:   deps.Session,
		auth:      deps.Auth,
		items:     deps.Items,
		messages:  deps.Messages,
		acm:       deps.ACM,
		log:       deps.Log,
		screen:    screenLogin,
		itemIndex: make(map[int64]models.Item),
		width:     80,
		height:    24,
	}
	m.resetAuthForms()
	m.resetPostForm()
	m.resetMessageForms()
	return m
}

func newInput(placeholder string, password bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 32
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

func (m *Model) resetAuthForms() {
	m.loginInputs = []textinput.Model{
		newInput("University ID", false),
		newInput("Password", true),
	}
	m.loginInputs[0].Focus()

	m.registerInputs = []textinput.Model{
		newInput("Full name", false),
		newInput("University ID", false),
		newInput("Email", false),
		newInput("Password", true),
	}
	m.registerInputs[0].Focus()
	m.registerRole = 0

	m.mfaInput = newInput("MFA code", false)
	m.mfaInput.Focus()

	m.forgotInput = newInput("Email", false)
	m.forgotInput.Focus()
}

func (m *Model) resetPostForm() {
	m.postInputs = []textinput.Model{
		newInput("Item name", false),
		newInput("Location", false),
		newInput("Description (optional)", false),
	}
	m.postInputs[0].Focus()
	m.postType = models.ItemTypeLost
}

func (m *Model) resetMessageForms() {
	m.claimInput = textarea.New()
	m.claimInput.Placeholder = "Describe why this item is yours…"
	m.claimInput.SetWidth(48)
	m.claimInput.SetHeight(4)

	m.replyInput = textarea.New()
	m.replyInput.Placeholder = "Write a reply…"
	m.replyInput.SetWidth(48)
	m.replyInput.SetHeight(4)
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// currentUser returns the bound identity, or a zero user before login.
func (m *Model) currentUser() models.User {
	u, _ := m.session.User()
	return u
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastTickMsg:
		m.clearToast(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if model, cmd, handled := m.handleResult(msg); handled {
		if qc := m.takeQueuedLoad(); qc != nil {
			if cmd == nil {
				cmd = qc
			} else {
				cmd = tea.Batch(cmd, qc)
			}
		}
		return model, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenForgot:
		return m.updateForgot(msg)
	case screenMFA:
		return m.updateMFA(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenRegister:
		return m.viewRegister()
	case screenForgot:
		return m.viewForgot()
	case screenMFA:
		return m.viewMFA()
	case screenDashboard:
		return m.viewDashboard()
	}
	return ""
}

// logout resets the whole model, the moral equivalent of the web portal's
// full page reload.
func (m *Model) logout() {
	m.auth.Logout()

	m.screen = screenLogin
	m.section = sectionHome
	m.overlay = overlayNone
	m.busy = false
	m.loadQueued = false
	m.itemList = nil
	m.itemIndex = make(map[int64]models.Item)
	m.itemCursor = 0
	m.inbox = nil
	m.msgCursor = 0
	m.matrix = models.ACM{}
	m.acmReady = false
	m.toast = toast{}
	m.resetAuthForms()
	m.resetPostForm()
	m.resetMessageForms()
}
