package app

import (
	"log"
	"pkglists/internal/layout"
	"pkglists/internal/styles"
	"pkglists/internal/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// busyModel is implemented by forms that must not be interrupted mid-run.
type busyModel interface {
	IsBusy() bool
}

// model frames the form and owns quitting.
type model struct {
	form   tea.Model
	height int
	width  int
	keys   types.KeyMap
}

func New(form tea.Model, keys types.KeyMap) *model {
	return &model{
		keys: keys,
		form: form,
	}
}

func (m *model) Init() tea.Cmd {
	log.Printf("app: Init received")

	return m.form.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.HardQuit) {
			if m.formBusy() {
				log.Println("app: ignoring quit while a run is in progress")
				return m, nil
			}
			return m.handleQuit()
		}

	case types.ExitRequested:
		return m.handleQuit()
	}

	return m.delegate(msg)
}

func (m *model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	log.Printf("app: WindowSizeMsg received: %+v", msg)

	m.width = msg.Width
	m.height = msg.Height

	childMsg := tea.WindowSizeMsg{
		Width:  m.width - styles.AppStyle.GetHorizontalPadding(),
		Height: m.height - styles.AppStyle.GetVerticalPadding(),
	}

	return m.delegate(childMsg)
}

func (m *model) formBusy() bool {
	b, ok := m.form.(busyModel)
	return ok && b.IsBusy()
}

func (m *model) handleQuit() (tea.Model, tea.Cmd) {
	log.Println("app: quitting...")
	return m, tea.Quit
}

func (m *model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.form.Update(msg)
	m.form = updated
	return m, cmd
}

func (m *model) View() string {
	return layout.View(m.form.View(), m.width, m.height)
}
