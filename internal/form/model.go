package form

import (
	"fmt"
	"pkglists/internal/constants"
	"pkglists/internal/inventory"
	"pkglists/internal/navigator"
	"pkglists/internal/report"
	"pkglists/internal/styles"
	"pkglists/internal/system"
	"pkglists/internal/types"
	"pkglists/internal/utils"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type phase int

const (
	inputPhase phase = iota
	runningPhase
	donePhase
)

const (
	backupField = iota
	appImageField
	fieldCount
)

const maxInputWidth = 100

type Model struct {
	nav           navigator.Navigator[phase]
	keys          types.KeyMap
	spinner       spinner.Model
	backupInput   textinput.Model
	appImageInput textinput.Model
	focusedInput  int
	width         int
	height        int
	service       runService
	osInfo        system.OSInfo
	progress      []inventory.Outcome
	report        inventory.Report
	err           error
}

func New(
	keys types.KeyMap,
	service runService,
	backupDir string,
	osInfo system.OSInfo,
) tea.Model {
	backup := textinput.New()
	backup.Placeholder = "/path/to/backups"
	backup.SetValue(backupDir)
	backup.CharLimit = 4096
	backup.Focus()

	appImage := textinput.New()
	appImage.Placeholder = constants.Form.AppImagePlaceholder
	appImage.CharLimit = 4096

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return &Model{
		keys:          keys,
		nav:           navigator.New(inputPhase),
		spinner:       s,
		backupInput:   backup,
		appImageInput: appImage,
		service:       service,
		osInfo:        osInfo,
	}
}

func (m *Model) Init() tea.Cmd {
	m.nav.Reset(inputPhase)

	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case outcomeMsg:
		return m.handleOutcomeMsg(msg)

	case runFinishedMsg:
		return m.handleRunFinishedMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	switch m.nav.Current() {
	case runningPhase:
		m.spinner, cmd = m.spinner.Update(msg)
	case inputPhase:
		cmd = m.updateFocusedInput(msg)
	}

	return m, cmd
}

func (m *Model) handleWindowSizeMsg(
	msg tea.WindowSizeMsg,
) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.backupInput.Width = m.getInputWidth()
	m.appImageInput.Width = m.getInputWidth()
	return m, nil
}

func (m *Model) handleOutcomeMsg(msg outcomeMsg) (tea.Model, tea.Cmd) {
	m.progress = append(m.progress, msg.outcome)
	return m, waitForEvent(msg.events)
}

func (m *Model) handleRunFinishedMsg(
	msg runFinishedMsg,
) (tea.Model, tea.Cmd) {
	m.progress = nil
	m.nav.Pop()

	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}

	m.report = msg.report
	m.nav.Push(donePhase)
	return m, nil
}

// IsBusy reports whether a run is in progress.
func (m *Model) IsBusy() bool {
	return m.nav.Is(runningPhase)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A run cannot be interrupted.
	if !m.nav.Is(inputPhase, donePhase) {
		return m, nil
	}

	if m.nav.Is(donePhase) {
		return m.handleDoneKeys(msg)
	}
	return m.handleInputKeys(msg)
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		req := m.request()
		m.err = nil
		m.progress = nil
		m.nav.Push(runningPhase)
		return m, tea.Batch(
			m.spinner.Tick,
			runCmd(m.service, req),
		)

	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return types.ExitRequested{} }

	case key.Matches(msg, m.keys.Tab, m.keys.Down):
		m.setFocus((m.focusedInput + 1) % fieldCount)

	case key.Matches(msg, m.keys.ShiftTab, m.keys.Up):
		m.setFocus((m.focusedInput - 1 + fieldCount) % fieldCount)

	default:
		m.err = nil
		return m, m.updateFocusedInput(msg)
	}

	return m, nil
}

func (m *Model) handleDoneKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Enter, m.keys.Back) {
		m.report = inventory.Report{}
		m.nav.Pop()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) request() inventory.Request {
	return inventory.Request{
		BackupDir:   strings.TrimSpace(m.backupInput.Value()),
		AppImageDir: strings.TrimSpace(m.appImageInput.Value()),
	}
}

func (m *Model) setFocus(field int) {
	m.focusedInput = field
	if field == backupField {
		m.backupInput.Focus()
		m.appImageInput.Blur()
		return
	}
	m.appImageInput.Focus()
	m.backupInput.Blur()
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focusedInput == backupField {
		m.backupInput, cmd = m.backupInput.Update(msg)
	} else {
		m.appImageInput, cmd = m.appImageInput.Update(msg)
	}
	return cmd
}

func (m *Model) getInputWidth() int {
	w := m.width - styles.FocusedBorderStyle.GetHorizontalFrameSize() - 2
	if w > maxInputWidth {
		w = maxInputWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) View() string {
	switch m.nav.Current() {
	case inputPhase:
		return m.inputView()
	case runningPhase:
		return m.runningView()
	case donePhase:
		return m.doneView()
	default:
		return "Unknown state."
	}
}

func (m *Model) inputView() string {
	field := func(label string, input textinput.Model, focused bool) string {
		border := styles.BlurredBorderStyle
		if focused {
			border = styles.FocusedBorderStyle
		}
		return lipgloss.JoinVertical(
			lipgloss.Left,
			styles.LabelStyle.Render(label),
			border.Render(input.View()),
		)
	}

	parts := []string{
		styles.TitleStyle.Render(constants.App.Title),
		styles.SubtleTextStyle.Render(constants.Form.Description),
		styles.SubtleTextStyle.Render(fmt.Sprintf(constants.Form.DetectedSystem, m.osInfo)),
	}

	if !m.osInfo.IsSuseLike() {
		parts = append(parts, styles.WarningStyle.Render("Warning: "+fmt.Sprintf(constants.Form.NonSuseWarning, m.osInfo)))
	}

	parts = append(parts,
		"",
		field(constants.Form.BackupLabel, m.backupInput, m.focusedInput == backupField),
		field(constants.Form.AppImageLabel, m.appImageInput, m.focusedInput == appImageField),
	)

	if m.err != nil {
		parts = append(parts, styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	parts = append(parts, "", styles.SubtleTextStyle.Render(constants.Form.Help))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) runningView() string {
	var b strings.Builder

	b.WriteString(m.spinner.View() + fmt.Sprintf(constants.Form.Running, m.request().BackupDir))
	b.WriteString("\n\n")
	m.writeOutcomes(&b, m.progress)

	return b.String()
}

func (m *Model) doneView() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Output: " + m.report.Context.OutputDir))
	b.WriteString("\n\n")

	m.writeOutcomes(&b, m.report.Outcomes)

	b.WriteString("\n" + styles.SuccessStyle.Render(report.SuccessMessage))
	b.WriteString("\n" + styles.SubtleTextStyle.Render(constants.Form.DoneHelp))
	return b.String()
}

// writeOutcomes renders one line per outcome with the titles in a column.
func (m *Model) writeOutcomes(b *strings.Builder, outcomes []inventory.Outcome) {
	titles := make([]string, len(outcomes))
	for i, o := range outcomes {
		titles[i] = o.Title
	}
	titles = utils.PadRight(titles)

	for i, o := range outcomes {
		switch o.Status {
		case inventory.Succeeded:
			b.WriteString(styles.SuccessStyle.Render("✓ " + titles[i]))
		case inventory.Skipped:
			b.WriteString(styles.SubtleTextStyle.Render("- " + titles[i] + " (skipped)"))
		case inventory.Failed:
			b.WriteString(styles.ErrorStyle.Width(m.width).Render(fmt.Sprintf("✗ %s  %v", titles[i], o.Err)))
		}
		b.WriteByte('\n')
	}
}
