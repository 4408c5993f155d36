package form

import (
	"errors"
	"pkglists/internal/inventory"
	"pkglists/internal/report"
	"pkglists/internal/system"
	"pkglists/internal/types"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type mockRunService struct {
	report   inventory.Report
	err      error
	requests []inventory.Request
}

// Run reports every outcome of the canned report through notify before
// returning it.
func (m *mockRunService) Run(req inventory.Request, notify func(inventory.Outcome)) (inventory.Report, error) {
	m.requests = append(m.requests, req)
	if notify != nil {
		for _, o := range m.report.Outcomes {
			notify(o)
		}
	}
	return m.report, m.err
}

func setupTestModel(service *mockRunService) *Model {
	keys := types.DefaultKeys()
	osInfo := system.OSInfo{Family: "linux", Distro: "opensuse-tumbleweed"}

	return New(keys, service, "/home/testuser/backups", osInfo).(*Model)
}

func sampleReport() inventory.Report {
	return inventory.Report{
		Context: inventory.Context{OutputDir: "/home/testuser/backups/packages/030524"},
		Outcomes: []inventory.Outcome{
			{Step: "python", Title: "Python packages"},
			{Step: "snap", Title: "Snap packages", Status: inventory.Failed, Err: errors.New("exit status 1")},
			{Step: "appimage", Title: "AppImages", Status: inventory.Skipped},
		},
	}
}

func TestNew_PrefillsBackupDirectory(t *testing.T) {
	m := setupTestModel(&mockRunService{})

	if m.backupInput.Value() != "/home/testuser/backups" {
		t.Errorf("expected the saved backup dir to be pre-filled, got %q", m.backupInput.Value())
	}
	if m.appImageInput.Value() != "" {
		t.Errorf("expected an empty AppImage dir, got %q", m.appImageInput.Value())
	}
	if !strings.Contains(m.View(), "opensuse-tumbleweed") {
		t.Error("expected the detected system in the form view")
	}
}

func TestView_WarnsOnNonSuseSystem(t *testing.T) {
	t.Run("it warns when the distro is not SUSE-family", func(t *testing.T) {
		osInfo := system.OSInfo{Family: "linux", Distro: "arch"}
		m := New(types.DefaultKeys(), &mockRunService{}, "", osInfo).(*Model)

		if !strings.Contains(m.View(), "does not look like an openSUSE system") {
			t.Error("expected a distro warning in the form view")
		}
	})

	t.Run("it stays quiet on openSUSE", func(t *testing.T) {
		m := setupTestModel(&mockRunService{})

		if strings.Contains(m.View(), "Warning:") {
			t.Error("expected no distro warning on openSUSE")
		}
	})
}

func TestUpdate_EnterOnInputPhase_StartsRun(t *testing.T) {
	// Arrange
	m := setupTestModel(&mockRunService{})

	enterKey := tea.KeyMsg{Type: tea.KeyEnter}

	// Act
	updatedModel, cmd := m.Update(enterKey)
	m = updatedModel.(*Model)

	// Assert
	if m.nav.Current() != runningPhase {
		t.Errorf("expected phase to be %v, but got %v", runningPhase, m.nav.Current())
	}
	if cmd == nil {
		t.Error("expected a command to be returned, but got nil")
	}
}

func TestRunCmd_PassesTrimmedRequest(t *testing.T) {
	// Arrange
	service := &mockRunService{report: sampleReport()}
	m := setupTestModel(service)
	m.backupInput.SetValue("  /tmp/bk  ")
	m.appImageInput.SetValue("/opt/apps ")

	// Act
	msg := runCmd(service, m.request())()
	for {
		next, ok := msg.(outcomeMsg)
		if !ok {
			break
		}
		msg = waitForEvent(next.events)()
	}

	// Assert
	finished, ok := msg.(runFinishedMsg)
	if !ok {
		t.Fatalf("expected msg of type runFinishedMsg, but got %T", msg)
	}
	if len(finished.report.Outcomes) != 3 {
		t.Errorf("expected the report to be passed through, got %+v", finished.report)
	}
	expected := inventory.Request{BackupDir: "/tmp/bk", AppImageDir: "/opt/apps"}
	if len(service.requests) != 1 || service.requests[0] != expected {
		t.Errorf("expected request %+v, got %+v", expected, service.requests)
	}
}

func TestRunCmd_StreamsOutcomes(t *testing.T) {
	service := &mockRunService{report: sampleReport()}

	msg := runCmd(service, inventory.Request{BackupDir: "/tmp/bk"})()

	var titles []string
	for {
		next, ok := msg.(outcomeMsg)
		if !ok {
			break
		}
		titles = append(titles, next.outcome.Title)
		msg = waitForEvent(next.events)()
	}

	expected := []string{"Python packages", "Snap packages", "AppImages"}
	if strings.Join(titles, ",") != strings.Join(expected, ",") {
		t.Errorf("expected outcomes %v before the run finished, got %v", expected, titles)
	}
	if _, ok := msg.(runFinishedMsg); !ok {
		t.Errorf("expected the last msg to be runFinishedMsg, got %T", msg)
	}
}

func TestUpdate_OutcomeWhileRunning(t *testing.T) {
	t.Run("it lists failures under the spinner as they happen", func(t *testing.T) {
		m := setupTestModel(&mockRunService{})
		m.nav.Push(runningPhase)
		events := make(chan tea.Msg, 1)

		updatedModel, cmd := m.Update(outcomeMsg{
			outcome: inventory.Outcome{Step: "python", Title: "Python packages"},
			events:  events,
		})
		m = updatedModel.(*Model)
		updatedModel, cmd = m.Update(outcomeMsg{
			outcome: inventory.Outcome{Step: "snap", Title: "Snap packages", Status: inventory.Failed, Err: errors.New("exit status 1")},
			events:  events,
		})
		m = updatedModel.(*Model)

		if m.nav.Current() != runningPhase {
			t.Fatalf("expected to stay in %v, got %v", runningPhase, m.nav.Current())
		}
		view := m.View()
		for _, want := range []string{"Generating package lists", "Python packages", "Snap packages", "exit status 1"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected running view to contain %q, got:\n%s", want, view)
			}
		}

		if cmd == nil {
			t.Fatal("expected a command waiting for the next event")
		}
		events <- runFinishedMsg{report: sampleReport()}
		if _, ok := cmd().(runFinishedMsg); !ok {
			t.Error("expected the command to deliver the next event")
		}
	})

	t.Run("it clears progress when the run finishes", func(t *testing.T) {
		m := setupTestModel(&mockRunService{})
		m.nav.Push(runningPhase)
		m.Update(outcomeMsg{outcome: inventory.Outcome{Title: "Python packages"}, events: make(chan tea.Msg)})

		m.Update(runFinishedMsg{report: sampleReport()})

		if len(m.progress) != 0 {
			t.Errorf("expected progress to be cleared, got %d entries", len(m.progress))
		}
	})
}

func TestIsBusy(t *testing.T) {
	m := setupTestModel(&mockRunService{})
	if m.IsBusy() {
		t.Error("expected an idle form not to be busy")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsBusy() {
		t.Error("expected the form to be busy while running")
	}

	m.Update(runFinishedMsg{report: sampleReport()})
	if m.IsBusy() {
		t.Error("expected the form not to be busy once done")
	}
}

func TestUpdate_EscOnDonePhase_ReturnsToForm(t *testing.T) {
	m := setupTestModel(&mockRunService{})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(runFinishedMsg{report: sampleReport()})

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updatedModel.(*Model)

	if m.nav.Current() != inputPhase {
		t.Errorf("expected phase to be %v, but got %v", inputPhase, m.nav.Current())
	}
	if len(m.nav.History) != 1 {
		t.Errorf("expected a single phase in history, got %v", m.nav.History)
	}
}

func TestUpdate_RunFinishedSuccess(t *testing.T) {
	// Arrange
	m := setupTestModel(&mockRunService{})
	m.nav.Push(runningPhase)

	// Act
	updatedModel, _ := m.Update(runFinishedMsg{report: sampleReport()})
	m = updatedModel.(*Model)

	// Assert
	if m.nav.Current() != donePhase {
		t.Fatalf("expected phase to be %v, but got %v", donePhase, m.nav.Current())
	}

	view := m.View()
	for _, want := range []string{"Python packages", "Snap packages", "exit status 1", "skipped", report.SuccessMessage} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestUpdate_RunFinishedError(t *testing.T) {
	// Arrange
	m := setupTestModel(&mockRunService{})
	m.nav.Push(runningPhase)

	// Act
	updatedModel, _ := m.Update(runFinishedMsg{err: errors.New("could not create output directory")})
	m = updatedModel.(*Model)

	// Assert
	if m.err == nil {
		t.Error("expected model.err to be set, but it was nil")
	}
	if m.nav.Current() != inputPhase {
		t.Errorf("expected phase to be reset to %v, but got %v", inputPhase, m.nav.Current())
	}
	if !strings.Contains(m.View(), "could not create output directory") {
		t.Error("expected the error to be shown on the form")
	}
}

func TestUpdate_KeysIgnoredWhileRunning(t *testing.T) {
	m := setupTestModel(&mockRunService{})
	m.nav.Push(runningPhase)

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updatedModel.(*Model)

	if cmd != nil {
		t.Error("expected no command while running")
	}
	if m.nav.Current() != runningPhase {
		t.Errorf("expected to stay in %v, got %v", runningPhase, m.nav.Current())
	}
}

func TestUpdate_EnterOnDonePhase_ReturnsToForm(t *testing.T) {
	m := setupTestModel(&mockRunService{})
	m.nav.Push(runningPhase)
	m.Update(runFinishedMsg{report: sampleReport()})

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updatedModel.(*Model)

	if m.nav.Current() != inputPhase {
		t.Errorf("expected phase to be %v, but got %v", inputPhase, m.nav.Current())
	}
	if len(m.report.Outcomes) != 0 {
		t.Error("expected the previous report to be cleared")
	}
	if m.backupInput.Value() != "/home/testuser/backups" {
		t.Error("expected the inputs to keep their values")
	}
}

func TestUpdate_EscOnInputPhase_RequestsExit(t *testing.T) {
	m := setupTestModel(&mockRunService{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	if cmd == nil {
		t.Fatal("expected a command but got nil")
	}
	if _, ok := cmd().(types.ExitRequested); !ok {
		t.Errorf("expected msg of type ExitRequested, but got %T", cmd())
	}
}

func TestUpdate_TabOnInputPhase_TogglesFocus(t *testing.T) {
	// Arrange
	m := setupTestModel(&mockRunService{})
	tabKey := tea.KeyMsg{Type: tea.KeyTab}

	// Pre-condition assert
	if m.focusedInput != backupField {
		t.Fatalf("initial focused input should be %d, got %d", backupField, m.focusedInput)
	}

	// Act 1
	updatedModel, _ := m.Update(tabKey)
	m = updatedModel.(*Model)

	// Assert 1
	if m.focusedInput != appImageField || !m.appImageInput.Focused() || m.backupInput.Focused() {
		t.Errorf("expected the AppImage input to be focused after tab, got %d", m.focusedInput)
	}

	// Act 2
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/apps")})
	m = updatedModel.(*Model)

	// Assert 2
	if m.appImageInput.Value() != "/apps" {
		t.Errorf("expected typing to reach the AppImage input, got %q", m.appImageInput.Value())
	}

	// Act 3
	updatedModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updatedModel.(*Model)

	// Assert 3
	if m.focusedInput != backupField {
		t.Errorf("expected focus back on the backup input, got %d", m.focusedInput)
	}
}

func TestUpdate_WindowSizeMsg_SetsWidths(t *testing.T) {
	m := setupTestModel(&mockRunService{})

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 300, Height: 40})
	m = updatedModel.(*Model)

	if m.width != 300 || m.height != 40 {
		t.Errorf("expected 300x40, got %dx%d", m.width, m.height)
	}
	if m.backupInput.Width != maxInputWidth {
		t.Errorf("expected input width to be capped at %d, got %d", maxInputWidth, m.backupInput.Width)
	}
}
