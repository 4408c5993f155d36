package form

import (
	"log"
	"pkglists/internal/inventory"

	tea "github.com/charmbracelet/bubbletea"
)

type runService interface {
	Run(req inventory.Request, notify func(inventory.Outcome)) (inventory.Report, error)
}

// outcomeMsg carries one finished step while the run is still going. events
// yields the next outcomeMsg or the final runFinishedMsg.
type outcomeMsg struct {
	outcome inventory.Outcome
	events  <-chan tea.Msg
}

type runFinishedMsg struct {
	report inventory.Report
	err    error
}

// runCmd starts a run in the background and returns its first event. Each
// outcome arrives as an outcomeMsg; the model keeps listening with
// waitForEvent until runFinishedMsg.
func runCmd(service runService, req inventory.Request) tea.Cmd {
	return func() tea.Msg {
		log.Printf("form: starting run: %+v", req)

		events := make(chan tea.Msg)
		go func() {
			report, err := service.Run(req, func(o inventory.Outcome) {
				events <- outcomeMsg{outcome: o, events: events}
			})
			if err != nil {
				log.Printf("form: run aborted: %v", err)
			}
			events <- runFinishedMsg{report: report, err: err}
		}()

		return <-events
	}
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
