package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"pkglists/internal/app"
	"pkglists/internal/cli"
	"pkglists/internal/collectors"
	"pkglists/internal/config"
	"pkglists/internal/form"
	"pkglists/internal/inventory"
	"pkglists/internal/runner"
	"pkglists/internal/script"
	"pkglists/internal/system"
	"pkglists/internal/types"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type Application interface {
	Run() error
}

type CLIApp struct {
	root *cobra.Command
}

type PanicCatchingModel struct {
	Model tea.Model
}

func (app *CLIApp) Run() error {
	return app.root.Execute()
}

func main() {
	executor := &system.LiveExecutor{}
	fs := system.LiveFileSystem{}

	store, err := config.NewDefaultStore(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	catalog := collectors.Default()
	runSvc := inventory.NewService(
		store,
		fs,
		collectors.NewService(runner.New(executor, fs), fs),
		script.NewGenerator(fs, catalog),
		catalog,
	)
	osInfo := system.CurrentOSInfo()

	deps := cli.Deps{
		Settings: store,
		Runner:   runSvc,
		Executor: executor,
		Catalog:  catalog,
		OSInfo:   osInfo,
		LaunchUI: func(backupDir string) error {
			keys := types.DefaultKeys()
			appModel := app.New(form.New(keys, runSvc, backupDir, osInfo), keys)

			wrappedModel := &PanicCatchingModel{Model: appModel}
			program := tea.NewProgram(wrappedModel, tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	root := cli.NewRootCmd(os.Stdout, os.Stderr, deps)
	root.SetArgs(os.Args[1:])

	if err := run(&CLIApp{root: root}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(app Application) (err error) {
	_, debugEnabled := os.LookupEnv("DEBUG")
	f, err := setupLogging(debugEnabled, logfileCreator)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in main: %v\nStack trace:\n%s", r, debug.Stack())
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	log.Println("booting...")

	if err := app.Run(); err != nil {
		log.Printf("Application error: %v", err)
		return err
	}

	log.Println("bye")

	return nil
}

func (m *PanicCatchingModel) Init() tea.Cmd {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in Init: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()
	return m.Model.Init()
}

func (m *PanicCatchingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in Update: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()

	updatedModel, cmd := m.Model.Update(msg)
	m.Model = updatedModel

	return m, cmd
}

func (m *PanicCatchingModel) View() string {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in View: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()
	return m.Model.View()
}

func setupLogging(
	debugEnabled bool,
	createFile func() (*os.File, error),
) (*os.File, error) {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	return createFile()
}

func logfileCreator() (*os.File, error) {
	return tea.LogToFile("debug.log", "debug")
}
