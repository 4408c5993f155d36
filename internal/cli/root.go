package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"pkglists/internal/collectors"
	"pkglists/internal/constants"
	"pkglists/internal/inventory"
	"pkglists/internal/system"

	"github.com/spf13/cobra"
)

type settingsLoader interface {
	Load() (string, error)
	Path() string
}

type runService interface {
	Run(req inventory.Request, notify func(inventory.Outcome)) (inventory.Report, error)
}

// Deps are the services the commands operate on. LaunchUI starts the
// interactive form with the backup directory pre-filled.
type Deps struct {
	Settings settingsLoader
	Runner   runService
	Executor system.Executor
	Catalog  collectors.Catalog
	OSInfo   system.OSInfo
	LaunchUI func(backupDir string) error
}

// NewRootCmd returns the root command. Without a subcommand it opens the
// interactive form.
func NewRootCmd(stdout, stderr io.Writer, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           constants.App.Binary,
		Short:         constants.App.Title,
		Long:          constants.Form.Description,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.LaunchUI == nil {
				return errors.New("interactive mode is not available")
			}
			return deps.LaunchUI(savedBackupDir(stderr, deps.Settings))
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.AddCommand(newGenerateCmd(stdout, stderr, deps))
	cmd.AddCommand(newCollectorsCmd(stdout, deps))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// savedBackupDir returns the persisted backup directory. An unreadable
// config is reported and treated as no saved directory.
func savedBackupDir(stderr io.Writer, settings settingsLoader) string {
	if settings == nil {
		return ""
	}
	log.Printf("cli: loading settings from %s", settings.Path())
	dir, err := settings.Load()
	if err != nil {
		log.Printf("cli: could not load saved backup directory: %v", err)
		fmt.Fprintf(stderr, "warning: ignoring saved settings in %s: %v\n", settings.Path(), err)
		return ""
	}
	return dir
}
