package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"pkglists/internal/constants"
	"pkglists/internal/inventory"
	"pkglists/internal/report"

	"github.com/spf13/cobra"
)

func newGenerateCmd(stdout, stderr io.Writer, deps Deps) *cobra.Command {
	var (
		backupDir   string
		appImageDir string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write package lists and the installation script without the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			if deps.Runner == nil {
				return errors.New("no run service configured")
			}

			if !cmd.Flags().Changed("backup-dir") {
				backupDir = savedBackupDir(stderr, deps.Settings)
			}

			if !deps.OSInfo.IsSuseLike() {
				log.Printf("cli: non-SUSE system detected: %s", deps.OSInfo)
				fmt.Fprintf(stderr, "warning: %s\n", fmt.Sprintf(constants.Form.NonSuseWarning, deps.OSInfo))
			}

			req := inventory.Request{BackupDir: backupDir, AppImageDir: appImageDir}
			rep, err := deps.Runner.Run(req, func(o inventory.Outcome) {
				if o.Status == inventory.Failed {
					fmt.Fprintf(stderr, "error: %s: %v\n", o.Title, o.Err)
				}
			})
			if err != nil {
				return err
			}

			return report.WriteRun(stdout, format, rep)
		},
	}

	cmd.Flags().StringVar(&backupDir, "backup-dir", "", "directory that receives packages/<DDMMYY> (defaults to the saved value)")
	cmd.Flags().StringVar(&appImageDir, "appimage-dir", "", "directory to scan for .AppImage files (skipped when empty)")
	cmd.Flags().StringVarP(&output, "output", "o", string(report.FormatText), "output format: text|json|yaml")

	return cmd
}
