package runner

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"pkglists/internal/system"
	"strings"
)

var errEmptyCommand = errors.New("empty command")

// CommandError is returned when an external command could not be started or
// exited with a non-zero status. Stderr holds the first line the command
// printed there, if any.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("failed to execute %q: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type Runner struct {
	exec system.Executor
	fs   system.FileSystem
}

func New(exec system.Executor, fs system.FileSystem) *Runner {
	return &Runner{
		exec: exec,
		fs:   fs,
	}
}

// Capture runs args and writes its standard output verbatim to outputPath.
// The file is only touched when the command succeeds.
func (r *Runner) Capture(args []string, outputPath string) error {
	if len(args) == 0 {
		return &CommandError{Err: errEmptyCommand}
	}

	log.Printf("runner: running %v -> %s", args, outputPath)

	cmd := exec.Command(args[0], args[1:]...)
	out, err := r.exec.Output(cmd)
	if err != nil {
		cmdErr := &CommandError{Args: args, Err: err}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.Stderr = firstLine(exitErr.Stderr)
		}

		log.Printf("runner: %v", cmdErr)
		return cmdErr
	}

	if err := r.fs.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", outputPath, err)
	}

	log.Printf("runner: wrote %d bytes to %s", len(out), outputPath)
	return nil
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
