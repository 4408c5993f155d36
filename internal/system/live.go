package system

import (
	"os"
	"os/exec"
)

type LiveExecutor struct{}
type LiveFileSystem struct{}

func (e *LiveExecutor) Output(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

func (e *LiveExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (fs LiveFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
func (fs LiveFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
func (fs LiveFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
func (fs LiveFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}
func (fs LiveFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile truncates an existing file; the permission bits only apply on
// creation, so callers that need a specific mode on an existing file chmod it.
func (fs LiveFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(name, data, perm); err != nil {
		return err
	}
	return os.Chmod(name, perm)
}
func (fs LiveFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
