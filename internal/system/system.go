package system

import (
	"os"
	"os/exec"
)

// Executor defines a common interface for running external commands.
type Executor interface {
	Output(cmd *exec.Cmd) ([]byte, error)
	LookPath(file string) (string, error)
}

// FileSystem defines a common interface for filesystem operations.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	IsNotExist(err error) bool
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	UserHomeDir() (string, error)
}
