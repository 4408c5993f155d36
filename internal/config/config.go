package config

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"pkglists/internal/system"
)

const (
	configDirName  = ".config"
	configFileName = "backup_config.json"
)

// Settings is the on-disk shape of the configuration file.
type Settings struct {
	BackupDirectory string `json:"backup_directory"`
}

// Store persists the last used backup directory for the current user.
type Store struct {
	fs   system.FileSystem
	path string
}

func NewStore(fs system.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewDefaultStore resolves ~/.config/backup_config.json.
func NewDefaultStore(fs system.FileSystem) (*Store, error) {
	home, err := fs.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home dir: %w", err)
	}
	return NewStore(fs, filepath.Join(home, configDirName, configFileName)), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved backup directory, or "" when nothing was saved yet.
// On a read or parse error it still returns "" alongside the error.
func (s *Store) Load() (string, error) {
	if _, err := s.fs.Stat(s.path); s.fs.IsNotExist(err) {
		log.Printf("config: no config file at %s", s.path)
		return "", nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", s.path, err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return "", fmt.Errorf("invalid %s format: %w", configFileName, err)
	}

	log.Printf("config: loaded backup directory %q", settings.BackupDirectory)
	return settings.BackupDirectory, nil
}

// Save replaces the whole file with the given directory.
func (s *Store) Save(directory string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	data, err := json.Marshal(Settings{BackupDirectory: directory})
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}

	if err := s.fs.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", s.path, err)
	}

	log.Printf("config: saved backup directory %q to %s", directory, s.path)
	return nil
}
