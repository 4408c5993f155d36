package collectors

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"pkglists/internal/system"
	"strings"
)

const appImageSuffix = ".AppImage"

type commandRunner interface {
	Capture(args []string, outputPath string) error
}

type Service struct {
	runner commandRunner
	fs     system.FileSystem
}

func NewService(runner commandRunner, fs system.FileSystem) *Service {
	return &Service{
		runner: runner,
		fs:     fs,
	}
}

// Collect runs a command collector into outputDir.
func (s *Service) Collect(def Definition, outputDir string) error {
	if def.Kind != KindCommand {
		return fmt.Errorf("collector %s is not a command collector", def.Name)
	}

	log.Printf("collectors: collecting %s", def.Name)
	return s.runner.Capture(def.Command, filepath.Join(outputDir, def.Output))
}

// CollectAppImages writes the AppImage file names found directly in
// appImageDir, one per line. An empty result still produces an empty file.
func (s *Service) CollectAppImages(def Definition, appImageDir, outputDir string) error {
	names, err := s.ListAppImages(appImageDir)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}

	outputPath := filepath.Join(outputDir, def.Output)
	if err := s.fs.WriteFile(outputPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", outputPath, err)
	}

	log.Printf("collectors: wrote %d AppImages to %s", len(names), outputPath)
	return nil
}

// ListAppImages returns the regular files in dir (not recursing) whose name
// ends in ".AppImage", in directory enumeration order. The suffix match is
// case-sensitive.
func (s *Service) ListAppImages(dir string) ([]string, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read AppImage directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), appImageSuffix) {
			continue
		}
		if !s.isRegularFile(dir, entry) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

func (s *Service) isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}

	// Follow symlinks, a link to an AppImage counts as one.
	info, err := s.fs.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		log.Printf("collectors: skipping dangling link %s: %v", entry.Name(), err)
		return false
	}
	return info.Mode().IsRegular()
}
