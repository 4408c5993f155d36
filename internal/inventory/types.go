package inventory

import (
	"path/filepath"
	"time"
)

const (
	// TimestampLayout is DDMMYY; runs on the same day share a directory.
	TimestampLayout = "020106"
	PackagesDirName = "packages"
)

// Step names for outcomes that are not collectors.
const (
	StepConfig = "config"
	StepScript = "script"
)

type Request struct {
	BackupDir   string
	AppImageDir string
}

// Context holds the paths of a single run.
type Context struct {
	RunID       string
	BackupDir   string
	AppImageDir string
	Timestamp   string
	OutputDir   string
}

func NewContext(req Request, now time.Time) Context {
	ts := now.Format(TimestampLayout)
	return Context{
		BackupDir:   req.BackupDir,
		AppImageDir: req.AppImageDir,
		Timestamp:   ts,
		OutputDir:   filepath.Join(req.BackupDir, PackagesDirName, ts),
	}
}

type Status int

const (
	Succeeded Status = iota
	Failed
	Skipped
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "ok"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Outcome is the result of one step of a run.
type Outcome struct {
	Step   string
	Title  string
	Path   string
	Status Status
	Err    error
}

type Report struct {
	Context  Context
	Outcomes []Outcome
}

// Failures returns the outcomes that did not succeed or get skipped.
func (r Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == Failed {
			failed = append(failed, o)
		}
	}
	return failed
}
