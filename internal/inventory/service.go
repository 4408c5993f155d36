package inventory

import (
	"fmt"
	"log"
	"path/filepath"
	"pkglists/internal/collectors"
	"pkglists/internal/script"
	"pkglists/internal/system"
	"time"

	"github.com/google/uuid"
)

type settingsSaver interface {
	Save(directory string) error
}

type collectorService interface {
	Collect(def collectors.Definition, outputDir string) error
	CollectAppImages(def collectors.Definition, appImageDir, outputDir string) error
}

type scriptGenerator interface {
	Generate(outputDir string) error
}

type Service struct {
	settings   settingsSaver
	fs         system.FileSystem
	collectors collectorService
	script     scriptGenerator
	catalog    collectors.Catalog
	now        func() time.Time
	newID      func() string
}

func NewService(
	settings settingsSaver,
	fs system.FileSystem,
	collectorSvc collectorService,
	generator scriptGenerator,
	catalog collectors.Catalog,
) *Service {
	return &Service{
		settings:   settings,
		fs:         fs,
		collectors: collectorSvc,
		script:     generator,
		catalog:    catalog,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Run performs one full inventory run. Every collector runs regardless of
// earlier failures; notify, when non-nil, sees each outcome as soon as it is
// known. The only error returned is a failure to create the output directory,
// in which case no collector has run.
func (s *Service) Run(req Request, notify func(Outcome)) (Report, error) {
	ctx := NewContext(req, s.now())
	ctx.RunID = s.newID()
	report := Report{Context: ctx}

	record := func(o Outcome) {
		if o.Err != nil {
			o.Status = Failed
			log.Printf("inventory: [%s] %s failed: %v", ctx.RunID, o.Step, o.Err)
		}
		report.Outcomes = append(report.Outcomes, o)
		if notify != nil {
			notify(o)
		}
	}

	log.Printf("inventory: starting run %+v", ctx)

	record(Outcome{
		Step:  StepConfig,
		Title: "Backup directory setting",
		Err:   s.settings.Save(req.BackupDir),
	})

	if err := s.fs.MkdirAll(ctx.OutputDir, 0o755); err != nil {
		return report, fmt.Errorf("could not create output directory %s: %w", ctx.OutputDir, err)
	}

	for _, def := range s.catalog.Commands() {
		record(Outcome{
			Step:  def.Name,
			Title: def.Title,
			Path:  filepath.Join(ctx.OutputDir, def.Output),
			Err:   s.collectors.Collect(def, ctx.OutputDir),
		})
	}

	if def, ok := s.catalog.AppImage(); ok {
		o := Outcome{Step: def.Name, Title: def.Title}
		if req.AppImageDir == "" {
			o.Status = Skipped
		} else {
			o.Path = filepath.Join(ctx.OutputDir, def.Output)
			o.Err = s.collectors.CollectAppImages(def, req.AppImageDir, ctx.OutputDir)
		}
		record(o)
	}

	record(Outcome{
		Step:  StepScript,
		Title: "Installation script",
		Path:  filepath.Join(ctx.OutputDir, script.FileName),
		Err:   s.script.Generate(ctx.OutputDir),
	})

	log.Printf("inventory: [%s] finished with %d failures", ctx.RunID, len(report.Failures()))
	return report, nil
}
