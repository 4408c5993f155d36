package report

import (
	"encoding/json"
	"fmt"
	"io"
	"pkglists/internal/collectors"
	"pkglists/internal/inventory"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const SuccessMessage = "Lists and installation script generated successfully!"

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported output format: %s (want text|json|yaml)", s)
}

type outcomeView struct {
	Step   string `json:"step" yaml:"step"`
	Title  string `json:"title" yaml:"title"`
	Status string `json:"status" yaml:"status"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

type runView struct {
	RunID       string        `json:"run_id" yaml:"run_id"`
	BackupDir   string        `json:"backup_directory" yaml:"backup_directory"`
	AppImageDir string        `json:"appimage_directory,omitempty" yaml:"appimage_directory,omitempty"`
	Timestamp   string        `json:"timestamp" yaml:"timestamp"`
	OutputDir   string        `json:"output_directory" yaml:"output_directory"`
	Outcomes    []outcomeView `json:"outcomes" yaml:"outcomes"`
	Failed      int           `json:"failed" yaml:"failed"`
}

type collectorView struct {
	Name      string   `json:"name" yaml:"name"`
	Title     string   `json:"title" yaml:"title"`
	Command   []string `json:"command,omitempty" yaml:"command,omitempty"`
	Output    string   `json:"output" yaml:"output"`
	Available bool     `json:"available" yaml:"available"`
	Path      string   `json:"path,omitempty" yaml:"path,omitempty"`
}

func newRunView(rep inventory.Report) runView {
	v := runView{
		RunID:       rep.Context.RunID,
		BackupDir:   rep.Context.BackupDir,
		AppImageDir: rep.Context.AppImageDir,
		Timestamp:   rep.Context.Timestamp,
		OutputDir:   rep.Context.OutputDir,
		Outcomes:    make([]outcomeView, 0, len(rep.Outcomes)),
		Failed:      len(rep.Failures()),
	}

	for _, o := range rep.Outcomes {
		ov := outcomeView{
			Step:   o.Step,
			Title:  o.Title,
			Status: o.Status.String(),
		}
		if o.Status == inventory.Succeeded {
			ov.Path = o.Path
		}
		if o.Err != nil {
			ov.Error = o.Err.Error()
		}
		v.Outcomes = append(v.Outcomes, ov)
	}

	return v
}

// WriteRun renders a finished run.
func WriteRun(w io.Writer, format Format, rep inventory.Report) error {
	view := newRunView(rep)

	switch format {
	case FormatJSON:
		return writeJSON(w, view)
	case FormatYAML:
		return writeYAML(w, view)
	}

	fmt.Fprintf(w, "Output directory: %s\n\n", view.OutputDir)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSTATUS\tDETAIL")
	for _, o := range view.Outcomes {
		detail := o.Path
		if o.Error != "" {
			detail = o.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Title, o.Status, detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", SuccessMessage)
	return err
}

// WriteCollectors renders the catalog with PATH availability.
func WriteCollectors(w io.Writer, format Format, statuses []collectors.Availability) error {
	views := make([]collectorView, 0, len(statuses))
	for _, s := range statuses {
		views = append(views, collectorView{
			Name:      s.Name,
			Title:     s.Title,
			Command:   s.Command,
			Output:    s.Output,
			Available: s.Available,
			Path:      s.Path,
		})
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, views)
	case FormatYAML:
		return writeYAML(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOMMAND\tOUTPUT\tAVAILABLE")
	for _, v := range views {
		command := strings.Join(v.Command, " ")
		if command == "" {
			command = "(directory listing)"
		}
		available := "no"
		if v.Available {
			available = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name, command, v.Output, available)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
