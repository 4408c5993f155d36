package script

import (
	"fmt"
	"log"
	"path/filepath"
	"pkglists/internal/collectors"
	"pkglists/internal/system"
	"strings"
)

const FileName = "install_packages.sh"

const shebang = "#!/bin/bash\n\n"

type Generator struct {
	fs      system.FileSystem
	catalog collectors.Catalog
}

func NewGenerator(fs system.FileSystem, catalog collectors.Catalog) *Generator {
	return &Generator{
		fs:      fs,
		catalog: catalog,
	}
}

// Render builds the reinstall script. It only depends on the catalog, never on
// what a run actually collected, and refers to inventory files by relative
// name so it has to be run from the output directory.
func Render(catalog collectors.Catalog) string {
	var b strings.Builder
	b.WriteString(shebang)

	for _, def := range catalog.Installable() {
		fmt.Fprintf(&b, "echo Installing %s...\n", def.Title)
		b.WriteString(def.Install)
		b.WriteString("\n\n")
	}

	return b.String()
}

// Generate writes install_packages.sh into outputDir.
func (g *Generator) Generate(outputDir string) error {
	path := filepath.Join(outputDir, FileName)

	if err := g.fs.WriteFile(path, []byte(Render(g.catalog)), 0o755); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	log.Printf("script: wrote %s", path)
	return nil
}
