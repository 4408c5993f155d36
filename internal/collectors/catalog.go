package collectors

import (
	_ "embed"
	"fmt"
	"pkglists/internal/assert"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed collectors.toml
var catalogData string

var (
	defaultCatalog     Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in catalog. It panics if the embedded file is
// broken, which can only happen at build time.
func Default() Catalog {
	defaultCatalogOnce.Do(func() {
		cat, err := Parse(catalogData)
		assert.NoError(err, "embedded collectors.toml is invalid")
		_, ok := cat.AppImage()
		assert.True(ok, "embedded collectors.toml has no appimage collector")
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Parse decodes and validates a catalog.
func Parse(data string) (Catalog, error) {
	var cat Catalog
	if _, err := toml.Decode(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("invalid collectors catalog: %w", err)
	}

	names := map[string]bool{}
	outputs := map[string]bool{}
	appImages := 0

	for i := range cat.Collectors {
		def := &cat.Collectors[i]
		if def.Kind == "" {
			def.Kind = KindCommand
		}

		switch {
		case def.Name == "":
			return Catalog{}, fmt.Errorf("collector #%d has no name", i+1)
		case def.Output == "":
			return Catalog{}, fmt.Errorf("collector %s has no output file", def.Name)
		case names[def.Name]:
			return Catalog{}, fmt.Errorf("duplicate collector name: %s", def.Name)
		case outputs[def.Output]:
			return Catalog{}, fmt.Errorf("duplicate output file: %s", def.Output)
		}
		names[def.Name] = true
		outputs[def.Output] = true

		switch def.Kind {
		case KindCommand:
			if len(def.Command) == 0 {
				return Catalog{}, fmt.Errorf("collector %s has no command", def.Name)
			}
		case KindAppImage:
			appImages++
		default:
			return Catalog{}, fmt.Errorf("collector %s has unknown kind %q", def.Name, def.Kind)
		}
	}

	if appImages > 1 {
		return Catalog{}, fmt.Errorf("at most one appimage collector is allowed, got %d", appImages)
	}

	return cat, nil
}

// Commands returns the command collectors in run order.
func (c Catalog) Commands() []Definition {
	var defs []Definition
	for _, d := range c.Collectors {
		if d.Kind == KindCommand {
			defs = append(defs, d)
		}
	}
	return defs
}

// AppImage returns the directory-listing collector, if the catalog has one.
func (c Catalog) AppImage() (Definition, bool) {
	for _, d := range c.Collectors {
		if d.Kind == KindAppImage {
			return d, true
		}
	}
	return Definition{}, false
}

// Installable returns the collectors that get a step in install_packages.sh.
func (c Catalog) Installable() []Definition {
	var defs []Definition
	for _, d := range c.Collectors {
		if d.Install != "" {
			defs = append(defs, d)
		}
	}
	return defs
}
