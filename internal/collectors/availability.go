package collectors

import (
	"fmt"
	"pkglists/internal/assert"
	"pkglists/internal/system"
)

type Availability struct {
	Definition
	Path      string
	Available bool
}

// CheckAvailability looks up each command collector's binary on PATH. The
// AppImage collector needs no binary and is always available.
func CheckAvailability(exec system.Executor, cat Catalog) []Availability {
	result := make([]Availability, 0, len(cat.Collectors))

	for _, def := range cat.Collectors {
		a := Availability{Definition: def}

		switch def.Kind {
		case KindCommand:
			path, err := exec.LookPath(def.Command[0])
			a.Path = path
			a.Available = err == nil
		case KindAppImage:
			a.Available = true
		default:
			assert.Fail(fmt.Sprintf("collector %s has unknown kind %q", def.Name, def.Kind))
		}

		result = append(result, a)
	}

	return result
}
