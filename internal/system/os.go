package system

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
)

const osReleasePath = "/etc/os-release"

type OSInfo struct {
	Family string
	Distro string
	Like   []string
}

func CurrentOSInfo() OSInfo {
	fam := runtime.GOOS
	info := OSInfo{Family: fam}

	if fam != "linux" {
		return info
	}

	f, err := os.Open(osReleasePath)
	if err != nil {
		return info
	}
	defer f.Close()

	info.Distro, info.Like = parseOSRelease(f)
	return info
}

// IsSuseLike reports whether the zypper collector has a chance of working.
func (i OSInfo) IsSuseLike() bool {
	if strings.Contains(i.Distro, "suse") {
		return true
	}
	return slices.ContainsFunc(i.Like, func(l string) bool {
		return strings.Contains(l, "suse")
	})
}

// String renders the distro for display, e.g. "opensuse-tumbleweed (linux)".
func (i OSInfo) String() string {
	if i.Distro == "" {
		return i.Family
	}
	return i.Distro + " (" + i.Family + ")"
}

func parseOSRelease(r io.Reader) (id string, like []string) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, "ID="):
			id = osReleaseValue(strings.TrimPrefix(line, "ID="))
		case strings.HasPrefix(line, "ID_LIKE="):
			like = strings.Fields(osReleaseValue(strings.TrimPrefix(line, "ID_LIKE=")))
		}
	}
	return id, like
}

// ID=opensuse-tumbleweed OR ID="opensuse-tumbleweed"
func osReleaseValue(val string) string {
	val = strings.Trim(val, `"'`)
	return strings.ToLower(strings.TrimSpace(val))
}
