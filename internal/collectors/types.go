package collectors

type Kind string

const (
	KindCommand  Kind = "command"
	KindAppImage Kind = "appimage"
)

type Definition struct {
	Name    string   `toml:"name"`
	Title   string   `toml:"title"`
	Kind    Kind     `toml:"kind"`
	Command []string `toml:"command"`
	Output  string   `toml:"output"`
	Install string   `toml:"install"`
}

type Catalog struct {
	Collectors []Definition `toml:"collector"`
}
