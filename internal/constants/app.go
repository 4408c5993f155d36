package constants

import "fmt"

type appStrings struct {
	Name    string
	Title   string
	Binary  string
	Version string
}

const name = "Package List Generator"

var App = &appStrings{
	Name:    name,
	Title:   fmt.Sprintf("%s Utility", name),
	Binary:  "pkglists",
	Version: "0.1.0",
}
