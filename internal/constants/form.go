package constants

type formStrings struct {
	Description         string
	DetectedSystem      string
	BackupLabel         string
	AppImageLabel       string
	AppImagePlaceholder string
	Help                string
	Running             string
	DoneHelp            string
	NonSuseWarning      string
}

var Form = &formStrings{
	Description: "This utility generates lists of installed packages on an OpenSUSE system.\n" +
		"It is intended to expedite system reinstallations by documenting current installations.\n" +
		"Note: This tool does not back up any packages or data.",
	DetectedSystem:      "Detected system: %s",
	BackupLabel:         "Backup Directory",
	AppImageLabel:       "AppImages Directory (optional)",
	AppImagePlaceholder: "leave empty to skip AppImages",
	Help:                "Tab to switch fields, Enter to generate lists, Esc to exit.",
	Running:             " Generating package lists in %s...",
	DoneHelp:            "Press Enter to return to the form.",
	NonSuseWarning:      "this does not look like an openSUSE system (%s); zypper packages will likely fail",
}
