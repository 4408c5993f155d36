package types

// ExitRequested is sent by a child model when the user asks to leave.
type ExitRequested struct{}
