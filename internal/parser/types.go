package parser

import "strings"

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Session
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

// Arg returns the arguments joined back into one phrase.
func (i Intent) Arg() string {
	return strings.Join(i.Args, " ")
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries what the player can currently refer to.
type ParseContext struct {
	Recipes []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// RawArgs keeps arguments exactly as typed, for file paths.
	RawArgs bool
}
