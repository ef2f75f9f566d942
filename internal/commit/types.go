package commit

// Type is the conventional-commit category of a change.
type Type int

const (
	Feature Type = iota
	Fix
	Docs
	Style
	Refactor
	Perf
	Test
	Chore
	CI
	Release
)

// Details carries the per-type metadata rendered into menus and headers.
type Details struct {
	Token       string
	Description string
	Emoji       string
}

var typeDetails = map[Type]Details{
	Feature:  {Token: "feat", Description: "A new feature", Emoji: "🎸"},
	Fix:      {Token: "fix", Description: "A bug fix", Emoji: "🐛"},
	Docs:     {Token: "docs", Description: "Documentation only changes", Emoji: "✏️"},
	Style:    {Token: "style", Description: "Markup, white-space, formatting, missing semi-colons...", Emoji: "💄"},
	Refactor: {Token: "refactor", Description: "A code change that neither fixes a bug or adds a feature", Emoji: "💡"},
	Perf:     {Token: "perf", Description: "A code change that improves performance", Emoji: "⚡️"},
	Test:     {Token: "test", Description: "Adding missing tests", Emoji: "💍"},
	Chore:    {Token: "chore", Description: "Build process or auxiliary tool changes", Emoji: "🤖"},
	CI:       {Token: "ci", Description: "CI related changes", Emoji: "🎡"},
	Release:  {Token: "release", Description: "Create a release commit", Emoji: "🏹"},
}

// Types returns every commit type in menu order.
func Types() []Type {
	return []Type{Feature, Fix, Docs, Style, Refactor, Perf, Test, Chore, CI, Release}
}

// Details returns the metadata for t.
func (t Type) Details() Details {
	return typeDetails[t]
}

// String returns the header token, e.g. "feat" for Feature.
func (t Type) String() string {
	return typeDetails[t].Token
}
