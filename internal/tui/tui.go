package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"cz/internal/commit"
	"cz/internal/git"
	"cz/internal/utils"
)

// ErrAborted is returned when the user backs out of a prompt.
var ErrAborted = errors.New("aborted by user")

// Run walks the user through one commit: type, scope, subject, body,
// breaking change, related issues, then preview and commit. args are
// forwarded verbatim to git commit.
func Run(args []string) error {
	if !utils.IsTTY() {
		return fmt.Errorf("not a terminal: interactive prompts need a TTY")
	}

	fmt.Println("\nAll commit message lines will be cropped at 100 characters.")

	theme := NewTheme()

	t, err := SelectType(theme)
	if err != nil {
		return err
	}

	scope, err := Ask(theme, "What is the scope of this change (e.g. component or file name)? (press enter to skip)", true)
	if err != nil {
		return err
	}
	subject, err := Ask(theme, "Write a short, imperative tense description of the change:", false)
	if err != nil {
		return err
	}
	body, err := Ask(theme, "Provide a longer description of the change: (press enter to skip)", true)
	if err != nil {
		return err
	}
	breaking, err := Ask(theme, "Describe any breaking changes: (press enter to skip)", true)
	if err != nil {
		return err
	}
	issues, err := Ask(theme, "Related issues: (press enter to skip)", true)
	if err != nil {
		return err
	}

	message := commit.Compose(commit.Answers{
		Type:     t,
		Scope:    scope,
		Subject:  subject,
		Body:     body,
		Breaking: breaking,
		Issues:   issues,
	})

	action, err := Confirm(theme, message)
	if err != nil {
		return err
	}

	switch action {
	case CommitThis:
		if err := git.Commit(message, args); err != nil {
			return err
		}
		log.Info().Msg("Commit successfully created!")
	case CopyToClipboard:
		if err := clipboard.WriteAll(message); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		log.Info().Msg("Commit message copied to clipboard.")
	case Cancel:
		log.Info().Msg("Commit aborted.")
	}

	return nil
}
