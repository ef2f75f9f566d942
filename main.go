package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cz/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "cz [git commit arguments]",
	Short: "Compose a conventional commit message interactively",
	Long: "cz prompts for a commit type, scope, subject, body, breaking changes and related\n" +
		"issues, assembles a conventional commit message, and runs git commit with it.\n" +
		"Every argument given to cz is forwarded verbatim to git commit.",
	// cz has no flags of its own; -a, --no-verify etc. belong to git.
	DisableFlagParsing: true,
	Run:                runComposer,
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

func runComposer(cmd *cobra.Command, args []string) {
	if err := tui.Run(args); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			log.Info().Msg("Commit aborted.")
			os.Exit(1)
		}
		log.Error().Err(err).Msg("Failed to create commit")
		os.Exit(1)
	}
}
