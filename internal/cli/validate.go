package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"taktmate/internal/question"
)

func validateCommand() *Command {
	cmd := &Command{
		Name:    "validate",
		Summary: "Validate a question specification file",
		Usage: []string{
			"taktgrade validate -questions <file>",
		},
	}
	cmd.Run = func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		questionsFile := fs.String("questions", "", "Path to the question spec file")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *questionsFile == "" {
			fmt.Fprintln(stderr, "-questions is required.")
			return ExitUsage
		}

		spec, err := question.LoadSpec(*questionsFile)
		if err != nil {
			var validationErr *question.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintf(stderr, "Spec is invalid (%d issues):\n", len(validationErr.Issues))
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
			} else {
				fmt.Fprintf(stderr, "Failed to load spec: %v\n", err)
			}
			return ExitError
		}

		fmt.Fprintf(stdout, "Spec is valid: %d questions\n", len(spec.Questions))
		return ExitOK
	}
	return cmd
}
