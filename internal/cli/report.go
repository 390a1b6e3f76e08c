package cli

import (
	"flag"
	"fmt"
	"io"

	"taktmate/internal/report"
)

func reportCommand() *Command {
	cmd := &Command{
		Name:    "report",
		Summary: "Render a previously written results file",
		Usage: []string{
			"taktgrade report -results <file> [-color auto|always|never]",
		},
	}
	cmd.Run = func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		resultsFile := fs.String("results", "", "Path to a results.json file")
		colorMode := fs.String("color", "auto", "Color output: auto|always|never")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *resultsFile == "" {
			fmt.Fprintln(stderr, "-results is required.")
			return ExitUsage
		}
		noColor, err := resolveNoColor(*colorMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		results, err := report.Load(*resultsFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load results: %v\n", err)
			return ExitError
		}
		fmt.Fprint(stdout, report.Render(results, noColor))
		return ExitOK
	}
	return cmd
}
