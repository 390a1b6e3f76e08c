package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taktmate/internal/report"
	"taktmate/internal/runner"
)

var runAndWrite = runner.RunAndWrite
var runBatch = runner.Run

func gradeCommand() *Command {
	cmd := &Command{
		Name:    "grade",
		Summary: "Grade model answers against a question specification",
		Usage: []string{
			"taktgrade grade -questions <file> -answers <file> [options]",
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
		answersFile := fs.String("answers", "", "Path to the model answers file")
		outputDir := fs.String("output-dir", "", "Write results.json under this directory")
		workers := fs.Int("workers", 1, "Number of grading workers")
		colorMode := fs.String("color", "auto", "Color output: auto|always|never")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *questionsFile == "" || *answersFile == "" {
			fmt.Fprintln(stderr, "Both -questions and -answers are required.")
			return ExitUsage
		}
		noColor, err := resolveNoColor(*colorMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		params := runner.RunParams{
			QuestionsFile: *questionsFile,
			AnswersFile:   *answersFile,
			OutputDir:     *outputDir,
			Workers:       *workers,
		}
		var results runner.Results
		if *outputDir != "" {
			var paths runner.OutputPaths
			results, paths, err = runAndWrite(context.Background(), params)
			if err == nil {
				fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
			}
		} else {
			results, err = runBatch(context.Background(), params)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Grading failed: %v\n", err)
			return ExitError
		}

		fmt.Fprint(stdout, report.Render(results, noColor))
		if results.Summary.QuestionsFailed > 0 {
			return ExitError
		}
		return ExitOK
	}
	return cmd
}
