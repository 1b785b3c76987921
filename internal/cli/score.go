package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"itsss/internal/question"
	"itsss/internal/report"
	"itsss/internal/scoring"
)

func runScore(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Out)
			return ExitOK
		}
		positional, flagArgs := splitAnswerArgs(args)
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		asJSON := fs.Bool("json", false, "Print the result as JSON")
		bankPath := fs.String("bank", "", "Question bank file (YAML or JSON; default: built-in)")
		if !parseFlags(cmd, fs, flagArgs, streams) {
			return ExitUsage
		}
		positional = append(positional, fs.Args()...)
		if len(positional) != 1 {
			fmt.Fprintf(streams.ErrOut, "expected one comma-separated list of %d answers\n", question.QuestionCount)
			printCommandUsage(cmd, streams.ErrOut)
			return ExitUsage
		}

		bank, err := loadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Failed to load questions: %v\n", err)
			return ExitError
		}
		set, err := parseAnswers(positional[0], bank.IDs())
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Invalid answers: %v\n", err)
			return ExitUsage
		}

		result := scoring.Calculate(set)
		switch result.Status {
		case scoring.StatusIncomplete:
			fmt.Fprintf(streams.ErrOut, "Incomplete assessment: question %d is unanswered. Please answer all questions to get accurate results.\n", result.Question)
			return ExitError
		case scoring.StatusFault:
			fmt.Fprintf(streams.ErrOut, "Calculation error: question %d has an answer outside %d-%d.\n", result.Question, scoring.MinAnswer, scoring.MaxAnswer)
			return ExitError
		}

		summary, err := report.New(result.Score)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Calculation error: %v\n", err)
			return ExitError
		}
		if *asJSON {
			encoder := json.NewEncoder(streams.Out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(summary); err != nil {
				fmt.Fprintf(streams.ErrOut, "Failed to write result: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		printSummary(streams.Out, summary)
		return ExitOK
	}
}

// splitAnswerArgs separates answer lists from flags. A list may start with
// "-" for an unset first answer, so anything containing a comma is
// positional. The argument after a bare --bank is its value.
func splitAnswerArgs(args []string) ([]string, []string) {
	var positional, flags []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.Contains(arg, ",") || !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
		if (arg == "--bank" || arg == "-bank") && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return positional, flags
}

// parseAnswers reads one value per question id. Empty and "-" entries stay
// unset; range checks are left to scoring.Calculate.
func parseAnswers(list string, ids []int) (scoring.AnswerSet, error) {
	fields := strings.Split(list, ",")
	if len(fields) != len(ids) {
		return scoring.AnswerSet{}, fmt.Errorf("got %d answers, want %d", len(fields), len(ids))
	}
	entries := make([]scoring.Answer, len(ids))
	for i, field := range fields {
		entries[i] = scoring.Answer{QuestionID: ids[i]}
		field = strings.TrimSpace(field)
		if field == "" || field == "-" {
			continue
		}
		value, err := strconv.Atoi(field)
		if err != nil {
			return scoring.AnswerSet{}, fmt.Errorf("answer %d: %q is not a number", i+1, field)
		}
		entries[i].Value = value
		entries[i].Set = true
	}
	return scoring.FromEntries(entries), nil
}

func printSummary(w io.Writer, summary report.Summary) {
	fmt.Fprintf(w, "Score: %d/%d\n", summary.Score, summary.MaxScore)
	fmt.Fprintf(w, "Category: %s\n", summary.Label)
	fmt.Fprintln(w, summary.Description)
	printRecommendations(w, summary.Recommendations)
}

func printRecommendations(w io.Writer, items []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommendations:")
	for _, item := range items {
		fmt.Fprintf(w, "- %s\n", item)
	}
}
