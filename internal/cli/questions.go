package cli

import (
	"encoding/json"
	"flag"
	"fmt"
)

func runQuestions(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Out)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		asJSON := fs.Bool("json", false, "Print the question bank as a JSON bank file")
		bankPath := fs.String("bank", "", "Question bank file (YAML or JSON; default: built-in)")
		if !parseFlags(cmd, fs, args, streams) {
			return ExitUsage
		}
		if rejectArgs(cmd, fs, streams) {
			return ExitUsage
		}

		bank, err := loadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Failed to load questions: %v\n", err)
			return ExitError
		}
		if *asJSON {
			encoder := json.NewEncoder(streams.Out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(bank.File()); err != nil {
				fmt.Fprintf(streams.ErrOut, "Failed to write questions: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		fmt.Fprintln(streams.Out, bank.Stem())
		for _, q := range bank.Questions() {
			fmt.Fprintf(streams.Out, "\n%2d. %s\n", q.ID, q.Text)
			for i, option := range q.Options {
				fmt.Fprintf(streams.Out, "    %d) %s\n", i+1, option)
			}
		}
		return ExitOK
	}
}
