package cli

import (
	"fmt"

	"itsss/internal/scoring"
)

func runRecommend(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Out)
			return ExitOK
		}
		if len(args) != 1 {
			fmt.Fprintln(streams.ErrOut, "expected exactly one category")
			printCommandUsage(cmd, streams.ErrOut)
			return ExitUsage
		}
		category, err := scoring.ParseCategory(args[0])
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "%v\n", err)
			return ExitUsage
		}
		items, err := scoring.Recommendations(category)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "%v\n", err)
			return ExitError
		}
		fmt.Fprintln(streams.Out, category.Label())
		fmt.Fprintln(streams.Out, category.Summary())
		printRecommendations(streams.Out, items)
		return ExitOK
	}
}
