package cli

import (
	"flag"
	"fmt"

	"itsss/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, streams Streams) int {
	return func(args []string, streams Streams) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, streams.Out)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.FileName+")")
		if !parseFlags(cmd, flags, args, streams) {
			return ExitUsage
		}
		if rejectArgs(cmd, flags, streams) {
			return ExitUsage
		}

		path := *configPath
		if path == "" {
			found, err := config.FindConfigPath("")
			if err != nil {
				fmt.Fprintf(streams.ErrOut, "Validation failed:\n%v\n", err)
				return ExitError
			}
			path = found
		}

		cfg, _, err := config.Resolve(path)
		if err != nil {
			fmt.Fprintf(streams.ErrOut, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		if cfg.Questions.Path != "" {
			if _, err := loadBank(cfg.Questions.Path); err != nil {
				fmt.Fprintf(streams.ErrOut, "Validation failed:\nquestions.path: %v\n", err)
				return ExitError
			}
		}

		fmt.Fprintln(streams.Out, "Config OK")
		return ExitOK
	}
}
