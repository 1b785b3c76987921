package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Streams carries the standard streams a command may use.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, streams Streams) int
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], Streams{In: stdin, Out: stdout, ErrOut: stderr})
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  itsss <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"itsss <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, streams Streams) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("assess", "Take the stress self-assessment", []string{
		"itsss assess [--ui auto|live|plain] [--config <path>] [--bank <path>] [--log <path>] [--no-color] [--fast]",
	}, runAssess),
	command("score", "Score a list of 14 answers", []string{
		"itsss score <a1,...,a14> [--json] [--bank <path>]",
	}, runScore),
	command("recommend", "Print recommendations for a stress category", []string{
		"itsss recommend <low|moderate|high|severe>",
	}, runRecommend),
	command("questions", "List the assessment questions", []string{
		"itsss questions [--json] [--bank <path>]",
	}, runQuestions),
	command("validate", "Validate .itsss.yml", []string{
		"itsss validate [--config <path>]",
	}, runValidate),
}

// parseFlags parses command flags, printing usage to stderr on failure.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, streams Streams) bool {
	fs.SetOutput(streams.ErrOut)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(streams.ErrOut, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, streams.ErrOut)
		return false
	}
	return true
}

// rejectArgs reports unexpected positional arguments.
func rejectArgs(cmd *Command, fs *flag.FlagSet, streams Streams) bool {
	if fs.NArg() == 0 {
		return false
	}
	fmt.Fprintf(streams.ErrOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
	printCommandUsage(cmd, streams.ErrOut)
	return true
}
