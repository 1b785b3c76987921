package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"itsss/internal/flow"
)

// RunOptions configures a live UI session.
type RunOptions struct {
	Options
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Run drives the assessment until the user quits or ctx is cancelled, and
// returns the last state. Pending transitions die with the program.
func Run(ctx context.Context, machine *flow.Machine, opts RunOptions) (flow.State, error) {
	model := NewModel(machine, opts.Options)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if last, ok := final.(Model); ok {
		model = last
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return model.State(), ctx.Err()
		}
		return model.State(), fmt.Errorf("run live ui: %w", err)
	}
	return model.State(), nil
}
