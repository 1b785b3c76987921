// Package plain runs the assessment as a line-oriented prompt for terminals
// without cursor control, pipes and scripted input.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"itsss/internal/flow"
)

// Options configures a plain session.
type Options struct {
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	Width     int
}

type inputLine struct {
	text string
	err  error
}

type session struct {
	machine *flow.Machine
	out     io.Writer
	errOut  io.Writer
	width   int
	state   flow.State
}

// Run drives the assessment from line input until the user quits, input
// ends or ctx is cancelled, and returns the last state. Input is not read
// while a transition is pending, so typed-ahead answers apply in order.
func Run(ctx context.Context, machine *flow.Machine, opts Options) (flow.State, error) {
	s := &session{
		machine: machine,
		out:     opts.Output,
		errOut:  opts.ErrOutput,
		width:   opts.Width,
		state:   machine.Initial(),
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.errOut == nil {
		s.errOut = s.out
	}
	if s.width <= 0 {
		s.width = 80
	}

	done := make(chan struct{})
	scheduler := flow.NewScheduler()
	defer func() {
		close(done)
		scheduler.Close()
	}()

	lines := make(chan inputLine)
	if opts.Input != nil {
		go readLines(opts.Input, lines, done)
	} else {
		close(lines)
	}
	fires := make(chan uint64, 1)

	s.printIntro()
	for {
		if pending := s.state.Pending; pending != nil {
			if !scheduler.Schedule(*pending, func(seq uint64) {
				select {
				case fires <- seq:
				case <-done:
				}
			}) {
				return s.state, fmt.Errorf("schedule transition: scheduler closed")
			}
			select {
			case <-ctx.Done():
				return s.state, ctx.Err()
			case seq := <-fires:
				s.apply(s.machine.Fire(s.state, seq))
			}
			continue
		}

		fmt.Fprint(s.out, "> ")
		select {
		case <-ctx.Done():
			return s.state, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return s.state, nil
			}
			if line.err != nil {
				return s.state, fmt.Errorf("read input: %w", line.err)
			}
			if quit := s.handle(strings.TrimSpace(line.text)); quit {
				return s.state, nil
			}
		}
	}
}

// readLines forwards input lines until EOF or until done is closed.
func readLines(r io.Reader, lines chan<- inputLine, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- inputLine{text: scanner.Text()}:
		case <-done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case lines <- inputLine{err: err}:
		case <-done:
		}
	}
}

// handle applies one line of input and reports whether the user quit.
func (s *session) handle(input string) bool {
	command := strings.ToLower(input)
	if command == "q" || command == "quit" {
		return true
	}
	switch s.state.Step {
	case flow.StepIntro:
		if command == "" || command == "s" || command == "start" {
			s.apply(s.machine.Start(s.state))
			return false
		}
		fmt.Fprintln(s.out, "Press enter to begin, or q to quit.")
	case flow.StepQuestions:
		s.handleAnswer(command)
	case flow.StepResults:
		if command == "" || command == "r" || command == "restart" {
			s.apply(s.machine.Restart(s.state))
			return false
		}
		fmt.Fprintln(s.out, "Press enter to take the assessment again, or q to quit.")
	}
	return false
}

func (s *session) handleAnswer(command string) {
	if command == "b" || command == "back" {
		if s.state.Index == 0 {
			fmt.Fprintln(s.out, "Already at the first question.")
			return
		}
		s.apply(s.machine.Back(s.state))
		return
	}
	if len(command) == 1 && command[0] >= '1' && command[0] <= '5' {
		s.apply(s.machine.Select(s.state, int(command[0]-'1')))
		return
	}
	if command == "" {
		if value, ok := s.state.Answers.Get(s.state.Index); ok {
			s.apply(s.machine.Select(s.state, value))
			return
		}
	}
	fmt.Fprintln(s.out, "Enter 1-5 to answer, b to go back, or q to quit.")
}

// apply installs next and prints whatever changed on screen.
func (s *session) apply(next flow.State) {
	prev := s.state
	s.state = next
	s.render(prev)
}
