package plain

import (
	"fmt"
	"strings"

	"itsss/internal/flow"
	"itsss/internal/report"
)

// render prints the screen for the current state when it differs from prev.
func (s *session) render(prev flow.State) {
	cur := s.state
	if cur.Notice != nil && cur.Notice != prev.Notice {
		fmt.Fprintf(s.errOut, "%s: %s\n", cur.Notice.Title, cur.Notice.Description)
	}
	if cur.Loading && !prev.Loading {
		fmt.Fprintln(s.out, "Analyzing your responses...")
		return
	}
	if cur.Step == prev.Step && (cur.Step != flow.StepQuestions || cur.Index == prev.Index) {
		if cur.Step == flow.StepQuestions && prev.Loading && !cur.Loading {
			s.printQuestion()
		}
		return
	}
	switch cur.Step {
	case flow.StepIntro:
		s.printIntro()
	case flow.StepQuestions:
		s.printQuestion()
	case flow.StepResults:
		s.printResults()
	}
}

func (s *session) printIntro() {
	fmt.Fprintln(s.out, "ITSSS Stress Calculator")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "This assessment will help you understand your current stress levels and provide personalized recommendations.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "How it works")
	fmt.Fprintln(s.out, "Answer 14 simple questions about your experiences in the last month. Your responses are completely private and not stored anywhere.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Press enter to begin, or q to quit.")
}

func (s *session) printQuestion() {
	q, ok := s.machine.Question(s.state)
	if !ok {
		return
	}
	bank := s.machine.Bank()
	recorded, answered := s.state.Answers.Get(s.state.Index)
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Question %d of %d (%d%%)\n", s.state.Index+1, bank.Len(), flow.Progress(s.state))
	fmt.Fprintln(s.out, bank.Stem())
	fmt.Fprintln(s.out, q.Text)
	for i, option := range q.Options {
		marker := " "
		if answered && recorded == i {
			marker = "*"
		}
		fmt.Fprintf(s.out, " %s %d) %s\n", marker, i+1, option)
	}
}

func (s *session) printResults() {
	summary, ok := report.FromState(s.state)
	if !ok {
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.TrimRight(report.RenderSummary(summary, report.RenderOptions{Width: s.width, NoColor: true}), "\n"))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Press enter to take the assessment again, or q to quit.")
}
