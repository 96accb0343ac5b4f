package prompt

import (
	"fmt"
	"io"
)

// ScriptedPrompt answers prompts from a fixed list of answers, in order.
type ScriptedPrompt struct {
	answers []bool
	asked   []string
}

// NewScriptedPrompt creates a prompter replaying the given answers.
func NewScriptedPrompt(answers ...bool) *ScriptedPrompt {
	return &ScriptedPrompt{answers: answers}
}

// PromptForConfirmation returns the next scripted answer.
// Once the script is exhausted it declines and returns ErrNoScriptedAnswer.
func (s *ScriptedPrompt) PromptForConfirmation(message string) (bool, error) {
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return false, fmt.Errorf("%w: %q", ErrNoScriptedAnswer, message)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Asked returns the messages prompted so far.
func (s *ScriptedPrompt) Asked() []string {
	return s.asked
}

// AutoPrompt gives the same answer to every prompt, echoing it to a writer.
type AutoPrompt struct {
	answer bool
	writer io.Writer
}

// NewAutoPrompt creates a prompter for non-interactive runs.
func NewAutoPrompt(answer bool, out io.Writer) *AutoPrompt {
	return &AutoPrompt{answer: answer, writer: out}
}

// PromptForConfirmation prints the question with the automatic answer and returns it.
func (a *AutoPrompt) PromptForConfirmation(message string) (bool, error) {
	reply := "n"
	if a.answer {
		reply = "y"
	}
	if a.writer != nil {
		fmt.Fprintf(a.writer, "%s (y/N): %s (auto)\n", message, reply)
	}
	return a.answer, nil
}
