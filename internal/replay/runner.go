package replay

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/logging"
	"github.com/muurk/quotedesk/internal/protocol"
)

// ErrUnexpectedReply is returned for a confirm reply with nothing pending.
var ErrUnexpectedReply = errors.New("confirm reply without a pending prompt")

// AnswerFunc decides a prompt the script does not answer itself.
type AnswerFunc func(message string) bool

// StepResult records what one step did.
type StepResult struct {
	Index  int
	Op     protocol.MessageType
	Notice editor.Notice
	Prompt string
	Answer *bool
	Err    error
}

// Report is the outcome of a replay.
type Report struct {
	Steps []StepResult
	Final editor.State
}

// Runner applies script steps to an editor.
type Runner struct {
	editor  *editor.Editor
	prompts *editor.PromptQueue

	// Answer resolves prompts that are not followed by a confirmReply
	// step. Nil declines them.
	Answer AnswerFunc
}

// NewRunner creates a runner. prompts must be the confirmer ed was built
// with.
func NewRunner(ed *editor.Editor, prompts *editor.PromptQueue, answer AnswerFunc) *Runner {
	return &Runner{editor: ed, prompts: prompts, Answer: answer}
}

// Run applies every step in order. Pricing faults are recorded on the step
// and the replay continues; a stray confirm reply stops it.
func (r *Runner) Run(ctx context.Context, script *Script) (*Report, error) {
	report := &Report{}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := StepResult{Index: i + 1, Op: step.Type}
		before := r.editor.State().Notice.Seq

		if step.IsConfirmReply() {
			accepted, err := step.Accepted()
			if err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
			pending := r.prompts.Pending()
			if pending == nil {
				return report, fmt.Errorf("step %d: %w", i+1, ErrUnexpectedReply)
			}
			res.Prompt = pending.Message
			res.Answer = &accepted
			r.prompts.Resolve(accepted)
		} else {
			ev, err := step.Event()
			if err != nil {
				return report, fmt.Errorf("step %d: %w", i+1, err)
			}
			if err := r.editor.Handle(ev); err != nil {
				logging.Warn("Replay step failed", zap.Int("step", i+1), zap.Error(err))
				res.Err = err
			}
			if pending := r.prompts.Pending(); pending != nil {
				res.Prompt = pending.Message
				if !nextIsReply(script.Steps, i) {
					answer := r.answer(pending.Message)
					res.Answer = &answer
					r.prompts.Resolve(answer)
				}
			}
		}

		if st := r.editor.State(); st.Notice.Seq != before {
			res.Notice = st.Notice
		}
		report.Steps = append(report.Steps, res)
	}

	// A trailing prompt with no reply is declined.
	r.prompts.Cancel()
	report.Final = r.editor.State()
	return report, nil
}

func (r *Runner) answer(message string) bool {
	if r.Answer == nil {
		return false
	}
	return r.Answer(message)
}

func nextIsReply(steps []protocol.Request, i int) bool {
	return i+1 < len(steps) && steps[i+1].IsConfirmReply()
}

// Failed reports whether any step hit a pricing fault.
func (rep *Report) Failed() bool {
	for _, s := range rep.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}
