package editor

import "sync"

// Confirmer asks the user a yes/no question. Implementations must call
// exactly one of onConfirm or onCancel, exactly once.
type Confirmer interface {
	RequestConfirmation(message string, onConfirm, onCancel func())
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(message string, onConfirm, onCancel func())

// RequestConfirmation calls f.
func (f ConfirmerFunc) RequestConfirmation(message string, onConfirm, onCancel func()) {
	f(message, onConfirm, onCancel)
}

// AutoConfirmer answers every prompt with accept without asking.
func AutoConfirmer(accept bool) Confirmer {
	return ConfirmerFunc(func(_ string, onConfirm, onCancel func()) {
		if accept {
			onConfirm()
			return
		}
		onCancel()
	})
}

// Prompt is a pending confirmation. Resolve runs one of its continuations
// the first time it is called and does nothing afterwards.
type Prompt struct {
	Message string

	once      sync.Once
	onConfirm func()
	onCancel  func()
}

// Resolve answers the prompt.
func (p *Prompt) Resolve(accepted bool) {
	p.once.Do(func() {
		if accepted {
			if p.onConfirm != nil {
				p.onConfirm()
			}
			return
		}
		if p.onCancel != nil {
			p.onCancel()
		}
	})
}

// PromptQueue is a Confirmer for event-loop front ends. It parks the
// request as a pending token that the front end resolves on a later event.
// Only one prompt is pending at a time; a new request declines the old one.
type PromptQueue struct {
	mu      sync.Mutex
	pending *Prompt
}

// NewPromptQueue creates an empty queue.
func NewPromptQueue() *PromptQueue {
	return &PromptQueue{}
}

// RequestConfirmation implements Confirmer.
func (q *PromptQueue) RequestConfirmation(message string, onConfirm, onCancel func()) {
	q.mu.Lock()
	prev := q.pending
	q.pending = &Prompt{Message: message, onConfirm: onConfirm, onCancel: onCancel}
	q.mu.Unlock()

	if prev != nil {
		prev.Resolve(false)
	}
}

// Pending returns the prompt awaiting an answer, or nil.
func (q *PromptQueue) Pending() *Prompt {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// Resolve answers the pending prompt. It reports false when nothing was
// pending.
func (q *PromptQueue) Resolve(accepted bool) bool {
	q.mu.Lock()
	p := q.pending
	q.pending = nil
	q.mu.Unlock()

	if p == nil {
		return false
	}
	p.Resolve(accepted)
	return true
}

// Cancel declines any pending prompt.
func (q *PromptQueue) Cancel() {
	q.Resolve(false)
}
