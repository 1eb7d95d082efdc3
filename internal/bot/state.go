package bot

import "sync"

// stateKind tags what free-text input a chat is expected to supply next.
type stateKind int

const (
	stateIdle stateKind = iota
	stateAwaitingFeedback
	stateAwaitingReview
)

// chatState is the conversation state of one chat. orderID is meaningful
// only for stateAwaitingReview.
type chatState struct {
	kind    stateKind
	orderID uint
}

// stateTracker maps chat ids to their conversation state. An idle chat has
// no entry; the entry is removed as soon as the awaited input is consumed.
// There is no timeout and no cancel action: a chat left awaiting input keeps
// consuming free text until it supplies some.
type stateTracker struct {
	mu     sync.RWMutex
	states map[int64]chatState
}

func newStateTracker() *stateTracker {
	return &stateTracker{states: make(map[int64]chatState)}
}

func (t *stateTracker) set(chatID int64, state chatState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[chatID] = state
}

// pop removes and returns the chat's state. The second result is false for
// idle chats.
func (t *stateTracker) pop(chatID int64) (chatState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state, ok := t.states[chatID]
	if ok {
		delete(t.states, chatID)
	}
	return state, ok
}

func (t *stateTracker) get(chatID int64) (chatState, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	state, ok := t.states[chatID]
	return state, ok
}
