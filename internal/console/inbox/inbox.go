package inbox

import (
	"context"
	"sort"
	"sync"

	"marketadmin/internal/domain/entity"
	apperrors "marketadmin/pkg/errors"
)

// Fetcher is the request/response side of the inbox: roster listing,
// thread history, and the fallback send path. The REST client satisfies
// it; tests use fakes.
type Fetcher interface {
	Roster(ctx context.Context) ([]*entity.Chat, error)
	History(ctx context.Context, chatID string) ([]*entity.Message, error)
	Send(ctx context.Context, chatID, content string) (*entity.Message, error)
}

// LiveSender is the push-channel send path. When connected, sends go
// through it and the server's echo populates the message list.
type LiveSender interface {
	Connected() bool
	Send(chatID, content string) error
}

// Inbox is the operator's conversation state: the roster ordered by
// most recent activity, at most one active thread, and that thread's
// message list. It reconciles three inputs — roster fetches, history
// fetches, and live message events — into one consistent view.
//
// All mutation goes through this type; fetch results for a thread that
// is no longer active are discarded, and messages are deduplicated by
// id so a live echo of an already-appended message is a no-op.
type Inbox struct {
	mu sync.Mutex

	operatorID string
	fetcher    Fetcher
	live       LiveSender

	threads  []*entity.Chat
	activeID string
	messages []*entity.Message
	seen     map[string]struct{}

	// fetchSeq identifies the current active selection. A history fetch
	// carries the seq it was started under; a mismatch at resolution
	// means the operator switched threads and the result is stale.
	fetchSeq uint64

	rosterErr  error
	historyErr error
}

func New(operatorID string, fetcher Fetcher, live LiveSender) *Inbox {
	return &Inbox{
		operatorID: operatorID,
		fetcher:    fetcher,
		live:       live,
		seen:       map[string]struct{}{},
	}
}

// SetRoster replaces the conversation list wholesale and re-validates
// the active selection: kept if still present, otherwise the first
// conversation, otherwise none. It reports whether the active thread
// changed (the caller should then load the new thread's history).
func (inb *Inbox) SetRoster(chats []*entity.Chat) bool {
	inb.mu.Lock()
	defer inb.mu.Unlock()

	inb.threads = make([]*entity.Chat, len(chats))
	copy(inb.threads, chats)
	inb.rosterErr = nil

	if inb.activeID != "" && inb.findThread(inb.activeID) != nil {
		return false
	}

	if len(inb.threads) > 0 {
		inb.activateLocked(inb.threads[0].ID)
		return true
	}

	changed := inb.activeID != ""
	inb.activeID = ""
	inb.clearMessagesLocked()
	return changed
}

// Activate makes chatID the active thread and clears the message list.
// The returned seq must be passed to ResolveHistory so a late result
// can be recognized as stale. Unknown ids are rejected.
func (inb *Inbox) Activate(chatID string) (uint64, bool) {
	inb.mu.Lock()
	defer inb.mu.Unlock()

	if inb.findThread(chatID) == nil {
		return 0, false
	}
	inb.activateLocked(chatID)
	return inb.fetchSeq, true
}

func (inb *Inbox) activateLocked(chatID string) {
	inb.activeID = chatID
	inb.clearMessagesLocked()
	inb.fetchSeq++
	inb.historyErr = nil
}

func (inb *Inbox) clearMessagesLocked() {
	inb.messages = nil
	inb.seen = map[string]struct{}{}
}

// ResolveHistory applies a finished history fetch. The result only
// lands if chatID is still the active thread and seq still identifies
// the current selection; otherwise it is dropped silently. On apply the
// thread's unread counter is zeroed: its contents have been loaded.
func (inb *Inbox) ResolveHistory(chatID string, seq uint64, msgs []*entity.Message, err error) {
	inb.mu.Lock()
	defer inb.mu.Unlock()

	if chatID != inb.activeID || seq != inb.fetchSeq {
		return
	}

	if err != nil {
		inb.historyErr = err
		return
	}

	inb.clearMessagesLocked()
	for _, msg := range msgs {
		inb.appendLocked(msg)
	}
	inb.historyErr = nil

	if thread := inb.findThread(chatID); thread != nil {
		inb.zeroUnreadLocked(thread)
	}
}

// HandleLiveMessage applies a push event. It reports whether the event
// referenced a thread this inbox has never seen, in which case the
// caller should refresh the roster; the message itself is not appended
// anywhere in that case.
func (inb *Inbox) HandleLiveMessage(msg *entity.Message) bool {
	inb.mu.Lock()
	defer inb.mu.Unlock()

	thread := inb.findThread(msg.ChatID)
	if thread == nil {
		return true
	}

	thread.LastMessage = msg.Content
	thread.LastMessageAt = msg.CreatedAt
	thread.UpdatedAt = msg.CreatedAt
	inb.sortThreadsLocked()

	if msg.SenderID == thread.CounterpartyID && thread.ID != inb.activeID {
		if thread.UnreadCount == nil {
			thread.UnreadCount = map[string]int{}
		}
		thread.UnreadCount[inb.operatorID]++
	}

	if thread.ID == inb.activeID {
		inb.appendLocked(msg)
	}
	return false
}

// Send delivers content to the active thread. With no active thread it
// is a no-op. A connected live channel gets the send and the echo event
// appends the message; otherwise the request/response path appends the
// returned message directly, deduplicated by id.
func (inb *Inbox) Send(ctx context.Context, content string) error {
	inb.mu.Lock()
	chatID := inb.activeID
	inb.mu.Unlock()

	if chatID == "" {
		return nil
	}

	if inb.live != nil && inb.live.Connected() {
		return inb.live.Send(chatID, content)
	}

	msg, err := inb.fetcher.Send(ctx, chatID, content)
	if err != nil {
		return err
	}

	inb.mu.Lock()
	defer inb.mu.Unlock()
	if msg.ChatID == inb.activeID {
		inb.appendLocked(msg)
	}
	if thread := inb.findThread(msg.ChatID); thread != nil {
		thread.LastMessage = msg.Content
		thread.LastMessageAt = msg.CreatedAt
		thread.UpdatedAt = msg.CreatedAt
		inb.sortThreadsLocked()
	}
	return nil
}

// Refresh fetches the roster and, when the active selection moved, the
// new active thread's history. A failed roster fetch records the error
// without touching the previously loaded state.
func (inb *Inbox) Refresh(ctx context.Context) error {
	chats, err := inb.fetcher.Roster(ctx)
	if err != nil {
		inb.mu.Lock()
		inb.rosterErr = err
		inb.mu.Unlock()
		return err
	}

	if inb.SetRoster(chats) {
		return inb.loadActive(ctx)
	}
	return nil
}

// Open switches the active thread and loads its history.
func (inb *Inbox) Open(ctx context.Context, chatID string) error {
	if _, ok := inb.Activate(chatID); !ok {
		return apperrors.NotFound("Chat", nil)
	}
	return inb.loadActive(ctx)
}

func (inb *Inbox) loadActive(ctx context.Context) error {
	inb.mu.Lock()
	chatID := inb.activeID
	seq := inb.fetchSeq
	inb.mu.Unlock()

	if chatID == "" {
		return nil
	}

	msgs, err := inb.fetcher.History(ctx, chatID)
	inb.ResolveHistory(chatID, seq, msgs, err)
	return err
}

func (inb *Inbox) appendLocked(msg *entity.Message) {
	if _, dup := inb.seen[msg.ID]; dup {
		return
	}
	inb.seen[msg.ID] = struct{}{}
	inb.messages = append(inb.messages, msg)
}

func (inb *Inbox) findThread(chatID string) *entity.Chat {
	for _, thread := range inb.threads {
		if thread.ID == chatID {
			return thread
		}
	}
	return nil
}

func (inb *Inbox) sortThreadsLocked() {
	sort.SliceStable(inb.threads, func(i, j int) bool {
		return inb.threads[i].LastMessageAt.After(inb.threads[j].LastMessageAt)
	})
}

func (inb *Inbox) zeroUnreadLocked(thread *entity.Chat) {
	if thread.UnreadCount == nil {
		thread.UnreadCount = map[string]int{}
	}
	thread.UnreadCount[inb.operatorID] = 0
}

// Threads returns the roster in its current order.
func (inb *Inbox) Threads() []*entity.Chat {
	inb.mu.Lock()
	defer inb.mu.Unlock()
	out := make([]*entity.Chat, len(inb.threads))
	copy(out, inb.threads)
	return out
}

// ActiveID returns the active thread id, empty when none is selected.
func (inb *Inbox) ActiveID() string {
	inb.mu.Lock()
	defer inb.mu.Unlock()
	return inb.activeID
}

// Messages returns the active thread's message list in arrival order.
func (inb *Inbox) Messages() []*entity.Message {
	inb.mu.Lock()
	defer inb.mu.Unlock()
	out := make([]*entity.Message, len(inb.messages))
	copy(out, inb.messages)
	return out
}

// Unread returns a thread's unread counter for this operator.
func (inb *Inbox) Unread(chatID string) int {
	inb.mu.Lock()
	defer inb.mu.Unlock()
	if thread := inb.findThread(chatID); thread != nil {
		return thread.UnreadCount[inb.operatorID]
	}
	return 0
}

// RosterErr returns the last roster fetch failure, nil after a success.
func (inb *Inbox) RosterErr() error {
	inb.mu.Lock()
	defer inb.mu.Unlock()
	return inb.rosterErr
}

// HistoryErr returns the last history fetch failure for the active
// thread, nil after a success or selection change.
func (inb *Inbox) HistoryErr() error {
	inb.mu.Lock()
	defer inb.mu.Unlock()
	return inb.historyErr
}
