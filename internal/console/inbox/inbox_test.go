package inbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadmin/internal/domain/entity"
)

const operatorID = "op-1"

type fakeFetcher struct {
	roster     []*entity.Chat
	rosterErr  error
	history    map[string][]*entity.Message
	historyErr error
	sendResult *entity.Message
	sendErr    error
	sendCalls  int
}

func (f *fakeFetcher) Roster(ctx context.Context) ([]*entity.Chat, error) {
	return f.roster, f.rosterErr
}

func (f *fakeFetcher) History(ctx context.Context, chatID string) ([]*entity.Message, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history[chatID], nil
}

func (f *fakeFetcher) Send(ctx context.Context, chatID, content string) (*entity.Message, error) {
	f.sendCalls++
	return f.sendResult, f.sendErr
}

type fakeLive struct {
	connected bool
	sentChat  string
	sentBody  string
	sendCalls int
}

func (f *fakeLive) Connected() bool { return f.connected }

func (f *fakeLive) Send(chatID, content string) error {
	f.sendCalls++
	f.sentChat = chatID
	f.sentBody = content
	return nil
}

func chatAt(id, counterparty string, lastActivity int64) *entity.Chat {
	return &entity.Chat{
		ID:             id,
		Participants:   []string{operatorID, counterparty},
		CounterpartyID: counterparty,
		LastMessageAt:  time.Unix(lastActivity, 0),
		UpdatedAt:      time.Unix(lastActivity, 0),
		UnreadCount:    map[string]int{},
	}
}

func liveMsg(id, chatID, senderID string, ts int64) *entity.Message {
	return &entity.Message{
		ID:        id,
		ChatID:    chatID,
		SenderID:  senderID,
		Content:   "body of " + id,
		Type:      "text",
		CreatedAt: time.Unix(ts, 0),
	}
}

func rosterIDs(inb *Inbox) []string {
	var ids []string
	for _, thread := range inb.Threads() {
		ids = append(ids, thread.ID)
	}
	return ids
}

func TestRosterReorderingOnLiveMessage(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("t2", "buyer-2", 20),
		chatAt("t1", "buyer-1", 10),
		chatAt("t3", "buyer-3", 5),
	})

	refresh := inb.HandleLiveMessage(liveMsg("m1", "t3", "buyer-3", 30))

	assert.False(t, refresh)
	assert.Equal(t, []string{"t3", "t2", "t1"}, rosterIDs(inb), "oldest thread moves to front, others keep relative order")
}

func TestUnreadAccounting(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("t1", "buyer-1", 20),
		chatAt("t2", "buyer-2", 10),
	})
	// SetRoster selected t1 as active.
	require.Equal(t, "t1", inb.ActiveID())

	inb.HandleLiveMessage(liveMsg("m1", "t2", "buyer-2", 30))
	assert.Equal(t, 1, inb.Unread("t2"), "counterparty message on non-active thread")

	inb.HandleLiveMessage(liveMsg("m2", "t1", "buyer-1", 31))
	assert.Equal(t, 0, inb.Unread("t1"), "active thread stays at zero")

	inb.HandleLiveMessage(liveMsg("m3", "t2", operatorID, 32))
	assert.Equal(t, 1, inb.Unread("t2"), "operator's own message never increments")
}

func TestDuplicateSuppression(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{chatAt("t1", "buyer-1", 10)})
	require.Equal(t, "t1", inb.ActiveID())

	inb.HandleLiveMessage(liveMsg("m1", "t1", "buyer-1", 20))
	require.Len(t, inb.Messages(), 1)

	inb.HandleLiveMessage(liveMsg("m1", "t1", "buyer-1", 20))
	assert.Len(t, inb.Messages(), 1, "echo of an already-present id is a no-op")
}

func TestStaleFetchDiscard(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("a", "buyer-a", 20),
		chatAt("b", "buyer-b", 10),
	})

	seqA, ok := inb.Activate("a")
	require.True(t, ok)

	// Operator switches to b before a's history resolves.
	seqB, ok := inb.Activate("b")
	require.True(t, ok)
	inb.ResolveHistory("b", seqB, []*entity.Message{liveMsg("mb", "b", "buyer-b", 5)}, nil)

	inb.ResolveHistory("a", seqA, []*entity.Message{liveMsg("ma", "a", "buyer-a", 5)}, nil)

	msgs := inb.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "mb", msgs[0].ID, "late fetch for a no-longer-active thread is dropped")
	assert.Equal(t, "b", inb.ActiveID())
}

func TestStaleFetchDiscardAfterReactivation(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("a", "buyer-a", 20),
		chatAt("b", "buyer-b", 10),
	})

	oldSeq, ok := inb.Activate("a")
	require.True(t, ok)
	_, ok = inb.Activate("b")
	require.True(t, ok)
	newSeq, ok := inb.Activate("a")
	require.True(t, ok)

	// Same thread id, but the fetch belongs to the earlier selection.
	inb.ResolveHistory("a", oldSeq, []*entity.Message{liveMsg("stale", "a", "buyer-a", 5)}, nil)
	assert.Empty(t, inb.Messages())

	inb.ResolveHistory("a", newSeq, []*entity.Message{liveMsg("fresh", "a", "buyer-a", 6)}, nil)
	require.Len(t, inb.Messages(), 1)
	assert.Equal(t, "fresh", inb.Messages()[0].ID)
}

func TestEndToEndRosterScenario(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("t2", "buyer-2", 20),
		chatAt("t1", "buyer-1", 10),
		chatAt("t3", "buyer-3", 5),
	})
	require.Equal(t, "t2", inb.ActiveID())

	refresh := inb.HandleLiveMessage(liveMsg("m1", "t3", "buyer-3", 30))

	assert.False(t, refresh)
	assert.Equal(t, []string{"t3", "t2", "t1"}, rosterIDs(inb))
	assert.Equal(t, 1, inb.Unread("t3"))
	assert.Equal(t, 0, inb.Unread("t2"))
	assert.Equal(t, 0, inb.Unread("t1"))
}

func TestRosterRevalidation(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("t1", "buyer-1", 20),
		chatAt("t2", "buyer-2", 10),
	})
	_, ok := inb.Activate("t2")
	require.True(t, ok)

	// Active thread survives a refresh that still contains it.
	changed := inb.SetRoster([]*entity.Chat{
		chatAt("t2", "buyer-2", 10),
		chatAt("t3", "buyer-3", 5),
	})
	assert.False(t, changed)
	assert.Equal(t, "t2", inb.ActiveID())

	// Active thread gone: first conversation takes over.
	changed = inb.SetRoster([]*entity.Chat{chatAt("t3", "buyer-3", 5)})
	assert.True(t, changed)
	assert.Equal(t, "t3", inb.ActiveID())

	// Empty roster clears the selection.
	changed = inb.SetRoster(nil)
	assert.True(t, changed)
	assert.Empty(t, inb.ActiveID())
	assert.Empty(t, inb.Messages())
}

func TestHistoryResolveZeroesUnread(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	chat := chatAt("t1", "buyer-1", 10)
	chat.UnreadCount[operatorID] = 4
	other := chatAt("t2", "buyer-2", 20)
	other.UnreadCount[operatorID] = 2
	inb.SetRoster([]*entity.Chat{other, chat})

	seq, ok := inb.Activate("t1")
	require.True(t, ok)
	inb.ResolveHistory("t1", seq, []*entity.Message{liveMsg("m1", "t1", "buyer-1", 5)}, nil)

	assert.Equal(t, 0, inb.Unread("t1"))
	assert.Equal(t, 2, inb.Unread("t2"), "only the loaded thread is reset")
}

func TestUnknownThreadSignalsRefresh(t *testing.T) {
	inb := New(operatorID, &fakeFetcher{}, nil)
	inb.SetRoster([]*entity.Chat{chatAt("t1", "buyer-1", 10)})

	refresh := inb.HandleLiveMessage(liveMsg("m1", "t-new", "buyer-9", 30))

	assert.True(t, refresh)
	assert.Equal(t, []string{"t1"}, rosterIDs(inb), "nothing appended for a thread the inbox has not seen")
	assert.Empty(t, inb.Messages())
}

func TestSendWithoutActiveThreadIsNoop(t *testing.T) {
	fetcher := &fakeFetcher{}
	inb := New(operatorID, fetcher, nil)

	err := inb.Send(context.Background(), "hello")

	require.NoError(t, err)
	assert.Zero(t, fetcher.sendCalls)
}

func TestSendPrefersLiveTransport(t *testing.T) {
	fetcher := &fakeFetcher{}
	live := &fakeLive{connected: true}
	inb := New(operatorID, fetcher, live)
	inb.SetRoster([]*entity.Chat{chatAt("t1", "buyer-1", 10)})

	err := inb.Send(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, 1, live.sendCalls)
	assert.Equal(t, "t1", live.sentChat)
	assert.Zero(t, fetcher.sendCalls)
	assert.Empty(t, inb.Messages(), "no optimistic append on the live path")
}

func TestSendFallsBackToRequestResponse(t *testing.T) {
	sent := liveMsg("m-sent", "t1", operatorID, 40)
	fetcher := &fakeFetcher{sendResult: sent}
	inb := New(operatorID, fetcher, &fakeLive{connected: false})
	inb.SetRoster([]*entity.Chat{chatAt("t1", "buyer-1", 10)})

	require.NoError(t, inb.Send(context.Background(), "hello"))
	require.Len(t, inb.Messages(), 1)

	// The live echo of the same message must not double-append.
	inb.HandleLiveMessage(sent)
	assert.Len(t, inb.Messages(), 1)
	assert.Equal(t, 0, inb.Unread("t1"))
}

func TestSendFailurePropagates(t *testing.T) {
	fetcher := &fakeFetcher{sendErr: errors.New("gateway timeout")}
	inb := New(operatorID, fetcher, nil)
	inb.SetRoster([]*entity.Chat{chatAt("t1", "buyer-1", 10)})

	err := inb.Send(context.Background(), "hello")

	require.Error(t, err)
	assert.Empty(t, inb.Messages(), "nothing partial is appended on failure")
}

func TestFailedRosterRefreshKeepsState(t *testing.T) {
	fetcher := &fakeFetcher{
		roster: []*entity.Chat{chatAt("t1", "buyer-1", 10)},
		history: map[string][]*entity.Message{
			"t1": {liveMsg("m1", "t1", "buyer-1", 5)},
		},
	}
	inb := New(operatorID, fetcher, nil)
	require.NoError(t, inb.Refresh(context.Background()))
	require.Len(t, inb.Messages(), 1)

	fetcher.rosterErr = errors.New("network down")
	err := inb.Refresh(context.Background())

	require.Error(t, err)
	assert.Error(t, inb.RosterErr())
	assert.Equal(t, []string{"t1"}, rosterIDs(inb), "failed refresh does not clear the roster")
	assert.Len(t, inb.Messages(), 1)
}

func TestFailedHistoryFetchKeepsRoster(t *testing.T) {
	fetcher := &fakeFetcher{historyErr: errors.New("network down")}
	inb := New(operatorID, fetcher, nil)
	inb.SetRoster([]*entity.Chat{
		chatAt("t1", "buyer-1", 20),
		chatAt("t2", "buyer-2", 10),
	})

	err := inb.Open(context.Background(), "t2")

	require.Error(t, err)
	assert.Error(t, inb.HistoryErr())
	assert.Equal(t, "t2", inb.ActiveID())
	assert.Len(t, inb.Threads(), 2)
}
