package services

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeHub struct {
	sessionID  string
	updateType string
	data       interface{}
	calls      int
}

func (f *fakeHub) BroadcastSessionUpdate(sessionID, updateType string, data interface{}) {
	f.sessionID = sessionID
	f.updateType = updateType
	f.data = data
	f.calls++
}

func newTestBroadcastService() (*BroadcastService, *fakeHub) {
	svc := NewBroadcastService(log.New(io.Discard, "", 0))
	hub := &fakeHub{}
	svc.SetHub(hub)
	return svc, hub
}

func TestBroadcastServiceWithoutHubIsNoop(t *testing.T) {
	svc := NewBroadcastService(log.New(io.Discard, "", 0))

	require.NotPanics(t, func() {
		svc.RoundGenerated("session-1", nil)
		svc.WinnerUpdated("session-1", nil)
		svc.HistoryReset("session-1")
		svc.RosterUpdated("session-1", nil)
	})
}

func TestRoundGeneratedBroadcastsToHub(t *testing.T) {
	svc, hub := newTestBroadcastService()

	svc.RoundGenerated("session-1", "round-data")

	require.Equal(t, 1, hub.calls)
	require.Equal(t, "session-1", hub.sessionID)
	require.Equal(t, "round_generated", hub.updateType)
	require.Equal(t, "round-data", hub.data)
}

func TestWinnerUpdatedBroadcastsToHub(t *testing.T) {
	svc, hub := newTestBroadcastService()

	svc.WinnerUpdated("session-2", "round-data")

	require.Equal(t, "winner_updated", hub.updateType)
	require.Equal(t, "session-2", hub.sessionID)
}

func TestHistoryResetBroadcastsToHub(t *testing.T) {
	svc, hub := newTestBroadcastService()

	svc.HistoryReset("session-3")

	require.Equal(t, "history_reset", hub.updateType)
	require.Nil(t, hub.data)
}

func TestRosterUpdatedBroadcastsToHub(t *testing.T) {
	svc, hub := newTestBroadcastService()

	svc.RosterUpdated("session-4", []string{"p1", "p2"})

	require.Equal(t, "roster_updated", hub.updateType)
	require.Equal(t, []string{"p1", "p2"}, hub.data)
}
