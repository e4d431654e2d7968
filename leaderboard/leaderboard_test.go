package leaderboard_test

import (
	"path/filepath"
	"testing"

	"github.com/ratel-online/uno-server/leaderboard"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *leaderboard.DB {
	db, err := leaderboard.NewDB(filepath.Join(t.TempDir(), "uno.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordWin(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.RecordWin("alice"))
	require.NoError(t, db.RecordWin("alice"))
	require.NoError(t, db.RecordWin("bob"))

	wins, err := db.Wins("alice")
	require.NoError(t, err)
	require.Equal(t, int64(2), wins)

	wins, err = db.Wins("nobody")
	require.NoError(t, err)
	require.Equal(t, int64(0), wins)
}

func TestTop(t *testing.T) {
	db := newDB(t)
	for name, wins := range map[string]int{"a": 1, "b": 4, "c": 2, "d": 2, "e": 3, "f": 5} {
		for i := 0; i < wins; i++ {
			require.NoError(t, db.RecordWin(name))
		}
	}

	top, err := db.Top(5)
	require.NoError(t, err)
	require.Equal(t, []leaderboard.Entry{
		{Name: "f", Wins: 5},
		{Name: "b", Wins: 4},
		{Name: "e", Wins: 3},
		{Name: "c", Wins: 2},
		{Name: "d", Wins: 2},
	}, top)
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uno.db")
	db, err := leaderboard.NewDB(path)
	require.NoError(t, err)
	require.NoError(t, db.RecordWin("alice"))
	require.NoError(t, db.Close())

	db, err = leaderboard.NewDB(path)
	require.NoError(t, err)
	defer db.Close()
	top, err := db.Top(5)
	require.NoError(t, err)
	require.Equal(t, []leaderboard.Entry{{Name: "alice", Wins: 1}}, top)
}

func TestRecorder(t *testing.T) {
	db := newDB(t)
	recorder := leaderboard.NewRecorder(db)

	require.NoError(t, recorder.OnEvent(event.TurnChanged{PlayerName: "alice"}))
	require.NoError(t, recorder.OnEvent(event.GameOver{Reason: "insufficient players"}))
	require.NoError(t, recorder.OnEvent(event.GameOver{Winner: "alice", Reason: "won"}))

	top, err := db.Top(5)
	require.NoError(t, err)
	require.Equal(t, []leaderboard.Entry{{Name: "alice", Wins: 1}}, top)
}
