package history

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nstehr/indigo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks
var (
	_ Recorder = (*Store)(nil)
	_ Recorder = Nop{}
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordBeforeStart(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.RecordTurn(TurnRecord{Number: 1}), ErrNoMatch)
	assert.ErrorIs(t, s.RecordBreach(1, model.Loc(10, 5)), ErrNoMatch)
	assert.ErrorIs(t, s.RecordCommit("left", model.Loc(3, 10), 3), ErrNoMatch)
	assert.ErrorIs(t, s.EndMatch(9, 1), ErrNoMatch)
}

func TestMatchLifecycle(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.StartMatch(18446744073709551615))
	_, err := uuid.Parse(s.MatchID())
	require.NoError(t, err, "match id is not a uuid")

	require.NoError(t, s.RecordTurn(TurnRecord{Number: 1, Cores: 30, Bits: 5, Placed: 10, Skipped: 10, Rules: []string{"base-defense", "stall"}}))
	require.NoError(t, s.RecordTurn(TurnRecord{Number: 3, Cores: 12, Bits: 9, Placed: 4, Rules: []string{"commit-funnel"}, Scores: []float64{8, 12}}))
	require.NoError(t, s.RecordBreach(2, model.Loc(10, 5)))
	require.NoError(t, s.RecordCommit("left", model.Loc(3, 10), 3))
	require.NoError(t, s.EndMatch(40, 1))

	m, err := s.Match(s.MatchID())
	require.NoError(t, err)

	assert.Equal(t, "18446744073709551615", m.Seed)
	assert.Equal(t, "left", m.Lane)
	require.NotNil(t, m.SpawnX)
	require.NotNil(t, m.CommitTurn)
	assert.Equal(t, 3, *m.SpawnX)
	assert.Equal(t, 3, *m.CommitTurn)
	assert.Equal(t, 40, m.FinalTurn)
	assert.Equal(t, 1, m.Winner)
	assert.NotNil(t, m.EndedAt)

	require.Len(t, m.Turns, 2)
	assert.Equal(t, "base-defense,stall", m.Turns[0].Rules)
	assert.Nil(t, m.Turns[0].LeftRisk)
	require.NotNil(t, m.Turns[1].RightRisk)
	assert.Equal(t, 12.0, *m.Turns[1].RightRisk)

	require.Len(t, m.Breaches, 1)
	assert.Equal(t, 10, m.Breaches[0].X)
	assert.Equal(t, 5, m.Breaches[0].Y)
}

func TestInfiniteRiskStoredAsNull(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.StartMatch(1))
	require.NoError(t, s.RecordTurn(TurnRecord{Number: 3, Scores: []float64{math.Inf(1), 4}}))

	m, err := s.Match(s.MatchID())
	require.NoError(t, err)
	require.Len(t, m.Turns, 1)
	assert.Nil(t, m.Turns[0].LeftRisk)
	assert.NotNil(t, m.Turns[0].RightRisk)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.StartMatch(7))
	id := s.MatchID()
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	m, err := s.Match(id)
	require.NoError(t, err)
	assert.Equal(t, "7", m.Seed)
}
