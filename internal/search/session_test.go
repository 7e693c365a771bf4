package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForState(t *testing.T, s *Session, want State) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		st, _, _, _ := s.Results()
		if st == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	st, _, _, _ := s.Results()
	t.Fatalf("session never reached state %d, stuck at %d", want, st)
}

func TestSessionStartsIdleWithFullList(t *testing.T) {
	prompts := samplePrompts()
	s := NewSession(prompts, time.Millisecond)
	defer s.Close()

	st, q, res, err := s.Results()
	require.NoError(t, err)
	assert.Equal(t, StateIdle, st)
	assert.Empty(t, q)
	assert.Equal(t, prompts, res)
}

func TestSessionKeystrokeDebouncesToFiltered(t *testing.T) {
	s := NewSession(samplePrompts(), 20*time.Millisecond)
	defer s.Close()

	s.SetQuery("poe")
	st, _, _, _ := s.Results()
	assert.Equal(t, StatePending, st)

	waitForState(t, s, StateFiltered)
	_, q, res, err := s.Results()
	require.NoError(t, err)
	assert.Equal(t, "poe", q)
	require.Len(t, res, 1)
	assert.Equal(t, "p1", res[0].ID)
}

func TestSessionBurstEvaluatesFinalQueryOnly(t *testing.T) {
	s := NewSession(samplePrompts(), 30*time.Millisecond)
	defer s.Close()

	var evals atomic.Int32
	s.OnChange = func(st State) {
		if st == StateFiltered {
			evals.Add(1)
		}
	}

	s.SetQuery("b")
	s.SetQuery("bo")
	s.SetQuery("bob")
	waitForState(t, s, StateFiltered)
	time.Sleep(60 * time.Millisecond)

	_, q, res, err := s.Results()
	require.NoError(t, err)
	assert.Equal(t, "bob", q)
	require.Len(t, res, 1)
	assert.Equal(t, "p2", res[0].ID)
	assert.Equal(t, int32(1), evals.Load())
}

func TestSessionTagClickSkipsDebounce(t *testing.T) {
	// A long interval proves the tag click did not wait for the timer.
	s := NewSession(samplePrompts(), time.Hour)
	defer s.Close()

	s.SetQuery("poe")
	s.TagClick("#travel")

	st, q, res, err := s.Results()
	require.NoError(t, err)
	assert.Equal(t, StateFiltered, st)
	assert.Equal(t, "#travel", q, "tag click must set the visible query")
	require.Len(t, res, 1)
	assert.Equal(t, "p2", res[0].ID)
}

func TestSessionClearReturnsToIdle(t *testing.T) {
	prompts := samplePrompts()
	s := NewSession(prompts, time.Millisecond)
	defer s.Close()

	s.TagClick("#poetry")
	s.SetQuery("")

	st, q, res, err := s.Results()
	require.NoError(t, err)
	assert.Equal(t, StateIdle, st)
	assert.Empty(t, q)
	assert.Equal(t, prompts, res)
}

func TestSessionInvalidPatternSurfacesError(t *testing.T) {
	s := NewSession(samplePrompts(), time.Millisecond)
	defer s.Close()

	s.TagClick("[bad")
	_, _, _, err := s.Results()
	require.Error(t, err)
}

func TestSessionResetReappliesActiveFilter(t *testing.T) {
	s := NewSession(samplePrompts(), time.Millisecond)
	defer s.Close()

	s.TagClick("#poetry")
	s.Reset(nil)

	_, _, res, err := s.Results()
	require.NoError(t, err)
	assert.Empty(t, res)
}
