package uihost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irevoire/angle/internal/game"
)

func TestFields_UnknownIDIsMissingElement(t *testing.T) {
	f := New("a")

	_, err := f.FieldValue("b")
	assert.True(t, errors.Is(err, game.ErrMissingElement))
	assert.True(t, errors.Is(f.SetFieldContent("b", "x"), game.ErrMissingElement))
	assert.True(t, errors.Is(f.SetFieldEnabled("b", true), game.ErrMissingElement))
	assert.True(t, errors.Is(f.Focus("b"), game.ErrMissingElement))
	assert.True(t, errors.Is(f.OnCommit("b", func() error { return nil }), game.ErrMissingElement))
	assert.True(t, errors.Is(f.Commit("b"), ErrUnknownField))
}

func TestFields_SetValueRequiresEnabled(t *testing.T) {
	f := New("in")

	err := f.SetValue("in", "12")
	assert.True(t, errors.Is(err, ErrLocked))
	assert.True(t, errors.Is(err, game.ErrOutOfSequence))

	require.NoError(t, f.SetFieldEnabled("in", true))
	require.NoError(t, f.SetValue("in", "12"))
	v, err := f.FieldValue("in")
	require.NoError(t, err)
	assert.Equal(t, "12", v)
}

func TestFields_CommitDispatchesSingleHandler(t *testing.T) {
	f := New("in")
	assert.True(t, errors.Is(f.Commit("in"), ErrNoHandler))

	var calls []string
	require.NoError(t, f.OnCommit("in", func() error { calls = append(calls, "first"); return nil }))
	require.NoError(t, f.OnCommit("in", func() error { calls = append(calls, "second"); return errors.New("boom") }))

	err := f.Commit("in")
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"second"}, calls)
}

func TestFields_SnapshotIsACopy(t *testing.T) {
	f := NewGamePage()
	require.NoError(t, f.SetFieldContent(game.TitleField, "hello"))
	require.NoError(t, f.Focus("guess1"))
	require.NoError(t, f.ShowOverlay())

	s := f.Snapshot()
	assert.Len(t, s.Fields, len(game.FieldIDs()))
	assert.Equal(t, "hello", s.Fields[game.TitleField].Content)
	assert.Equal(t, "guess1", s.Focused)
	assert.True(t, s.Overlay)

	require.NoError(t, f.SetFieldContent(game.TitleField, "changed"))
	assert.Equal(t, "hello", s.Fields[game.TitleField].Content)
}
