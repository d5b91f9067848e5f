package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

func TestState_Clone(t *testing.T) {
	// Given: a state with one game
	st := New(entity.NewGame("g1", "0xA", 1000))

	// When: the clone is mutated
	clone := st.Clone()
	game, ok := clone.Find("g1")
	require.True(t, ok)
	game.Start("0xB", 1010)
	clone.Append(entity.NewGame("g2", "0xC", 1020))

	// Then: the original is untouched
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, entity.StatusInLobby, st.Games[0].Status)
	assert.Equal(t, 2, clone.Len())

	var nilState *State
	assert.NotNil(t, nilState.Clone().Games)
}

func TestState_Retain(t *testing.T) {
	st := New(
		entity.NewGame("g1", "0xA", 1),
		entity.NewGame("g2", "0xA", 2),
		entity.NewGame("g3", "0xA", 3),
		entity.NewGame("g4", "0xA", 4),
	)

	removed := st.Retain(func(game *entity.Game) bool {
		return game.CreatedAt%2 == 0
	})

	assert.Equal(t, 2, removed)
	require.Len(t, st.Games, 2)
	assert.Equal(t, "g2", st.Games[0].GameID)
	assert.Equal(t, "g4", st.Games[1].GameID)

	_, ok := st.Find("g1")
	assert.False(t, ok)
}

func TestParseGenesis(t *testing.T) {
	t.Run("Envelope shape", func(t *testing.T) {
		st, err := ParseGenesis([]byte(`{"state":{"games":[{"gameId":"g1","player1":"0xA","status":"in_lobby","createdAt":5}]}}`))

		require.NoError(t, err)
		require.Len(t, st.Games, 1)
		assert.Equal(t, uint64(5), st.Games[0].CreatedAt)
	})

	t.Run("Bare shape", func(t *testing.T) {
		st, err := ParseGenesis([]byte(`{"games":[{"gameId":"g1"},{"gameId":"g2"}]}`))

		require.NoError(t, err)
		assert.Len(t, st.Games, 2)
	})

	t.Run("Empty document", func(t *testing.T) {
		st, err := ParseGenesis([]byte(`{}`))

		require.NoError(t, err)
		assert.NotNil(t, st.Games)
		assert.Empty(t, st.Games)
	})

	t.Run("Duplicate ids", func(t *testing.T) {
		_, err := ParseGenesis([]byte(`{"games":[{"gameId":"g1"},{"gameId":"g1"}]}`))

		require.ErrorIs(t, err, ErrDuplicateGameID)
	})

	t.Run("Broken json", func(t *testing.T) {
		_, err := ParseGenesis([]byte(`{"games":`))

		require.Error(t, err)
	})
}

func TestLoadGenesis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis-state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"state":{"games":[]}}`), 0o600))

	st, err := LoadGenesis(path)

	require.NoError(t, err)
	assert.Empty(t, st.Games)

	_, err = LoadGenesis(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
