package state

import (
	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

// State - the canonical ordered game collection of one machine.
type State struct {
	Games []entity.Game `json:"games"`
}

// New - builds a state holding a copy of games.
func New(games ...entity.Game) *State {
	st := &State{Games: make([]entity.Game, len(games))}
	copy(st.Games, games)

	return st
}

// Clone - returns an independent copy. Game holds only scalar fields, so a
// slice copy is a deep copy.
func (that *State) Clone() *State {
	if that == nil {
		return New()
	}

	return New(that.Games...)
}

func (that *State) Len() int {
	return len(that.Games)
}

// Find - returns a pointer into the collection for in-place mutation.
func (that *State) Find(gameID string) (*entity.Game, bool) {
	for i := range that.Games {
		if that.Games[i].GameID == gameID {
			return &that.Games[i], true
		}
	}

	return nil, false
}

func (that *State) Append(game entity.Game) {
	that.Games = append(that.Games, game)
}

// Retain - keeps the games for which keep returns true, preserving order, and
// reports how many were removed.
func (that *State) Retain(keep func(game *entity.Game) bool) int {
	kept := that.Games[:0]
	for i := range that.Games {
		if keep(&that.Games[i]) {
			kept = append(kept, that.Games[i])
		}
	}

	removed := len(that.Games) - len(kept)
	clear(that.Games[len(kept):])
	that.Games = kept

	return removed
}
