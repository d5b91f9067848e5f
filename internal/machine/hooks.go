package machine

import (
	"github.com/rocketscienceinc/ninja-strike/internal/entity"
	"github.com/rocketscienceinc/ninja-strike/internal/state"
)

// pruneGames - drops lobby games that nobody joined within the prune interval.
func (that *rules) pruneGames(st *state.State, block entity.Block) {
	st.Retain(func(game *entity.Game) bool {
		return !that.isStale(game, block.Timestamp)
	})
}

func (that *rules) isStale(game *entity.Game, now uint64) bool {
	if game.StartedAt != 0 || now < game.CreatedAt {
		return false
	}

	return now-game.CreatedAt > that.variant.PruneInterval
}
