package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

var ErrDuplicateGameID = errors.New("duplicate game id in genesis")

// ParseGenesis - decodes a genesis snapshot. Both the rollup SDK shape
// {"state": {"games": [...]}} and a bare {"games": [...]} are accepted.
func ParseGenesis(data []byte) (*State, error) {
	var envelope struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal genesis: %w", err)
	}

	if len(envelope.State) > 0 && string(envelope.State) != "null" {
		data = envelope.State
	}

	st := &State{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal genesis state: %w", err)
	}

	if st.Games == nil {
		st.Games = []entity.Game{}
	}

	seen := make(map[string]struct{}, len(st.Games))
	for _, game := range st.Games {
		if _, ok := seen[game.GameID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGameID, game.GameID)
		}
		seen[game.GameID] = struct{}{}
	}

	return st, nil
}

// LoadGenesis - reads and decodes a genesis snapshot from disk.
func LoadGenesis(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis file: %w", err)
	}

	st, err := ParseGenesis(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load genesis %s: %w", path, err)
	}

	return st, nil
}
