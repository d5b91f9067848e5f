package commitment

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

// Scheme - selects how a state is fingerprinted.
type Scheme string

const (
	SchemeFlat   Scheme = "flat"
	SchemeMerkle Scheme = "merkle"
)

var ErrUnknownScheme = errors.New("unknown commitment scheme")

// EmptyRoot - the Merkle root of an empty collection, keccak256("").
var EmptyRoot = crypto.Keccak256Hash([]byte(""))

// ParseScheme - maps a configuration value onto a scheme.
func ParseScheme(value string) (Scheme, error) {
	switch Scheme(value) {
	case SchemeFlat:
		return SchemeFlat, nil
	case SchemeMerkle, "":
		return SchemeMerkle, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, value)
	}
}

// Root - fingerprints games with the given scheme.
func Root(scheme Scheme, games []entity.Game) (common.Hash, error) {
	switch scheme {
	case SchemeFlat:
		return FlatRoot(games)
	case SchemeMerkle:
		return MerkleRoot(games)
	default:
		return common.Hash{}, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// FlatRoot - keccak256 over the serialized collection.
func FlatRoot(games []entity.Game) (common.Hash, error) {
	if games == nil {
		games = []entity.Game{}
	}

	data, err := Canonical(games)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to serialize games: %w", err)
	}

	return crypto.Keccak256Hash(data), nil
}

// HashGame - keccak256 over one serialized game record.
func HashGame(game entity.Game) (common.Hash, error) {
	data, err := Canonical(game)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to serialize game %s: %w", game.GameID, err)
	}

	return crypto.Keccak256Hash(data), nil
}

// Leaves - per-game hashes in collection order.
func Leaves(games []entity.Game) ([]common.Hash, error) {
	leaves := make([]common.Hash, 0, len(games))
	for _, game := range games {
		leaf, err := HashGame(game)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}

	return leaves, nil
}

// MerkleRoot - pairwise keccak256 tree over the game hashes. An odd node at
// the end of a level moves up unchanged.
func MerkleRoot(games []entity.Game) (common.Hash, error) {
	leaves, err := Leaves(games)
	if err != nil {
		return common.Hash{}, err
	}

	return RootFromLeaves(leaves), nil
}

// RootFromLeaves - folds leaf hashes into a root.
func RootFromLeaves(leaves []common.Hash) common.Hash {
	if len(leaves) == 0 {
		return EmptyRoot
	}

	level := leaves
	for len(level) > 1 {
		level = nextLevel(level)
	}

	return level[0]
}

func nextLevel(level []common.Hash) []common.Hash {
	next := make([]common.Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 < len(level) {
			next = append(next, hashPair(level[i], level[i+1]))
			continue
		}
		next = append(next, level[i])
	}

	return next
}

func hashPair(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash(left.Bytes(), right.Bytes())
}
