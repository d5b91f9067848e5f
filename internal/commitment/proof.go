package commitment

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

var ErrIndexOutOfRange = errors.New("leaf index out of range")

// ProofStep - one sibling on the path from a leaf to the root.
type ProofStep struct {
	Sibling common.Hash `json:"sibling"`
	// SiblingLeft is set when the sibling is the left operand of the pair hash.
	SiblingLeft bool `json:"siblingLeft"`
}

// Proof - inclusion proof for the game at index. Levels where the node is
// carried up unpaired contribute no step.
func Proof(games []entity.Game, index int) ([]ProofStep, error) {
	leaves, err := Leaves(games)
	if err != nil {
		return nil, err
	}

	return ProofFromLeaves(leaves, index)
}

// ProofFromLeaves - inclusion proof over precomputed leaves.
func ProofFromLeaves(leaves []common.Hash, index int) ([]ProofStep, error) {
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(leaves))
	}

	var steps []ProofStep

	level := leaves
	for len(level) > 1 {
		sibling := index ^ 1
		if sibling < len(level) {
			steps = append(steps, ProofStep{
				Sibling:     level[sibling],
				SiblingLeft: sibling < index,
			})
		}

		level = nextLevel(level)
		index /= 2
	}

	return steps, nil
}

// VerifyProof - recomputes the root from leaf and proof and compares it to root.
func VerifyProof(root, leaf common.Hash, proof []ProofStep) bool {
	node := leaf
	for _, step := range proof {
		if step.SiblingLeft {
			node = hashPair(step.Sibling, node)
		} else {
			node = hashPair(node, step.Sibling)
		}
	}

	return node == root
}
