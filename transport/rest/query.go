package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/ninja-strike/internal/commitment"
	"github.com/rocketscienceinc/ninja-strike/internal/machine"
	"github.com/rocketscienceinc/ninja-strike/internal/state"
)

const headerStateRoot = "X-State-Root"

type rollupService interface {
	State() *state.State
	Root() common.Hash
	Machine() *machine.Machine
}

type infoResponse struct {
	Variant    string                    `json:"variant"`
	Commitment commitment.Scheme         `json:"commitment"`
	Actions    []string                  `json:"actions"`
	Hooks      []string                  `json:"hooks"`
	Schemas    map[string]machine.Schema `json:"schemas"`
}

type rootResponse struct {
	Root  string `json:"root"`
	Games int    `json:"games"`
}

type proofResponse struct {
	Root  string                 `json:"root"`
	Leaf  string                 `json:"leaf"`
	Index int                    `json:"index"`
	Proof []commitment.ProofStep `json:"proof"`
}

type queryHandlers struct {
	logger *slog.Logger
	rollup rollupService
}

func newQueryHandlers(logger *slog.Logger, rollup rollupService) *queryHandlers {
	return &queryHandlers{
		logger: logger.With("component", "rest"),
		rollup: rollup,
	}
}

// Ping - liveness check, also reports the live root in X-State-Root.
func (that *queryHandlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(headerStateRoot, that.rollup.Root().Hex())
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Debug("could not write ping response", "error", err)
	}
}

func (that *queryHandlers) Info(w http.ResponseWriter, _ *http.Request) {
	m := that.rollup.Machine()
	variant := m.Variant()

	that.writeJSON(w, http.StatusOK, infoResponse{
		Variant:    variant.Name,
		Commitment: variant.Commitment,
		Actions:    m.Actions(),
		Hooks:      m.Hooks(),
		Schemas:    m.Schemas(),
	})
}

func (that *queryHandlers) State(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.rollup.State())
}

func (that *queryHandlers) Root(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, rootResponse{
		Root:  that.rollup.Root().Hex(),
		Games: that.rollup.State().Len(),
	})
}

func (that *queryHandlers) Game(w http.ResponseWriter, r *http.Request) {
	game, ok := that.rollup.State().Find(r.PathValue("id"))
	if !ok {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

// Proof - Merkle inclusion proof of one game against the current root.
func (that *queryHandlers) Proof(w http.ResponseWriter, r *http.Request) {
	if that.rollup.Machine().Variant().Commitment != commitment.SchemeMerkle {
		http.Error(w, "Proofs require the merkle commitment", http.StatusConflict)
		return
	}

	// one snapshot so root, leaf and proof agree
	st := that.rollup.State()

	index := -1
	for i := range st.Games {
		if st.Games[i].GameID == r.PathValue("id") {
			index = i
			break
		}
	}
	if index < 0 {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	leaves, err := commitment.Leaves(st.Games)
	if err != nil {
		that.logger.Error("failed to hash games", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	proof, err := commitment.ProofFromLeaves(leaves, index)
	if err != nil {
		that.logger.Error("failed to build proof", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, proofResponse{
		Root:  commitment.RootFromLeaves(leaves).Hex(),
		Leaf:  leaves[index].Hex(),
		Index: index,
		Proof: proof,
	})
}

func (that *queryHandlers) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		that.logger.Error("failed to marshal response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
