package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/ninja-strike/internal/apperror"
	"github.com/rocketscienceinc/ninja-strike/internal/entity"
	"github.com/rocketscienceinc/ninja-strike/internal/machine"
	"github.com/rocketscienceinc/ninja-strike/internal/repository"
	"github.com/rocketscienceinc/ninja-strike/internal/state"
)

var ErrReplayDiverged = errors.New("replay diverged from recorded root")

type snapshotRepo interface {
	Get(ctx context.Context, machineID string) (*state.State, common.Hash, error)
}

type actionLogRepo interface {
	AppendWithSnapshot(ctx context.Context, machineID string, receipt *entity.Receipt, st *state.State, root common.Hash) error
	List(ctx context.Context, machineID string) ([]*entity.Receipt, error)
}

// Rollup - serializes actions against one machine and persists every accepted
// transition as a receipt plus a snapshot.
type Rollup struct {
	logger *slog.Logger

	machineID string
	machine   *machine.Machine
	genesis   *state.State

	snapshotRepo  snapshotRepo
	actionLogRepo actionLogRepo

	mu    sync.RWMutex
	state *state.State
	root  common.Hash
}

func NewRollup(
	logger *slog.Logger,
	machineID string,
	m *machine.Machine,
	genesis *state.State,
	snapshotRepo snapshotRepo,
	actionLogRepo actionLogRepo,
) *Rollup {
	return &Rollup{
		logger: logger.With("component", "rollup", "machine", machineID),

		machineID: machineID,
		machine:   m,
		genesis:   genesis.Clone(),

		snapshotRepo:  snapshotRepo,
		actionLogRepo: actionLogRepo,

		state: genesis.Clone(),
	}
}

// Restore - loads the latest snapshot, or starts from genesis when none exists.
func (that *Rollup) Restore(ctx context.Context) error {
	log := that.logger.With("method", "Restore")

	that.mu.Lock()
	defer that.mu.Unlock()

	st, root, err := that.snapshotRepo.Get(ctx, that.machineID)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		genesisRoot, rootErr := that.machine.Root(that.genesis)
		if rootErr != nil {
			return rootErr
		}

		that.state = that.genesis.Clone()
		that.root = genesisRoot

		log.Info("starting from genesis", "games", that.state.Len(), "root", genesisRoot.Hex())
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	computed, err := that.machine.Root(st)
	if err != nil {
		return err
	}

	if computed != root {
		return fmt.Errorf("%w: snapshot root %s, computed %s", ErrReplayDiverged, root.Hex(), computed.Hex())
	}

	that.state = st
	that.root = root

	log.Info("restored snapshot", "games", st.Len(), "root", root.Hex())

	return nil
}

// Submit - applies one action. A rejection leaves the state and the log
// untouched and is returned as is.
func (that *Rollup) Submit(ctx context.Context, name string, action machine.Action) (*entity.Receipt, error) {
	log := that.logger.With("method", "Submit", "action", name, "sender", action.MsgSender)

	that.mu.Lock()
	defer that.mu.Unlock()

	result, err := that.machine.Apply(that.state, name, action)
	if err != nil {
		log.Warn("action rejected", "code", apperror.CodeOf(err), "error", err)
		return nil, err
	}

	root, err := that.machine.Root(result.State)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		ID:        uuid.NewString(),
		Action:    name,
		Inputs:    action.Inputs,
		MsgSender: action.MsgSender,
		Block:     action.Block,
		Events:    result.Events,
		Root:      root.Hex(),
	}

	if err = that.commit(ctx, result.State, root, receipt); err != nil {
		return nil, err
	}

	log.Debug("action applied", "receipt", receipt.ID, "events", len(receipt.Events), "root", receipt.Root)

	return receipt, nil
}

// Prune - runs the prune hook at block time and reports how many games were
// removed. Nothing is persisted when nothing was removed.
func (that *Rollup) Prune(ctx context.Context, block entity.Block) (int, error) {
	log := that.logger.With("method", "Prune", "timestamp", block.Timestamp)

	that.mu.Lock()
	defer that.mu.Unlock()

	next, err := that.machine.RunHook(that.state, machine.HookPruneGames, block)
	if err != nil {
		return 0, fmt.Errorf("failed to run prune hook: %w", err)
	}

	removed := that.state.Len() - next.Len()
	if removed == 0 {
		return 0, nil
	}

	root, err := that.machine.Root(next)
	if err != nil {
		return 0, err
	}

	receipt := &entity.Receipt{
		ID:     uuid.NewString(),
		Action: machine.HookPruneGames,
		Hook:   true,
		Block:  block,
		Events: []entity.Event{},
		Root:   root.Hex(),
	}

	if err = that.commit(ctx, next, root, receipt); err != nil {
		return 0, err
	}

	log.Info("pruned stale lobby games", "removed", removed, "root", receipt.Root)

	return removed, nil
}

// commit - persists receipt and snapshot atomically, then swaps the in-memory
// state. Callers hold the write lock.
func (that *Rollup) commit(ctx context.Context, next *state.State, root common.Hash, receipt *entity.Receipt) error {
	if err := that.actionLogRepo.AppendWithSnapshot(ctx, that.machineID, receipt, next, root); err != nil {
		return fmt.Errorf("failed to persist receipt: %w", err)
	}

	that.state = next
	that.root = root

	return nil
}

// State - a copy of the current state.
func (that *Rollup) State() *state.State {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Clone()
}

func (that *Rollup) Root() common.Hash {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.root
}

func (that *Rollup) Machine() *machine.Machine {
	return that.machine
}

// Replay - re-applies the whole receipt log from genesis and checks every
// recorded root along the way. The live state is not modified.
func (that *Rollup) Replay(ctx context.Context) (*state.State, error) {
	log := that.logger.With("method", "Replay")

	receipts, err := that.actionLogRepo.List(ctx, that.machineID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	st := that.genesis.Clone()
	for i, receipt := range receipts {
		if receipt.Hook {
			st, err = that.machine.RunHook(st, receipt.Action, receipt.Block)
		} else {
			var result *machine.Result
			result, err = that.machine.Apply(st, receipt.Action, machine.Action{
				Inputs:    receipt.Inputs,
				MsgSender: receipt.MsgSender,
				Block:     receipt.Block,
			})
			if result != nil {
				st = result.State
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to replay receipt %d (%s): %w", i, receipt.ID, err)
		}

		root, err := that.machine.Root(st)
		if err != nil {
			return nil, err
		}

		if root.Hex() != receipt.Root {
			return nil, fmt.Errorf("%w: receipt %d (%s) recorded %s, replayed %s",
				ErrReplayDiverged, i, receipt.ID, receipt.Root, root.Hex())
		}
	}

	log.Info("replay finished", "receipts", len(receipts), "games", st.Len())

	return st, nil
}
