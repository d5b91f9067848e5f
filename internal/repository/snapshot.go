package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ninja-strike/internal/state"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotRepository interface {
	Save(ctx context.Context, machineID string, st *state.State, root common.Hash) error
	Get(ctx context.Context, machineID string) (*state.State, common.Hash, error)
	Delete(ctx context.Context, machineID string) error
}

type dbSnapshot struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &dbSnapshot{
		client: client,
	}
}

func stateKey(machineID string) string {
	return "machine:" + machineID + ":state"
}

func rootKey(machineID string) string {
	return "machine:" + machineID + ":root"
}

// Save - writes the state and its root in one transaction.
func (that *dbSnapshot) Save(ctx context.Context, machineID string, st *state.State, root common.Hash) error {
	stateJSON, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("could not marshal state: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		setSnapshot(ctx, pipe, machineID, stateJSON, root)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func setSnapshot(ctx context.Context, pipe redis.Pipeliner, machineID string, stateJSON []byte, root common.Hash) {
	pipe.Set(ctx, stateKey(machineID), stateJSON, 0)
	pipe.Set(ctx, rootKey(machineID), root.Hex(), 0)
}

func (that *dbSnapshot) Get(ctx context.Context, machineID string) (*state.State, common.Hash, error) {
	values, err := that.client.MGet(ctx, stateKey(machineID), rootKey(machineID)).Result()
	if err != nil {
		return nil, common.Hash{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	rawState, okState := values[0].(string)
	rawRoot, okRoot := values[1].(string)
	if !okState || !okRoot {
		return nil, common.Hash{}, ErrSnapshotNotFound
	}

	st := state.New()
	if err = json.Unmarshal([]byte(rawState), st); err != nil {
		return nil, common.Hash{}, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	if st.Games == nil {
		st.Games = state.New().Games
	}

	return st, common.HexToHash(rawRoot), nil
}

func (that *dbSnapshot) Delete(ctx context.Context, machineID string) error {
	if err := that.client.Del(ctx, stateKey(machineID), rootKey(machineID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
