package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
	"github.com/rocketscienceinc/ninja-strike/internal/state"
)

// ActionLogRepository - append-only log of applied receipts per machine.
type ActionLogRepository interface {
	AppendWithSnapshot(ctx context.Context, machineID string, receipt *entity.Receipt, st *state.State, root common.Hash) error
	List(ctx context.Context, machineID string) ([]*entity.Receipt, error)
	Len(ctx context.Context, machineID string) (int64, error)
}

type dbActionLog struct {
	client *redis.Client
}

func NewActionLogRepository(client *redis.Client) ActionLogRepository {
	return &dbActionLog{
		client: client,
	}
}

func actionsKey(machineID string) string {
	return "machine:" + machineID + ":actions"
}

// AppendWithSnapshot - pushes the receipt and overwrites the snapshot in one
// MULTI/EXEC, so the log never runs ahead of the stored state.
func (that *dbActionLog) AppendWithSnapshot(
	ctx context.Context,
	machineID string,
	receipt *entity.Receipt,
	st *state.State,
	root common.Hash,
) error {
	receiptJSON, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("could not marshal receipt: %w", err)
	}

	stateJSON, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("could not marshal state: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, actionsKey(machineID), receiptJSON)
		setSnapshot(ctx, pipe, machineID, stateJSON, root)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append receipt: %w", err)
	}

	return nil
}

// List - returns every receipt in application order. Numeric inputs come back
// as json.Number.
func (that *dbActionLog) List(ctx context.Context, machineID string) ([]*entity.Receipt, error) {
	rows, err := that.client.LRange(ctx, actionsKey(machineID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	receipts := make([]*entity.Receipt, 0, len(rows))
	for i, row := range rows {
		decoder := json.NewDecoder(strings.NewReader(row))
		decoder.UseNumber()

		var receipt entity.Receipt
		if err = decoder.Decode(&receipt); err != nil {
			return nil, fmt.Errorf("failed to unmarshal receipt %d: %w", i, err)
		}
		receipts = append(receipts, &receipt)
	}

	return receipts, nil
}

func (that *dbActionLog) Len(ctx context.Context, machineID string) (int64, error) {
	n, err := that.client.LLen(ctx, actionsKey(machineID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	return n, nil
}
