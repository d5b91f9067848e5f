package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

var ErrInvalidInterval = errors.New("prune interval must be positive")

type pruner interface {
	Prune(ctx context.Context, block entity.Block) (int, error)
}

// Scheduler - drives the time-triggered hooks of a rollup from the wall clock.
type Scheduler struct {
	logger *slog.Logger
	clock  clockwork.Clock
	every  time.Duration
	pruner pruner

	scheduler gocron.Scheduler
}

func New(logger *slog.Logger, clock clockwork.Clock, every time.Duration, pruner pruner) (*Scheduler, error) {
	if every <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, every)
	}

	sched, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		logger:    logger.With("component", "scheduler"),
		clock:     clock,
		every:     every,
		pruner:    pruner,
		scheduler: sched,
	}, nil
}

// Start - registers the prune job and starts the scheduler. Jobs stop
// running once ctx is done.
func (that *Scheduler) Start(ctx context.Context) error {
	_, err := that.scheduler.NewJob(
		gocron.DurationJob(that.every),
		gocron.NewTask(func() {
			if _, pruneErr := that.PruneNow(ctx); pruneErr != nil {
				that.logger.Error("prune job failed", "error", pruneErr)
			}
		}),
		gocron.WithName("pruneGames"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register prune job: %w", err)
	}

	that.scheduler.Start()
	that.logger.Info("scheduler started", "every", that.every.String())

	return nil
}

// PruneNow - runs the prune hook with the current time in milliseconds as
// block timestamp.
func (that *Scheduler) PruneNow(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	block := entity.Block{Timestamp: uint64(that.clock.Now().UnixMilli())}

	removed, err := that.pruner.Prune(ctx, block)
	if err != nil {
		return 0, fmt.Errorf("failed to prune at %d: %w", block.Timestamp, err)
	}

	if removed > 0 {
		that.logger.Info("pruned games", "removed", removed, "timestamp", block.Timestamp)
	}

	return removed, nil
}

func (that *Scheduler) Shutdown() error {
	if err := that.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}

	return nil
}
