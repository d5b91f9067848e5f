package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rocketscienceinc/ninja-strike/internal/config"
	"github.com/rocketscienceinc/ninja-strike/internal/machine"
	"github.com/rocketscienceinc/ninja-strike/internal/repository"
	"github.com/rocketscienceinc/ninja-strike/internal/repository/storage"
	"github.com/rocketscienceinc/ninja-strike/internal/scheduler"
	"github.com/rocketscienceinc/ninja-strike/internal/state"
	"github.com/rocketscienceinc/ninja-strike/internal/usecase"
	"github.com/rocketscienceinc/ninja-strike/transport/rest"
)

const shutdownTimeout = 5 * time.Second

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrRootMismatch = errors.New("replayed root does not match the live root")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisClient, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	genesis, err := loadGenesis(log, conf.Machine.GenesisPath)
	if err != nil {
		return err
	}

	variant, err := conf.Machine.GetVariant()
	if err != nil {
		return fmt.Errorf("invalid machine config: %w", err)
	}

	gameMachine, err := machine.New(variant)
	if err != nil {
		return fmt.Errorf("invalid machine config: %w", err)
	}

	snapshotRepo := repository.NewSnapshotRepository(redisClient)
	actionLogRepo := repository.NewActionLogRepository(redisClient)
	rollup := usecase.NewRollup(logger, conf.Machine.ID, gameMachine, genesis, snapshotRepo, actionLogRepo)

	if err = restore(ctx, rollup); err != nil {
		return err
	}

	log.Info("Machine ready",
		"machine", conf.Machine.ID,
		"variant", variant.Name,
		"commitment", variant.Commitment,
		"root", rollup.Root().Hex(),
	)

	pruneScheduler, err := scheduler.New(logger, clockwork.NewRealClock(), conf.Machine.PruneEvery, rollup)
	if err != nil {
		return fmt.Errorf("could not create scheduler: %w", err)
	}

	if err = pruneScheduler.Start(ctx); err != nil {
		return fmt.Errorf("could not start scheduler: %w", err)
	}

	defer func() {
		if err = pruneScheduler.Shutdown(); err != nil {
			log.Error("could not stop scheduler", "error", err)
		}
	}()

	// run HTTP server
	httpServer := rest.New(logger, conf.HTTPPort, rollup)
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("could not stop HTTP server", "error", err)
	}

	return nil
}

// loadGenesis - reads the genesis snapshot, falling back to an empty state
// when the file does not exist.
func loadGenesis(log *slog.Logger, path string) (*state.State, error) {
	genesis, err := state.LoadGenesis(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("genesis file not found, starting empty", "path", path)
		return state.New(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("could not load genesis: %w", err)
	}

	return genesis, nil
}

// restore - loads the latest snapshot and checks it against a full replay of
// the receipt log.
func restore(ctx context.Context, rollup *usecase.Rollup) error {
	if err := rollup.Restore(ctx); err != nil {
		return fmt.Errorf("could not restore machine state: %w", err)
	}

	replayed, err := rollup.Replay(ctx)
	if err != nil {
		return fmt.Errorf("could not replay receipts: %w", err)
	}

	root, err := rollup.Machine().Root(replayed)
	if err != nil {
		return err
	}

	if root != rollup.Root() {
		return fmt.Errorf("%w: replayed %s, live %s", ErrRootMismatch, root.Hex(), rollup.Root().Hex())
	}

	return nil
}
