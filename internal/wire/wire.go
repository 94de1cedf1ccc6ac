// Package wire provides dependency injection for the kanban application.
// It creates the singleton board service with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	cliadapter "github.com/example/kanban/internal/adapters/cli"
	"github.com/example/kanban/internal/adapters/filesystem"
	"github.com/example/kanban/internal/adapters/persistence"
	"github.com/example/kanban/internal/adapters/redisstore"
	"github.com/example/kanban/internal/adapters/sqlite"
	"github.com/example/kanban/internal/app"
	"github.com/example/kanban/internal/config"
	"github.com/example/kanban/internal/db"
	"github.com/example/kanban/internal/logging"
	"github.com/example/kanban/internal/ports/primary"
	"github.com/example/kanban/internal/ports/secondary"
)

// Options control how the singletons are built. Set them with Configure
// before the first call to any accessor.
type Options struct {
	// ConfigDir is the directory holding .kanban/config.json. Empty means
	// the current working directory.
	ConfigDir string
	// Interactive routes logs to the log file so they do not draw over the
	// terminal board.
	Interactive bool
}

var (
	opts Options

	cfg          *config.Config
	store        secondary.SnapshotStore
	boardService primary.BoardService
	closers      []io.Closer
	initErr      error
	once         sync.Once
)

// Configure sets the options used by the lazy initialization.
func Configure(o Options) {
	opts = o
}

// Config returns the loaded configuration.
func Config() (*config.Config, error) {
	once.Do(initServices)
	return cfg, initErr
}

// BoardService returns the singleton BoardService instance, already mounted.
func BoardService() (primary.BoardService, error) {
	once.Do(initServices)
	return boardService, initErr
}

// SlotStore returns the configured snapshot store when its backend can list
// and delete slots.
func SlotStore() (secondary.SlotStore, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}
	slots, ok := store.(secondary.SlotStore)
	if !ok {
		return nil, fmt.Errorf("backend %q does not support slot management", cfg.Backend)
	}
	return slots, nil
}

// BoardAdapter returns a new BoardAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func BoardAdapter() (*cliadapter.BoardAdapter, error) {
	return BoardAdapterWithOutput(os.Stdout)
}

// BoardAdapterWithOutput returns a new BoardAdapter writing to the given output.
func BoardAdapterWithOutput(out io.Writer) (*cliadapter.BoardAdapter, error) {
	svc, err := BoardService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewBoardAdapter(svc, out), nil
}

// Close releases the database, redis connection and log file, if opened.
func Close() {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
	closers = nil
}

// initServices loads config, builds the logger and the snapshot store, and
// mounts the board. This is called once via sync.Once.
func initServices() {
	dir := opts.ConfigDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			initErr = fmt.Errorf("failed to get working directory: %w", err)
			return
		}
		dir = wd
	}

	cfg, initErr = config.LoadConfig(dir)
	if initErr != nil {
		return
	}

	logger, err := newLogger(cfg, opts.Interactive)
	if err != nil {
		initErr = err
		return
	}

	ctx := context.Background()
	snapshots, closer, err := NewSnapshotStore(ctx, cfg)
	if err != nil {
		initErr = err
		return
	}
	if closer != nil {
		closers = append(closers, closer)
	}
	store = snapshots

	svc := NewBoardService(snapshots, cfg, logger)
	if err := svc.Mount(ctx); err != nil {
		initErr = err
		return
	}
	boardService = svc
}

// NewSnapshotStore opens the backend named by cfg. The returned closer may be
// nil when the backend holds no resources.
func NewSnapshotStore(ctx context.Context, cfg *config.Config) (secondary.SnapshotStore, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		path := cfg.DBPath
		if path == "" {
			p, err := db.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		database, err := db.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return sqlite.NewSnapshotRepository(database), database, nil

	case config.BackendFile:
		store, err := filesystem.NewSnapshotStore(cfg.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case config.BackendRedis:
		store, err := redisstore.Dial(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// NewBoardService builds an unmounted board service over store.
func NewBoardService(store secondary.SnapshotStore, cfg *config.Config, logger log.FieldLogger) *app.BoardServiceImpl {
	repo := persistence.NewBoardRepository(store, cfg.Slot)
	return app.NewBoardService(repo, logger, nil, cfg.DragThreshold)
}

func newLogger(cfg *config.Config, interactive bool) (*log.Logger, error) {
	path := cfg.LogFile
	if path == "" && interactive {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if path == "" {
		return logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	}

	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, err
	}
	closers = append(closers, f)
	return logging.New(cfg.LogLevel, cfg.LogFormat, f)
}
