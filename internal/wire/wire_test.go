package wire

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kanban/internal/config"
	"github.com/example/kanban/internal/logging"
	"github.com/example/kanban/internal/models"
)

func TestBoardSurvivesRestart(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  func(dir string) *config.Config
	}{
		{
			name: "sqlite",
			cfg: func(dir string) *config.Config {
				c := config.Default()
				c.DBPath = filepath.Join(dir, "kanban.db")
				return c
			},
		},
		{
			name: "file",
			cfg: func(dir string) *config.Config {
				c := config.Default()
				c.Backend = config.BackendFile
				c.FileDir = dir
				return c
			},
		},
		{
			name: "redis",
			cfg: func(dir string) *config.Config {
				c := config.Default()
				c.Backend = config.BackendRedis
				c.RedisAddr = mr.Addr()
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := tt.cfg(t.TempDir())

			open := func() *models.Board {
				store, closer, err := NewSnapshotStore(ctx, cfg)
				require.NoError(t, err)
				if closer != nil {
					t.Cleanup(func() { _ = closer.Close() })
				}
				svc := NewBoardService(store, cfg, logging.Discard())
				require.NoError(t, svc.Mount(ctx))
				b := svc.Board()

				if b.Len() == 0 {
					task, err := svc.AddTask(ctx, "Inspect hull")
					require.NoError(t, err)
					_, err = svc.PromoteTask(ctx, task.ID)
					require.NoError(t, err)
					assert.Empty(t, svc.LastWarning())
				}
				return &b
			}

			first := open()
			assert.Equal(t, 0, first.Len())

			second := open()
			require.Len(t, second.InProgress, 1)
			assert.Equal(t, "Inspect hull", second.InProgress[0].Text)
			assert.Equal(t, models.StatusInProgress, second.InProgress[0].Status)
		})
	}
}

func TestNewSnapshotStore_RedisUnreachable(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendRedis
	cfg.RedisAddr = "127.0.0.1:1"

	_, _, err := NewSnapshotStore(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewSnapshotStore_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "etcd"

	_, _, err := NewSnapshotStore(context.Background(), cfg)
	assert.Error(t, err)
}
