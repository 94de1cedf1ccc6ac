package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/kanban/internal/config"
	"github.com/example/kanban/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write .kanban/config.json",
		Long: `Write .kanban/config.json in the config directory and prepare the storage
backend. The default backend is SQLite at ~/.kanban/kanban.db.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("config-dir")
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				dir = wd
			}
			force, _ := cmd.Flags().GetBool("force")

			path := filepath.Join(dir, ".kanban", "config.json")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default()
			cfg.Backend, _ = cmd.Flags().GetString("backend")
			cfg.DBPath, _ = cmd.Flags().GetString("db-path")
			cfg.FileDir, _ = cmd.Flags().GetString("file-dir")
			cfg.RedisAddr, _ = cmd.Flags().GetString("redis-addr")
			cfg.Slot, _ = cmd.Flags().GetString("slot")
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Backend == config.BackendSQLite {
				if err := initDatabase(cmd, cfg); err != nil {
					return err
				}
			}

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Config written to %s\n", path)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  kanban add \"My first task\"")
			fmt.Fprintln(out, "  kanban board")
			return nil
		},
	}

	cmd.Flags().String("backend", config.BackendSQLite, "Storage backend (sqlite, file or redis)")
	cmd.Flags().String("db-path", "", "SQLite database file (default ~/.kanban/kanban.db)")
	cmd.Flags().String("file-dir", "", "Snapshot directory for the file backend (default ~/.kanban/snapshots)")
	cmd.Flags().String("redis-addr", "", "Redis address for the redis backend (host:port)")
	cmd.Flags().String("slot", config.DefaultSlot, "Snapshot slot name")
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}

// initDatabase creates the SQLite file and runs migrations.
func initDatabase(cmd *cobra.Command, cfg *config.Config) error {
	path := cfg.DBPath
	if path == "" {
		p, err := db.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	v, err := db.CurrentVersion(database)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Database ready at %s (schema v%d)\n", path, v)
	return nil
}
