// cmd/pimctl/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/krowne/krownebase/internal/config"
	"github.com/krowne/krownebase/internal/database"
	"github.com/krowne/krownebase/internal/logging"
	"github.com/krowne/krownebase/internal/tagging"
)

// app carries what every subcommand needs. The database is opened lazily so
// that commands like a dry-run import work without one.
type app struct {
	cfg *config.Config
	db  *gorm.DB
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "pimctl",
		Short:         "Operate the product catalog from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logging.Setup(cfg.Environment, cfg.LogLevel)
			cfg.Database.ApplicationName = "pimctl"
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			database.Close(a.db)
		},
	}

	cmd.AddCommand(newMigrateCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newTagCmd(a))
	return cmd
}

func (a *app) database() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := database.Initialize(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a.db = db
	return db, nil
}

func (a *app) dictionary() (*tagging.Dictionary, error) {
	if a.cfg.Tagging.KeywordsPath == "" {
		return tagging.Default(), nil
	}
	return tagging.LoadDictionary(a.cfg.Tagging.KeywordsPath)
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
