// cmd/pimctl/import_cmd.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/krowne/krownebase/internal/repository"
	"github.com/krowne/krownebase/internal/services"
)

type importOptions struct {
	dryRun  bool
	archive bool
}

func newImportCmd(a *app) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import products from a .csv or .xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and validate the file without touching the database")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "Archive the file to S3 after a successful import")
	return cmd
}

func runImport(cmd *cobra.Command, a *app, path string, opts importOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var (
		repo     repository.ProductRepository
		archiver services.ImportArchiver
	)
	if opts.dryRun {
		repo = repository.NewMemoryProductRepository()
	} else {
		db, err := a.database()
		if err != nil {
			return err
		}
		repo = repository.NewGormProductRepository(db)

		if opts.archive {
			storage, err := services.NewStorageService(a.cfg.AWS)
			if err != nil {
				return err
			}
			archiver = storage
		}
	}

	svc := services.NewImportService(repo, archiver, a.cfg.Upload.MaxBytes)
	result, err := svc.Import(cmd.Context(), filepath.Base(path), f)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
