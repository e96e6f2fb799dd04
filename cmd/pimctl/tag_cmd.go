// cmd/pimctl/tag_cmd.go
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krowne/krownebase/internal/repository"
	"github.com/krowne/krownebase/internal/services"
)

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Compute keyword tags for products",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Tag every product in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.taggingService()
			if err != nil {
				return err
			}
			summary, err := svc.TagAll(cmd.Context())
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(summary)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "one <sku>",
		Short: "Tag a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.taggingService()
			if err != nil {
				return err
			}
			tags, err := svc.TagOne(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, ", "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "preview <sku>",
		Short: "Show the tags a product would receive without saving them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.taggingService()
			if err != nil {
				return err
			}
			tags, err := svc.PreviewTags(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, ", "))
			return nil
		},
	})

	return cmd
}

func (a *app) taggingService() (*services.TaggingService, error) {
	dictionary, err := a.dictionary()
	if err != nil {
		return nil, err
	}
	db, err := a.database()
	if err != nil {
		return nil, err
	}
	return services.NewTaggingService(repository.NewGormProductRepository(db), dictionary), nil
}
