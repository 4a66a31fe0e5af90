package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nsxfint/internal/app"
)

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective NSX feature catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd)
		},
	}
	return cmd
}

func runCatalog(cmd *cobra.Command) error {
	ctx := log.Logger.WithContext(cmd.Context())
	service := newAppService()
	result, err := service.ListCatalog(ctx, app.CatalogRequest{
		CatalogPath: viper.GetString("catalog"),
	})
	if err != nil {
		return err
	}
	for _, feature := range result.Features {
		fmt.Printf("%s (bit %d): %s\n", feature.Name, feature.Bit, feature.Edition)
	}
	return nil
}
