// purgectl runs the invalidation dispatch from a terminal instead of waiting
// for the schedule. Credentials and configuration come from the environment,
// with a .env file honored for local use.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"purgebot/internal/dist"
	"purgebot/internal/handler"
	"purgebot/internal/inject"
	"purgebot/internal/log"
)

func main() {
	root := &cobra.Command{
		Use:           "purgectl",
		Short:         "Trigger CloudFront cache invalidations from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd(), lsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (context.Context, *do.Injector) {
	_ = godotenv.Load()
	ctx := log.NewContext(context.Background(), log.NewText(os.Stderr))
	return ctx, inject.Setup(ctx)
}

func runCmd() *cobra.Command {
	var distributions, paths string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Dispatch invalidations once with the current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if distributions != "" {
				os.Setenv("DISTRIBUTION_IDS", distributions)
			}
			if paths != "" {
				os.Setenv("OBJECT_PATHS", paths)
			}
			ctx, injector := setup()
			defer func() { _ = injector.Shutdown() }()

			h, err := do.Invoke[*handler.Handler](injector)
			if err != nil {
				return err
			}
			resp, err := h.Handle(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Body)
			return nil
		},
	}
	cmd.Flags().StringVarP(&distributions, "distributions", "d", "", "comma-separated distribution ids, or * for all")
	cmd.Flags().StringVarP(&paths, "paths", "p", "", "comma-separated object path patterns")
	return cmd
}

func lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List distributions visible to the current credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, injector := setup()
			defer func() { _ = injector.Shutdown() }()

			lister, err := do.Invoke[dist.Lister](injector)
			if err != nil {
				return err
			}
			distributions, err := lister.List(ctx)
			if err != nil {
				return err
			}
			for _, d := range distributions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.ID, d.DomainName, strings.Join(d.Aliases, ","))
			}
			return nil
		},
	}
}
