package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/ledger"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show sealed validation results",
		Long: `Show the most recent validation results sealed in the integrity ledger.

With --verify the hash links between the listed results are checked.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().Int("limit", 20, "number of results to show")
	cmd.Flags().Bool("verify", false, "verify the hash chain")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	verify, _ := cmd.Flags().GetBool("verify")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStorage(cmd.Context(), cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	results, err := store.RecentValidations(cmd.Context(), limit)
	if err != nil {
		return common.NewUserError("could not read validation history", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, cli.RenderHistory(results))

	if verify {
		if err := ledger.VerifyChain(results); err != nil {
			return common.NewUserError("hash chain verification failed", err)
		}
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Hash chain intact across %d results", len(results))))
	}
	return nil
}
