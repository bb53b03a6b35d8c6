package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/precedent"
)

func precedentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precedents",
		Short: "Search and manage binding customs rulings",
	}

	cmd.AddCommand(precedentsSearchCmd())
	cmd.AddCommand(precedentsImportCmd())
	cmd.AddCommand(precedentsListCmd())

	return cmd
}

func precedentsSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search DESCRIPTION",
		Short: "Find rulings that apply to a product",
		Long: `Score the in-force rulings of a region against a product description.

With --hs the declared code is also checked: endorsed by a ruling, sent to
broker review, or justified by an interpretation rule when no ruling applies.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPrecedentsSearch,
	}

	cmd.Flags().String("hs", "", "declared HS code")
	cmd.Flags().Bool("json", false, "print the result as JSON")

	return cmd
}

func runPrecedentsSearch(cmd *cobra.Command, args []string) error {
	hsCode, _ := cmd.Flags().GetString("hs")
	asJSON, _ := cmd.Flags().GetBool("json")
	desc := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := regionFlag(cmd, cfg.DefaultRegion)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStorage(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	a := &app{cfg: cfg, store: store}
	defer a.Close()

	prec, err := a.precedentEngine(ctx, slog.Default())
	if err != nil {
		return err
	}

	if hsCode != "" {
		verdict := prec.ValidateByPrecedent(ctx, hsCode, desc, r)
		if asJSON {
			return writeJSON(cmd, verdict)
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, cli.RenderPrecedents(verdict.Lookup))
		fmt.Fprintln(out)
		fmt.Fprint(out, cli.RenderVerdict(verdict))
		return nil
	}

	result := prec.SearchPrecedents(ctx, desc, r, "")
	if asJSON {
		return writeJSON(cmd, result)
	}
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderPrecedents(result))
	return nil
}

func precedentsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import rulings from a YAML file into the local database",
		Long: `Import rulings from a YAML file with a top-level "precedents" list.
Rulings with an existing ruling_id are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			precedents, err := precedent.LoadSeedFile(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("could not load %s", args[0]), err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpsertPrecedents(cmd.Context(), precedents); err != nil {
				return fmt.Errorf("failed to import precedents: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d rulings", len(precedents))))
			return nil
		},
	}
}

func precedentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rulings stored in the local database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			precedents, err := store.ListPrecedents(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list precedents: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), cli.RenderPrecedentList(precedents))
			return nil
		},
	}
}
