package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/finance"
	"github.com/Veraticus/aduana/internal/model"
)

func cifCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cif",
		Short: "Recompute a CIF valuation",
		Long: `Recompute CIF = FOB + freight + insurance and compare it with the declared CIF.

When no insurance is given the region's theoretical insurance rate is applied.`,
		Args: cobra.NoArgs,
		RunE: runCIF,
	}

	cmd.Flags().Float64("fob", 0, "FOB value in USD")
	cmd.Flags().Float64("freight", 0, "freight in USD")
	cmd.Flags().Float64("insurance", 0, "insurance in USD (derived when omitted)")
	cmd.Flags().Float64("declared", 0, "declared CIF in USD (only computed when omitted)")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("fob")

	return cmd
}

func runCIF(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	fob, _ := flags.GetFloat64("fob")
	freight, _ := flags.GetFloat64("freight")
	declared, _ := flags.GetFloat64("declared")
	asJSON, _ := flags.GetBool("json")

	validator, r, err := newFinanceValidator(cmd)
	if err != nil {
		return err
	}

	in := finance.CIFInput{
		Region:        r,
		FOB:           fob,
		Freight:       freight,
		DeclaredCIF:   declared,
		CIFUndeclared: !flags.Changed("declared"),
	}
	if flags.Changed("insurance") {
		insurance, _ := flags.GetFloat64("insurance")
		in.Insurance = &insurance
	}

	result, err := validator.ValidateCIF(in)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, cli.RenderCIF(result))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderFindings(result.Findings))
	return nil
}

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Recompute a tax cascade",
		Long: `Recompute DAI on CIF, ISC on CIF+DAI and VAT on CIF+DAI+ISC, add the
region's system fee and compare with the declared amounts.`,
		Args: cobra.NoArgs,
		RunE: runTax,
	}

	cmd.Flags().Float64("cif", 0, "CIF value in USD")
	cmd.Flags().Float64("dai", 0, "DAI rate in percent")
	cmd.Flags().Float64("isc", 0, "ISC rate in percent")
	cmd.Flags().Float64("declared-dai", 0, "declared DAI amount")
	cmd.Flags().Float64("declared-isc", 0, "declared ISC amount")
	cmd.Flags().Float64("declared-vat", 0, "declared VAT amount")
	cmd.Flags().Float64("declared-total", 0, "declared total")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("cif")

	return cmd
}

func runTax(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	cif, _ := flags.GetFloat64("cif")
	dai, _ := flags.GetFloat64("dai")
	isc, _ := flags.GetFloat64("isc")
	asJSON, _ := flags.GetBool("json")

	validator, r, err := newFinanceValidator(cmd)
	if err != nil {
		return err
	}

	declaredFlag := func(name string) *float64 {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetFloat64(name)
		return &v
	}

	result, err := validator.ValidateTaxCascade(finance.TaxInput{
		Region:     r,
		CIF:        cif,
		DAIPercent: dai,
		ISCPercent: isc,
		Declared: finance.DeclaredTaxes{
			DAI:   declaredFlag("declared-dai"),
			ISC:   declaredFlag("declared-isc"),
			VAT:   declaredFlag("declared-vat"),
			Total: declaredFlag("declared-total"),
		},
	})
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, cli.RenderTaxes(result))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderFindings(result.Findings))
	return nil
}

func fiscalIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiscal-id ID",
		Short: "Validate a fiscal identifier",
		Long:  `Check an importer identifier (RUC, cédula, NIT, DIMEX) against the formats of a region.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runFiscalID,
	}

	cmd.Flags().Bool("json", false, "print the result as JSON")

	return cmd
}

func runFiscalID(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	validator, r, err := newFinanceValidator(cmd)
	if err != nil {
		return err
	}

	result, err := validator.ValidateFiscalID(args[0], r)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, result)
	}
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderFiscalID(args[0], result))
	return nil
}

// newFinanceValidator builds a validator over the configured regions and
// resolves the region from --region or region.default.
func newFinanceValidator(cmd *cobra.Command) (*finance.Validator, model.Region, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	r, err := regionFlag(cmd, cfg.DefaultRegion)
	if err != nil {
		return nil, "", err
	}
	regions, err := cfg.RegionStore()
	if err != nil {
		return nil, "", common.NewUserError("invalid regional overrides", err)
	}

	validator, err := finance.NewValidator(regions,
		finance.WithTolerance(cfg.Tolerance),
		finance.WithLogger(slog.Default()))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create financial validator: %w", err)
	}
	return validator, r, nil
}
