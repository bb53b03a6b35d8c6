package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/engine"
	"github.com/Veraticus/aduana/internal/model"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate trade documents",
		Long: `Validate one or more trade documents given as extracted plain text.

Each document is classified, its fields extracted, its CIF value and tax
cascade recomputed, its fiscal identifier checked and its products
classified. The aggregated result is sealed in the integrity ledger.

The region is detected from the text unless --region is given. The file
name is used as the document ID.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().String("hs", "", "declared HS code (overrides the one in the text)")
	cmd.Flags().String("fiscal-id", "", "importer fiscal identifier (overrides the one in the text)")
	cmd.Flags().Bool("json", false, "print reports as JSON")

	return cmd
}

type fileReport struct {
	Report *engine.Report `json:"report"`
	File   string         `json:"file"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	hsCode, _ := cmd.Flags().GetString("hs")
	fiscalID, _ := cmd.Flags().GetString("fiscal-id")
	asJSON, _ := cmd.Flags().GetBool("json")

	r, err := regionFlag(cmd, model.RegionUnassigned)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	batch := len(args) > 1
	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), batch)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var bar *progressbar.ProgressBar
	if batch && !asJSON {
		bar = cli.NewProgressBar(cmd.ErrOrStderr(), len(args), "Validating documents...")
	}

	reports := make([]fileReport, 0, len(args))
	var persistErr error
	for _, path := range args {
		if ctx.Err() != nil {
			break
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return common.NewUserError(fmt.Sprintf("could not read %s", path), err)
		}

		report, err := a.engine.ValidateDocument(ctx, engine.DocumentInput{
			ID:       filepath.Base(path),
			Text:     string(data),
			Region:   r,
			HSCode:   hsCode,
			FiscalID: fiscalID,
		})
		switch {
		case errors.Is(err, common.ErrEmptyDocument):
			slog.Warn("Skipping empty document", "file", path)
			cli.Advance(bar)
			continue
		case err != nil && report == nil:
			return fmt.Errorf("failed to validate %s: %w", path, err)
		case err != nil:
			slog.Error("Validation state was not fully persisted", "file", path, "error", err)
			persistErr = err
		}

		reports = append(reports, fileReport{File: path, Report: report})
		cli.Advance(bar)
	}

	if err := printReports(cmd, reports, asJSON); err != nil {
		return err
	}

	if handler.WasInterrupted() {
		return nil
	}
	if persistErr != nil {
		return common.NewUserError("some results or correction counters could not be saved", persistErr)
	}
	return nil
}

func printReports(cmd *cobra.Command, reports []fileReport, asJSON bool) error {
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	results := make([]model.ValidationResult, 0, len(reports))
	for _, fr := range reports {
		fmt.Fprintln(out, cli.RenderReport(filepath.Base(fr.File), fr.Report))
		results = append(results, fr.Report.Result)
	}

	if len(reports) > 1 {
		fmt.Fprint(out, cli.RenderBatchSummary(results))
	}
	return nil
}
