package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

var correctableDocuments = []model.DocumentType{
	model.DocInvoice, model.DocBillOfLading, model.DocCartaPorte, model.DocManifest,
	model.DocPackingList, model.DocDUCAF, model.DocDUCAT, model.DocDUA, model.DocFEL,
}

func memoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Manage learned extraction corrections",
	}

	cmd.AddCommand(memoryRecordCmd())
	cmd.AddCommand(memoryListCmd())

	return cmd
}

func memoryRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record PATTERN CORRECTION",
		Short: "Teach a correction to the field extractor",
		Long: `Record that extracted text values containing PATTERN should read CORRECTION.
The correction is applied to every later extraction of the same document type.`,
		Args: cobra.ExactArgs(2),
		RunE: runMemoryRecord,
	}

	cmd.Flags().String("doc-type", string(model.DocInvoice), "document type the correction applies to")
	cmd.Flags().String("by", "", "who made the correction")

	return cmd
}

func runMemoryRecord(cmd *cobra.Command, args []string) error {
	rawType, _ := cmd.Flags().GetString("doc-type")
	by, _ := cmd.Flags().GetString("by")

	docType := model.DocumentType(strings.ToUpper(strings.TrimSpace(rawType)))
	if !slices.Contains(correctableDocuments, docType) {
		return common.NewUserError(fmt.Sprintf("unknown document type %q", rawType), common.ErrInvalidConfig)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	entry, err := a.engine.RecordCorrection(cmd.Context(), args[0], args[1], by, docType)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%q → %q recorded for %s",
		entry.Pattern, entry.Correction, entry.DocumentType)))
	return nil
}

func memoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learned corrections, most recent first",
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

			entries, err := store.LoadMemory(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load corrections: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), cli.RenderMemory(entries))
			return nil
		},
	}
}
