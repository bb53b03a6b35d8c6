package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/config"
	"github.com/Veraticus/aduana/internal/engine"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/pattern"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify DESCRIPTION",
		Short: "Classify a product description",
		Long: `Classify a free-text product description into a product category,
the authorities that regulate it and the customs value bracket for its value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Float64("value", 0, "declared value in USD")
	cmd.Flags().Bool("json", false, "print the classification as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	value, _ := cmd.Flags().GetFloat64("value")
	asJSON, _ := cmd.Flags().GetBool("json")
	desc := strings.Join(args, " ")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifier, err := newClassifier(cfg)
	if err != nil {
		return err
	}

	result := classifier.Classify(desc, value)

	if asJSON {
		return writeJSON(cmd, result)
	}
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderClassification(desc, result))
	return nil
}

func manifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest FILE",
		Short: "Route a courier manifest to processing queues",
		Long: `Classify every row of a courier manifest and route it to a queue:
prohibited, permit, broker, documents, manual or standard.

FILE is a YAML or JSON list of rows with description, recipient,
tracking, weight and value.`,
		Args: cobra.ExactArgs(1),
		RunE: runManifest,
	}

	cmd.Flags().Bool("json", false, "print the routing as JSON")

	return cmd
}

func runManifest(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	rows, err := readManifest(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifier, err := newClassifier(cfg)
	if err != nil {
		return err
	}
	regions, err := cfg.RegionStore()
	if err != nil {
		return common.NewUserError("invalid regional overrides", err)
	}

	eng, err := engine.New(regions,
		engine.WithProductClassifier(classifier),
		engine.WithThresholds(cfg.Thresholds),
		engine.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	summary, err := eng.ClassifyManifest(cmd.Context(), rows)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, summary)
	}
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderManifest(summary))
	return nil
}

func readManifest(path string) ([]model.ManifestRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not read %s", path), err)
	}

	var rows []model.ManifestRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not parse manifest %s", path), err)
	}
	return rows, nil
}

func newClassifier(cfg *config.EngineConfig) (*pattern.ProductClassifier, error) {
	classifier, err := pattern.NewProductClassifier(
		pattern.WithThresholds(cfg.Thresholds),
		pattern.WithConfidenceDivisor(cfg.ConfidenceDivisor),
		pattern.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to create product classifier: %w", err)
	}
	return classifier, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
