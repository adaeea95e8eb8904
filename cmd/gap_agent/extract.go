package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/gap-analyzer/internal/extraction"
	"github.com/jonathan/gap-analyzer/internal/ingestion"
	"github.com/jonathan/gap-analyzer/internal/taxonomy"
)

var extractCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract known skills from a document",
	Long:  "Extract taxonomy skills from a resume or job description document and print them grouped by category.",
	RunE:  runExtract,
}

var (
	extractInputFile string
	extractFlat      bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to document (.pdf/.docx/.txt)")
	extractCmd.Flags().BoolVar(&extractFlat, "flat", false, "Print a flat sorted list instead of grouping by category")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text, err := ingestion.ExtractText(extractInputFile, data)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text could be extracted from %s", extractInputFile)
	}

	extractor := extraction.New(taxonomy.Default(), nil)
	ctx := context.Background()

	var out any
	if extractFlat {
		out = extractor.ExtractFlat(ctx, text)
	} else {
		out = extractor.Extract(ctx, text)
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
